package web

// errors.go maps engine errors onto HTTP responses. Every error is logged
// with full technical detail server-side and returned to the client as a
// JSON body with a stable support code:
//
//	FILE001 - invalid file name (traversal or malformed) -> 400
//	FILE002 - file not found                             -> 404
//	FILE003 - content too large                          -> 413
//	CSV001  - row width mismatch (malformed CSV body)    -> 422
//	ERR000  - anything else                              -> 500
//
// Codes are deterministic functions of the error kind so clients and tests
// can rely on them.

import (
	"errors"
	"io/fs"
	"net/http"

	"csvframe/internal/ingest"
	"csvframe/internal/logging"
)

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error  string `json:"error"`
	Action string `json:"action,omitempty"`
	Code   string `json:"code"`
}

// classifyError derives the HTTP status and support code for an error.
func classifyError(err error) (status int, resp ErrorResponse) {
	var widthErr *ingest.RowWidthMismatchError
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.Is(err, ingest.ErrInvalidFileName):
		return http.StatusBadRequest, ErrorResponse{
			Error:  "invalid file name",
			Action: "use a plain file name inside the data directory",
			Code:   "FILE001",
		}
	case errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound, ErrorResponse{
			Error:  "file not found",
			Action: "check the file name against the sample list",
			Code:   "FILE002",
		}
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge, ErrorResponse{
			Error:  "content too large",
			Action: "split the CSV into smaller pieces",
			Code:   "FILE003",
		}
	case errors.As(err, &widthErr):
		return http.StatusUnprocessableEntity, ErrorResponse{
			Error:  widthErr.Error(),
			Action: "ensure every row has the same number of columns as the header",
			Code:   "CSV001",
		}
	default:
		return http.StatusInternalServerError, ErrorResponse{
			Error:  "ingestion failed",
			Action: "try again or contact support",
			Code:   "ERR000",
		}
	}
}

// respondError logs the technical error and writes the JSON error response.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := classifyError(err)

	logging.FromContext(r.Context()).Error("request error",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"code", resp.Code,
		"error", err.Error(),
	)

	respondJSON(w, status, resp)
}
