package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"csvframe/internal/frame"
	"csvframe/internal/ingest"
	"csvframe/internal/logging"
)

// sampleFiles is the static list of CSV files the editor's selection control
// is populated from. The files themselves live in the configured data
// directory; names outside this list still work as long as they resolve
// inside it.
var sampleFiles = []string{
	"population_by_state.csv",
	"city_stats.csv",
	"browser_marketshare.csv",
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListFiles returns the sample file names for the editor dropdown.
func (s *Server) handleListFiles(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{"files": sampleFiles})
}

// handleGetFrame resolves a file name under the data directory, ingests it
// and responds with the frame in the schema+data JSON shape.
func (s *Server) handleGetFrame(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")

	f, err := s.resolver.LoadNamedFile(name)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("csv file ingested",
		"file", name,
		"fields", len(f.Fields),
		"rows", f.Rows(),
	)
	respondJSON(w, http.StatusOK, f)
}

// handleIngestContent ingests inline CSV content from the request body.
// Query parameters: name (the frame's display name) and header=false to
// treat the first line as data with positional column names.
func (s *Server) handleIngestContent(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	ingestID := uuid.NewString()
	w.Header().Set("X-Ingest-Id", ingestID)

	body := http.MaxBytesReader(w, r.Body, s.cfg.Data.MaxContentSize)

	var f *frame.Frame
	var err error
	if r.URL.Query().Get("header") == "false" {
		f, err = ingest.LoadContentHeaderless(body, name)
	} else {
		f, err = ingest.LoadContent(body, name)
	}
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("csv content ingested",
		"ingest_id", ingestID,
		"frame", name,
		"fields", len(f.Fields),
		"rows", f.Rows(),
	)
	respondJSON(w, http.StatusOK, f)
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
