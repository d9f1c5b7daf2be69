package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
)

// maxImportBytes caps imported résumé JSON documents.
const maxImportBytes = 1 << 20

// session resolves the {id} path value, answering 404 itself on a miss.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	sess, ok := s.sessions.Get(r.PathValue("id"))
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	return sess, true
}

// handleCreateSession starts a new session from the seed record.
func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.sessions.Create()
	snap := sess.Editor.Snapshot()
	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":           sess.ID,
		"data":         snap.Data,
		"edited":       snap.Edited,
		"nameGenState": snap.NameState,
	})
}

// handleGetSession returns the current snapshot.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	snap := sess.Editor.Snapshot()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"id":           sess.ID,
		"data":         snap.Data,
		"edited":       snap.Edited,
		"nameGenState": snap.NameState,
	})
}

// handleDeleteSession discards a session.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	s.sessions.Delete(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// handleImport replaces the session record with a schema-validated document.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	doc, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if len(doc) > maxImportBytes {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "Import document too large")
		return
	}

	if err := schemas.ValidateResumeJSON(doc); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var data types.ResumeData
	if err := json.Unmarshal(doc, &data); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	sess.Editor.Import(data)
	s.jsonResponse(w, http.StatusOK, sess.Editor.Snapshot())
}

// handleExportJSON serves the raw record as a download.
func (s *Server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	snap := sess.Editor.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.json"`)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap.Data); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to encode resume")
	}
}
