package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-studio/internal/editor"
	"github.com/jonathan/resume-studio/internal/types"
)

// decode reads a JSON request body, answering 400 itself on failure.
func decode(w http.ResponseWriter, r *http.Request, s *Server, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// snapshotResponse answers with the post-mutation state.
func (s *Server) snapshotResponse(w http.ResponseWriter, sess *Session) {
	s.jsonResponse(w, http.StatusOK, sess.Editor.Snapshot())
}

// handleUpdatePersonal updates one scalar personal info field.
func (s *Server) handleUpdatePersonal(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req types.UpdatePersonalRequest
	if !decode(w, r, s, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	if err := sess.Editor.UpdatePersonal(req.Field, req.Value); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.snapshotResponse(w, sess)
}

// handleSetMode switches between domestic and remote mode. The response
// carries the settled name, so remote switches block on generation.
func (s *Server) handleSetMode(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req types.SetModeRequest
	if !decode(w, r, s, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	if err := sess.Editor.SetMode(r.Context(), req.Mode); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.snapshotResponse(w, sess)
}

// handleSetGender changes the candidate gender.
func (s *Server) handleSetGender(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req types.SetGenderRequest
	if !decode(w, r, s, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	if err := sess.Editor.SetGender(r.Context(), req.Gender); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.snapshotResponse(w, sess)
}

// handleRegenerateName re-runs name generation for a remote-mode session.
func (s *Server) handleRegenerateName(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	// Reject domestic-mode sessions before spending quota. RegenerateName
	// rechecks under its own lock.
	if sess.Editor.Snapshot().Data.Mode != types.ModeRemote {
		s.errorResponse(w, HTTPStatus(editor.ErrDomesticName), editor.ErrDomesticName.Error())
		return
	}
	if !s.aiLimiter.allow(clientID(r)) {
		s.errorResponse(w, http.StatusTooManyRequests, "Too many generation requests")
		return
	}

	if err := sess.Editor.RegenerateName(r.Context()); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.snapshotResponse(w, sess)
}

// handleAddEntity appends a new entry to a collection.
func (s *Server) handleAddEntity(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	collection := types.Collection(r.PathValue("collection"))
	if !collection.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "Unknown collection")
		return
	}

	var req types.AddEntityRequest
	if !decode(w, r, s, &req) {
		return
	}

	id, err := sess.Editor.AddEntity(collection, req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":       id,
		"snapshot": sess.Editor.Snapshot(),
	})
}

// handleRemoveEntity deletes one collection entry by id.
func (s *Server) handleRemoveEntity(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	collection := types.Collection(r.PathValue("collection"))
	if !collection.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "Unknown collection")
		return
	}

	if err := sess.Editor.RemoveEntity(collection, r.PathValue("entity_id")); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.snapshotResponse(w, sess)
}

// handleUpdateEntity updates one field of a collection entry.
func (s *Server) handleUpdateEntity(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	collection := types.Collection(r.PathValue("collection"))
	if !collection.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "Unknown collection")
		return
	}

	var req types.UpdateEntityRequest
	if !decode(w, r, s, &req) {
		return
	}
	req.ID = r.PathValue("entity_id")
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	if err := sess.Editor.UpdateEntityField(collection, req.ID, req.Field, req.Value); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.snapshotResponse(w, sess)
}

// handleSetSkillStyle selects the rendered skill representation.
func (s *Server) handleSetSkillStyle(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req types.SetSkillStyleRequest
	if !decode(w, r, s, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	if err := sess.Editor.SetSkillStyle(req.Style); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.snapshotResponse(w, sess)
}

// handleAddSkillTag appends a placeholder tag.
func (s *Server) handleAddSkillTag(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Editor.AddSkillTag()
	s.snapshotResponse(w, sess)
}

// handleUpdateSkillTag replaces the tag at an index.
func (s *Server) handleUpdateSkillTag(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req types.SkillTagRequest
	if !decode(w, r, s, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	sess.Editor.UpdateSkillTag(req.Index, req.Value)
	s.snapshotResponse(w, sess)
}

// handleRemoveSkillTag deletes the tag at an index.
func (s *Server) handleRemoveSkillTag(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req types.SkillTagRequest
	if !decode(w, r, s, &req) {
		return
	}

	sess.Editor.RemoveSkillTag(req.Index)
	s.snapshotResponse(w, sess)
}

// handleSetSkillsText replaces the free-form skills paragraph.
func (s *Server) handleSetSkillsText(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req types.SkillsTextRequest
	if !decode(w, r, s, &req) {
		return
	}

	sess.Editor.SetSkillsText(req.Text)
	s.snapshotResponse(w, sess)
}
