package server

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/resume-studio/internal/ai"
	"github.com/jonathan/resume-studio/internal/images"
	"github.com/jonathan/resume-studio/internal/types"
)

// imageField validates the {field} path value.
func imageField(w http.ResponseWriter, r *http.Request, s *Server) (string, bool) {
	field := r.PathValue("field")
	if field != "avatar" && field != "banner" {
		s.errorResponse(w, http.StatusBadRequest, "Unknown image field")
		return "", false
	}
	return field, true
}

// handleUploadImage accepts a multipart image upload for the avatar or
// banner and stores it as a data URL.
func (s *Server) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	field, ok := imageField(w, r, s)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(images.MaxBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing image file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, images.MaxBytes+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read image: "+err.Error())
		return
	}
	if len(data) > images.MaxBytes {
		s.errorResponse(w, HTTPStatus(images.ErrTooLarge), images.ErrTooLarge.Error())
		return
	}

	dataURL, err := images.DataURL(data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if field == "avatar" {
		sess.Editor.SetAvatar(dataURL)
	} else {
		sess.Editor.SetBanner(dataURL)
	}
	s.snapshotResponse(w, sess)
}

// handleAIImage edits or generates the avatar or banner from a prompt. The
// current image, when present, seeds the edit.
func (s *Server) handleAIImage(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	field, ok := imageField(w, r, s)
	if !ok {
		return
	}

	if s.imager == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Image generation is not configured")
		return
	}
	var req types.ImageEditRequest
	if !decode(w, r, s, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	// Only well-formed requests spend quota.
	if !s.aiLimiter.allow(clientID(r)) {
		s.errorResponse(w, http.StatusTooManyRequests, "Too many generation requests")
		return
	}

	if !sess.TryAI() {
		s.errorResponse(w, http.StatusConflict, "A generation request is already running")
		return
	}
	defer sess.EndAI()

	source := s.sourceImage(r.Context(), sess, field)
	data, _, err := s.imager.EditImage(r.Context(), source, req.Prompt)
	if err != nil {
		log.Printf("[AI] image edit failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), aiImageFailedMessage)
		return
	}

	dataURL, err := images.DataURL(data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if field == "avatar" {
		sess.Editor.SetAvatar(dataURL)
	} else {
		sess.Editor.SetBanner(dataURL)
	}
	s.snapshotResponse(w, sess)
}

// sourceImage resolves the current image of the field into bytes. A data
// URL is decoded in place; a remote reference is refetched. Failures fall
// back to a text-only generation rather than aborting.
func (s *Server) sourceImage(ctx context.Context, sess *Session, field string) *ai.SourceImage {
	snap := sess.Editor.Snapshot()
	ref := snap.Data.PersonalInfo.Avatar
	if field == "banner" {
		ref = snap.Data.PersonalInfo.Banner
	}
	if ref == "" {
		return nil
	}

	if strings.HasPrefix(ref, "data:") {
		mime, data, err := images.ParseDataURL(ref)
		if err != nil {
			log.Printf("[AI] unreadable source image, generating without it: %v", err)
			return nil
		}
		return &ai.SourceImage{MIMEType: mime, Data: data}
	}

	mime, data, err := images.Fetch(ctx, ref)
	if err != nil {
		log.Printf("[AI] failed to fetch source image, generating without it: %v", err)
		return nil
	}
	return &ai.SourceImage{MIMEType: mime, Data: data}
}
