package server

import (
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/jonathan/resume-studio/internal/render"
	"github.com/jonathan/resume-studio/internal/types"
)

// templateFrom reads the ?template= query value. Unknown ids are accepted
// here; the renderer falls back to classic.
func templateFrom(r *http.Request) types.TemplateID {
	return types.TemplateID(r.URL.Query().Get("template"))
}

// handleListTemplates returns the template gallery catalog.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"templates": types.Templates,
		"count":     len(types.Templates),
	})
}

// handlePreview returns the rendered HTML document for a session.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	snap := sess.Editor.Snapshot()
	html, err := render.Render(snap.Data, templateFrom(r))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Render failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
}

// handleExportPDF prints the résumé to PDF. Unedited sessions are refused;
// a browser failure falls back to the HTML document with a marker header so
// the client can invoke the platform print flow instead.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	if !sess.Editor.Edited() {
		s.errorResponse(w, http.StatusConflict, exportGateMessage)
		return
	}

	if !sess.TryExport() {
		s.errorResponse(w, http.StatusConflict, "An export is already running")
		return
	}
	defer sess.EndExport()

	snap := sess.Editor.Snapshot()
	html, err := render.Render(snap.Data, templateFrom(r))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Render failed: "+err.Error())
		return
	}

	filename := snap.Data.PersonalInfo.Name + "_简历.pdf"

	if s.exporter != nil {
		pdf, err := s.exporter.ExportPDF(r.Context(), html)
		if err == nil {
			w.Header().Set("Content-Type", "application/pdf")
			w.Header().Set("Content-Disposition",
				fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(filename)))
			w.Write(pdf)
			return
		}
		log.Printf("[BROWSER] PDF export failed, falling back to HTML: %v", err)
	} else {
		log.Printf("[BROWSER] no PDF exporter configured, falling back to HTML")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Export-Fallback", "print")
	fmt.Fprint(w, html)
}
