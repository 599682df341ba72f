package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/qaspilab/qaspilab/internal/config"
	"github.com/qaspilab/qaspilab/internal/middleware"
	"github.com/qaspilab/qaspilab/internal/model"
	"github.com/qaspilab/qaspilab/internal/service"
)

const maxSubmissionBytes = 64 << 10

// SubmitIdea handles POST /api/submit-idea.
//
//	@Summary		Submit an idea
//	@Description	Validates an idea, stores it and forwards it to the studio's chats.
//	@Description	Every answer carries a SubmissionResponse body, failures included.
//	@Tags			ideas
//	@Accept			json
//	@Produce		json
//	@Param			X-Form-Surface	header		string					false	"Form surface (cta, modal)"
//	@Param			request			body		model.SubmissionRequest	true	"Idea"
//	@Success		200				{object}	model.SubmissionResponse
//	@Failure		400				{object}	model.SubmissionResponse
//	@Failure		409				{object}	model.SubmissionResponse
//	@Failure		413				{object}	model.SubmissionResponse
//	@Failure		500				{object}	model.SubmissionResponse
//	@Router			/api/submit-idea [post]
func (h *Handler) SubmitIdea(w http.ResponseWriter, r *http.Request) {
	var req model.SubmissionRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSubmissionBytes))
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeRejection(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		if errors.Is(err, io.EOF) {
			h.writeRejection(w, http.StatusBadRequest, h.site.Messages.RequiredFields)
			return
		}
		h.writeRejection(w, http.StatusBadRequest, "invalid request body")
		return
	}

	meta := service.SubmitMeta{
		ClientIP: middleware.ExtractIP(r),
		Surface:  surfaceOf(r),
	}

	resp, err := h.ideas.Submit(r.Context(), req, meta)
	if err != nil {
		if rej, ok := service.AsRejection(err); ok {
			if rej.Status >= http.StatusInternalServerError {
				slog.Error("api: idea submission failed", "error", err)
			}
			h.writeRejection(w, rej.Status, rej.Message)
			return
		}
		slog.Error("api: idea submission failed", "error", err)
		h.writeRejection(w, http.StatusInternalServerError, h.site.Messages.DeliveryFailed)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeRejection(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, model.SubmissionResponse{Success: false, Message: msg})
}

// surfaceOf reads the surface from the header, then the query string.
// Unknown names are kept out of storage.
func surfaceOf(r *http.Request) string {
	s := strings.TrimSpace(r.Header.Get(config.SurfaceHeader))
	if s == "" {
		s = strings.TrimSpace(r.URL.Query().Get("surface"))
	}
	if len(s) > 32 {
		return ""
	}
	return strings.ToLower(s)
}
