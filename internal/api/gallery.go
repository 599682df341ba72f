package api

import (
	"net/http"

	"github.com/qaspilab/qaspilab/internal/config"
	"github.com/samber/lo"
)

// Gallery handles GET /api/galleries/{name}.
//
//	@Summary		Get a gallery
//	@Description	Returns the ordered images of a named gallery.
//	@Tags			galleries
//	@Produce		json
//	@Param			name	path		string	true	"Gallery name"
//	@Success		200		{object}	GalleryResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/api/galleries/{name} [get]
func (h *Handler) Gallery(w http.ResponseWriter, r *http.Request) {
	g, ok := h.site.Gallery(r.PathValue("name"))
	if !ok {
		h.writeError(w, http.StatusNotFound, "gallery not found")
		return
	}

	h.writeJSON(w, http.StatusOK, GalleryResponse{
		Name: g.Name,
		Images: lo.Map(g.Images, func(img config.GalleryImage, _ int) GalleryImageResponse {
			return GalleryImageResponse{Src: img.Src, Alt: img.Alt, Title: img.Title}
		}),
	})
}
