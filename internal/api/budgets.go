package api

import (
	"net/http"

	"github.com/qaspilab/qaspilab/internal/config"
	"github.com/qaspilab/qaspilab/internal/model"
	"github.com/samber/lo"
)

// Budgets handles GET /api/budgets.
//
//	@Summary		List budget options
//	@Description	Returns the budget select of a form surface. Without a surface the first one is used.
//	@Tags			ideas
//	@Produce		json
//	@Param			surface	query		string	false	"Form surface (cta, modal)"
//	@Success		200		{object}	BudgetsResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/api/budgets [get]
func (h *Handler) Budgets(w http.ResponseWriter, r *http.Request) {
	surface, ok := h.site.Surface(r.URL.Query().Get("surface"))
	if !ok {
		h.writeError(w, http.StatusNotFound, "surface not found")
		return
	}

	h.writeJSON(w, http.StatusOK, budgetsResponse(surface))
}

func budgetsResponse(surface config.Surface) BudgetsResponse {
	placeholder, _ := lo.Find(surface.Budgets, func(b config.BudgetEntry) bool { return b.Value == "" })

	return BudgetsResponse{
		Surface:     surface.Name,
		Placeholder: placeholder.Label,
		Options: lo.Map(surface.BudgetOptions(), func(o model.BudgetOption, _ int) BudgetOptionResponse {
			resp := BudgetOptionResponse{Value: o.Value, Label: o.Label}
			if o.Min.Valid {
				resp.Min = lo.ToPtr(o.Min.Decimal.String())
			}
			if o.Max.Valid {
				resp.Max = lo.ToPtr(o.Max.Decimal.String())
			}
			return resp
		}),
	}
}
