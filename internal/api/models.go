package api

// ErrorResponse is returned for requests that never reach the submission pipeline.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// BudgetOptionResponse is one selectable budget of a surface.
type BudgetOptionResponse struct {
	Value string  `json:"value" example:"50000-200000"`
	Label string  `json:"label" example:"50,000 - 200,000 ₸"`
	Min   *string `json:"min,omitempty" example:"50000"`
	Max   *string `json:"max,omitempty" example:"200000"`
}

// BudgetsResponse lists the budget options of a surface.
// Placeholder is the label shown before a budget is chosen.
type BudgetsResponse struct {
	Surface     string                 `json:"surface" example:"cta"`
	Placeholder string                 `json:"placeholder,omitempty" example:"Choose a budget"`
	Options     []BudgetOptionResponse `json:"options"`
}

// GalleryImageResponse is one image of a gallery.
type GalleryImageResponse struct {
	Src   string `json:"src" example:"/images/portfolio/app-1.webp"`
	Alt   string `json:"alt" example:"Booking app home screen"`
	Title string `json:"title,omitempty" example:"Home"`
}

// GalleryResponse is an ordered image set.
type GalleryResponse struct {
	Name   string                 `json:"name" example:"barbershop"`
	Images []GalleryImageResponse `json:"images"`
}

// HealthResponse reports the state of the server and its dependencies.
type HealthResponse struct {
	Status string            `json:"status" example:"ok"`
	Checks map[string]string `json:"checks,omitempty"`
}
