package config

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/qaspilab/qaspilab/internal/model"
	"github.com/samber/lo"
)

// Site holds site content that changes without a rebuild: surfaces with
// their budget options, user-facing messages and gallery sets.
type Site struct {
	TimeZone  string    `toml:"time_zone"`
	Messages  Messages  `toml:"messages"`
	Surfaces  []Surface `toml:"surface"`
	Galleries []Gallery `toml:"gallery"`
}

// Messages are the texts returned to visitors.
type Messages struct {
	Success           string `toml:"success"`
	ThankYou          string `toml:"thank_you"`
	RequiredFields    string `toml:"required_fields"`
	InvalidContact    string `toml:"invalid_contact"`
	Duplicate         string `toml:"duplicate"`
	DeliveryFailed    string `toml:"delivery_failed"`
	TransportFailure  string `toml:"transport_failure"`
	BudgetUnspecified string `toml:"budget_unspecified"`
}

// Surface is a UI place that hosts the idea form (inline CTA, modal).
type Surface struct {
	Name    string        `toml:"name"`
	Budgets []BudgetEntry `toml:"budget"`
}

// BudgetEntry is one option of a budget select. An empty value is the placeholder.
type BudgetEntry struct {
	Value string `toml:"value"`
	Label string `toml:"label"`
}

// Gallery is a named ordered set of images shown in the gallery modal.
type Gallery struct {
	Name   string         `toml:"name"`
	Images []GalleryImage `toml:"image"`
}

// GalleryImage describes one gallery image.
type GalleryImage struct {
	Src   string `toml:"src"`
	Alt   string `toml:"alt"`
	Title string `toml:"title"`
}

// DefaultSite returns the content the site ships with.
func DefaultSite() *Site {
	return &Site{
		TimeZone: DefaultTimeZone,
		Messages: Messages{
			Success:           "Ваша идея успешно отправлена! Мы свяжемся с вами в ближайшее время для обсуждения проекта.",
			ThankYou:          "Спасибо за доверие к нашей лаборатории! Ваша идея уже в надежных руках наших экспертов.",
			RequiredFields:    "Имя, контакт и описание идеи обязательны для заполнения",
			InvalidContact:    "Введите корректный номер телефона или email",
			Duplicate:         "Мы уже получили эту идею и скоро свяжемся с вами.",
			DeliveryFailed:    "Произошла ошибка при отправке идеи. Пожалуйста, попробуйте еще раз.",
			TransportFailure:  "Произошла ошибка при отправке. Пожалуйста, попробуйте еще раз.",
			BudgetUnspecified: "Не указан",
		},
		Surfaces: []Surface{
			{
				Name: "cta",
				Budgets: []BudgetEntry{
					{Value: "", Label: "Choose a budget"},
					{Value: "0-50000", Label: "Up to 50,000 ₸"},
					{Value: "50000-200000", Label: "50,000 - 200,000 ₸"},
					{Value: "200000-500000", Label: "200,000 - 500,000 ₸"},
					{Value: "500000-1000000", Label: "500,000 - 1,000,000 ₸"},
					{Value: "1000000+", Label: "Over 1,000,000 ₸"},
					{Value: "discuss", Label: "Discussed individually"},
				},
			},
			{
				Name: "modal",
				Budgets: []BudgetEntry{
					{Value: "", Label: "Выберите бюджет"},
					{Value: "до-100к", Label: "До 100,000 тенге"},
					{Value: "100к-500к", Label: "100,000 - 500,000 тенге"},
					{Value: "500к-1м", Label: "500,000 - 1,000,000 тенге"},
					{Value: "1м-5м", Label: "1,000,000 - 5,000,000 тенге"},
					{Value: "5м+", Label: "Свыше 5,000,000 тенге"},
					{Value: "обсудим", Label: "Обсудим индивидуально"},
				},
			},
		},
	}
}

// LoadSite reads site content from a TOML file on top of the defaults.
// An empty path returns the defaults.
func LoadSite(path string) (*Site, error) {
	site := DefaultSite()
	if path == "" {
		return site, nil
	}

	// Tables replace the defaults wholesale; messages merge key by key.
	file := Site{Messages: site.Messages}
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("decode site config %s: %w", path, err)
	}
	if md.IsDefined("time_zone") {
		site.TimeZone = file.TimeZone
	}
	site.Messages = file.Messages
	if md.IsDefined("surface") {
		site.Surfaces = file.Surfaces
	}
	if md.IsDefined("gallery") {
		site.Galleries = file.Galleries
	}

	if err := site.Validate(); err != nil {
		return nil, fmt.Errorf("validate site config %s: %w", path, err)
	}
	return site, nil
}

// Validate checks names are present and unique and the time zone resolves.
func (s *Site) Validate() error {
	if len(s.Surfaces) == 0 {
		return errors.New("at least one surface is required")
	}

	surfaceNames := lo.Map(s.Surfaces, func(sf Surface, _ int) string { return sf.Name })
	if lo.Contains(surfaceNames, "") {
		return errors.New("surface name is required")
	}
	if dup := lo.FindDuplicates(surfaceNames); len(dup) > 0 {
		return fmt.Errorf("duplicate surface %q", dup[0])
	}

	for _, sf := range s.Surfaces {
		values := lo.Map(sf.Budgets, func(b BudgetEntry, _ int) string { return b.Value })
		if dup := lo.FindDuplicates(values); len(dup) > 0 {
			return fmt.Errorf("surface %q: duplicate budget value %q", sf.Name, dup[0])
		}
	}

	galleryNames := lo.Map(s.Galleries, func(g Gallery, _ int) string { return g.Name })
	if lo.Contains(galleryNames, "") {
		return errors.New("gallery name is required")
	}
	if dup := lo.FindDuplicates(galleryNames); len(dup) > 0 {
		return fmt.Errorf("duplicate gallery %q", dup[0])
	}

	if _, err := time.LoadLocation(s.TimeZone); err != nil {
		return fmt.Errorf("time zone %q: %w", s.TimeZone, err)
	}
	return nil
}

// Surface returns the named surface. An empty name selects the first one.
func (s *Site) Surface(name string) (Surface, bool) {
	if name == "" && len(s.Surfaces) > 0 {
		return s.Surfaces[0], true
	}
	return lo.Find(s.Surfaces, func(sf Surface) bool { return sf.Name == name })
}

// Gallery returns the named gallery.
func (s *Site) Gallery(name string) (Gallery, bool) {
	return lo.Find(s.Galleries, func(g Gallery) bool { return g.Name == name })
}

// Location resolves TimeZone, falling back to UTC.
func (s *Site) Location() *time.Location {
	loc, err := time.LoadLocation(s.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// BudgetOptions returns the parsed options of a surface, placeholder excluded.
func (sf Surface) BudgetOptions() []model.BudgetOption {
	entries := lo.Filter(sf.Budgets, func(b BudgetEntry, _ int) bool { return b.Value != "" })
	return lo.Map(entries, func(b BudgetEntry, _ int) model.BudgetOption {
		return model.ParseBudgetOption(b.Value, b.Label)
	})
}

// BudgetValues returns the recognised tokens of a surface, placeholder excluded.
func (sf Surface) BudgetValues() []string {
	return lo.Map(sf.BudgetOptions(), func(o model.BudgetOption, _ int) string { return o.Value })
}

// BudgetCatalog indexes the budget options of every surface by token.
// When two surfaces share a token the first surface wins.
func (s *Site) BudgetCatalog() map[string]model.BudgetOption {
	catalog := make(map[string]model.BudgetOption)
	for _, sf := range s.Surfaces {
		for _, opt := range sf.BudgetOptions() {
			if _, ok := catalog[opt.Value]; !ok {
				catalog[opt.Value] = opt
			}
		}
	}
	return catalog
}
