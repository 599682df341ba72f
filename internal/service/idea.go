package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"html"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/qaspilab/qaspilab/internal/config"
	"github.com/qaspilab/qaspilab/internal/model"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// SubmitMeta carries request details that are not part of the form.
type SubmitMeta struct {
	ClientIP string
	Surface  string
}

// IdeaServiceOption is a functional option for configuring an IdeaService.
type IdeaServiceOption func(*IdeaService)

// WithStore persists accepted ideas.
func WithStore(store IdeaStore) IdeaServiceOption {
	return func(s *IdeaService) {
		s.store = store
	}
}

// WithNotifiers forwards accepted ideas to the given notifiers.
func WithNotifiers(notifiers ...Notifier) IdeaServiceOption {
	return func(s *IdeaService) {
		s.notifiers = append(s.notifiers, notifiers...)
	}
}

// WithDuplicateGuard rejects repeated submissions of the same idea.
func WithDuplicateGuard(guard DuplicateGuard) IdeaServiceOption {
	return func(s *IdeaService) {
		s.guard = guard
	}
}

// WithNotifyTimeout bounds each notifier call.
func WithNotifyTimeout(d time.Duration) IdeaServiceOption {
	return func(s *IdeaService) {
		s.notifyTimeout = d
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger *slog.Logger) IdeaServiceOption {
	return func(s *IdeaService) {
		s.logger = logger
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) IdeaServiceOption {
	return func(s *IdeaService) {
		s.now = now
	}
}

// IdeaService validates, stores and delivers idea submissions.
type IdeaService struct {
	messages      config.Messages
	budgets       map[string]model.BudgetOption
	sanitizer     *bluemonday.Policy
	store         IdeaStore
	guard         DuplicateGuard
	notifiers     []Notifier
	notifyTimeout time.Duration
	logger        *slog.Logger
	now           func() time.Time
}

// NewIdeaService creates a service for the given site content.
func NewIdeaService(site *config.Site, opts ...IdeaServiceOption) (*IdeaService, error) {
	if site == nil {
		return nil, errors.New("site config is required")
	}

	s := &IdeaService{
		messages:      site.Messages,
		budgets:       site.BudgetCatalog(),
		sanitizer:     bluemonday.StrictPolicy(),
		notifyTimeout: config.DefaultNotifyTimeout,
		logger:        slog.Default(),
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Submit accepts one idea. Visitor-facing failures are returned as
// *RejectionError; the idea is accepted once it is stored or at least one
// notifier delivered it.
func (s *IdeaService) Submit(ctx context.Context, req model.SubmissionRequest, meta SubmitMeta) (*model.SubmissionResponse, error) {
	req = s.clean(req)

	if len(model.FormFields{Name: req.Name, Contact: req.Contact, Description: req.Description}.Blank()) > 0 {
		return nil, badRequest(s.messages.RequiredFields)
	}
	if !IsValidContact(req.Contact) {
		return nil, badRequest(s.messages.InvalidContact)
	}

	budget := s.budgetOption(req.Budget)

	key := duplicateKey(req.Contact, req.Description)
	if s.guard != nil {
		claimed, err := s.guard.Claim(ctx, key)
		if err != nil {
			// An unavailable guard never blocks a lead.
			s.logger.Warn("duplicate guard unavailable", "error", err)
		} else if !claimed {
			return nil, &RejectionError{Status: http.StatusConflict, Message: s.messages.Duplicate}
		}
	}

	// Delivery must not be cut short by the visitor closing the tab.
	ctx = context.WithoutCancel(ctx)

	idea := &model.Idea{
		ID:               uuid.New(),
		Name:             req.Name,
		Contact:          req.Contact,
		ContactFormatted: FormatContact(req.Contact),
		Description:      req.Description,
		Budget:           req.Budget,
		BudgetLabel:      budget.Label,
		BudgetMin:        budget.Min,
		BudgetMax:        budget.Max,
		ClientIP:         meta.ClientIP,
		Surface:          meta.Surface,
		Status:           model.DeliveryNew,
		CreatedAt:        s.now(),
	}

	stored := s.persist(ctx, idea)
	delivered := s.deliver(ctx, idea)

	if !stored && !delivered {
		s.releaseKey(ctx, key)
		return nil, &RejectionError{
			Status:  http.StatusInternalServerError,
			Message: s.messages.DeliveryFailed,
			Err:     errors.New("idea was neither stored nor delivered"),
		}
	}

	if stored && len(s.notifiers) > 0 {
		status := model.DeliveryNotifyFailed
		if delivered {
			status = model.DeliveryNotified
		}
		if err := s.store.UpdateStatus(ctx, idea.ID, status); err != nil {
			s.logger.Error("failed to update idea status", "idea_id", idea.ID, "status", status, "error", err)
		} else {
			idea.Status = status
		}
	}

	s.logger.Info("idea submitted",
		"idea_id", idea.ID,
		"surface", idea.Surface,
		"budget", idea.Budget,
		"stored", stored,
		"delivered", delivered,
	)

	return &model.SubmissionResponse{
		Success:  true,
		Message:  s.messages.Success,
		ThankYou: s.messages.ThankYou,
	}, nil
}

// budgetOption resolves a token against the catalog. An unknown token is
// kept verbatim as its own label with no bounds.
func (s *IdeaService) budgetOption(token string) model.BudgetOption {
	if token == "" {
		return model.BudgetOption{Label: s.messages.BudgetUnspecified}
	}
	if opt, ok := s.budgets[token]; ok {
		return opt
	}
	s.logger.Debug("budget token not in catalog", "budget", token)
	return model.BudgetOption{Value: token, Label: token}
}

// clean trims every field and strips markup from free text.
func (s *IdeaService) clean(req model.SubmissionRequest) model.SubmissionRequest {
	req = req.Trimmed()
	req.Name = s.stripMarkup(req.Name)
	req.Contact = s.stripMarkup(req.Contact)
	req.Description = s.stripMarkup(req.Description)
	return req
}

// stripMarkup removes HTML tags and decodes the entities the policy escapes,
// leaving plain text for chat messages.
func (s *IdeaService) stripMarkup(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(v)))
}

func (s *IdeaService) persist(ctx context.Context, idea *model.Idea) bool {
	if s.store == nil {
		return false
	}
	if err := s.store.Create(ctx, idea); err != nil {
		s.logger.Error("failed to store idea", "idea_id", idea.ID, "error", err)
		return false
	}
	return true
}

// deliver runs all notifiers concurrently and reports whether any succeeded.
func (s *IdeaService) deliver(ctx context.Context, idea *model.Idea) bool {
	if len(s.notifiers) == 0 {
		return false
	}

	results := make([]error, len(s.notifiers))
	var g errgroup.Group
	for i, n := range s.notifiers {
		g.Go(func() error {
			nctx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
			defer cancel()
			results[i] = n.Notify(nctx, idea)
			return nil
		})
	}
	_ = g.Wait()

	for i, err := range results {
		if err != nil {
			s.logger.Error("failed to deliver idea",
				"idea_id", idea.ID,
				"notifier", s.notifiers[i].Name(),
				"error", err,
			)
		}
	}

	return lo.SomeBy(results, func(err error) bool { return err == nil })
}

func (s *IdeaService) releaseKey(ctx context.Context, key string) {
	if s.guard == nil {
		return
	}
	if err := s.guard.Release(ctx, key); err != nil {
		s.logger.Warn("failed to release duplicate key", "error", err)
	}
}

// duplicateKey identifies an idea by who sent it and what it says,
// ignoring case and whitespace differences.
func duplicateKey(contact, description string) string {
	norm := func(v string) string {
		return strings.ToLower(strings.Join(strings.Fields(v), " "))
	}
	sum := sha256.Sum256([]byte(norm(contact) + "\x00" + norm(description)))
	return hex.EncodeToString(sum[:])
}
