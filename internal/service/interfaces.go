package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/qaspilab/qaspilab/internal/model"
)

// IdeaStore persists accepted ideas.
type IdeaStore interface {
	Create(ctx context.Context, idea *model.Idea) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.DeliveryStatus) error
}

// DuplicateGuard remembers recently accepted ideas.
// Claim returns false if key was already claimed and has not expired.
type DuplicateGuard interface {
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// Notifier forwards an accepted idea to the studio.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, idea *model.Idea) error
}
