package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryStatus tracks whether an idea reached the studio's chats.
type DeliveryStatus string

const (
	DeliveryNew          DeliveryStatus = "new"
	DeliveryNotified     DeliveryStatus = "notified"
	DeliveryNotifyFailed DeliveryStatus = "notify_failed"
)

// Idea is an accepted submission.
type Idea struct {
	ID               uuid.UUID
	Name             string
	Contact          string
	ContactFormatted string
	Description      string
	Budget           string
	BudgetLabel      string
	BudgetMin        decimal.NullDecimal
	BudgetMax        decimal.NullDecimal
	ClientIP         string
	Surface          string
	Status           DeliveryStatus
	CreatedAt        time.Time
}
