// Package idea holds the idea form state machine shared by every UI surface.
package idea

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/qaspilab/qaspilab/internal/config"
	"github.com/qaspilab/qaspilab/internal/model"
	"github.com/samber/lo"
)

// DefaultFailureMessage is shown when the endpoint cannot be reached or answers garbage.
const DefaultFailureMessage = "Произошла ошибка при отправке. Пожалуйста, попробуйте еще раз."

// Endpoint delivers a submission. A returned error means the answer never
// arrived in a usable shape (network, timeout, malformed body).
type Endpoint interface {
	Send(ctx context.Context, req model.SubmissionRequest) (*model.SubmissionResponse, error)
}

// Option configures a Controller.
type Option func(*Controller)

// WithResetDelay sets how long Succeeded lasts before the automatic return to Idle.
func WithResetDelay(d time.Duration) Option {
	return func(c *Controller) {
		c.resetDelay = d
	}
}

// WithTimeout bounds a single Send call.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		c.timeout = d
	}
}

// WithFailureMessage sets the text used for transport failures.
func WithFailureMessage(msg string) Option {
	return func(c *Controller) {
		c.failureMessage = msg
	}
}

// WithBudgets restricts the budget field to the given tokens. Empty is always allowed.
func WithBudgets(values []string) Option {
	return func(c *Controller) {
		c.budgets = values
	}
}

// WithObserver registers a callback run after every status change,
// including the timer-driven return to Idle. It runs without the controller
// lock held and may call back into the controller.
func WithObserver(fn func(Status)) Option {
	return func(c *Controller) {
		c.observer = fn
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// Controller owns one form draft and at most one submission in flight.
// Each UI surface creates its own Controller. Methods are safe to call
// from multiple goroutines.
type Controller struct {
	endpoint       Endpoint
	resetDelay     time.Duration
	timeout        time.Duration
	failureMessage string
	budgets        []string
	observer       func(Status)
	logger         *slog.Logger

	mu     sync.Mutex
	fields model.FormFields
	status Status

	// generation changes on Reset; a Send that started under an older
	// generation must not touch state when it returns.
	generation uint64
	cancelSend context.CancelFunc

	resetTimer *time.Timer
	timerSeq   uint64
}

// NewController creates a controller with an empty draft in Idle.
func NewController(endpoint Endpoint, opts ...Option) (*Controller, error) {
	if endpoint == nil {
		return nil, errors.New("submission endpoint is required")
	}

	c := &Controller{
		endpoint:       endpoint,
		resetDelay:     config.DefaultResetDelay,
		timeout:        config.DefaultSubmitTimeout,
		failureMessage: DefaultFailureMessage,
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Fields returns a snapshot of the draft.
func (c *Controller) Fields() model.FormFields {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// Status returns the current status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// UpdateField overwrites one draft field. A Failed status goes back to Idle
// so the error banner disappears while the visitor corrects the draft.
// A pending automatic reset is cancelled. Unknown fields are ignored.
func (c *Controller) UpdateField(field model.Field, value string) {
	c.mu.Lock()
	c.fields.Set(field, value)
	c.stopResetTimerLocked()

	changed := false
	if c.status.State == StateFailed {
		c.status = Status{State: StateIdle}
		changed = true
	}
	st := c.status
	c.mu.Unlock()

	if changed {
		c.notify(st)
	}
}

// Validate reports why the current draft cannot be submitted, or nil.
func (c *Controller) Validate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validateLocked()
}

func (c *Controller) validateLocked() error {
	invalid := c.fields.Blank()
	if c.fields.Budget != "" && c.budgets != nil && !lo.Contains(c.budgets, c.fields.Budget) {
		invalid = append(invalid, model.FieldBudget)
	}
	if len(invalid) > 0 {
		return &ValidationError{Fields: invalid}
	}
	return nil
}

// Submit sends the draft and blocks until the endpoint answers, the timeout
// elapses or ctx is done. It always resolves to a Status:
//   - while another submission is in flight it returns InFlight without sending;
//   - an invalid draft is not sent and the status is left unchanged;
//   - a transport failure yields Failed with the generic retry message;
//   - success:false yields Failed with the endpoint message, draft kept;
//   - success:true yields Succeeded, clears the draft and schedules
//     the automatic return to Idle.
func (c *Controller) Submit(ctx context.Context) Status {
	c.mu.Lock()
	if c.status.State == StateInFlight {
		st := c.status
		c.mu.Unlock()
		c.logger.Debug("submission already in flight")
		return st
	}
	if err := c.validateLocked(); err != nil {
		st := c.status
		c.mu.Unlock()
		c.logger.Debug("submission refused", "error", err)
		return st
	}

	c.stopResetTimerLocked()
	req := c.fields.Request()
	gen := c.generation
	sendCtx, cancel := context.WithTimeout(ctx, c.timeout)
	c.cancelSend = cancel
	c.status = Status{State: StateInFlight}
	c.mu.Unlock()

	c.notify(Status{State: StateInFlight})

	resp, err := c.endpoint.Send(sendCtx, req)
	cancel()

	c.mu.Lock()
	if gen != c.generation {
		// Reset ran while the request was out; its result is stale.
		st := c.status
		c.mu.Unlock()
		c.logger.Debug("discarding submission result after reset")
		return st
	}
	c.cancelSend = nil

	next := c.resolve(resp, err)
	c.status = next
	if next.State == StateSucceeded {
		c.fields = model.FormFields{}
		c.scheduleResetLocked()
	}
	c.mu.Unlock()

	c.notify(next)
	return next
}

func (c *Controller) resolve(resp *model.SubmissionResponse, err error) Status {
	if err != nil {
		c.logger.Warn("idea submission failed", "error", err)
		return Status{State: StateFailed, Message: c.failureMessage}
	}
	if resp == nil {
		c.logger.Warn("idea submission returned no response")
		return Status{State: StateFailed, Message: c.failureMessage}
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = c.failureMessage
		}
		return Status{State: StateFailed, Message: msg}
	}
	return Status{State: StateSucceeded, Message: resp.Message, ThankYou: resp.ThankYou}
}

// Reset clears the draft, returns to Idle and cancels the automatic reset.
// A submission in flight is cancelled and its result ignored.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.stopResetTimerLocked()
	if c.cancelSend != nil {
		c.cancelSend()
		c.cancelSend = nil
	}
	c.generation++
	c.fields = model.FormFields{}

	changed := c.status.State != StateIdle
	c.status = Status{State: StateIdle}
	c.mu.Unlock()

	if changed {
		c.notify(Status{State: StateIdle})
	}
}

// scheduleResetLocked arms the Succeeded → Idle timer. Caller holds mu.
func (c *Controller) scheduleResetLocked() {
	c.timerSeq++
	seq := c.timerSeq
	c.resetTimer = time.AfterFunc(c.resetDelay, func() {
		c.autoReset(seq)
	})
}

// stopResetTimerLocked disarms the timer. Bumping timerSeq also defeats a
// callback that already fired and is waiting for mu. Caller holds mu.
func (c *Controller) stopResetTimerLocked() {
	if c.resetTimer != nil {
		c.resetTimer.Stop()
		c.resetTimer = nil
	}
	c.timerSeq++
}

func (c *Controller) autoReset(seq uint64) {
	c.mu.Lock()
	if seq != c.timerSeq || c.status.State != StateSucceeded {
		c.mu.Unlock()
		return
	}
	c.resetTimer = nil
	c.status = Status{State: StateIdle}
	c.mu.Unlock()

	c.notify(Status{State: StateIdle})
}

func (c *Controller) notify(st Status) {
	if c.observer != nil {
		c.observer(st)
	}
}
