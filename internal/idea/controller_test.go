package idea

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/qaspilab/qaspilab/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEndpoint records requests and answers with send.
type stubEndpoint struct {
	mu       sync.Mutex
	requests []model.SubmissionRequest
	send     func(ctx context.Context, req model.SubmissionRequest) (*model.SubmissionResponse, error)
}

func (s *stubEndpoint) Send(ctx context.Context, req model.SubmissionRequest) (*model.SubmissionResponse, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	return s.send(ctx, req)
}

func (s *stubEndpoint) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func respond(resp *model.SubmissionResponse, err error) *stubEndpoint {
	return &stubEndpoint{
		send: func(context.Context, model.SubmissionRequest) (*model.SubmissionResponse, error) {
			return resp, err
		},
	}
}

// statusRecorder collects observer callbacks.
type statusRecorder struct {
	mu   sync.Mutex
	seen []Status
}

func (r *statusRecorder) observe(st Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, st)
}

func (r *statusRecorder) states() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]State, 0, len(r.seen))
	for _, st := range r.seen {
		out = append(out, st.State)
	}
	return out
}

func (r *statusRecorder) count(state State) int {
	n := 0
	for _, s := range r.states() {
		if s == state {
			n++
		}
	}
	return n
}

func fill(c *Controller) {
	c.UpdateField(model.FieldName, "Alice")
	c.UpdateField(model.FieldContact, "alice@x.com")
	c.UpdateField(model.FieldDescription, "Build an app")
}

func newController(t *testing.T, ep Endpoint, opts ...Option) *Controller {
	t.Helper()
	c, err := NewController(ep, opts...)
	require.NoError(t, err)
	t.Cleanup(c.Reset)
	return c
}

func TestNewController(t *testing.T) {
	t.Run("nil endpoint returns error", func(t *testing.T) {
		c, err := NewController(nil)
		assert.Nil(t, c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "endpoint is required")
	})

	t.Run("starts idle with an empty draft", func(t *testing.T) {
		c := newController(t, respond(nil, nil))
		assert.Equal(t, Status{State: StateIdle}, c.Status())
		assert.True(t, c.Fields().IsEmpty())
	})
}

func TestSubmit_SuccessScenario(t *testing.T) {
	ep := respond(&model.SubmissionResponse{Success: true, Message: "Thanks!", ThankYou: "We'll call you."}, nil)
	rec := &statusRecorder{}
	c := newController(t, ep, WithObserver(rec.observe), WithResetDelay(time.Hour))

	fill(c)
	st := c.Submit(context.Background())

	assert.Equal(t, Status{State: StateSucceeded, Message: "Thanks!", ThankYou: "We'll call you."}, st)
	assert.Equal(t, st, c.Status())
	assert.Equal(t, model.FormFields{}, c.Fields())
	require.Equal(t, 1, ep.calls())
	assert.Equal(t, model.SubmissionRequest{Name: "Alice", Contact: "alice@x.com", Description: "Build an app"}, ep.requests[0])
	assert.Equal(t, []State{StateInFlight, StateSucceeded}, rec.states())
}

func TestSubmit_ValidationGate(t *testing.T) {
	tests := []struct {
		name    string
		fields  model.FormFields
		invalid []model.Field
	}{
		{"all empty", model.FormFields{}, []model.Field{model.FieldName, model.FieldContact, model.FieldDescription}},
		{"empty name", model.FormFields{Contact: "c", Description: "d"}, []model.Field{model.FieldName}},
		{"whitespace name", model.FormFields{Name: "   ", Contact: "c", Description: "d"}, []model.Field{model.FieldName}},
		{"empty contact", model.FormFields{Name: "n", Description: "d"}, []model.Field{model.FieldContact}},
		{"tab contact", model.FormFields{Name: "n", Contact: "\t", Description: "d"}, []model.Field{model.FieldContact}},
		{"empty description", model.FormFields{Name: "n", Contact: "c"}, []model.Field{model.FieldDescription}},
		{"newline description", model.FormFields{Name: "n", Contact: "c", Description: "\n \n"}, []model.Field{model.FieldDescription}},
		{"only budget", model.FormFields{Budget: "discuss"}, []model.Field{model.FieldName, model.FieldContact, model.FieldDescription}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep := respond(&model.SubmissionResponse{Success: true, Message: "ok"}, nil)
			c := newController(t, ep)

			c.UpdateField(model.FieldName, tt.fields.Name)
			c.UpdateField(model.FieldContact, tt.fields.Contact)
			c.UpdateField(model.FieldDescription, tt.fields.Description)
			c.UpdateField(model.FieldBudget, tt.fields.Budget)

			var verr *ValidationError
			require.ErrorAs(t, c.Validate(), &verr)
			assert.Equal(t, tt.invalid, verr.Fields)

			st := c.Submit(context.Background())
			assert.Equal(t, StateIdle, st.State)
			assert.Equal(t, 0, ep.calls())
			assert.Equal(t, tt.fields, c.Fields())
		})
	}
}

func TestSubmit_BudgetRestriction(t *testing.T) {
	ep := respond(&model.SubmissionResponse{Success: true, Message: "ok"}, nil)
	c := newController(t, ep, WithBudgets([]string{"0-50000", "discuss"}))

	fill(c)
	c.UpdateField(model.FieldBudget, "a lot")

	var verr *ValidationError
	require.ErrorAs(t, c.Validate(), &verr)
	assert.Equal(t, []model.Field{model.FieldBudget}, verr.Fields)
	assert.Equal(t, StateIdle, c.Submit(context.Background()).State)
	assert.Equal(t, 0, ep.calls())

	c.UpdateField(model.FieldBudget, "discuss")
	assert.NoError(t, c.Validate())
	assert.Equal(t, StateSucceeded, c.Submit(context.Background()).State)
	assert.Equal(t, 1, ep.calls())
}

func TestSubmit_RejectionPreservesDraft(t *testing.T) {
	ep := respond(&model.SubmissionResponse{Success: false, Message: "bad"}, nil)
	c := newController(t, ep)

	fill(c)
	c.UpdateField(model.FieldBudget, "discuss")
	before := c.Fields()

	st := c.Submit(context.Background())

	assert.Equal(t, Status{State: StateFailed, Message: "bad"}, st)
	assert.Equal(t, before, c.Fields())
}

func TestSubmit_RejectionWithoutMessage(t *testing.T) {
	c := newController(t, respond(&model.SubmissionResponse{Success: false}, nil))
	fill(c)

	st := c.Submit(context.Background())
	assert.Equal(t, Status{State: StateFailed, Message: DefaultFailureMessage}, st)
}

func TestSubmit_TransportFailure(t *testing.T) {
	t.Run("send error yields generic message", func(t *testing.T) {
		c := newController(t, respond(nil, errors.New("connection refused")))
		fill(c)
		before := c.Fields()

		st := c.Submit(context.Background())
		assert.Equal(t, Status{State: StateFailed, Message: DefaultFailureMessage}, st)
		assert.Equal(t, before, c.Fields())
	})

	t.Run("custom failure message", func(t *testing.T) {
		c := newController(t, respond(nil, errors.New("boom")), WithFailureMessage("try again"))
		fill(c)
		assert.Equal(t, "try again", c.Submit(context.Background()).Message)
	})

	t.Run("nil response without error", func(t *testing.T) {
		c := newController(t, respond(nil, nil))
		fill(c)
		assert.Equal(t, StateFailed, c.Submit(context.Background()).State)
	})

	t.Run("timeout", func(t *testing.T) {
		ep := &stubEndpoint{
			send: func(ctx context.Context, _ model.SubmissionRequest) (*model.SubmissionResponse, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
		}
		c := newController(t, ep, WithTimeout(20*time.Millisecond))
		fill(c)

		st := c.Submit(context.Background())
		assert.Equal(t, Status{State: StateFailed, Message: DefaultFailureMessage}, st)
	})
}

func TestUpdateField_ClearsFailure(t *testing.T) {
	fields := []model.Field{model.FieldName, model.FieldContact, model.FieldDescription, model.FieldBudget}

	for _, field := range fields {
		t.Run(string(field), func(t *testing.T) {
			rec := &statusRecorder{}
			c := newController(t, respond(&model.SubmissionResponse{Success: false, Message: "bad"}, nil), WithObserver(rec.observe))
			fill(c)
			require.Equal(t, StateFailed, c.Submit(context.Background()).State)

			c.UpdateField(field, "edited")

			assert.Equal(t, Status{State: StateIdle}, c.Status())
			assert.Equal(t, "edited", c.Fields().Get(field))
			assert.Equal(t, []State{StateInFlight, StateFailed, StateIdle}, rec.states())
		})
	}
}

func TestUpdateField_IdleDoesNotNotify(t *testing.T) {
	rec := &statusRecorder{}
	c := newController(t, respond(nil, nil), WithObserver(rec.observe))

	c.UpdateField(model.FieldName, "A")
	c.UpdateField(model.Field("unknown"), "x")

	assert.Empty(t, rec.states())
	assert.Equal(t, model.FormFields{Name: "A"}, c.Fields())
}

func TestSubmit_SingleFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	ep := &stubEndpoint{
		send: func(context.Context, model.SubmissionRequest) (*model.SubmissionResponse, error) {
			close(started)
			<-release
			return &model.SubmissionResponse{Success: true, Message: "ok"}, nil
		},
	}
	c := newController(t, ep, WithResetDelay(time.Hour))
	fill(c)

	done := make(chan Status, 1)
	go func() {
		done <- c.Submit(context.Background())
	}()
	<-started

	for i := 0; i < 5; i++ {
		assert.Equal(t, StateInFlight, c.Submit(context.Background()).State)
	}
	assert.Equal(t, StateInFlight, c.Status().State)

	close(release)
	st := <-done

	assert.Equal(t, StateSucceeded, st.State)
	assert.Equal(t, 1, ep.calls())
}

func TestAutoReset(t *testing.T) {
	t.Run("succeeded returns to idle after the delay", func(t *testing.T) {
		rec := &statusRecorder{}
		c := newController(t, respond(&model.SubmissionResponse{Success: true, Message: "ok"}, nil),
			WithResetDelay(20*time.Millisecond), WithObserver(rec.observe))
		fill(c)

		require.Equal(t, StateSucceeded, c.Submit(context.Background()).State)
		require.Eventually(t, func() bool {
			return rec.count(StateIdle) == 1
		}, time.Second, 5*time.Millisecond)
		assert.Equal(t, Status{State: StateIdle}, c.Status())
		assert.Equal(t, []State{StateInFlight, StateSucceeded, StateIdle}, rec.states())
	})

	t.Run("reset before the delay prevents a second idle transition", func(t *testing.T) {
		rec := &statusRecorder{}
		c := newController(t, respond(&model.SubmissionResponse{Success: true, Message: "ok"}, nil),
			WithResetDelay(50*time.Millisecond), WithObserver(rec.observe))
		fill(c)

		require.Equal(t, StateSucceeded, c.Submit(context.Background()).State)
		c.Reset()
		time.Sleep(150 * time.Millisecond)

		assert.Equal(t, 1, rec.count(StateIdle))
		assert.Equal(t, Status{State: StateIdle}, c.Status())
	})

	t.Run("editing after success cancels the timer", func(t *testing.T) {
		c := newController(t, respond(&model.SubmissionResponse{Success: true, Message: "ok"}, nil),
			WithResetDelay(30*time.Millisecond))
		fill(c)

		require.Equal(t, StateSucceeded, c.Submit(context.Background()).State)
		c.UpdateField(model.FieldName, "Bob")
		time.Sleep(100 * time.Millisecond)

		assert.Equal(t, StateSucceeded, c.Status().State)
		assert.Equal(t, model.FormFields{Name: "Bob"}, c.Fields())
	})
}

func TestReset(t *testing.T) {
	t.Run("clears draft and failure", func(t *testing.T) {
		c := newController(t, respond(&model.SubmissionResponse{Success: false, Message: "bad"}, nil))
		fill(c)
		require.Equal(t, StateFailed, c.Submit(context.Background()).State)

		c.Reset()

		assert.Equal(t, Status{State: StateIdle}, c.Status())
		assert.True(t, c.Fields().IsEmpty())
	})

	t.Run("cancels an in-flight submission and drops its result", func(t *testing.T) {
		started := make(chan struct{})
		ep := &stubEndpoint{
			send: func(ctx context.Context, _ model.SubmissionRequest) (*model.SubmissionResponse, error) {
				close(started)
				<-ctx.Done()
				return nil, ctx.Err()
			},
		}
		rec := &statusRecorder{}
		c := newController(t, ep, WithObserver(rec.observe))
		fill(c)

		done := make(chan Status, 1)
		go func() {
			done <- c.Submit(context.Background())
		}()
		<-started
		c.Reset()

		assert.Equal(t, Status{State: StateIdle}, <-done)
		assert.Equal(t, Status{State: StateIdle}, c.Status())
		assert.Equal(t, []State{StateInFlight, StateIdle}, rec.states())
	})
}

func TestSubmit_CyclesIndefinitely(t *testing.T) {
	ep := respond(&model.SubmissionResponse{Success: true, Message: "ok"}, nil)
	c := newController(t, ep, WithResetDelay(time.Hour))

	for i := 0; i < 3; i++ {
		fill(c)
		require.Equal(t, StateSucceeded, c.Submit(context.Background()).State)
	}
	assert.Equal(t, 3, ep.calls())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "in_flight", StateInFlight.String())
	assert.Equal(t, "succeeded", StateSucceeded.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "state(9)", State(9).String())
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: []model.Field{model.FieldName, model.FieldContact}}
	assert.Equal(t, "invalid fields: name, contact", err.Error())
}
