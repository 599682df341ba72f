package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/qaspilab/qaspilab/internal/api/mocks"
	"github.com/qaspilab/qaspilab/internal/config"
	"github.com/qaspilab/qaspilab/internal/model"
	"github.com/qaspilab/qaspilab/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testSite() *config.Site {
	site := config.DefaultSite()
	site.Galleries = []config.Gallery{{
		Name: "barbershop",
		Images: []config.GalleryImage{
			{Src: "/images/barbershop/1.webp", Alt: "Home screen", Title: "Home"},
			{Src: "/images/barbershop/2.webp", Alt: "Booking"},
		},
	}}
	return site
}

func newTestHandler(t *testing.T, ideas IdeaSubmitter, opts ...Option) *http.ServeMux {
	t.Helper()
	h, err := New(ideas, testSite(), opts...)
	require.NoError(t, err)
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return mux
}

func decodeSubmission(t *testing.T, rec *httptest.ResponseRecorder) model.SubmissionResponse {
	t.Helper()
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var resp model.SubmissionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

// Constructor tests

func TestNew(t *testing.T) {
	ideas := mocks.NewMockIdeaSubmitter(t)

	t.Run("nil idea service returns error", func(t *testing.T) {
		h, err := New(nil, testSite())
		assert.Nil(t, h)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "idea service")
	})

	t.Run("nil site returns error", func(t *testing.T) {
		h, err := New(ideas, nil)
		assert.Nil(t, h)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "site config")
	})

	t.Run("valid dependencies returns handler", func(t *testing.T) {
		h, err := New(ideas, testSite())
		assert.NoError(t, err)
		assert.NotNil(t, h)
	})
}

// Submit tests

func TestSubmitIdea(t *testing.T) {
	t.Run("success passes request and meta through", func(t *testing.T) {
		ideas := mocks.NewMockIdeaSubmitter(t)
		ideas.EXPECT().Submit(mock.Anything, model.SubmissionRequest{
			Name:        "Aigerim",
			Contact:     "+77012345678",
			Description: "Booking app",
			Budget:      "discuss",
		}, service.SubmitMeta{ClientIP: "203.0.113.7", Surface: "modal"}).Return(&model.SubmissionResponse{
			Success:  true,
			Message:  "Your idea has been sent!",
			ThankYou: "Thank you!",
		}, nil)

		mux := newTestHandler(t, ideas)
		body := `{"name":"Aigerim","contact":"+77012345678","description":"Booking app","budget":"discuss"}`
		req := httptest.NewRequest(http.MethodPost, "/api/submit-idea", strings.NewReader(body))
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		req.Header.Set(config.SurfaceHeader, "Modal")
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeSubmission(t, rec)
		assert.True(t, resp.Success)
		assert.Equal(t, "Your idea has been sent!", resp.Message)
		assert.Equal(t, "Thank you!", resp.ThankYou)
	})

	t.Run("surface from query string", func(t *testing.T) {
		ideas := mocks.NewMockIdeaSubmitter(t)
		ideas.EXPECT().Submit(mock.Anything, mock.Anything, mock.MatchedBy(func(m service.SubmitMeta) bool {
			return m.Surface == "cta"
		})).Return(&model.SubmissionResponse{Success: true, Message: "ok"}, nil)

		mux := newTestHandler(t, ideas)
		req := httptest.NewRequest(http.MethodPost, "/api/submit-idea?surface=cta", strings.NewReader(`{"name":"a"}`))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	rejections := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{
			name:   "validation rejection",
			err:    &service.RejectionError{Status: http.StatusBadRequest, Message: "Name, contact and idea description are required"},
			status: http.StatusBadRequest,
			msg:    "Name, contact and idea description are required",
		},
		{
			name:   "duplicate",
			err:    &service.RejectionError{Status: http.StatusConflict, Message: "already received"},
			status: http.StatusConflict,
			msg:    "already received",
		},
		{
			name:   "delivery failure",
			err:    &service.RejectionError{Status: http.StatusInternalServerError, Message: "try again", Err: errors.New("down")},
			status: http.StatusInternalServerError,
			msg:    "try again",
		},
		{
			name:   "unexpected error",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			msg:    config.DefaultSite().Messages.DeliveryFailed,
		},
	}

	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			ideas := mocks.NewMockIdeaSubmitter(t)
			ideas.EXPECT().Submit(mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			mux := newTestHandler(t, ideas)
			req := httptest.NewRequest(http.MethodPost, "/api/submit-idea", strings.NewReader(`{"name":"x"}`))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			resp := decodeSubmission(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.msg, resp.Message)
			assert.Empty(t, resp.ThankYou)
		})
	}

	bodies := []struct {
		name   string
		body   string
		status int
		msg    string
	}{
		{name: "malformed json", body: `{"name":`, status: http.StatusBadRequest, msg: "invalid request body"},
		{name: "empty body", body: ``, status: http.StatusBadRequest, msg: config.DefaultSite().Messages.RequiredFields},
		{name: "wrong type", body: `{"name":42}`, status: http.StatusBadRequest, msg: "invalid request body"},
		{
			name:   "too large",
			body:   `{"description":"` + strings.Repeat("a", maxSubmissionBytes) + `"}`,
			status: http.StatusRequestEntityTooLarge,
			msg:    "request body too large",
		},
	}

	for _, tt := range bodies {
		t.Run(tt.name, func(t *testing.T) {
			ideas := mocks.NewMockIdeaSubmitter(t)
			mux := newTestHandler(t, ideas)

			req := httptest.NewRequest(http.MethodPost, "/api/submit-idea", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			resp := decodeSubmission(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.msg, resp.Message)
		})
	}

	t.Run("GET is not allowed", func(t *testing.T) {
		mux := newTestHandler(t, mocks.NewMockIdeaSubmitter(t))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/submit-idea", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestSurfaceOf(t *testing.T) {
	tests := []struct {
		name   string
		header string
		query  string
		want   string
	}{
		{name: "none", want: ""},
		{name: "header wins", header: "cta", query: "modal", want: "cta"},
		{name: "query fallback", query: "modal", want: "modal"},
		{name: "lowercased and trimmed", header: "  CTA ", want: "cta"},
		{name: "too long dropped", header: strings.Repeat("x", 33), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/api/submit-idea"
			if tt.query != "" {
				target += "?surface=" + tt.query
			}
			req := httptest.NewRequest(http.MethodPost, target, nil)
			if tt.header != "" {
				req.Header.Set(config.SurfaceHeader, tt.header)
			}
			assert.Equal(t, tt.want, surfaceOf(req))
		})
	}
}

// Budgets tests

func TestBudgets(t *testing.T) {
	mux := newTestHandler(t, mocks.NewMockIdeaSubmitter(t))

	t.Run("default surface", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/budgets", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp BudgetsResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "cta", resp.Surface)
		assert.Equal(t, "Choose a budget", resp.Placeholder)
		require.Len(t, resp.Options, 6)

		first := resp.Options[0]
		assert.Equal(t, "0-50000", first.Value)
		require.NotNil(t, first.Min)
		require.NotNil(t, first.Max)
		assert.Equal(t, "0", *first.Min)
		assert.Equal(t, "50000", *first.Max)

		open := resp.Options[4]
		assert.Equal(t, "1000000+", open.Value)
		require.NotNil(t, open.Min)
		assert.Nil(t, open.Max)

		discuss := resp.Options[5]
		assert.Nil(t, discuss.Min)
	})

	t.Run("modal surface", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/budgets?surface=modal", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp BudgetsResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "modal", resp.Surface)
		assert.Equal(t, "до-100к", resp.Options[0].Value)
	})

	t.Run("unknown surface", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/budgets?surface=footer", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var resp ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, 404, resp.Code)
	})
}

// Gallery tests

func TestGallery(t *testing.T) {
	mux := newTestHandler(t, mocks.NewMockIdeaSubmitter(t))

	t.Run("known gallery", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/galleries/barbershop", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp GalleryResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "barbershop", resp.Name)
		require.Len(t, resp.Images, 2)
		assert.Equal(t, "Home", resp.Images[0].Title)
	})

	t.Run("unknown gallery", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/galleries/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// Health tests

func TestHealth(t *testing.T) {
	t.Run("no checks", func(t *testing.T) {
		mux := newTestHandler(t, mocks.NewMockIdeaSubmitter(t))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp HealthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Empty(t, resp.Checks)
	})

	t.Run("failing dependency", func(t *testing.T) {
		mux := newTestHandler(t, mocks.NewMockIdeaSubmitter(t),
			WithHealthCheck("postgres", func(context.Context) error { return nil }),
			WithHealthCheck("redis", func(context.Context) error { return errors.New("refused") }),
		)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var resp HealthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, map[string]string{"postgres": "ok", "redis": "unavailable"}, resp.Checks)
	})
}
