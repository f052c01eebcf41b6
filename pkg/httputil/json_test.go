package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dserrors "github.com/matzehuels/dsaviz/pkg/errors"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{dserrors.New(dserrors.ErrCodeUnknownAlgorithm, "x"), http.StatusNotFound},
		{dserrors.New(dserrors.ErrCodeUnknownTopic, "x"), http.StatusNotFound},
		{dserrors.New(dserrors.ErrCodeInvalidInput, "x"), http.StatusBadRequest},
		{dserrors.New(dserrors.ErrCodeInvalidFormat, "x"), http.StatusBadRequest},
		{dserrors.New(dserrors.ErrCodeInternal, "x"), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}

func TestWriteErrorHidesInternalMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	status := WriteError(rec, errors.New("dial tcp: connection refused"))
	require.Equal(t, http.StatusInternalServerError, status)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, dserrors.ErrCodeInternal, body.Error.Code)
	assert.Equal(t, "internal error", body.Error.Message)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

type payload struct {
	Name  string `json:"name" validate:"required,max=8"`
	Count int    `json:"count" validate:"gte=0"`
}

func decode(body string) (payload, error) {
	var p payload
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	err := DecodeJSON(r, &p)
	return p, err
}

func TestDecodeJSON(t *testing.T) {
	p, err := decode(`{"name":"bfs","count":2}`)
	require.NoError(t, err)
	assert.Equal(t, payload{Name: "bfs", Count: 2}, p)

	for name, body := range map[string]string{
		"empty":         ``,
		"malformed":     `{"name":`,
		"unknown field": `{"name":"bfs","extra":1}`,
		"missing name":  `{"count":1}`,
		"too long":      `{"name":"much-too-long"}`,
		"negative":      `{"name":"bfs","count":-1}`,
	} {
		_, err := decode(body)
		assert.True(t, dserrors.Is(err, dserrors.ErrCodeInvalidInput), "%s: %v", name, err)
	}
}

func TestObserveReportsRoutePattern(t *testing.T) {
	type call struct {
		method, route string
		status        int
	}
	var calls []call

	r := chi.NewRouter()
	r.Use(Observe(func(method, route string, status int, _ time.Duration) {
		calls = append(calls, call{method, route, status})
	}))
	r.Get("/api/topics/{topic}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/api/topics/graphs", "/ok", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, calls, 3)
	assert.Equal(t, call{"GET", "/api/topics/{topic}", http.StatusTeapot}, calls[0])
	assert.Equal(t, call{"GET", "/ok", http.StatusOK}, calls[1])
	assert.Equal(t, http.StatusNotFound, calls[2].status)
}
