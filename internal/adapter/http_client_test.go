// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoval/go-mail-sync/internal/config"
	"github.com/dkoval/go-mail-sync/internal/logger"
)

func newTestProvider(t *testing.T, baseURL string, tokens map[string]string) EventProvider {
	t.Helper()
	provider, err := NewHTTPEventProvider(config.ClientAdapter{
		BaseURL:        baseURL,
		RequestTimeout: 5 * time.Second,
		Tokens:         tokens,
	}, logger.Nop())
	require.NoError(t, err)
	return provider
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare host gets https", raw: "api.example.com", want: "https://api.example.com"},
		{name: "explicit scheme kept", raw: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash trimmed", raw: "https://api.example.com/", want: "https://api.example.com"},
		{name: "whitespace trimmed", raw: "  api.example.com  ", want: "https://api.example.com"},
		{name: "empty", raw: "", wantErr: true},
		{name: "blank", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetLatestEventID_SendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/events/latest", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"code":1000,"eventID":"tok-1"}`))
	}))
	defer srv.Close()

	provider := newTestProvider(t, srv.URL, map[string]string{"acc-1": "secret"})

	eventID, err := provider.GetLatestEventID(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", eventID)
	assert.Equal(t, "Bearer secret", gotAuth)
}

func TestGetLatestEventID_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	provider := newTestProvider(t, srv.URL, nil)

	_, err := provider.GetLatestEventID(context.Background(), "acc-1")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetEvents_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/events/tok-1", r.URL.Path)
		w.Write([]byte(`{
			"code": 1000,
			"eventID": "tok-2",
			"has_more": true,
			"messageUpdates": [{"ID": "m1", "action": 3}]
		}`))
	}))
	defer srv.Close()

	provider := newTestProvider(t, srv.URL, nil)

	event, err := provider.GetEvents(context.Background(), "acc-1", "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", event.EventID)
	assert.True(t, event.More)
	require.Len(t, event.Messages, 1)
	assert.Equal(t, "m1", event.Messages[0].ID)
}

func TestGetEvents_ApplicationErrorCode(t *testing.T) {
	// HTTP 200 with a non-OK application code must still fail the cycle.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":5001,"eventID":""}`))
	}))
	defer srv.Close()

	provider := newTestProvider(t, srv.URL, nil)

	event, err := provider.GetEvents(context.Background(), "acc-1", "tok-1")
	assert.Error(t, err)
	assert.Nil(t, event)
}

func TestGetMessage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/messages/m1", r.URL.Path)
		w.Write([]byte(`{"code":1000,"message":{"ID":"m1","subject":"hello","time":42}}`))
	}))
	defer srv.Close()

	provider := newTestProvider(t, srv.URL, nil)

	msg, err := provider.GetMessage(context.Background(), "acc-1", "m1")
	require.NoError(t, err)
	assert.Equal(t, "m1", msg.ID)
	assert.Equal(t, "hello", msg.Subject)
	assert.Equal(t, int64(42), msg.Time)
}

func TestGetMessage_HTTPNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	provider := newTestProvider(t, srv.URL, nil)

	_, err := provider.GetMessage(context.Background(), "acc-1", "m1")
	assert.ErrorIs(t, err, ErrMessageNotAvailable)
}

func TestGetMessage_NotAvailableCodes(t *testing.T) {
	for _, body := range []string{`{"code":2501}`, `{"code":2028}`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		provider := newTestProvider(t, srv.URL, nil)

		_, err := provider.GetMessage(context.Background(), "acc-1", "m1")
		assert.ErrorIs(t, err, ErrMessageNotAvailable, "body %s", body)
		srv.Close()
	}
}

func TestNewHTTPEventProvider_RejectsForeignToken(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "someone-else",
	}).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = NewHTTPEventProvider(config.ClientAdapter{
		BaseURL:        "api.example.com",
		RequestTimeout: time.Second,
		Tokens:         map[string]string{"acc-1": token},
	}, logger.Nop())
	assert.Error(t, err)
}

func TestNewHTTPEventProvider_AcceptsMatchingToken(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "acc-1",
	}).SignedString([]byte("key"))
	require.NoError(t, err)

	provider, err := NewHTTPEventProvider(config.ClientAdapter{
		BaseURL:        "api.example.com",
		RequestTimeout: time.Second,
		Tokens:         map[string]string{"acc-1": token},
	}, logger.Nop())
	require.NoError(t, err)

	concrete, ok := provider.(*httpEventProvider)
	require.True(t, ok)
	assert.Equal(t, token, concrete.Token("acc-1"))
}

func TestNewHTTPEventProvider_EmptyBaseURL(t *testing.T) {
	_, err := NewHTTPEventProvider(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}
