// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Koval

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"

	"github.com/dkoval/go-mail-sync/internal/config"
	"github.com/dkoval/go-mail-sync/internal/logger"
	"github.com/dkoval/go-mail-sync/models"
)

type httpEventProvider struct {
	client  *resty.Client
	limiter *rate.Limiter

	mu     sync.RWMutex
	tokens map[string]string

	logger *logger.Logger
}

// NewHTTPEventProvider constructs the HTTP/REST implementation of
// [EventProvider]. It normalises and validates the base URL from
// adapterCfg.BaseURL, configures the underlying resty client with the
// resolved base URL and request timeout, and installs an outbound rate
// limiter when adapterCfg.RequestsPerSecond is positive.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPEventProvider(adapterCfg config.ClientAdapter, logger *logger.Logger) (EventProvider, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	var limiter *rate.Limiter
	if adapterCfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(adapterCfg.RequestsPerSecond), 1)
	}

	provider := &httpEventProvider{
		client:  client,
		limiter: limiter,
		tokens:  make(map[string]string),
		logger:  logger,
	}
	for accountID, token := range adapterCfg.Tokens {
		if err = provider.SetToken(accountID, token); err != nil {
			return nil, fmt.Errorf("register token: %w", err)
		}
	}

	return provider, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores the bearer token for accountID (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests on that
// account's behalf. The subject claim is checked against accountID when the
// token parses as a JWT; a mismatch is rejected.
func (h *httpEventProvider) SetToken(accountID, token string) error {
	token = strings.TrimSpace(token)

	if sub, err := parseSubjectFromJWT(token); err == nil && sub != "" && sub != accountID {
		return fmt.Errorf("token subject %q does not match account %q", sub, accountID)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.tokens[accountID] = token
	return nil
}

// Token returns the bearer token currently held for accountID, or an empty
// string if none has been set.
func (h *httpEventProvider) Token(accountID string) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.tokens[accountID]
}

// GetLatestEventID implements [EventProvider]. It GETs the feed head from
// GET /api/events/latest and returns its token. Used only during bootstrap
// to establish the replay baseline.
func (h *httpEventProvider) GetLatestEventID(ctx context.Context, accountID string) (string, error) {
	resp, err := h.authedRequest(ctx, accountID).Get("/api/events/latest")
	if err != nil {
		return "", fmt.Errorf("get latest event id request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var latest models.LatestEvent
	if err = json.Unmarshal(resp.Body(), &latest); err != nil {
		return "", fmt.Errorf("decode latest event response: %w", err)
	}
	if latest.Code != models.CodeOK {
		return "", fmt.Errorf("latest event id: server code %d", latest.Code)
	}

	return latest.EventID, nil
}

// GetEvents implements [EventProvider]. It GETs the batch of changes
// recorded after eventID from GET /api/events/{eventID} and decodes it into
// a [models.Event]. A non-OK application code in the body is an error even
// under HTTP 200.
func (h *httpEventProvider) GetEvents(ctx context.Context, accountID, eventID string) (*models.Event, error) {
	resp, err := h.authedRequest(ctx, accountID).
		SetPathParam("eventID", eventID).
		Get("/api/events/{eventID}")
	if err != nil {
		return nil, fmt.Errorf("get events request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var event models.Event
	if err = json.Unmarshal(resp.Body(), &event); err != nil {
		return nil, fmt.Errorf("decode events response: %w", err)
	}
	if event.Code != models.CodeOK {
		return nil, fmt.Errorf("get events: server code %d", event.Code)
	}

	return &event, nil
}

// GetMessage implements [EventProvider]. It GETs the full message from
// GET /api/messages/{messageID}. Both an HTTP 404 and the application-level
// not-found and restricted codes collapse into [ErrMessageNotAvailable]:
// a message can legitimately vanish between the event being recorded and
// the fetch, and callers handle that per message.
func (h *httpEventProvider) GetMessage(ctx context.Context, accountID, messageID string) (*models.Message, error) {
	resp, err := h.authedRequest(ctx, accountID).
		SetPathParam("messageID", messageID).
		Get("/api/messages/{messageID}")
	if err != nil {
		return nil, fmt.Errorf("get message request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrMessageNotAvailable
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var mr models.MessageResponse
	if err = json.Unmarshal(resp.Body(), &mr); err != nil {
		return nil, fmt.Errorf("decode message response: %w", err)
	}
	switch mr.Code {
	case models.CodeOK:
	case models.CodeMessageNotFound, models.CodeMessageRestricted:
		return nil, ErrMessageNotAvailable
	default:
		return nil, fmt.Errorf("get message: server code %d", mr.Code)
	}
	if mr.Message == nil {
		return nil, fmt.Errorf("get message: empty payload under code %d", mr.Code)
	}

	return mr.Message, nil
}

func (h *httpEventProvider) authedRequest(ctx context.Context, accountID string) *resty.Request {
	if h.limiter != nil {
		// A limiter wait error only happens on context cancellation; the
		// request below fails on the same context immediately after.
		_ = h.limiter.Wait(ctx)
	}

	req := h.client.R().SetContext(ctx)
	if token := h.Token(accountID); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

func parseSubjectFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	return claims.GetSubject()
}
