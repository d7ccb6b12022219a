// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dimas Pramesti

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dpramesti/hris-directory/internal/service"
	"github.com/dpramesti/hris-directory/internal/utils"
	"github.com/dpramesti/hris-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// protectedProbe is a terminal handler recording whether the middleware let
// the request through and which username it stored in the context.
type protectedProbe struct {
	called   bool
	username string
	found    bool
}

func (p *protectedProbe) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.called = true
		p.username, p.found = utils.GetUsernameFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid.jwt.token", tokenString)
			return models.Token{Username: "alice"}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	probe := &protectedProbe{}
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(probe.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, probe.called)
	assert.True(t, probe.found)
	assert.Equal(t, "alice", probe.username)
}

func TestAuthMiddleware_RawTokenWithoutScheme(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid.jwt.token", tokenString)
			return models.Token{Username: "alice"}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	probe := &protectedProbe{}
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "valid.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(probe.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, probe.called)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	probe := &protectedProbe{}
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()

	h.auth(probe.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Token is missing!", decodeBody(t, rec)["message"])
	assert.False(t, probe.called)
}

func TestAuthMiddleware_EmptyBearerToken(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	probe := &protectedProbe{}
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()

	h.auth(probe.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Token is missing!", decodeBody(t, rec)["message"])
	assert.False(t, probe.called)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpired
		},
	}
	h := newHandlerWithAuth(t, auth)

	probe := &protectedProbe{}
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer expired.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(probe.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token has expired!", decodeBody(t, rec)["message"])
	assert.False(t, probe.called)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsInvalid
		},
	}
	h := newHandlerWithAuth(t, auth)

	probe := &protectedProbe{}
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer tampered.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(probe.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token!", decodeBody(t, rec)["message"])
	assert.False(t, probe.called)
}
