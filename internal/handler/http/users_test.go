// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dimas Pramesti

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dpramesti/hris-directory/internal/logger"
	"github.com/dpramesti/hris-directory/internal/service"
	"github.com/dpramesti/hris-directory/internal/store"
	"github.com/dpramesti/hris-directory/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDirectoryService implements service.DirectoryService for unit tests.
type mockDirectoryService struct {
	listEmployeesFn      func(ctx context.Context) ([]models.Employee, error)
	employeeByNPKFn      func(ctx context.Context, npk int64) (models.Employee, error)
	employeeByUsernameFn func(ctx context.Context, username string) (models.Employee, error)
}

func (m *mockDirectoryService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return m.listEmployeesFn(ctx)
}

func (m *mockDirectoryService) EmployeeByNPK(ctx context.Context, npk int64) (models.Employee, error) {
	return m.employeeByNPKFn(ctx, npk)
}

func (m *mockDirectoryService) EmployeeByUsername(ctx context.Context, username string) (models.Employee, error) {
	return m.employeeByUsernameFn(ctx, username)
}

// newHandlerWithDirectory builds a Handler with the given DirectoryService mock.
func newHandlerWithDirectory(t *testing.T, directory service.DirectoryService) *Handler {
	t.Helper()
	svcs := &service.Services{
		DirectoryService: directory,
	}
	return NewHandler(svcs, logger.Nop())
}

// newRequestWithURLParam builds a GET request carrying a chi URL parameter.
func newRequestWithURLParam(target, key, value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestListUsers(t *testing.T) {
	directory := &mockDirectoryService{
		listEmployeesFn: func(_ context.Context) ([]models.Employee, error) {
			return []models.Employee{
				{NPK: 100, Name: "Alice"},
				{NPK: 200, Name: "Bob"},
			}, nil
		},
	}

	h := newHandlerWithDirectory(t, directory)
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()

	h.listUsers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Success", body["status"])
	assert.Equal(t, float64(2), body["total_users"])
}

func TestListUsers_ServiceError(t *testing.T) {
	directory := &mockDirectoryService{
		listEmployeesFn: func(_ context.Context) ([]models.Employee, error) {
			return nil, errors.New("db is down")
		},
	}

	h := newHandlerWithDirectory(t, directory)
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()

	h.listUsers(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeBody(t, rec)["error"])
}

func TestUserByNPK(t *testing.T) {
	directory := &mockDirectoryService{
		employeeByNPKFn: func(_ context.Context, npk int64) (models.Employee, error) {
			assert.Equal(t, int64(100), npk)
			return models.Employee{NPK: 100, Name: "Alice"}, nil
		},
	}

	h := newHandlerWithDirectory(t, directory)
	req := newRequestWithURLParam("/users/npk/100", "npk", "100")
	rec := httptest.NewRecorder()

	h.userByNPK(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alice", decodeBody(t, rec)["NAME"])
}

func TestUserByNPK_NotFound(t *testing.T) {
	directory := &mockDirectoryService{
		employeeByNPKFn: func(_ context.Context, _ int64) (models.Employee, error) {
			return models.Employee{}, store.ErrEmployeeNotFound
		},
	}

	h := newHandlerWithDirectory(t, directory)
	req := newRequestWithURLParam("/users/npk/999", "npk", "999")
	rec := httptest.NewRecorder()

	h.userByNPK(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeBody(t, rec)["error"])
}

func TestUserByUsername(t *testing.T) {
	directory := &mockDirectoryService{
		employeeByUsernameFn: func(_ context.Context, username string) (models.Employee, error) {
			assert.Equal(t, "alice", username)
			return models.Employee{NPK: 100, Name: "Alice", Username: "alice"}, nil
		},
	}

	h := newHandlerWithDirectory(t, directory)
	req := newRequestWithURLParam("/users/username/alice", "username", "alice")
	rec := httptest.NewRecorder()

	h.userByUsername(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", decodeBody(t, rec)["USERNAME"])
}

func TestUserByUsername_NotFound(t *testing.T) {
	directory := &mockDirectoryService{
		employeeByUsernameFn: func(_ context.Context, _ string) (models.Employee, error) {
			return models.Employee{}, store.ErrEmployeeNotFound
		},
	}

	h := newHandlerWithDirectory(t, directory)
	req := newRequestWithURLParam("/users/username/ghost", "username", "ghost")
	rec := httptest.NewRecorder()

	h.userByUsername(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeBody(t, rec)["error"])
}
