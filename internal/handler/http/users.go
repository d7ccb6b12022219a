package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dpramesti/hris-directory/internal/logger"
	"github.com/dpramesti/hris-directory/internal/store"
	"github.com/dpramesti/hris-directory/internal/utils"
	"github.com/dpramesti/hris-directory/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	employees, err := h.services.DirectoryService.ListEmployees(ctx)
	if err != nil {
		log.Err(err).Msg("employee listing failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.UsersResponse{
		Status:     "Success",
		TotalUsers: len(employees),
		Users:      employees,
	}, http.StatusOK)
}

func (h *Handler) userByNPK(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// The route pattern guarantees digits; parse failures mean overflow.
	npk, err := strconv.ParseInt(chi.URLParam(r, "npk"), 10, 64)
	if err != nil {
		log.Err(err).Msg("npk path parameter out of range")
		utils.WriteJSON(w, models.ErrorResponse{Error: "User not found"}, http.StatusNotFound)
		return
	}

	employee, err := h.services.DirectoryService.EmployeeByNPK(ctx, npk)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmployeeNotFound):
			log.Err(err).Int64("npk", npk).Msg("employee not found")
			utils.WriteJSON(w, models.ErrorResponse{Error: "User not found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("npk", npk).Msg("employee search by npk failed")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, employee, http.StatusOK)
}

func (h *Handler) userByUsername(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	employee, err := h.services.DirectoryService.EmployeeByUsername(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmployeeNotFound):
			log.Err(err).Str("username", username).Msg("employee not found")
			utils.WriteJSON(w, models.ErrorResponse{Error: "User not found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Str("username", username).Msg("employee search by username failed")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, employee, http.StatusOK)
}
