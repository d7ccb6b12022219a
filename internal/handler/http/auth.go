package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dpramesti/hris-directory/internal/logger"
	"github.com/dpramesti/hris-directory/internal/service"
	"github.com/dpramesti/hris-directory/internal/store"
	"github.com/dpramesti/hris-directory/internal/utils"
	"github.com/dpramesti/hris-directory/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	_, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid data provided"}, http.StatusBadRequest)
			return
		default:
			// Duplicate usernames deliberately take this branch too: the
			// response never discloses whether an account name is taken.
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("username", user.Username).Msg("user successfully registered")

	utils.WriteJSON(w, models.MessageResponse{Message: "User registered successfully"}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid data provided"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			// One message for both failure modes: a probe cannot tell an
			// unknown account from a wrong password.
			log.Err(err).Msg("no user was found/wrong password")
			utils.WriteJSON(w, models.MessageResponse{Message: "Invalid username or password"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{Status: "Success", Token: token.SignedString}, http.StatusOK)
}

// hello is a liveness probe kept deliberately trivial: no JSON, no auth.
func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("WELCOME"))
}
