package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dpramesti/hris-directory/internal/logger"
	"github.com/dpramesti/hris-directory/internal/service"
	"github.com/dpramesti/hris-directory/internal/utils"
	"github.com/dpramesti/hris-directory/models"
	"github.com/go-chi/chi/v5"
)

// defaultStructureLevel is the level assumed when the query parameter is
// absent: the full hierarchy down to subsections.
const defaultStructureLevel = "subsect"

func (h *Handler) structures(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()
	level := strings.ToLower(query.Get("level"))
	if level == "" {
		level = defaultStructureLevel
	}

	filter := models.StructureFilter{
		DirName:  query.Get("dirname"),
		DivName:  query.Get("divname"),
		DeptName: query.Get("dptname"),
	}

	tree, err := h.services.StructureService.LevelTree(ctx, level, filter)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownLevel):
			log.Err(err).Str("level", level).Msg("invalid level parameter")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid level parameter"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Str("level", level).Msg("structure tree build failed")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, tree, http.StatusOK)
}

func (h *Handler) structuresByDirectorate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	dirCode := chi.URLParam(r, "dir")

	tree, err := h.services.StructureService.DirectorateTree(ctx, dirCode)
	if err != nil {
		log.Err(err).Str("dir", dirCode).Msg("directorate tree build failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, tree, http.StatusOK)
}

func (h *Handler) structuresByDivision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	divCode := chi.URLParam(r, "div")

	tree, err := h.services.StructureService.DivisionTree(ctx, divCode)
	if err != nil {
		log.Err(err).Str("div", divCode).Msg("division tree build failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, tree, http.StatusOK)
}
