// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/vibechef/internal/app"
	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/utils"
	"github.com/MKhiriev/vibechef/models"
)

// listRecipes returns the caller's history, newest first.
func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	recipes, err := h.services.RecipeService.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}

	utils.WriteJSON(w, models.RecipesResponse{Recipes: recipes, Length: len(recipes)}, http.StatusOK)
}

// saveRecipe inserts a recipe without id or replaces the one with the
// given id. The stored id is returned.
func (h *Handler) saveRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var recipe models.Recipe
	if err := utils.ReadJSON(r, &recipe); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	id, err := h.services.RecipeService.Save(r.Context(), userID, recipe)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UpsertResponse{ID: id}, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.services.RecipeService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// setRecipeField applies {"field": ..., "value": ...} to one recipe.
func (h *Handler) setRecipeField(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.SetFieldRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	err := h.services.RecipeService.SetField(r.Context(), userID, chi.URLParam(r, "id"), req.Field, req.Value)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoUserIDInContext).Send()
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return 0, false
	}
	return userID, true
}
