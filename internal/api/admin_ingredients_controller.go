package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/S3b4sB0t3r0/evg-server/internal/model"
)

func (ac *AdminController) listIngredients(w http.ResponseWriter, r *http.Request) {
	res, err := ac.Ingredients.List(r.Context(), parseViewState(r))
	if err != nil {
		writeErr(w, 500, "INTERNAL")
		return
	}
	writeJSON(w, res)
}

func (ac *AdminController) createIngredient(w http.ResponseWriter, r *http.Request) {
	var ing model.Ingredient
	if err := json.NewDecoder(r.Body).Decode(&ing); err != nil {
		writeErr(w, 400, "INVALID_JSON")
		return
	}
	if err := ac.Ingredients.Create(r.Context(), &ing); err != nil {
		writeErr(w, 400, err.Error())
		return
	}
	writeJSONStatus(w, http.StatusCreated, &ing)
}

func (ac *AdminController) updateIngredient(w http.ResponseWriter, r *http.Request) {
	var ing model.Ingredient
	if err := json.NewDecoder(r.Body).Decode(&ing); err != nil {
		writeErr(w, 400, "INVALID_JSON")
		return
	}
	ing.ID = idParam(r)
	if err := ac.Ingredients.Update(r.Context(), &ing); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeErr(w, 404, "NOT_FOUND")
			return
		}
		writeErr(w, 400, err.Error())
		return
	}
	writeJSON(w, &ing)
}

func (ac *AdminController) setIngredientStock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Cantidad float64 `json:"cantidad"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, 400, "INVALID_JSON")
		return
	}
	if err := ac.Ingredients.SetQuantity(r.Context(), idParam(r), req.Cantidad); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeErr(w, 404, "NOT_FOUND")
			return
		}
		writeErr(w, 400, err.Error())
		return
	}
	writeJSON(w, map[string]float64{"cantidad": req.Cantidad})
}

func (ac *AdminController) lowStockIngredients(w http.ResponseWriter, r *http.Request) {
	list, err := ac.Ingredients.LowStock(r.Context())
	if err != nil {
		writeErr(w, 500, "INTERNAL")
		return
	}
	writeJSON(w, list)
}

func (ac *AdminController) deleteIngredient(w http.ResponseWriter, r *http.Request) {
	if err := ac.Ingredients.Delete(r.Context(), idParam(r)); err != nil {
		writeErr(w, 500, "INTERNAL")
		return
	}
	writeJSON(w, map[string]any{"deleted": true})
}

func (ac *AdminController) bulkUploadIngredients(w http.ResponseWriter, r *http.Request) {
	cfg := ac.bulkConfig()
	report, err := ac.Ingredients.ImportIngredientsCSV(r.Context(),
		http.MaxBytesReader(w, r.Body, cfg.MaxBodySize), cfg.MaxRows)
	if err != nil {
		writeErr(w, 400, err.Error())
		return
	}
	writeJSON(w, report)
}
