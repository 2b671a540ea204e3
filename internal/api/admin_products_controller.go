package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/S3b4sB0t3r0/evg-server/internal/model"
)

func (ac *AdminController) listProducts(w http.ResponseWriter, r *http.Request) {
	res, err := ac.Catalog.ListProducts(r.Context(), parseViewState(r))
	if err != nil {
		writeErr(w, 500, "INTERNAL")
		return
	}
	writeJSON(w, res)
}

func (ac *AdminController) createProduct(w http.ResponseWriter, r *http.Request) {
	var p model.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeErr(w, 400, "INVALID_JSON")
		return
	}
	if err := ac.Catalog.CreateProduct(r.Context(), &p); err != nil {
		writeErr(w, 400, err.Error())
		return
	}
	writeJSONStatus(w, http.StatusCreated, &p)
}

func (ac *AdminController) updateProduct(w http.ResponseWriter, r *http.Request) {
	var p model.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeErr(w, 400, "INVALID_JSON")
		return
	}
	p.ID = idParam(r)
	if err := ac.Catalog.UpdateProduct(r.Context(), &p); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeErr(w, 404, "NOT_FOUND")
			return
		}
		writeErr(w, 400, err.Error())
		return
	}
	writeJSON(w, &p)
}

func (ac *AdminController) setProductAvailability(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Disponible bool `json:"disponible"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, 400, "INVALID_JSON")
		return
	}
	if err := ac.Catalog.SetAvailability(r.Context(), idParam(r), req.Disponible); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeErr(w, 404, "NOT_FOUND")
			return
		}
		writeErr(w, 500, "INTERNAL")
		return
	}
	writeJSON(w, map[string]bool{"disponible": req.Disponible})
}

func (ac *AdminController) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := ac.Catalog.DeleteProduct(r.Context(), idParam(r)); err != nil {
		writeErr(w, 500, "INTERNAL")
		return
	}
	writeJSON(w, map[string]any{"deleted": true})
}

func (ac *AdminController) bulkUploadProducts(w http.ResponseWriter, r *http.Request) {
	cfg := ac.bulkConfig()
	report, err := ac.Catalog.ImportProductsCSV(r.Context(),
		http.MaxBytesReader(w, r.Body, cfg.MaxBodySize), cfg.MaxRows)
	if err != nil {
		writeErr(w, 400, err.Error())
		return
	}
	writeJSON(w, report)
}
