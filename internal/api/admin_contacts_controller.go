package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"
)

func (ac *AdminController) listContacts(w http.ResponseWriter, r *http.Request) {
	res, err := ac.Contacts.List(r.Context(), parseViewState(r))
	if err != nil {
		writeErr(w, 500, "INTERNAL")
		return
	}
	writeJSON(w, res)
}

func (ac *AdminController) updateContactEstado(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Estado string `json:"estado"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, 400, "INVALID_JSON")
		return
	}
	if err := ac.Contacts.UpdateEstado(r.Context(), idParam(r), req.Estado); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeErr(w, 404, "NOT_FOUND")
			return
		}
		writeErr(w, 400, err.Error())
		return
	}
	writeJSON(w, map[string]string{"estado": req.Estado})
}

func (ac *AdminController) deleteContact(w http.ResponseWriter, r *http.Request) {
	if err := ac.Contacts.Delete(r.Context(), idParam(r)); err != nil {
		writeErr(w, 500, "INTERNAL")
		return
	}
	writeJSON(w, map[string]any{"deleted": true})
}
