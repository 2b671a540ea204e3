package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/S3b4sB0t3r0/evg-server/internal/model"
)

func (ac *AdminController) listUsers(w http.ResponseWriter, r *http.Request) {
	res, err := ac.Users.List(r.Context(), parseViewState(r))
	if err != nil {
		writeErr(w, 500, "INTERNAL")
		return
	}
	writeJSON(w, res)
}

func (ac *AdminController) createUser(w http.ResponseWriter, r *http.Request) {
	var u model.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeErr(w, 400, "INVALID_JSON")
		return
	}
	if err := ac.Users.Create(r.Context(), &u); err != nil {
		writeErr(w, 400, err.Error())
		return
	}
	writeJSONStatus(w, http.StatusCreated, &u)
}

func (ac *AdminController) updateUser(w http.ResponseWriter, r *http.Request) {
	var u model.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeErr(w, 400, "INVALID_JSON")
		return
	}
	u.ID = idParam(r)
	if err := ac.Users.Update(r.Context(), &u); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeErr(w, 404, "NOT_FOUND")
			return
		}
		writeErr(w, 400, err.Error())
		return
	}
	writeJSON(w, &u)
}

func (ac *AdminController) toggleUserEstado(w http.ResponseWriter, r *http.Request) {
	estado, err := ac.Users.ToggleEstado(r.Context(), idParam(r))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeErr(w, 404, "NOT_FOUND")
			return
		}
		writeErr(w, 500, "INTERNAL")
		return
	}
	writeJSON(w, map[string]string{"estado": estado})
}

func (ac *AdminController) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := ac.Users.Delete(r.Context(), idParam(r)); err != nil {
		writeErr(w, 500, "INTERNAL")
		return
	}
	writeJSON(w, map[string]any{"deleted": true})
}
