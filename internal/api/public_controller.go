package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"

	bizConsts "github.com/S3b4sB0t3r0/evg-server/internal/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
	"github.com/S3b4sB0t3r0/evg-server/internal/model"
	"github.com/S3b4sB0t3r0/evg-server/internal/service"
)

// PublicController serves the storefront: menu, checkout, order history and
// the contact form. No auth; these endpoints are customer-facing.
type PublicController struct {
	*core.BaseComponent
	Catalog *service.CatalogService `infra:"dep:catalog_service"`
	Orders  *service.OrderService   `infra:"dep:order_service"`
	Contact *service.ContactService `infra:"dep:contact_service"`
}

func NewPublicController() *PublicController {
	return &PublicController{
		BaseComponent: core.NewBaseComponent(bizConsts.COMP_CTRL_PUBLIC, consts.COMPONENT_LOGGING),
	}
}

func (pc *PublicController) menu(w http.ResponseWriter, r *http.Request) {
	list, err := pc.Catalog.Menu(r.Context())
	if err != nil {
		writeErr(w, 500, "INTERNAL")
		return
	}
	writeJSON(w, list)
}

func (pc *PublicController) checkout(w http.ResponseWriter, r *http.Request) {
	var req service.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, 400, "INVALID_JSON")
		return
	}
	order, err := pc.Orders.Checkout(r.Context(), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeErr(w, 404, "NOT_FOUND")
			return
		}
		writeErr(w, 400, err.Error())
		return
	}
	writeJSONStatus(w, http.StatusCreated, order)
}

func (pc *PublicController) history(w http.ResponseWriter, r *http.Request) {
	correo := r.URL.Query().Get("correo")
	list, err := pc.Orders.History(r.Context(), correo)
	if err != nil {
		writeErr(w, 400, err.Error())
		return
	}
	writeJSON(w, list)
}

func (pc *PublicController) submitContact(w http.ResponseWriter, r *http.Request) {
	var m model.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeErr(w, 400, "INVALID_JSON")
		return
	}
	if err := pc.Contact.Submit(r.Context(), &m); err != nil {
		writeErr(w, 400, err.Error())
		return
	}
	writeJSONStatus(w, http.StatusCreated, map[string]any{"id": m.ID})
}
