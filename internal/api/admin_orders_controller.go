package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"

	bizConfig "github.com/S3b4sB0t3r0/evg-server/internal/config"
	bizConsts "github.com/S3b4sB0t3r0/evg-server/internal/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
	"github.com/S3b4sB0t3r0/evg-server/internal/service"
)

// AdminController serves the employee/admin console. Route guarding is
// delegated; the routes are grouped under /api/v1/admin so a middleware can
// wrap them without touching handlers.
type AdminController struct {
	*core.BaseComponent
	Catalog     *service.CatalogService    `infra:"dep:catalog_service"`
	Orders      *service.OrderService      `infra:"dep:order_service"`
	Ingredients *service.IngredientService `infra:"dep:ingredient_service"`
	Users       *service.UserService       `infra:"dep:user_service"`
	Contacts    *service.ContactService    `infra:"dep:contact_service"`
	Reports     *service.ReportService     `infra:"dep:report_service"`

	cfg *bizConfig.BizConfig
}

func NewAdminController(cfg *bizConfig.BizConfig) *AdminController {
	return &AdminController{
		BaseComponent: core.NewBaseComponent(bizConsts.COMP_CTRL_ADMIN, consts.COMPONENT_LOGGING),
		cfg:           cfg,
	}
}

func (ac *AdminController) bulkConfig() bizConfig.BulkConfig {
	return ac.cfg.Bulk
}

func (ac *AdminController) listOrders(w http.ResponseWriter, r *http.Request) {
	res, err := ac.Orders.ListOrders(r.Context(), parseViewState(r))
	if err != nil {
		writeErr(w, 500, "INTERNAL")
		return
	}
	writeJSON(w, res)
}

func (ac *AdminController) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := ac.Orders.Get(r.Context(), idParam(r))
	if err != nil {
		writeErr(w, 404, "NOT_FOUND")
		return
	}
	writeJSON(w, o)
}

func (ac *AdminController) createOrder(w http.ResponseWriter, r *http.Request) {
	var req service.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, 400, "INVALID_JSON")
		return
	}
	order, err := ac.Orders.Checkout(r.Context(), &req)
	if err != nil {
		writeErr(w, 400, err.Error())
		return
	}
	writeJSONStatus(w, http.StatusCreated, order)
}

func (ac *AdminController) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Estado string `json:"estado"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, 400, "INVALID_JSON")
		return
	}
	if err := ac.Orders.UpdateStatus(r.Context(), idParam(r), req.Estado); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeErr(w, 404, "NOT_FOUND")
			return
		}
		writeErr(w, 400, err.Error())
		return
	}
	writeJSON(w, map[string]string{"estado": req.Estado})
}

func (ac *AdminController) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := ac.Orders.Delete(r.Context(), idParam(r)); err != nil {
		writeErr(w, 500, "INTERNAL")
		return
	}
	writeJSON(w, map[string]any{"deleted": true})
}

func (ac *AdminController) reportSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := ac.Reports.Summary(r.Context())
	if err != nil {
		writeErr(w, 500, "INTERNAL")
		return
	}
	writeJSON(w, sum)
}
