package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	bizConsts "github.com/S3b4sB0t3r0/evg-server/internal/consts"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/components/http_server"
	prom "github.com/S3b4sB0t3r0/evg-server/internal/infra/components/prometheus"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
)

// Unified route registration for the public and admin surfaces.
func init() {
	http_server.RegisterRoutes(func(r chi.Router, c *core.Container) error {
		compPub, err := c.Resolve(bizConsts.COMP_CTRL_PUBLIC)
		if err != nil {
			return err
		}
		pubCtrl, ok := compPub.(*PublicController)
		if !ok {
			return fmt.Errorf("public_ctrl type assertion failed")
		}
		compAdm, err := c.Resolve(bizConsts.COMP_CTRL_ADMIN)
		if err != nil {
			return err
		}
		admCtrl, ok := compAdm.(*AdminController)
		if !ok {
			return fmt.Errorf("admin_ctrl type assertion failed")
		}

		r.Use(metricsMiddleware())

		// Public storefront routes.
		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/menu", pubCtrl.menu)
			r.Post("/orders", pubCtrl.checkout)
			r.Get("/orders/history", pubCtrl.history)
			r.Post("/contact", pubCtrl.submitContact)
		})

		// Employee/admin console. Grouped so a route guard can wrap the
		// whole subtree; auth enforcement itself is delegated.
		r.Route("/api/v1/admin", func(r chi.Router) {
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", admCtrl.listOrders)
				r.Post("/", admCtrl.createOrder)
				r.Get("/{id}", admCtrl.getOrder)
				r.Patch("/{id}/status", admCtrl.updateOrderStatus)
				r.Delete("/{id}", admCtrl.deleteOrder)
			})
			r.Route("/products", func(r chi.Router) {
				r.Get("/", admCtrl.listProducts)
				r.Post("/", admCtrl.createProduct)
				r.Put("/{id}", admCtrl.updateProduct)
				r.Patch("/{id}/availability", admCtrl.setProductAvailability)
				r.Delete("/{id}", admCtrl.deleteProduct)
				r.Post("/bulk", admCtrl.bulkUploadProducts)
			})
			r.Route("/ingredients", func(r chi.Router) {
				r.Get("/", admCtrl.listIngredients)
				r.Post("/", admCtrl.createIngredient)
				r.Get("/low-stock", admCtrl.lowStockIngredients)
				r.Put("/{id}", admCtrl.updateIngredient)
				r.Patch("/{id}/stock", admCtrl.setIngredientStock)
				r.Delete("/{id}", admCtrl.deleteIngredient)
				r.Post("/bulk", admCtrl.bulkUploadIngredients)
			})
			r.Route("/users", func(r chi.Router) {
				r.Get("/", admCtrl.listUsers)
				r.Post("/", admCtrl.createUser)
				r.Put("/{id}", admCtrl.updateUser)
				r.Patch("/{id}/estado", admCtrl.toggleUserEstado)
				r.Delete("/{id}", admCtrl.deleteUser)
			})
			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", admCtrl.listContacts)
				r.Patch("/{id}/estado", admCtrl.updateContactEstado)
				r.Delete("/{id}", admCtrl.deleteContact)
			})
			r.Get("/reports/summary", admCtrl.reportSummary)
		})
		return nil
	})
}

// metricsMiddleware records request counts and latency when the prometheus
// component is up; otherwise it passes through untouched.
func metricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pc := prom.C()
			if pc == nil {
				next.ServeHTTP(w, r)
				return
			}
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			pattern := chi.RouteContext(r.Context()).RoutePattern()
			if pattern == "" {
				pattern = "unmatched"
			}
			httpRequests(pc).WithLabelValues(r.Method, pattern, strconv.Itoa(sw.status)).Inc()
			httpLatency(pc).WithLabelValues(r.Method, pattern).Observe(time.Since(start).Seconds())
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}
