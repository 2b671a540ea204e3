package http_server

import (
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
)

// RouteRegisterFunc mounts routes onto the router; the container is provided
// for resolving controller components.
type RouteRegisterFunc func(r chi.Router, c *core.Container) error

var (
	regMu      sync.Mutex
	registrars []RouteRegisterFunc
)

// RegisterRoutes queues a registrar; applied when the server component starts.
// Intended for package init() in api packages.
func RegisterRoutes(fn RouteRegisterFunc) {
	if fn == nil {
		return
	}
	regMu.Lock()
	registrars = append(registrars, fn)
	regMu.Unlock()
}

func snapshot() []RouteRegisterFunc {
	regMu.Lock()
	defer regMu.Unlock()
	cp := make([]RouteRegisterFunc, len(registrars))
	copy(cp, registrars)
	return cp
}
