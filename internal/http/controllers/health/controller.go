// Package health contiene los endpoints de liveness y readiness.
package health

import (
	"net/http"

	"github.com/dropDatabas3/teamspace/internal/http/helpers"
	svc "github.com/dropDatabas3/teamspace/internal/http/services/health"
)

// Controller maneja los endpoints de health.
type Controller struct {
	service svc.Service
}

// New crea el controller de health.
func New(service svc.Service) *Controller {
	return &Controller{service: service}
}

// Healthz maneja GET /healthz
func (c *Controller) Healthz(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, c.service.Live(r.Context()))
}

// Readyz maneja GET /readyz
func (c *Controller) Readyz(w http.ResponseWriter, r *http.Request) {
	res, ok := c.service.Ready(r.Context())
	status := http.StatusOK
	if !ok {
		status = http.StatusServiceUnavailable
	}
	helpers.WriteJSON(w, status, res)
}
