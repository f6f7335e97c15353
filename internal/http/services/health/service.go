// Package health contiene el chequeo de readiness del servicio.
package health

import (
	"context"
	"time"

	dto "github.com/dropDatabas3/teamspace/internal/http/dto/health"
	"github.com/dropDatabas3/teamspace/internal/store"
)

// Service expone los chequeos de salud.
type Service interface {
	// Live responde siempre ok mientras el proceso esté vivo.
	Live(ctx context.Context) dto.HealthResponse

	// Ready verifica la conexión al storage.
	Ready(ctx context.Context) (dto.HealthResponse, bool)
}

// Deps contiene las dependencias del servicio.
type Deps struct {
	Conn store.AdapterConnection
}

type service struct {
	deps Deps
}

// New crea el servicio de health.
func New(deps Deps) Service {
	return &service{deps: deps}
}

func (s *service) Live(_ context.Context) dto.HealthResponse {
	return dto.HealthResponse{Status: "ok"}
}

func (s *service) Ready(ctx context.Context) (dto.HealthResponse, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.deps.Conn.Ping(ctx); err != nil {
		return dto.HealthResponse{
			Status:  "degraded",
			Storage: s.deps.Conn.Name(),
			Detail:  err.Error(),
		}, false
	}
	return dto.HealthResponse{Status: "ok", Storage: s.deps.Conn.Name()}, true
}
