package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"afternote/internal/platform/config"
	"afternote/internal/platform/metrics"
	platformmw "afternote/internal/platform/middleware"
	capmw "afternote/internal/receiverauth/middleware"
	"afternote/pkg/platform/middleware/admin"
	"afternote/pkg/platform/middleware/auth"
	"afternote/pkg/platform/middleware/metadata"
	request "afternote/pkg/platform/middleware/request"
	"afternote/pkg/platform/middleware/requesttime"
)

func newRouter(cfg config.Config, a *app, in *infra, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(chimw.RealIP)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(platformmw.Recovery(log))
	r.Use(platformmw.Logger(log))
	r.Use(platformmw.Latency(metrics.New()))
	r.Use(platformmw.ContentTypeJSON)
	if cfg.Server.RequestTimeout > 0 {
		r.Use(chimw.Timeout(cfg.Server.RequestTimeout))
	}

	r.Get("/health", in.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	// Testator endpoints.
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.jwt, log))
		a.conditions.Register(r)
		a.receivers.RegisterOwner(r)
	})

	// Scheduler and review staff.
	r.Group(func(r chi.Router) {
		r.Use(admin.RequireAdminToken(cfg.Server.AdminToken, log))
		a.triggers.Register(r)
		a.reviews.RegisterAdmin(r)
	})

	a.receivers.RegisterPublic(r)

	// A resolved X-Auth-Code is enough to upload and submit documents and to
	// poll the review. The sender's message checks the grant itself.
	r.Group(func(r chi.Router) {
		r.Use(capmw.RequireCapability(a.receiverAuth, log))
		a.receivers.RegisterCapability(r)
		a.reviews.RegisterReceiver(r)

		// Legacy content additionally needs an approved review or a
		// released owner.
		r.Group(func(r chi.Router) {
			r.Use(capmw.RequireAccess(a.receiverAuth, log))
			a.legacy.Register(r)
		})
	})

	return r
}
