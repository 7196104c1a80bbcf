package http

import (
	"net/http"

	"github.com/dive-demo-tour/api/internal/application/auth"
	"github.com/dive-demo-tour/api/internal/application/brand"
	"github.com/dive-demo-tour/api/internal/application/event"
	moduleapp "github.com/dive-demo-tour/api/internal/application/module"
	"github.com/dive-demo-tour/api/internal/application/notifier"
	"github.com/dive-demo-tour/api/internal/application/partner"
	"github.com/dive-demo-tour/api/internal/application/registration"
	"github.com/dive-demo-tour/api/internal/application/settings"
	"github.com/dive-demo-tour/api/internal/application/upload"
	"github.com/dive-demo-tour/api/internal/config"
	"github.com/dive-demo-tour/api/internal/transport/http/handler"
	appmiddleware "github.com/dive-demo-tour/api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 — applied to the public write endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	seq := notifier.NewSequencer(deps.Mailer, cfg.AdminNotifyEmail, cfg.EmailSpacing)

	registrationSvc := registration.NewService(deps.RegistrationRepo, seq)
	eventSvc := event.NewService(deps.EventRepo)
	brandSvc := brand.NewService(deps.BrandRepo)
	partnerSvc := partner.NewService(deps.PartnerRepo)
	moduleSvc := moduleapp.NewService(deps.ModuleRepo)
	settingsSvc := settings.NewService(deps.SettingsRepo)
	uploadSvc := upload.NewService(deps.S3Store)
	authSvc := auth.NewService(cfg)

	healthH := handler.NewHealthHandler()
	registrationH := handler.NewRegistrationHandler(registrationSvc)
	eventH := handler.NewEventHandler(eventSvc)
	brandH := handler.NewBrandHandler(brandSvc)
	partnerH := handler.NewPartnerHandler(partnerSvc)
	moduleH := handler.NewModuleHandler(moduleSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	uploadH := handler.NewUploadHandler(uploadSvc)
	authH := handler.NewAuthHandler(authSvc)

	adminOnly := appmiddleware.AdminAuth(authSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes ────────────────────────────────────────────────────
		r.Get("/health", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/registrations", registrationH.Create)
		r.With(sensitiveRL.Limit).Post("/auth/login", authH.Login)
		r.Get("/events", eventH.ListPublic)
		r.Get("/events/{id}", eventH.Get)
		r.Get("/events/{id}/modules", moduleH.ListByEvent)
		r.Get("/brands", brandH.List)
		r.Get("/partners", partnerH.List)
		r.Get("/settings/homepage", settingsH.GetHomepage)

		// ── Admin routes (Bearer token) ──────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(adminOnly)

			r.Get("/registrations", registrationH.ListAll)
			r.Get("/registrations/{eventId}", registrationH.ListByEvent)
			r.Delete("/registrations/{eventId}/{registrationId}", registrationH.Delete)

			r.Get("/admin/events", eventH.List)
			r.Post("/events", eventH.Create)
			r.Put("/events/{id}", eventH.Update)
			r.Delete("/events/{id}", eventH.Delete)

			r.Get("/brands/{id}", brandH.Get)
			r.Post("/brands", brandH.Create)
			r.Put("/brands/{id}", brandH.Update)
			r.Delete("/brands/{id}", brandH.Delete)

			r.Get("/partners/{id}", partnerH.Get)
			r.Post("/partners", partnerH.Create)
			r.Put("/partners/{id}", partnerH.Update)
			r.Delete("/partners/{id}", partnerH.Delete)

			r.Get("/modules/{id}", moduleH.Get)
			r.Post("/modules", moduleH.Create)
			r.Put("/modules/{id}", moduleH.Update)
			r.Delete("/modules/{id}", moduleH.Delete)

			r.Put("/settings/homepage", settingsH.UpdateHomepage)

			r.Post("/uploads", uploadH.Upload)
			r.Delete("/uploads", uploadH.Delete)
		})
	})

	return r
}
