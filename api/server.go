/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/analytics/*      Headcount, flows, demographics, attrition
  /api/organizations/*  Tenant management
  /api/uploads/*        Roster ingestion
  /api/employees/*      Search and profile lookups
  /api/months           Reporting month registry
  /api/scenarios/*      Demo scenarios

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Analytics routes
		r.Route("/analytics", func(r chi.Router) {
			r.Get("/headcount-ramp", h.HeadcountRamp)
			r.Get("/hires-exits", h.HiresExits)
			r.Get("/demographics", h.Demographics)
			r.Get("/demographics/entities", h.EntityDemographics)
			r.Get("/location-headcount", h.LocationHeadcount)
			r.Get("/attrition", h.Attrition)
		})

		// Organization routes
		r.Route("/organizations", func(r chi.Router) {
			r.Get("/", h.ListOrganizations)
			r.Post("/", h.CreateOrganization)
			r.Get("/{id}", h.GetOrganization)
			r.Delete("/{id}", h.DeleteOrganization)
		})

		// Upload routes
		r.Route("/uploads", func(r chi.Router) {
			r.Post("/", h.CreateUpload)
			r.Delete("/{id}", h.DeleteUpload)
		})

		// Employee routes
		r.Route("/employees", func(r chi.Router) {
			r.Get("/search", h.SearchEmployees)
			r.Get("/{id}", h.EmployeeProfile)
		})

		// Scenario routes
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/load", h.LoadScenario)
		})

		r.Get("/months", h.ListMonths)
		r.Get("/entities", h.ListEntities)
		r.Get("/health", h.Health)
	})

	return r
}
