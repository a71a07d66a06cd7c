package api

import (
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/skill-swap/backend/docs"
	"github.com/skill-swap/backend/internal/api/handlers"
	mw "github.com/skill-swap/backend/internal/api/middleware"
	"github.com/skill-swap/backend/internal/services"
)

type Dependencies struct {
	Users    services.UserService
	Swaps    services.SwapService
	Feedback services.FeedbackService
	Admin    services.AdminService
	Ping     handlers.Pinger

	RateLimiter        *mw.RateLimiter
	CORSAllowedOrigins []string
	AdminAuthEnabled   bool
	// TrustProxyHeaders rewrites RemoteAddr from X-Forwarded-For / X-Real-IP.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxyHeaders  bool
	MaxUploadBytes     int64

	// UploadDir is served under UploadPrefix when photos live on local disk.
	UploadDir    string
	UploadPrefix string
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	if dep.TrustProxyHeaders {
		r.Use(chimid.RealIP)
	}
	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS(dep.CORSAllowedOrigins))
	if dep.RateLimiter != nil {
		r.Use(dep.RateLimiter.Middleware)
	}
	r.Use(chimid.Compress(5))

	hh := handlers.NewHealthHandler(dep.Ping)
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)

	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	if dep.UploadDir != "" && dep.UploadPrefix != "" {
		r.Get(strings.TrimSuffix(dep.UploadPrefix, "/")+"/{filename}", serveUpload(dep.UploadDir))
	}

	auth := handlers.NewAuthHandler(dep.Users)
	profile := handlers.NewProfileHandler(dep.Users, dep.MaxUploadBytes)
	users := handlers.NewUsersHandler(dep.Users)
	swaps := handlers.NewSwapsHandler(dep.Swaps)
	feedback := handlers.NewFeedbackHandler(dep.Feedback)
	admin := handlers.NewAdminHandler(dep.Admin)

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/signup", auth.Signup)
			ar.Post("/login", auth.Login)
		})

		api.Get("/profile/{userId}", profile.Get)
		api.Put("/profile/{userId}", profile.Update)
		api.Get("/users", users.Search)

		api.Route("/swap_requests", func(sr chi.Router) {
			sr.Post("/", swaps.Create)
			sr.Get("/{userId}", swaps.ListForUser)
			sr.Put("/{requestId}", swaps.UpdateStatus)
			sr.Delete("/{requestId}", swaps.Delete)
		})

		api.Post("/feedback", feedback.Submit)
		api.Get("/feedback", feedback.List)

		api.Route("/admin", func(ad chi.Router) {
			if dep.AdminAuthEnabled {
				ad.Use(mw.AdminOnly(dep.Admin))
			}
			ad.Get("/users", admin.ListUsers)
			ad.Put("/users/{userId}/ban", admin.SetBanned)
			ad.Get("/platform_message", admin.GetPlatformMessage)
			ad.Put("/platform_message", admin.SetPlatformMessage)
			ad.Post("/platform_message", admin.SetPlatformMessage)
			ad.Get("/swap_requests", admin.ListSwapRequests)
		})
	})

	return r
}

// serveUpload serves a single stored photo by bare file name; directories are never listed.
func serveUpload(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "filename")
		if name == "" || name != path.Base(name) || strings.HasPrefix(name, ".") {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, name))
	}
}
