package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/harryneopotter/hanger-on-server/internal/api/http/handler"
	"github.com/harryneopotter/hanger-on-server/internal/api/http/middleware"
	"github.com/harryneopotter/hanger-on-server/internal/logger"
	"github.com/harryneopotter/hanger-on-server/internal/model"
	"github.com/harryneopotter/hanger-on-server/internal/service"
)

// Router assembles the HTTP API.
type Router struct {
	authService    *service.Auth
	wardrobe       *service.Wardrobe
	userStore      model.UserStore
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	wardrobe *service.Wardrobe,
	userStore model.UserStore,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		wardrobe:       wardrobe,
		userStore:      userStore,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the route tree with logging on everything and
// authentication on everything except signup, login and verification.
func (r *Router) Register() http.Handler {
	authHandler := handler.NewAuth(r.authService, r.userStore, r.contextManager, r.logger)
	garmentHandler := handler.NewGarment(r.wardrobe, r.contextManager, r.logger)
	tagHandler := handler.NewTag(r.wardrobe, r.contextManager, r.logger)

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(logging.Handler)

	mux.Route("/api", func(api chi.Router) {
		api.Post("/auth/signup", authHandler.Signup)
		api.Post("/auth/login", authHandler.Login)
		api.Post("/auth/verification", authHandler.IssueVerification)
		api.Post("/auth/verification/consume", authHandler.ConsumeVerification)

		api.Group(func(private chi.Router) {
			private.Use(authenticate.Handler)

			private.Post("/auth/logout", authHandler.Logout)
			private.Get("/users/me", authHandler.Me)
			private.Delete("/users/me", authHandler.DeleteMe)

			private.Route("/garments", func(g chi.Router) {
				g.Post("/", garmentHandler.Create)
				g.Get("/", garmentHandler.List)
				g.Route("/{garmentID}", func(one chi.Router) {
					one.Get("/", garmentHandler.Get)
					one.Put("/", garmentHandler.Update)
					one.Delete("/", garmentHandler.Delete)
					one.Patch("/status", garmentHandler.UpdateStatus)
					one.Post("/wear", garmentHandler.Wear)
					one.Post("/images", garmentHandler.AttachImage)
					one.Post("/tags", tagHandler.Label)
					one.Put("/tags/{tagID}", tagHandler.Attach)
					one.Delete("/tags/{tagID}", tagHandler.Detach)
				})
			})

			private.Get("/images/{imageID}", garmentHandler.GetImage)
			private.Delete("/images/{imageID}", garmentHandler.RemoveImage)

			private.Route("/tags", func(t chi.Router) {
				t.Post("/", tagHandler.Create)
				t.Get("/", tagHandler.List)
				t.Delete("/{tagID}", tagHandler.Delete)
			})
		})
	})

	return mux
}
