package server

import (
	"net/http"
	"time"

	"assettag/models"
	"assettag/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (srv *Server) InjectRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{
				"status":    "OK",
				"message":   "Asset Tagging API",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})

		//public routes
		api.Post("/auth/login", srv.UserHandler.Login)

		//protected
		api.Group(func(protected chi.Router) {
			protected.Use(srv.Middleware.JWTAuthMiddleware())

			protected.Post("/auth/change-password", srv.UserHandler.ChangePassword)

			protected.Get("/assets", srv.AssetHandler.GetAssets)
			protected.Post("/assets", srv.AssetHandler.CreateAsset)
			protected.Put("/assets/{assetNumber}", srv.AssetHandler.UpdateAsset)
			protected.Post("/assets/{assetNumber}/photos/{slot}", srv.AssetHandler.UploadPhoto)

			protected.Get("/stats", srv.StatsHandler.GetStats)

			// Admin-only routes
			protected.Group(func(admin chi.Router) {
				admin.Use(srv.Middleware.RequireRole(models.AdminRole))
				admin.Post("/assets/import", srv.AssetHandler.ImportAssets)
				admin.Post("/admin/users", srv.UserHandler.RegisterUser)
			})
		})
	})

	return r
}
