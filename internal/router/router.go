package router

import (
	"github.com/labstack/echo/v4"

	"comissiona/internal/cache"
	"comissiona/internal/config"
	"comissiona/internal/database"
	"comissiona/internal/handler"
	"comissiona/internal/handler/auth"
	"comissiona/internal/handler/commissions"
	"comissiona/internal/handler/proposals"
	"comissiona/internal/handler/users"
	"comissiona/internal/middleware"
)

// Setup registers every route and wires the injected handles through.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, cfg *config.Config) {
	requireAuth := middleware.RequireAuth(rdb, cfg.SessionSecret)
	requireAdmin := middleware.RequireAdmin(rdb, cfg.SessionSecret)

	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db, rdb), requireAuth)

	// Session exchange and lifecycle. me and logout are public on purpose:
	// both answer sensibly without a session.
	api.POST("/auth/login", auth.LoginHandler(db, rdb, cfg))
	api.GET("/auth/me", auth.MeHandler(db, rdb, cfg))
	api.POST("/auth/logout", auth.LogoutHandler(rdb, cfg))

	apiProposals := api.Group("/proposals", requireAuth)
	apiProposals.POST("", proposals.CreateProposalHandler(db))
	apiProposals.GET("", proposals.ListProposalsHandler(db))
	apiProposals.GET("/:id", proposals.GetProposalHandler(db))
	apiProposals.PUT("/:id", proposals.UpdateProposalHandler(db))
	apiProposals.DELETE("/:id", proposals.DeleteProposalHandler(db))

	apiCommissions := api.Group("/commissions", requireAdmin)
	apiCommissions.POST("", commissions.CreateCommissionConfigHandler(db))
	apiCommissions.GET("", commissions.ListCommissionConfigsHandler(db))
	apiCommissions.GET("/users/:user_id", commissions.ListUserCommissionConfigsHandler(db))
	apiCommissions.PUT("/:id", commissions.UpdateCommissionConfigHandler(db))
	apiCommissions.DELETE("/:id", commissions.DeleteCommissionConfigHandler(db))

	apiUsers := api.Group("/users", requireAdmin)
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.GET("/:user_id", users.GetUserHandler(db))
	apiUsers.PATCH("/:user_id/role", users.UpdateUserRoleHandler(db))
}
