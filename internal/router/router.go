// Package router wires HTTP routes to their handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/boarding-house-manager/internal/handler"
	"github.com/iliyamo/boarding-house-manager/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
func RegisterRoutes(e *echo.Echo) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers the operator login and all protected domain
// endpoints.  Everything under /v1 except /v1/auth/login requires a
// valid bearer token.
func RegisterAPI(e *echo.Echo, a *handler.AuthHandler, l *handler.LedgerHandler, jwtSecret string) {
	e.POST("/v1/auth/login", a.Login)

	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(jwtSecret))

	// Dashboard: stats, monthly series, overdue alert count.
	v1.GET("/dashboard", l.Dashboard)

	// Tenant listing, direct edits and payment-status changes.
	v1.GET("/tenants", l.ListTenants)
	v1.PUT("/tenants/:id", l.UpdateTenant)
	v1.PATCH("/tenants/:id/status", l.UpdateTenantStatus)

	// Room grid, quick add, detail view and the edit workflow.
	v1.GET("/rooms", l.ListRooms)
	v1.POST("/rooms", l.CreateRoom)
	v1.GET("/rooms/:number", l.RoomDetail)
	v1.PUT("/rooms/:number", l.SaveRoom)

	// Bulk import and the destructive full reset.
	v1.POST("/import", l.Import)
	v1.POST("/reset", l.Reset)
}
