package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "helpdesk/internal/handler"    // handlers that implement the endpoints
    "helpdesk/internal/middleware" // JWT authentication and role gating
    "helpdesk/internal/model"      // role names for the gate levels
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterAuth wires the session endpoints.  Login is public but sits behind
// the rate limiter because every attempt costs a spreadsheet backend call;
// me/logout require a valid token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, loginLimiter echo.MiddlewareFunc) {
    e.POST("/v1/auth/login", a.Login, loginLimiter)

    g := e.Group("/v1")
    g.Use(middleware.JWTAuth(jwtSecret))
    g.GET("/me", a.Me)
    g.POST("/auth/logout", a.Logout)
}

// RegisterTasks wires the screens every authenticated role can reach:
// dashboard, work tasks, work reports and the manual refresh.  List reads
// run behind the response cache so bursts of duplicate reads within the
// cache TTL collapse into one backend round trip.
func RegisterTasks(e *echo.Echo, w *handler.WorkHandler, d *handler.DashboardHandler,
    r *handler.ReportHandler, s *handler.SyncHandler, jwtSecret string, cache echo.MiddlewareFunc) {

    g := e.Group("/v1")
    g.Use(middleware.JWTAuth(jwtSecret))
    g.Use(middleware.RequireLevel(model.RoleUser))

    g.GET("/dashboard/stats", d.Stats)
    g.POST("/refresh", s.Refresh)

    g.GET("/tasks", w.List, cache)
    g.POST("/tasks", w.Create)
    g.PUT("/tasks/:id", w.Update)
    g.DELETE("/tasks/:id", w.Delete)
    g.GET("/tasks/export/excel", r.WorkExcel)
    g.GET("/tasks/export/print", r.WorkPrint)
}

// RegisterRepairs wires the repair-task screens, restricted to technicians
// and admins.
func RegisterRepairs(e *echo.Echo, h *handler.RepairHandler, r *handler.ReportHandler,
    jwtSecret string, cache echo.MiddlewareFunc) {

    g := e.Group("/v1/repairs")
    g.Use(middleware.JWTAuth(jwtSecret))
    g.Use(middleware.RequireLevel(model.RoleTechnician))

    g.GET("", h.List, cache)
    g.POST("", h.Create)
    g.PUT("/:id", h.Update)
    g.DELETE("/:id", h.Delete)
    g.GET("/export/excel", r.RepairExcel)
    g.GET("/export/print", r.RepairPrint)
}

// RegisterUsers wires the admin-only user management screen.
func RegisterUsers(e *echo.Echo, h *handler.UserHandler, jwtSecret string) {
    g := e.Group("/v1/users")
    g.Use(middleware.JWTAuth(jwtSecret))
    g.Use(middleware.RequireLevel(model.RoleAdmin))

    g.GET("", h.List)
    g.POST("", h.Create)
    g.PUT("/:id", h.Update)
    g.DELETE("/:id", h.Delete)
    g.POST("/:id/reset-password", h.ResetPassword)
}
