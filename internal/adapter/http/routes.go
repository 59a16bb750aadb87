package http

import (
	"time"

	"zenflow/internal/adapter/http/handlers"
	"zenflow/internal/adapter/http/middleware"
	"zenflow/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	redis "github.com/redis/go-redis/v9"
)

type Handlers struct {
	Health *handlers.HealthHandler
	Auth   *handlers.AuthHandler
	Tasks  *handlers.TaskHandler
	Focus  *handlers.FocusHandler
	Admin  *handlers.AdminHandler
}

type Options struct {
	// Identity resolves bearer tokens on protected routes.
	Identity ports.IdentityService
	// RateLimiter backs the auth rate limit; nil disables it.
	RateLimiter      *redis.Client
	AuthRateLimit    int
	AuthRateWindow   time.Duration
	SimulatedLatency time.Duration
}

func RegisterRoutes(r *gin.Engine, h Handlers, opts Options) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware(), middleware.SimulatedLatency(opts.SimulatedLatency))
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		auth := api.Group("/auth")
		limited := middleware.RedisRateLimit(opts.RateLimiter, opts.AuthRateLimit, opts.AuthRateWindow)
		auth.POST("/register", limited, h.Auth.Register)
		auth.POST("/login", limited, h.Auth.Login)

		protected := api.Group("")
		protected.Use(middleware.BearerAuth(opts.Identity))
		protected.POST("/auth/logout", h.Auth.Logout)
		protected.GET("/auth/session", h.Auth.CurrentSession)
		protected.GET("/tasks", h.Tasks.ListTasks)
		protected.POST("/tasks", h.Tasks.CreateTask)
		protected.PATCH("/tasks/:id", h.Tasks.UpdateTask)
		protected.DELETE("/tasks/:id", h.Tasks.DeleteTask)
		protected.POST("/focus/select", h.Focus.Select)
		protected.POST("/focus/:id/complete", h.Focus.Complete)
		protected.POST("/focus/:id/break", h.Focus.TakeBreak)
		protected.GET("/admin/users", h.Admin.ListUsers)
		protected.GET("/admin/stats", h.Admin.GlobalStats)
	}
}
