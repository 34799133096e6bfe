package server

import (
	"net/http"
	"time"

	"staff-portal/internal/config"
	"staff-portal/internal/handlers"
	"staff-portal/internal/middleware"
	"staff-portal/internal/nav"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, h *handlers.Handler) *gin.Engine {
	r := gin.Default()

	if len(cfg.CORS.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.ConfirmHeader},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	r.Use(sessions.Sessions("portal_session", store))

	// один обработчик за раз, см. middleware.Serialize
	r.Use(middleware.Serialize())
	r.Use(middleware.InjectUser(h.Session))

	// ГЛАВНАЯ И НАВИГАЦИЯ
	r.GET("/", h.Index)
	r.GET("/navigate", h.Navigate)
	r.POST("/navigate", h.Navigate)

	// AUTH
	r.POST("/register", h.Register)
	r.POST("/verify", h.Verify)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.POST("/logout", h.Logout)

	api := r.Group("/api")

	// ПРОФИЛЬ И МОИ ЗАЯВКИ
	api.GET("/profile", middleware.RequireView(h.Router, nav.Profile), h.Profile)

	requests := api.Group("/requests")
	requests.Use(middleware.RequireView(h.Router, nav.Requests))
	requests.GET("", h.ListMyRequests)
	requests.POST("", h.CreateRequest)
	requests.DELETE("/:id",
		middleware.RequireConfirmation("cancel-request", h.CanCancelRequest),
		h.CancelRequest,
	)

	// АККАУНТЫ — только админ
	accounts := api.Group("/accounts")
	accounts.Use(middleware.RequireView(h.Router, nav.Accounts))
	accounts.GET("", h.ListAccounts)
	accounts.POST("", h.CreateAccount)
	accounts.PUT("/:id", h.UpdateAccount)
	accounts.POST("/:id/password", h.ResetPassword)
	accounts.DELETE("/:id",
		middleware.RequireConfirmation("delete-account", h.CanDeleteAccount),
		h.DeleteAccount,
	)

	// ОТДЕЛЫ
	departments := api.Group("/departments")
	departments.Use(middleware.RequireView(h.Router, nav.Departments))
	departments.GET("", h.ListDepartments)
	departments.POST("", h.CreateDepartment)
	departments.PUT("/:id", h.UpdateDepartment)
	departments.DELETE("/:id",
		middleware.RequireConfirmation("delete-department", h.CanDeleteDepartment),
		h.DeleteDepartment,
	)

	// СОТРУДНИКИ
	employees := api.Group("/employees")
	employees.Use(middleware.RequireView(h.Router, nav.Employees))
	employees.GET("", h.ListEmployees)
	employees.POST("", h.CreateEmployee)
	employees.PUT("/:id", h.UpdateEmployee)
	employees.DELETE("/:id",
		middleware.RequireConfirmation("delete-employee", h.CanDeleteEmployee),
		h.DeleteEmployee,
	)

	// АДМИНКА: решения по заявкам и аудит
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin(h.Session))
	admin.GET("/requests", h.ListAllRequests)
	admin.POST("/requests/:id/approve", h.ApproveRequest)
	admin.POST("/requests/:id/reject", h.RejectRequest)
	admin.GET("/audit", h.ListAuditLogs)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
