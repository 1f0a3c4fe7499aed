package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"showcase/internal/auth"
	"showcase/internal/config"
	"showcase/internal/errors"
	"showcase/internal/handler"
	"showcase/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	projectHandler *handler.ProjectHandler,
	leaderboardHandler *handler.LeaderboardHandler,
	voteHandler *handler.VoteHandler,
	dashboardHandler *handler.DashboardHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/projects", projectHandler.ListProjects)
	api.GET("/projects/:id", projectHandler.GetProject)
	api.GET("/categories", projectHandler.ListCategories)
	api.GET("/leaderboard", leaderboardHandler.GetLeaderboard)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.POST("/projects/:id/vote", voteHandler.Vote)
	secured.GET("/projects/:id/voted", voteHandler.HasVoted)
	secured.GET("/dashboard", dashboardHandler.GetDashboard)
	secured.GET("/me", dashboardHandler.GetMe)
	secured.PUT("/me", dashboardHandler.UpdateMe)

	// Admin-only mutations
	admin := secured.Group("", RequireAdmin)

	admin.POST("/projects", adminHandler.CreateProject)
	admin.DELETE("/projects/:id", adminHandler.DeleteProject)
	admin.PATCH("/projects/:id/featured", adminHandler.ToggleFeatured)
	admin.PATCH("/projects/:id/status", adminHandler.SetStatus)
	admin.GET("/admin/projects", adminHandler.ListAllProjects)
	admin.GET("/admin/stats", adminHandler.PlatformStats)
	admin.POST("/admin/projects/import", adminHandler.ImportProjects)
}

// RequireAdmin rejects callers whose token does not carry the admin role.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			httpErr := errors.MapErrorToHTTP(errors.ErrNotAuthenticated)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		claims, ok := token.Claims.(*auth.Claims)
		if !ok || claims.Role != model.RoleAdmin {
			httpErr := errors.MapErrorToHTTP(errors.ErrNotAuthorized)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return next(c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
