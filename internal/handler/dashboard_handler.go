package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"showcase/internal/errors"
	"showcase/internal/model"
	"showcase/internal/service"
)

// DashboardHandler handles the authenticated owner dashboard and profile.
type DashboardHandler struct {
	projectService service.ProjectService
	userService    service.UserService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(projectService service.ProjectService, userService service.UserService) *DashboardHandler {
	return &DashboardHandler{
		projectService: projectService,
		userService:    userService,
	}
}

// DashboardResponse bundles the owner's profile, projects and stats.
type DashboardResponse struct {
	User     *model.User        `json:"user"`
	Projects []model.Project    `json:"projects"`
	Stats    *service.UserStats `json:"stats"`
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"omitempty,max=255"`
	PhotoURL    string `json:"photo_url" validate:"omitempty,url"`
	Bio         string `json:"bio"`
	Department  string `json:"department"`
	Year        string `json:"year"`
	Phone       string `json:"phone"`
}

// GetDashboard godoc
// @Summary Owner dashboard: profile, own projects and vote stats
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	ctx := c.Request().Context()

	user, err := h.userService.GetUser(ctx, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	projects, err := h.projectService.ListByOwner(ctx, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	stats, err := h.projectService.UserStats(ctx, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, DashboardResponse{
		User:     user,
		Projects: projects,
		Stats:    stats,
	})
}

// GetMe godoc
// @Summary Current user's profile
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /me [get]
func (h *DashboardHandler) GetMe(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	user, err := h.userService.GetUser(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe godoc
// @Summary Update the current user's profile
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /me [put]
func (h *DashboardHandler) UpdateMe(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), userID, service.ProfileInput{
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
		Bio:         req.Bio,
		Department:  req.Department,
		Year:        req.Year,
		Phone:       req.Phone,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}
