package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"showcase/internal/errors"
	"showcase/internal/model"
	"showcase/internal/service"
)

// AdminHandler handles the admin console endpoints.
type AdminHandler struct {
	projectService service.ProjectService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(projectService service.ProjectService) *AdminHandler {
	return &AdminHandler{projectService: projectService}
}

// TeamMemberRequest is one embedded team member in a project payload.
type TeamMemberRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Role        string `json:"role" validate:"required"`
	LinkedinURL string `json:"linkedin_url" validate:"omitempty,url"`
	Avatar      string `json:"avatar"`
	Department  string `json:"department"`
	Year        string `json:"year"`
}

// CreateProjectRequest represents a new project submission.
type CreateProjectRequest struct {
	Title            string              `json:"title" validate:"required,max=255"`
	Description      string              `json:"description" validate:"required"`
	ShortDescription string              `json:"short_description" validate:"omitempty,max=255"`
	Thumbnail        string              `json:"thumbnail"`
	DemoVideoURL     string              `json:"demo_video_url" validate:"omitempty,url"`
	GithubURL        string              `json:"github_url" validate:"omitempty,url"`
	LiveURL          string              `json:"live_url" validate:"omitempty,url"`
	DocumentationURL string              `json:"documentation_url" validate:"omitempty,url"`
	TeamMembers      []TeamMemberRequest `json:"team_members" validate:"dive"`
	Tags             []string            `json:"tags"`
	Technologies     []string            `json:"technologies"`
	Category         string              `json:"category" validate:"required"`
}

// SetStatusRequest moves a project between lifecycle states.
type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active archived draft"`
}

// ImportProjectsRequest bulk-creates projects.
type ImportProjectsRequest struct {
	Projects []CreateProjectRequest `json:"projects" validate:"required,dive"`
}

// ImportProjectsResponse reports how many projects were imported.
type ImportProjectsResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

func (r CreateProjectRequest) toInput() service.ProjectInput {
	members := make([]model.TeamMember, 0, len(r.TeamMembers))
	for _, m := range r.TeamMembers {
		members = append(members, model.TeamMember{
			Name:        m.Name,
			Email:       m.Email,
			Role:        m.Role,
			LinkedinURL: m.LinkedinURL,
			Avatar:      m.Avatar,
			Department:  m.Department,
			Year:        m.Year,
		})
	}
	return service.ProjectInput{
		Title:            r.Title,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Thumbnail:        r.Thumbnail,
		DemoVideoURL:     r.DemoVideoURL,
		GithubURL:        r.GithubURL,
		LiveURL:          r.LiveURL,
		DocumentationURL: r.DocumentationURL,
		TeamMembers:      members,
		Tags:             r.Tags,
		Technologies:     r.Technologies,
		Category:         model.Category(r.Category),
	}
}

// CreateProject godoc
// @Summary Create a project
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProjectRequest true "Project data"
// @Success 201 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects [post]
func (h *AdminHandler) CreateProject(c echo.Context) error {
	var req CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, err := currentUserID(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	project, err := h.projectService.CreateProject(c.Request().Context(), req.toInput(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, project)
}

// DeleteProject godoc
// @Summary Permanently delete a project
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{id} [delete]
func (h *AdminHandler) DeleteProject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid project id",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.projectService.DeleteProject(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "project deleted",
	})
}

// ToggleFeatured godoc
// @Summary Toggle a project's featured flag
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{id}/featured [patch]
func (h *AdminHandler) ToggleFeatured(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid project id",
			Code:  "INVALID_UUID",
		})
	}

	project, err := h.projectService.ToggleFeatured(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, project)
}

// SetStatus godoc
// @Summary Set a project's lifecycle status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body SetStatusRequest true "New status"
// @Success 200 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{id}/status [patch]
func (h *AdminHandler) SetStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid project id",
			Code:  "INVALID_UUID",
		})
	}

	var req SetStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projectService.SetStatus(c.Request().Context(), id, model.ProjectStatus(req.Status))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, project)
}

// ListAllProjects godoc
// @Summary List every project including drafts and archived ones
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Project
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/projects [get]
func (h *AdminHandler) ListAllProjects(c echo.Context) error {
	projects, err := h.projectService.ListAllProjects(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, projects)
}

// PlatformStats godoc
// @Summary Platform-wide project statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.PlatformStats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/stats [get]
func (h *AdminHandler) PlatformStats(c echo.Context) error {
	stats, err := h.projectService.PlatformStats(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stats)
}

// ImportProjects godoc
// @Summary Bulk-create projects
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ImportProjectsRequest true "Projects to import"
// @Success 200 {object} ImportProjectsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/projects/import [post]
func (h *AdminHandler) ImportProjects(c echo.Context) error {
	var req ImportProjectsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, err := currentUserID(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	inputs := make([]service.ProjectInput, 0, len(req.Projects))
	for _, p := range req.Projects {
		inputs = append(inputs, p.toInput())
	}

	count, err := h.projectService.ImportProjects(c.Request().Context(), inputs, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ImportProjectsResponse{
		Message: "projects imported successfully",
		Count:   count,
	})
}
