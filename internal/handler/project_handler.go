package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"showcase/internal/errors"
	"showcase/internal/service"
)

// ProjectHandler handles the public project endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// CategoryCount is one entry of the category filter list.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ListProjects godoc
// @Summary List active projects, newest first
// @Tags projects
// @Produce json
// @Param category query string false "Category filter (All or one of the known categories)"
// @Success 200 {array} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	projects, err := h.projectService.ListPublic(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, projects)
}

// GetProject godoc
// @Summary Get a project by ID
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid project id",
			Code:  "INVALID_UUID",
		})
	}

	project, err := h.projectService.GetProject(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, project)
}

// ListCategories godoc
// @Summary List the category filter entries with counts
// @Tags projects
// @Produce json
// @Success 200 {array} CategoryCount
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories [get]
func (h *ProjectHandler) ListCategories(c echo.Context) error {
	projects, err := h.projectService.ListPublic(c.Request().Context(), "")
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	names := service.Categories(projects)
	out := make([]CategoryCount, 0, len(names))
	for _, name := range names {
		out = append(out, CategoryCount{
			Name:  name,
			Count: service.CountFor(name, projects),
		})
	}
	return c.JSON(http.StatusOK, out)
}
