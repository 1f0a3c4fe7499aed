package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"showcase/internal/errors"
	"showcase/internal/service"
)

// VoteHandler handles vote endpoints.
type VoteHandler struct {
	voteService service.VoteService
}

// NewVoteHandler creates a new vote handler.
func NewVoteHandler(voteService service.VoteService) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

// VoteResponse represents the outcome of a vote.
type VoteResponse struct {
	ProjectID string `json:"project_id"`
	Votes     int64  `json:"votes"`
}

// VotedResponse reports whether the caller already voted for a project.
type VotedResponse struct {
	ProjectID string `json:"project_id"`
	Voted     bool   `json:"voted"`
}

// Vote godoc
// @Summary Vote for a project
// @Tags votes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} VoteResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{id}/vote [post]
func (h *VoteHandler) Vote(c echo.Context) error {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid project id",
			Code:  "INVALID_UUID",
		})
	}

	userID, err := currentUserID(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	newCount, err := h.voteService.Vote(c.Request().Context(), projectID, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, VoteResponse{
		ProjectID: projectID.String(),
		Votes:     newCount,
	})
}

// HasVoted godoc
// @Summary Whether the caller already voted for a project
// @Tags votes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} VotedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{id}/voted [get]
func (h *VoteHandler) HasVoted(c echo.Context) error {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid project id",
			Code:  "INVALID_UUID",
		})
	}

	userID, err := currentUserID(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	voted, err := h.voteService.HasVoted(c.Request().Context(), userID, projectID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, VotedResponse{
		ProjectID: projectID.String(),
		Voted:     voted,
	})
}
