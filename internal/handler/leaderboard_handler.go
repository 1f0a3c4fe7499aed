package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"showcase/internal/errors"
	"showcase/internal/service"
)

// LeaderboardHandler handles the ranked top-projects endpoint.
type LeaderboardHandler struct {
	leaderboardService service.LeaderboardService
}

// NewLeaderboardHandler creates a new leaderboard handler.
func NewLeaderboardHandler(leaderboardService service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// GetLeaderboard godoc
// @Summary Top active projects ranked by votes
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Number of entries (default 3)"
// @Success 200 {array} service.RankedProject
// @Failure 500 {object} errors.ErrorResponse
// @Router /leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c echo.Context) error {
	n := service.DefaultLeaderboardSize
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid limit",
				Code:  "INVALID_LIMIT",
			})
		}
		n = parsed
	}

	ranked, err := h.leaderboardService.TopProjects(c.Request().Context(), n)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ranked)
}
