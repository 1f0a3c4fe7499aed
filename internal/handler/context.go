package handler

import (
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"showcase/internal/auth"
	"showcase/internal/errors"
)

// currentClaims pulls the authenticated caller's claims out of the echo
// context populated by the JWT middleware.
func currentClaims(c echo.Context) (*auth.Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, errors.ErrNotAuthenticated
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, errors.ErrNotAuthenticated
	}
	return claims, nil
}

// currentUserID returns the authenticated caller's user ID.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	claims, err := currentClaims(c)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, errors.ErrNotAuthenticated
	}
	return id, nil
}
