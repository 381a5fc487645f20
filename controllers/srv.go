// controllers/srv.go
package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/SharadaShehan/IMS-Backend-sub000/app"
	"github.com/SharadaShehan/IMS-Backend-sub000/db"
	"github.com/SharadaShehan/IMS-Backend-sub000/models"
	"github.com/SharadaShehan/IMS-Backend-sub000/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Srv struct {
	Repo   *db.Repo
	Tokens *session.TokenStore
	Cfg    app.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo:   db.NewRepo(a.DB),
		Tokens: a.Tokens(),
		Cfg:    a.Config,
	}
}

// issueToken signs an access token and registers its jti in Redis so it can
// be revoked later.
func (s *Srv) issueToken(ctx context.Context, u *models.User) (string, error) {
	jti := uuid.NewString()
	now := time.Now()
	claims := app.Claims{
		Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.Cfg.TokenTTL)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Cfg.JWTSecret)
	if err != nil {
		return "", err
	}
	if err := s.Tokens.Create(ctx, jti, u.ID); err != nil {
		return "", err
	}
	return raw, nil
}

// httpStatus maps domain errors to response codes. Anything unrecognized is
// a persistence failure.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, db.ErrLabNotFound),
		errors.Is(err, db.ErrEquipmentNotFound),
		errors.Is(err, db.ErrItemNotFound),
		errors.Is(err, db.ErrUserNotFound),
		errors.Is(err, db.ErrReservationNotFound),
		errors.Is(err, db.ErrMaintenanceNotFound):
		return http.StatusNotFound
	case errors.Is(err, db.ErrNotReservationOwner),
		errors.Is(err, db.ErrNotAssignedTechnician),
		errors.Is(err, db.ErrNotAssignedTechnicianSubmit),
		errors.Is(err, db.ErrNotReservationRequesterRole):
		return http.StatusForbidden
	case db.IsDomainError(err):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func fail(c *app.Ctx, err error) {
	c.JSON(httpStatus(err), app.H{"error": err.Error()})
}

// currentUserID reads the identity set by AuthRequired.
func currentUserID(c *app.Ctx) string {
	v, _ := c.Get("userID")
	id, _ := v.(string)
	return id
}

// parseDate parses the yyyy-mm-dd dates the API uses for booking windows.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
