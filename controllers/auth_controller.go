package controllers

import (
	"net/http"

	"github.com/SharadaShehan/IMS-Backend-sub000/app"

	"golang.org/x/crypto/bcrypt"
)

// Login checks credentials and issues an access token.
func (s *Srv) Login(c *app.Ctx) {
	var in struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	u, err := s.Repo.FindUserByEmail(c.Request.Context(), in.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, app.H{"error": "invalid credentials"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		c.JSON(http.StatusUnauthorized, app.H{"error": "invalid credentials"})
		return
	}

	token, err := s.issueToken(c.Request.Context(), u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	_ = s.Repo.TouchUserLogin(c.Request.Context(), u.ID)

	c.JSON(http.StatusOK, app.H{"token": token, "user": u})
}

// Logout revokes the current token.
func (s *Srv) Logout(c *app.Ctx) {
	if v, ok := c.Get("tokenID"); ok {
		jti, _ := v.(string)
		_ = s.Tokens.Delete(c.Request.Context(), jti)
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

func (s *Srv) Whoami(c *app.Ctx) {
	u, err := s.Repo.FindUserByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"user": u})
}
