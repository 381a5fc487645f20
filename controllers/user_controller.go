package controllers

import (
	"net/http"
	"strconv"

	"github.com/SharadaShehan/IMS-Backend-sub000/app"
	"github.com/SharadaShehan/IMS-Backend-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserController struct{ *Srv }

func NewUserController(s *Srv) *UserController { return &UserController{Srv: s} }

func (uc *UserController) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	res, err := uc.Repo.ListUsers(c.Request.Context(),
		c.Query("q"), models.Role(c.Query("role")), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (uc *UserController) GetUser(c *gin.Context) {
	u, err := uc.Repo.FindUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var in struct {
		Email         string      `json:"email" binding:"required,email"`
		DisplayName   string      `json:"displayName" binding:"required"`
		Password      string      `json:"password" binding:"required,min=8"`
		Role          models.Role `json:"role" binding:"required"`
		ContactNumber string      `json:"contactNumber"`
		LabID         *string     `json:"labId"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if !in.Role.Valid() {
		c.JSON(http.StatusBadRequest, app.H{"error": "unknown role"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	u := &models.User{
		ID:            uuid.NewString(),
		Email:         in.Email,
		DisplayName:   in.DisplayName,
		PasswordHash:  string(hash),
		Role:          in.Role,
		ContactNumber: in.ContactNumber,
		LabID:         in.LabID,
		IsActive:      true,
	}
	if err := uc.Repo.CreateUser(c.Request.Context(), u); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, u)
}

// DeactivateUser soft-deletes the account and revokes its live tokens.
func (uc *UserController) DeactivateUser(c *gin.Context) {
	id := c.Param("id")
	if err := uc.Repo.DeactivateUser(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	_ = uc.Tokens.RevokeAllForUser(c.Request.Context(), id)
	c.JSON(http.StatusOK, app.H{"ok": true})
}
