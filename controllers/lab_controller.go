// controllers/lab_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/SharadaShehan/IMS-Backend-sub000/app"
	"github.com/SharadaShehan/IMS-Backend-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LabController struct{ *Srv }

func NewLabController(s *Srv) *LabController { return &LabController{Srv: s} }

// Labs

func (lc *LabController) CreateLab(c *gin.Context) {
	var in struct {
		Name     string `json:"name" binding:"required"`
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	lab := &models.Lab{ID: uuid.NewString(), Name: in.Name, Location: in.Location, IsActive: true}
	if err := lc.Repo.CreateLab(c.Request.Context(), lab); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, lab)
}

func (lc *LabController) ListLabs(c *gin.Context) {
	labs, err := lc.Repo.ListLabs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"labs": labs})
}

func (lc *LabController) GetLab(c *gin.Context) {
	lab, err := lc.Repo.FindLabByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, lab)
}

func (lc *LabController) DeleteLab(c *gin.Context) {
	if err := lc.Repo.DeactivateLab(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// Equipments

func (lc *LabController) CreateEquipment(c *gin.Context) {
	var in struct {
		LabID                   string `json:"labId" binding:"required"`
		Name                    string `json:"name" binding:"required"`
		Model                   string `json:"model"`
		Specification           string `json:"specification"`
		MaintenanceIntervalDays int    `json:"maintenanceIntervalDays"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	eq := &models.Equipment{
		ID: uuid.NewString(), LabID: in.LabID, Name: in.Name, Model: in.Model,
		Specification: in.Specification, MaintenanceIntervalDays: in.MaintenanceIntervalDays,
		IsActive: true,
	}
	if err := lc.Repo.CreateEquipment(c.Request.Context(), eq); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, eq)
}

func (lc *LabController) ListEquipments(c *gin.Context) {
	eqs, err := lc.Repo.ListEquipments(c.Request.Context(), c.Query("labId"), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"equipments": eqs})
}

func (lc *LabController) GetEquipment(c *gin.Context) {
	eq, err := lc.Repo.FindEquipmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, eq)
}

func (lc *LabController) DeleteEquipment(c *gin.Context) {
	if err := lc.Repo.DeactivateEquipment(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// Items

func (lc *LabController) CreateItem(c *gin.Context) {
	var in struct {
		EquipmentID  string `json:"equipmentId" binding:"required"`
		SerialNumber string `json:"serialNumber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	it := &models.Item{
		ID: uuid.NewString(), EquipmentID: in.EquipmentID,
		SerialNumber: in.SerialNumber, Status: models.ItemAvailable, IsActive: true,
	}
	if err := lc.Repo.CreateItem(c.Request.Context(), it); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, it)
}

// ListItems is the clerk view: each unit joined with its current holder.
func (lc *LabController) ListItems(c *gin.Context) {
	rows, err := lc.Repo.ListItemsWithHolder(c.Request.Context(), c.Query("equipmentId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"items": rows})
}

func (lc *LabController) GetItem(c *gin.Context) {
	it, err := lc.Repo.FindItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

func (lc *LabController) DeleteItem(c *gin.Context) {
	if err := lc.Repo.DeactivateItem(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// ItemAvailability answers whether a window is free for one item.
func (lc *LabController) ItemAvailability(c *gin.Context) {
	start, end, ok := bindWindow(c)
	if !ok {
		return
	}
	free, err := lc.Repo.IsItemSlotAvailable(c.Request.Context(), c.Param("id"), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"available": free})
}

// EquipmentAvailability is the equipment-wide probe requesters use before
// opening a reservation: it runs the same check Create will run.
func (lc *LabController) EquipmentAvailability(c *gin.Context) {
	start, end, ok := bindWindow(c)
	if !ok {
		return
	}
	free, err := lc.Repo.IsEquipmentSlotAvailable(c.Request.Context(), c.Param("id"), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"available": free})
}

func bindWindow(c *gin.Context) (start, end time.Time, ok bool) {
	start, err := parseDate(c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid startDate"})
		return start, end, false
	}
	end, err = parseDate(c.Query("endDate"))
	if err != nil || end.Before(start) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid endDate"})
		return start, end, false
	}
	return start, end, true
}
