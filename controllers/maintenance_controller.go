// controllers/maintenance_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/SharadaShehan/IMS-Backend-sub000/app"
	"github.com/SharadaShehan/IMS-Backend-sub000/db"
	"github.com/SharadaShehan/IMS-Backend-sub000/models"

	"github.com/gin-gonic/gin"
)

type MaintenanceController struct{ *Srv }

func NewMaintenanceController(s *Srv) *MaintenanceController {
	return &MaintenanceController{Srv: s}
}

func (mc *MaintenanceController) Create(c *gin.Context) {
	var in struct {
		ItemID       string `json:"itemId" binding:"required"`
		TechnicianID string `json:"technicianId" binding:"required"`
		Task         string `json:"task" binding:"required"`
		StartDate    string `json:"startDate" binding:"required"`
		EndDate      string `json:"endDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	start, err := parseDate(in.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid startDate"})
		return
	}
	end, err := parseDate(in.EndDate)
	if err != nil || end.Before(start) {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid endDate"})
		return
	}

	m, err := mc.Repo.CreateMaintenance(c.Request.Context(), db.CreateMaintenanceInput{
		ItemID:       in.ItemID,
		TechnicianID: in.TechnicianID,
		ClerkID:      currentUserID(c),
		Task:         in.Task,
		StartDate:    start,
		EndDate:      end,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// Borrow is the assigned technician collecting the item for the task.
func (mc *MaintenanceController) Borrow(c *gin.Context) {
	m, err := mc.Repo.BorrowMaintenance(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (mc *MaintenanceController) Submit(c *gin.Context) {
	var in struct {
		Note string  `json:"note"`
		Cost float64 `json:"cost"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	m, err := mc.Repo.SubmitMaintenance(c.Request.Context(),
		c.Param("id"), currentUserID(c), in.Note, in.Cost)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// Review completes the task or bounces it back to Ongoing.
func (mc *MaintenanceController) Review(c *gin.Context) {
	var in struct {
		Accepted *bool  `json:"accepted" binding:"required"`
		Note     string `json:"note"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	m, err := mc.Repo.ReviewMaintenance(c.Request.Context(),
		c.Param("id"), currentUserID(c), *in.Accepted, in.Note)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (mc *MaintenanceController) Get(c *gin.Context) {
	m, err := mc.Repo.FindMaintenanceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (mc *MaintenanceController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	ms, err := mc.Repo.ListMaintenances(c.Request.Context(), db.MaintenanceFilter{
		ItemID:       c.Query("itemId"),
		TechnicianID: c.Query("technicianId"),
		Status:       models.MaintenanceStatus(c.Query("status")),
		Page:         page,
		Size:         size,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"maintenances": ms})
}

// ListMine lists the tasks assigned to the calling technician.
func (mc *MaintenanceController) ListMine(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	ms, err := mc.Repo.ListMaintenances(c.Request.Context(), db.MaintenanceFilter{
		TechnicianID: currentUserID(c),
		Status:       models.MaintenanceStatus(c.Query("status")),
		Page:         page,
		Size:         size,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"maintenances": ms})
}
