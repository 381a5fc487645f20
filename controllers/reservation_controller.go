// controllers/reservation_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/SharadaShehan/IMS-Backend-sub000/app"
	"github.com/SharadaShehan/IMS-Backend-sub000/db"
	"github.com/SharadaShehan/IMS-Backend-sub000/models"

	"github.com/gin-gonic/gin"
)

type ReservationController struct{ *Srv }

func NewReservationController(s *Srv) *ReservationController {
	return &ReservationController{Srv: s}
}

// Create opens a Pending request for the calling user.
func (rc *ReservationController) Create(c *gin.Context) {
	var in struct {
		EquipmentID string `json:"equipmentId" binding:"required"`
		StartDate   string `json:"startDate" binding:"required"`
		EndDate     string `json:"endDate" binding:"required"`
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

	res, err := rc.Repo.CreateReservation(c.Request.Context(), db.CreateReservationInput{
		EquipmentID: in.EquipmentID,
		UserID:      currentUserID(c),
		StartDate:   start,
		EndDate:     end,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Accept assigns a concrete item and commits the slot.
func (rc *ReservationController) Accept(c *gin.Context) {
	var in struct {
		ItemID string `json:"itemId" binding:"required"`
		Note   string `json:"note"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	res, err := rc.Repo.AcceptReservation(c.Request.Context(),
		c.Param("id"), currentUserID(c), in.ItemID, in.Note)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (rc *ReservationController) Reject(c *gin.Context) {
	var in struct {
		Note string `json:"note"`
	}
	_ = c.ShouldBindJSON(&in)
	res, err := rc.Repo.RejectReservation(c.Request.Context(),
		c.Param("id"), currentUserID(c), in.Note)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (rc *ReservationController) Borrow(c *gin.Context) {
	res, err := rc.Repo.BorrowReservation(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (rc *ReservationController) Cancel(c *gin.Context) {
	res, err := rc.Repo.CancelReservation(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (rc *ReservationController) Return(c *gin.Context) {
	res, err := rc.Repo.ReturnReservation(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (rc *ReservationController) Get(c *gin.Context) {
	res, err := rc.Repo.FindReservationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (rc *ReservationController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	rs, err := rc.Repo.ListReservations(c.Request.Context(), db.ReservationFilter{
		UserID:      c.Query("userId"),
		EquipmentID: c.Query("equipmentId"),
		ItemID:      c.Query("itemId"),
		Status:      models.ReservationStatus(c.Query("status")),
		Page:        page,
		Size:        size,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"reservations": rs})
}

// ListMine lists the calling user's own requests.
func (rc *ReservationController) ListMine(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	rs, err := rc.Repo.ListReservations(c.Request.Context(), db.ReservationFilter{
		UserID: currentUserID(c),
		Status: models.ReservationStatus(c.Query("status")),
		Page:   page,
		Size:   size,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"reservations": rs})
}
