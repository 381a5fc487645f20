package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/SharadaShehan/IMS-Backend-sub000/db"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{db.ErrEquipmentNotFound, http.StatusNotFound},
		{db.ErrItemNotFound, http.StatusNotFound},
		{db.ErrReservationNotFound, http.StatusNotFound},
		{db.ErrMaintenanceNotFound, http.StatusNotFound},
		{db.ErrNotReservationOwner, http.StatusForbidden},
		{db.ErrNotAssignedTechnician, http.StatusForbidden},
		{db.ErrNotReservationRequesterRole, http.StatusForbidden},
		{db.ErrReservationNotPending, http.StatusConflict},
		{db.ErrItemAlreadyBorrowed, http.StatusConflict},
		{db.ErrMaintenanceNotUnderReview, http.StatusConflict},
		{db.ErrTimeSlotUnavailable, http.StatusConflict},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := httpStatus(tt.err); got != tt.want {
			t.Errorf("httpStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2024-10-01")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if d.Year() != 2024 || d.Month() != 10 || d.Day() != 1 {
		t.Errorf("parseDate = %v", d)
	}
	if _, err := parseDate("01/10/2024"); err == nil {
		t.Error("expected error for non ISO date")
	}
}
