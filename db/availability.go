// db/availability.go
//
// Shared time-slot conflict check. Every lifecycle write consults this twice,
// once against the maintenance set and once against the reservation set, with
// the same candidate window: a maintenance booking and a reservation booking
// must never claim related items for overlapping dates.
//
// Overlap is closed-interval on both ends: an existing record conflicts when
// record.end_date >= start AND record.start_date <= end. Only active records
// count, and only in statuses that actually hold the resource:
//
//   - maintenance: everything except Completed and Canceled;
//   - reservations: only Reserved and Borrowed. A Pending request has not
//     been committed to an item and must not block other bookings.
package db

import (
	"context"
	"time"

	"github.com/SharadaShehan/IMS-Backend-sub000/models"

	"gorm.io/gorm"
)

const overlapCond = "end_date >= ? AND start_date <= ?"

var reservationHolding = []models.ReservationStatus{
	models.ReservationReserved, models.ReservationBorrowed,
}

var maintenanceReleased = []models.MaintenanceStatus{
	models.MaintenanceCompleted, models.MaintenanceCanceled,
}

// itemSlotTaken checks both record sets for a single item. excludeReservation
// lets the accept transition re-validate a reservation's own window without
// the record blocking itself.
func itemSlotTaken(tx *gorm.DB, itemID, excludeReservation string, start, end time.Time) (bool, error) {
	var n int64
	if err := tx.Model(&models.Maintenance{}).
		Where("item_id = ? AND is_active", itemID).
		Where("status NOT IN ?", maintenanceReleased).
		Where(overlapCond, start, end).
		Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}

	q := tx.Model(&models.ItemReservation{}).
		Where("item_id = ? AND is_active", itemID).
		Where("status IN ?", reservationHolding).
		Where(overlapCond, start, end)
	if excludeReservation != "" {
		q = q.Where("id <> ?", excludeReservation)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// equipmentSlotTaken is the coarse check run before a request has a concrete
// item: any open maintenance on any unit of the equipment, or any holding
// reservation against the equipment, blocks the window.
func equipmentSlotTaken(tx *gorm.DB, equipmentID string, start, end time.Time) (bool, error) {
	var n int64
	if err := tx.Model(&models.Maintenance{}).
		Joins("JOIN "+models.ItemTable+" i ON i.id = "+models.MaintenanceTable+".item_id").
		Where("i.equipment_id = ?", equipmentID).
		Where(models.MaintenanceTable+".is_active").
		Where(models.MaintenanceTable+".status NOT IN ?", maintenanceReleased).
		Where(models.MaintenanceTable+".end_date >= ? AND "+models.MaintenanceTable+".start_date <= ?", start, end).
		Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}

	if err := tx.Model(&models.ItemReservation{}).
		Where("equipment_id = ? AND is_active", equipmentID).
		Where("status IN ?", reservationHolding).
		Where(overlapCond, start, end).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// IsItemSlotAvailable reports whether the window [start, end] is free for the
// given item. Read-only variant for API consumers; the lifecycle transitions
// run the same check inside their own transaction, under the item row lock.
func (r *Repo) IsItemSlotAvailable(ctx context.Context, itemID string, start, end time.Time) (bool, error) {
	taken, err := itemSlotTaken(r.DB.WithContext(ctx), itemID, "", start, end)
	return !taken, err
}

// IsEquipmentSlotAvailable is the equipment-scoped variant used before an
// item has been assigned.
func (r *Repo) IsEquipmentSlotAvailable(ctx context.Context, equipmentID string, start, end time.Time) (bool, error) {
	taken, err := equipmentSlotTaken(r.DB.WithContext(ctx), equipmentID, start, end)
	return !taken, err
}
