// db/repo_reservation.go
//
// Reservation lifecycle. Valid paths:
//
//	Pending -> Rejected | Reserved | Canceled
//	Reserved -> Borrowed | Canceled
//	Borrowed -> Returned
//
// Every transition is a single transaction: all checks run before any write,
// and the transitions that touch an item take a FOR UPDATE lock on its row
// first, so two concurrent callers cannot both see a free slot and claim it.
package db

import (
	"context"
	"errors"
	"time"

	"github.com/SharadaShehan/IMS-Backend-sub000/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateReservationInput struct {
	EquipmentID string
	UserID      string
	StartDate   time.Time
	EndDate     time.Time
}

// CreateReservation opens a Pending request. Only students and academic
// staff may request; the window is validated equipment-wide so a request is
// not taken for a slot that is already committed elsewhere. No item is
// claimed yet, which is why a Pending record never blocks other bookings.
func (r *Repo) CreateReservation(ctx context.Context, in CreateReservationInput) (*models.ItemReservation, error) {
	user, err := r.FindUserByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !user.Role.CanRequestReservations() {
		return nil, ErrNotReservationRequesterRole
	}

	var res *models.ItemReservation
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Equipment{}).
			Where("id = ? AND is_active", in.EquipmentID).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrEquipmentNotFound
		}

		taken, err := equipmentSlotTaken(tx, in.EquipmentID, in.StartDate, in.EndDate)
		if err != nil {
			return err
		}
		if taken {
			return ErrTimeSlotUnavailable
		}

		res = &models.ItemReservation{
			ID:          uuid.NewString(),
			EquipmentID: in.EquipmentID,
			UserID:      in.UserID,
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			Status:      models.ReservationPending,
			IsActive:    true,
		}
		return tx.Create(res).Error
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// AcceptReservation commits a concrete item to a Pending request. The window
// is re-validated here, item-scoped, under the item row lock: other bookings
// may have landed since the request was created.
func (r *Repo) AcceptReservation(ctx context.Context, reservationID, clerkID, itemID, note string) (*models.ItemReservation, error) {
	var res models.ItemReservation
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockReservation(tx, &res, reservationID); err != nil {
			return err
		}
		if res.Status != models.ReservationPending {
			return ErrReservationNotPending
		}

		item, err := lockItem(tx, itemID)
		if err != nil {
			return err
		}
		if item.EquipmentID != res.EquipmentID {
			return ErrItemNotFound
		}

		taken, err := itemSlotTaken(tx, item.ID, res.ID, res.StartDate, res.EndDate)
		if err != nil {
			return err
		}
		if taken {
			return ErrTimeSlotUnavailable
		}

		now := time.Now().UTC()
		res.Status = models.ReservationReserved
		res.ItemID = &item.ID
		res.RespondedClerkID = &clerkID
		res.ResponseNote = note
		res.RespondedAt = &now
		return tx.Save(&res).Error
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// RejectReservation closes a Pending request without claiming an item.
func (r *Repo) RejectReservation(ctx context.Context, reservationID, clerkID, note string) (*models.ItemReservation, error) {
	var res models.ItemReservation
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockReservation(tx, &res, reservationID); err != nil {
			return err
		}
		if res.Status != models.ReservationPending {
			return ErrReservationNotPending
		}
		now := time.Now().UTC()
		res.Status = models.ReservationRejected
		res.RespondedClerkID = &clerkID
		res.ResponseNote = note
		res.RespondedAt = &now
		return tx.Save(&res).Error
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// BorrowReservation hands the reserved item out. The item row is locked and
// flipped to Borrowed in the same transaction, serializing against any
// maintenance transition on the same unit.
func (r *Repo) BorrowReservation(ctx context.Context, reservationID, clerkID string) (*models.ItemReservation, error) {
	var res models.ItemReservation
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockReservation(tx, &res, reservationID); err != nil {
			return err
		}
		if res.Status != models.ReservationReserved {
			return ErrReservationNotReserved
		}
		if res.ItemID == nil {
			return ErrItemNotFound
		}
		item, err := lockItem(tx, *res.ItemID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		res.Status = models.ReservationBorrowed
		res.LentClerkID = &clerkID
		res.BorrowedAt = &now
		if err := tx.Save(&res).Error; err != nil {
			return err
		}
		return tx.Model(&models.Item{}).
			Where("id = ?", item.ID).
			Update("status", models.ItemBorrowed).Error
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CancelReservation may only be invoked by the requester, and never once the
// item has physically left with them; a Borrowed record closes via Return.
// The record is deactivated so it drops out of every availability check.
func (r *Repo) CancelReservation(ctx context.Context, reservationID, userID string) (*models.ItemReservation, error) {
	var res models.ItemReservation
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockReservation(tx, &res, reservationID); err != nil {
			return err
		}
		if res.UserID != userID {
			return ErrNotReservationOwner
		}
		if res.Status == models.ReservationBorrowed {
			return ErrItemAlreadyBorrowed
		}
		if !res.Status.CanTransitionTo(models.ReservationCanceled) {
			return ErrReservationClosed
		}
		now := time.Now().UTC()
		res.Status = models.ReservationCanceled
		res.CancelledAt = &now
		res.IsActive = false
		return tx.Save(&res).Error
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ReturnReservation receives the item back and restores it to service.
func (r *Repo) ReturnReservation(ctx context.Context, reservationID, clerkID string) (*models.ItemReservation, error) {
	var res models.ItemReservation
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockReservation(tx, &res, reservationID); err != nil {
			return err
		}
		if res.Status != models.ReservationBorrowed {
			return ErrReservationNotBorrowed
		}
		if res.ItemID == nil {
			return ErrItemNotFound
		}
		item, err := lockItem(tx, *res.ItemID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		res.Status = models.ReservationReturned
		res.ReturnAcceptedClerkID = &clerkID
		res.ReturnedAt = &now
		if err := tx.Save(&res).Error; err != nil {
			return err
		}
		return tx.Model(&models.Item{}).
			Where("id = ?", item.ID).
			Update("status", models.ItemAvailable).Error
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *Repo) FindReservationByID(ctx context.Context, id string) (*models.ItemReservation, error) {
	var res models.ItemReservation
	if err := r.DB.WithContext(ctx).First(&res, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &res, nil
}

type ReservationFilter struct {
	UserID      string
	EquipmentID string
	ItemID      string
	Status      models.ReservationStatus
	Page        int
	Size        int
}

func (r *Repo) ListReservations(ctx context.Context, f ReservationFilter) ([]models.ItemReservation, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Size <= 0 || f.Size > 200 {
		f.Size = 20
	}
	q := r.DB.WithContext(ctx).Model(&models.ItemReservation{}).Order("created_at DESC")
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.EquipmentID != "" {
		q = q.Where("equipment_id = ?", f.EquipmentID)
	}
	if f.ItemID != "" {
		q = q.Where("item_id = ?", f.ItemID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var rs []models.ItemReservation
	err := q.Offset((f.Page - 1) * f.Size).Limit(f.Size).Find(&rs).Error
	return rs, err
}

// lockReservation loads the record FOR UPDATE so concurrent transitions on
// the same reservation serialize.
func lockReservation(tx *gorm.DB, res *models.ItemReservation, id string) error {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(res, "id = ? AND is_active", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrReservationNotFound
	}
	return err
}

func lockItem(tx *gorm.DB, id string) (*models.Item, error) {
	var it models.Item
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&it, "id = ? AND is_active", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}
