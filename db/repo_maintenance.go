// db/repo_maintenance.go
//
// Maintenance lifecycle:
//
//	Scheduled -> Ongoing -> UnderReview -> Completed | Ongoing
//
// A rejected review bounces the record back to Ongoing and flags the item
// UnderRepair; an accepted review completes it and restores the item. Only
// the assigned technician may start or submit the work.
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

type CreateMaintenanceInput struct {
	ItemID       string
	TechnicianID string
	ClerkID      string
	Task         string
	StartDate    time.Time
	EndDate      time.Time
}

// CreateMaintenance schedules a repair task against one item. The window is
// validated under the item row lock against both record sets: a Reserved or
// Borrowed reservation on the unit blocks it, a Pending request does not.
func (r *Repo) CreateMaintenance(ctx context.Context, in CreateMaintenanceInput) (*models.Maintenance, error) {
	var m *models.Maintenance
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := lockItem(tx, in.ItemID)
		if err != nil {
			return err
		}
		if item.Status == models.ItemUnavailable {
			return ErrItemUnavailable
		}

		var tech models.User
		err = tx.First(&tech, "id = ? AND is_active", in.TechnicianID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}
		if tech.Role != models.RoleTechnician {
			return ErrNotTechnicianRole
		}

		taken, err := itemSlotTaken(tx, item.ID, "", in.StartDate, in.EndDate)
		if err != nil {
			return err
		}
		if taken {
			return ErrTimeSlotUnavailable
		}

		m = &models.Maintenance{
			ID:             uuid.NewString(),
			ItemID:         item.ID,
			TechnicianID:   tech.ID,
			CreatedClerkID: in.ClerkID,
			Task:           in.Task,
			StartDate:      in.StartDate,
			EndDate:        in.EndDate,
			Status:         models.MaintenanceScheduled,
			IsActive:       true,
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// BorrowMaintenance is the technician collecting the item to start work.
// The item status is left alone here; it only changes on review.
func (r *Repo) BorrowMaintenance(ctx context.Context, maintenanceID, technicianID string) (*models.Maintenance, error) {
	var m models.Maintenance
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockMaintenance(tx, &m, maintenanceID); err != nil {
			return err
		}
		if m.Status != models.MaintenanceScheduled {
			return ErrMaintenanceNotScheduled
		}
		if m.TechnicianID != technicianID {
			return ErrNotAssignedTechnician
		}
		m.Status = models.MaintenanceOngoing
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SubmitMaintenance hands the finished work over for clerk review.
func (r *Repo) SubmitMaintenance(ctx context.Context, maintenanceID, technicianID, note string, cost float64) (*models.Maintenance, error) {
	var m models.Maintenance
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockMaintenance(tx, &m, maintenanceID); err != nil {
			return err
		}
		if m.Status != models.MaintenanceOngoing {
			return ErrMaintenanceNotOngoing
		}
		if m.TechnicianID != technicianID {
			return ErrNotAssignedTechnicianSubmit
		}
		now := time.Now().UTC()
		m.Status = models.MaintenanceUnderReview
		m.SubmitNote = note
		m.Cost = &cost
		m.SubmittedAt = &now
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ReviewMaintenance either completes the task and returns the item to
// service, or rejects the submission: the record goes back to Ongoing and
// the item stays flagged UnderRepair until the rework passes review.
func (r *Repo) ReviewMaintenance(ctx context.Context, maintenanceID, clerkID string, accepted bool, note string) (*models.Maintenance, error) {
	var m models.Maintenance
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockMaintenance(tx, &m, maintenanceID); err != nil {
			return err
		}
		if m.Status != models.MaintenanceUnderReview {
			return ErrMaintenanceNotUnderReview
		}
		item, err := lockItem(tx, m.ItemID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		m.ReviewedClerkID = &clerkID
		m.ReviewNote = note
		m.ReviewedAt = &now

		itemStatus := models.ItemUnderRepair
		if accepted {
			m.Status = models.MaintenanceCompleted
			itemStatus = models.ItemAvailable
		} else {
			m.Status = models.MaintenanceOngoing
		}
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		return tx.Model(&models.Item{}).
			Where("id = ?", item.ID).
			Update("status", itemStatus).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repo) FindMaintenanceByID(ctx context.Context, id string) (*models.Maintenance, error) {
	var m models.Maintenance
	if err := r.DB.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaintenanceNotFound
		}
		return nil, err
	}
	return &m, nil
}

type MaintenanceFilter struct {
	ItemID       string
	TechnicianID string
	Status       models.MaintenanceStatus
	Page         int
	Size         int
}

func (r *Repo) ListMaintenances(ctx context.Context, f MaintenanceFilter) ([]models.Maintenance, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Size <= 0 || f.Size > 200 {
		f.Size = 20
	}
	q := r.DB.WithContext(ctx).Model(&models.Maintenance{}).Order("created_at DESC")
	if f.ItemID != "" {
		q = q.Where("item_id = ?", f.ItemID)
	}
	if f.TechnicianID != "" {
		q = q.Where("technician_id = ?", f.TechnicianID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var ms []models.Maintenance
	err := q.Offset((f.Page - 1) * f.Size).Limit(f.Size).Find(&ms).Error
	return ms, err
}

func lockMaintenance(tx *gorm.DB, m *models.Maintenance, id string) error {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(m, "id = ? AND is_active", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMaintenanceNotFound
	}
	return err
}
