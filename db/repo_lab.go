// db/repo_lab.go
package db

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/SharadaShehan/IMS-Backend-sub000/models"

	"gorm.io/gorm"
)

// Labs

func (r *Repo) CreateLab(ctx context.Context, lab *models.Lab) error {
	return r.DB.WithContext(ctx).Create(lab).Error
}

func (r *Repo) FindLabByID(ctx context.Context, id string) (*models.Lab, error) {
	var lab models.Lab
	if err := r.DB.WithContext(ctx).First(&lab, "id = ? AND is_active", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLabNotFound
		}
		return nil, err
	}
	return &lab, nil
}

func (r *Repo) ListLabs(ctx context.Context) ([]models.Lab, error) {
	var labs []models.Lab
	err := r.DB.WithContext(ctx).Where("is_active").Order("name").Find(&labs).Error
	return labs, err
}

// DeactivateLab soft-deletes the lab and cascades the flag down to its
// equipments and their items, in one transaction. History rows stay put.
func (r *Repo) DeactivateLab(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Lab{}).
			Where("id = ? AND is_active", id).
			Update("is_active", false)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrLabNotFound
		}
		if err := tx.Model(&models.Item{}).
			Where("equipment_id IN (?)",
				tx.Model(&models.Equipment{}).Select("id").Where("lab_id = ?", id)).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Equipment{}).
			Where("lab_id = ?", id).
			Update("is_active", false).Error
	})
}

// Equipments

func (r *Repo) CreateEquipment(ctx context.Context, eq *models.Equipment) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Lab{}).
			Where("id = ? AND is_active", eq.LabID).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrLabNotFound
		}
		return tx.Create(eq).Error
	})
}

func (r *Repo) FindEquipmentByID(ctx context.Context, id string) (*models.Equipment, error) {
	var eq models.Equipment
	if err := r.DB.WithContext(ctx).First(&eq, "id = ? AND is_active", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	return &eq, nil
}

func (r *Repo) ListEquipments(ctx context.Context, labID, q string) ([]models.Equipment, error) {
	tx := r.DB.WithContext(ctx).Where("is_active")
	if labID != "" {
		tx = tx.Where("lab_id = ?", labID)
	}
	if q = strings.TrimSpace(q); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(model) LIKE ?", like, like)
	}
	var eqs []models.Equipment
	err := tx.Order("name").Find(&eqs).Error
	return eqs, err
}

func (r *Repo) DeactivateEquipment(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Equipment{}).
			Where("id = ? AND is_active", id).
			Update("is_active", false)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrEquipmentNotFound
		}
		return tx.Model(&models.Item{}).
			Where("equipment_id = ?", id).
			Update("is_active", false).Error
	})
}

// Items

func (r *Repo) CreateItem(ctx context.Context, it *models.Item) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Equipment{}).
			Where("id = ? AND is_active", it.EquipmentID).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrEquipmentNotFound
		}
		return tx.Create(it).Error
	})
}

func (r *Repo) FindItemByID(ctx context.Context, id string) (*models.Item, error) {
	var it models.Item
	if err := r.DB.WithContext(ctx).First(&it, "id = ? AND is_active", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &it, nil
}

// DeactivateItem refuses while a reservation holds the unit or a maintenance
// is open on it; the lifecycle has to close first.
func (r *Repo) DeactivateItem(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.ItemReservation{}).
			Where("item_id = ? AND is_active AND status IN ?", id, reservationHolding).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrItemAlreadyBorrowed
		}
		if err := tx.Model(&models.Maintenance{}).
			Where("item_id = ? AND is_active AND status NOT IN ?", id, maintenanceReleased).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrItemUnavailable
		}
		res := tx.Model(&models.Item{}).
			Where("id = ? AND is_active", id).
			Update("is_active", false)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrItemNotFound
		}
		return nil
	})
}

// ItemDetailRow is the clerk-facing item listing: each unit joined with the
// reservation currently holding it, if any.
type ItemDetailRow struct {
	ID           string            `json:"id"`
	EquipmentID  string            `json:"equipmentId"`
	SerialNumber string            `json:"serialNumber"`
	Status       models.ItemStatus `json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`

	ReservationID *string    `json:"reservationId,omitempty"`
	HolderID      *string    `json:"holderId,omitempty"`
	HolderName    *string    `json:"holderName,omitempty"`
	HeldFrom      *time.Time `json:"heldFrom,omitempty"`
	HeldUntil     *time.Time `json:"heldUntil,omitempty"`
}

func (r *Repo) ListItemsWithHolder(ctx context.Context, equipmentID string) ([]ItemDetailRow, error) {
	db := r.DB.WithContext(ctx)

	// latest holding reservation per item
	sub := db.
		Table(models.ReservationTable+" res").
		Select(`DISTINCT ON (res.item_id) res.id, res.item_id, res.user_id, res.start_date, res.end_date`).
		Where("res.is_active AND res.status IN ?", reservationHolding).
		Order("res.item_id, res.start_date DESC")

	qry := db.
		Table(models.ItemTable+" i").
		Select(`
			i.id, i.equipment_id, i.serial_number, i.status, i.created_at, i.updated_at,
			hr.id         AS reservation_id,
			hr.user_id    AS holder_id,
			u.display_name AS holder_name,
			hr.start_date AS held_from,
			hr.end_date   AS held_until
		`).
		Joins("LEFT JOIN (?) AS hr ON hr.item_id = i.id", sub).
		Joins("LEFT JOIN "+models.UserTable+" u ON u.id = hr.user_id").
		Where("i.is_active")
	if equipmentID != "" {
		qry = qry.Where("i.equipment_id = ?", equipmentID)
	}

	var rows []ItemDetailRow
	if err := qry.Order("i.serial_number").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
