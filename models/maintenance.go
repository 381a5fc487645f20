// models/maintenance.go
package models

import "time"

type MaintenanceStatus string

const (
	MaintenanceScheduled   MaintenanceStatus = "Scheduled"
	MaintenanceOngoing     MaintenanceStatus = "Ongoing"
	MaintenanceUnderReview MaintenanceStatus = "UnderReview"
	MaintenanceCompleted   MaintenanceStatus = "Completed"
	MaintenanceCanceled    MaintenanceStatus = "Canceled"
)

// Open reports whether the maintenance still claims its item for the booked
// window. Completed and Canceled records release the item.
func (s MaintenanceStatus) Open() bool {
	return s != MaintenanceCompleted && s != MaintenanceCanceled
}

// CanTransitionTo is the maintenance state machine:
//
//	Scheduled   -> Ongoing
//	Ongoing     -> UnderReview
//	UnderReview -> Completed | Ongoing
//
// A rejected review sends the record back to Ongoing: the task continues, it
// is not restarted. No transition reaches Canceled; the status exists only so
// records imported from elsewhere can carry it.
func (s MaintenanceStatus) CanTransitionTo(next MaintenanceStatus) bool {
	switch s {
	case MaintenanceScheduled:
		return next == MaintenanceOngoing
	case MaintenanceOngoing:
		return next == MaintenanceUnderReview
	case MaintenanceUnderReview:
		return next == MaintenanceCompleted || next == MaintenanceOngoing
	}
	return false
}

// Maintenance is a scheduled repair or service task against one Item. Only
// the assigned technician may start or submit the work; only clerks create
// and review it.
type Maintenance struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	ItemID       string `gorm:"type:uuid;index;not null" json:"itemId"`
	TechnicianID string `gorm:"type:uuid;index;not null" json:"technicianId"`

	StartDate time.Time `gorm:"type:date;not null" json:"startDate"`
	EndDate   time.Time `gorm:"type:date;not null" json:"endDate"`

	CreatedClerkID string `gorm:"type:uuid;not null" json:"createdClerkId"`
	Task           string `gorm:"type:text;not null" json:"task"`

	SubmitNote  string     `gorm:"size:255" json:"submitNote,omitempty"`
	Cost        *float64   `json:"cost,omitempty"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`

	ReviewedClerkID *string    `gorm:"type:uuid" json:"reviewedClerkId,omitempty"`
	ReviewNote      string     `gorm:"size:255" json:"reviewNote,omitempty"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`

	Status    MaintenanceStatus `gorm:"size:20;index;not null;default:'Scheduled'" json:"status"`
	IsActive  bool              `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func (Maintenance) TableName() string { return MaintenanceTable }
