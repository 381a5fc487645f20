// models/reservation.go
package models

import "time"

type ReservationStatus string

const (
	ReservationPending  ReservationStatus = "Pending"
	ReservationRejected ReservationStatus = "Rejected"
	ReservationReserved ReservationStatus = "Reserved"
	ReservationBorrowed ReservationStatus = "Borrowed"
	ReservationReturned ReservationStatus = "Returned"
	ReservationCanceled ReservationStatus = "Canceled"
)

// Holding reports whether the reservation currently claims a physical item.
// Only holding reservations block the availability check: a pending request
// has not been committed to an item yet and must not stop other bookings.
func (s ReservationStatus) Holding() bool {
	return s == ReservationReserved || s == ReservationBorrowed
}

// Terminal reports whether the reservation is closed with its item released.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationRejected || s == ReservationReturned || s == ReservationCanceled
}

// CanTransitionTo is the reservation state machine:
//
//	Pending  -> Rejected | Reserved | Canceled
//	Reserved -> Borrowed | Canceled
//	Borrowed -> Returned
//
// Canceling a Borrowed reservation is forbidden; once the item is out in the
// field only a Return can close the record.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	switch s {
	case ReservationPending:
		return next == ReservationRejected || next == ReservationReserved || next == ReservationCanceled
	case ReservationReserved:
		return next == ReservationBorrowed || next == ReservationCanceled
	case ReservationBorrowed:
		return next == ReservationReturned
	}
	return false
}

// ItemReservation is a request by a user to borrow one unit of an equipment
// type for a date range. ItemID stays nil until a clerk accepts the request
// and commits a concrete unit to it.
type ItemReservation struct {
	ID          string  `gorm:"type:uuid;primaryKey" json:"id"`
	EquipmentID string  `gorm:"type:uuid;index;not null" json:"equipmentId"`
	ItemID      *string `gorm:"type:uuid;index" json:"itemId,omitempty"`
	UserID      string  `gorm:"type:uuid;index;not null" json:"userId"`

	StartDate time.Time `gorm:"type:date;not null" json:"startDate"`
	EndDate   time.Time `gorm:"type:date;not null" json:"endDate"`

	RespondedClerkID *string    `gorm:"type:uuid" json:"respondedClerkId,omitempty"`
	ResponseNote     string     `gorm:"size:255" json:"responseNote,omitempty"`
	RespondedAt      *time.Time `json:"respondedAt,omitempty"`

	LentClerkID *string    `gorm:"type:uuid" json:"lentClerkId,omitempty"`
	BorrowedAt  *time.Time `json:"borrowedAt,omitempty"`

	ReturnAcceptedClerkID *string    `gorm:"type:uuid" json:"returnAcceptedClerkId,omitempty"`
	ReturnedAt            *time.Time `json:"returnedAt,omitempty"`

	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	Status    ReservationStatus `gorm:"size:20;index;not null;default:'Pending'" json:"status"`
	IsActive  bool              `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func (ItemReservation) TableName() string { return ReservationTable }
