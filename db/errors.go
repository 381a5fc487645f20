package db

import "errors"

// Domain errors returned by the lifecycle methods. Controllers surface the
// messages verbatim, so they are written for the API consumer, not for Go
// error wrapping conventions.
var (
	ErrLabNotFound         = errors.New("Lab Not Found")
	ErrEquipmentNotFound   = errors.New("Equipment Not Found")
	ErrItemNotFound        = errors.New("Item Not Found")
	ErrUserNotFound        = errors.New("User Not Found")
	ErrReservationNotFound = errors.New("Reservation Not Found")
	ErrMaintenanceNotFound = errors.New("Maintenance Not Found")

	ErrReservationNotPending  = errors.New("Reservation is Not Pending")
	ErrReservationNotReserved = errors.New("Reservation is Not Reserved")
	ErrReservationNotBorrowed = errors.New("Reservation is Not Borrowed")
	ErrReservationClosed      = errors.New("Reservation is Already Closed")
	ErrItemAlreadyBorrowed    = errors.New("Item is already Borrowed")
	ErrItemUnavailable        = errors.New("Item is Unavailable")

	ErrMaintenanceNotScheduled   = errors.New("Maintenance is Not Scheduled")
	ErrMaintenanceNotOngoing     = errors.New("Maintenance is Not Ongoing")
	ErrMaintenanceNotUnderReview = errors.New("Maintenance is Not Under Review")

	ErrNotReservationOwner         = errors.New("Only Reservation Owner can Cancel Reservation")
	ErrNotAssignedTechnician       = errors.New("Only Assigned Technician can Borrow Item")
	ErrNotAssignedTechnicianSubmit = errors.New("Only Assigned Technician can Submit Maintenance")
	ErrNotReservationRequesterRole = errors.New("Only Students and Academic Staff can Create Reservations")
	ErrNotTechnicianRole           = errors.New("Assigned User is Not a Technician")

	ErrTimeSlotUnavailable = errors.New("Time Slot Not Available")
)

// IsDomainError reports whether err is one of the expected domain failures
// above, as opposed to a persistence failure.
func IsDomainError(err error) bool {
	for _, e := range []error{
		ErrLabNotFound, ErrEquipmentNotFound, ErrItemNotFound, ErrUserNotFound,
		ErrReservationNotFound, ErrMaintenanceNotFound,
		ErrReservationNotPending, ErrReservationNotReserved, ErrReservationNotBorrowed,
		ErrReservationClosed, ErrItemAlreadyBorrowed, ErrItemUnavailable,
		ErrMaintenanceNotScheduled, ErrMaintenanceNotOngoing, ErrMaintenanceNotUnderReview,
		ErrNotReservationOwner, ErrNotAssignedTechnician, ErrNotAssignedTechnicianSubmit,
		ErrNotReservationRequesterRole, ErrNotTechnicianRole,
		ErrTimeSlotUnavailable,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
