package models

import "time"

type Role string

const (
	RoleStudent       Role = "Student"
	RoleAcademicStaff Role = "AcademicStaff"
	RoleClerk         Role = "Clerk"
	RoleTechnician    Role = "Technician"
	RoleSystemAdmin   Role = "SystemAdmin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAcademicStaff, RoleClerk, RoleTechnician, RoleSystemAdmin:
		return true
	}
	return false
}

// CanRequestReservations reports whether this role may open reservation
// requests. Clerks and technicians operate the lifecycle but never own one.
func (r Role) CanRequestReservations() bool {
	return r == RoleStudent || r == RoleAcademicStaff
}

type User struct {
	ID            string  `gorm:"type:uuid;primaryKey" json:"id"`
	Email         string  `gorm:"uniqueIndex;size:255;not null" json:"email"`
	DisplayName   string  `gorm:"size:255;not null" json:"displayName"`
	PasswordHash  string  `gorm:"size:100;not null" json:"-"`
	Role          Role    `gorm:"size:20;not null" json:"role"`
	ContactNumber string  `gorm:"size:20" json:"contactNumber,omitempty"`
	LabID         *string `gorm:"type:uuid;index" json:"labId,omitempty"` // clerks and technicians are attached to a lab

	LastLoginAt *time.Time `gorm:"index" json:"lastLoginAt,omitempty"`
	LastSeenAt  *time.Time `gorm:"index" json:"lastSeenAt,omitempty"`
	LoginCount  int64      `gorm:"not null;default:0" json:"loginCount"`

	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return UserTable }
