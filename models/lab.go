// models/lab.go
package models

import "time"

const (
	UserTable        = "ims_users"
	LabTable         = "ims_labs"
	EquipmentTable   = "ims_equipments"
	ItemTable        = "ims_items"
	ReservationTable = "ims_reservations"
	MaintenanceTable = "ims_maintenances"
)

type Lab struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Location  string    `gorm:"size:255" json:"location,omitempty"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Equipment struct {
	ID                      string    `gorm:"type:uuid;primaryKey" json:"id"`
	LabID                   string    `gorm:"type:uuid;index;not null" json:"labId"`
	Name                    string    `gorm:"size:200;not null" json:"name"`
	Model                   string    `gorm:"size:200" json:"model,omitempty"`
	Specification           string    `gorm:"type:text" json:"specification,omitempty"`
	MaintenanceIntervalDays int       `gorm:"not null;default:0" json:"maintenanceIntervalDays"`
	IsActive                bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

type ItemStatus string

const (
	ItemAvailable   ItemStatus = "Available"
	ItemBorrowed    ItemStatus = "Borrowed"
	ItemUnderRepair ItemStatus = "UnderRepair"
	ItemUnavailable ItemStatus = "Unavailable"
)

// Item is one physical unit of an Equipment type. Status is written only by
// the reservation and maintenance lifecycles in the db package.
type Item struct {
	ID           string     `gorm:"type:uuid;primaryKey" json:"id"`
	EquipmentID  string     `gorm:"type:uuid;index;not null;uniqueIndex:ims_items_serial_per_equipment" json:"equipmentId"`
	SerialNumber string     `gorm:"size:120;not null;uniqueIndex:ims_items_serial_per_equipment" json:"serialNumber"`
	Status       ItemStatus `gorm:"size:20;not null;default:'Available'" json:"status"`
	IsActive     bool       `gorm:"not null;default:true" json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (Lab) TableName() string       { return LabTable }
func (Equipment) TableName() string { return EquipmentTable }
func (Item) TableName() string      { return ItemTable }
