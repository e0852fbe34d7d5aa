package database

import "time"

// User represents a credential record. Seeded once at startup and never
// mutated through the API surface.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"type:varchar(50);uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash, never exposed in JSON
}

// Establishment represents an organizational site equipment is assigned to
type Establishment struct {
	ID   uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

// Equipment represents a tracked equipment record.
//
// EstablishmentID is a plain column, not a gorm association: inserts are
// not checked against establishments (dangling ids are accepted and show a
// null establishment name in joined reads). The delete-side restriction is
// enforced by the store, see DeleteEstablishment.
type Equipment struct {
	ID              uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name            string `json:"name" gorm:"not null"`
	Status          string `json:"status" gorm:"not null"` // free text: "new", "functional", "damaged" by convention
	EstablishmentID uint   `json:"establishment_id"`
}

// EquipmentRow is an equipment record joined with its establishment name.
// EstablishmentName is a pointer so a dangling establishment id renders as
// JSON null, matching the LEFT JOIN result.
type EquipmentRow struct {
	ID                uint    `json:"id"`
	Name              string  `json:"name"`
	Status            string  `json:"status"`
	EstablishmentID   uint    `json:"establishment_id"`
	EstablishmentName *string `json:"establishment_name"`
}

// Report represents a free-text report. Write-once: no update or delete.
type Report struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Mission represents a missions record. Create and list only.
type Mission struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Status      string    `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt   time.Time `json:"created_at"`
}

// StatusCount is a count of rows sharing a status value
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// EstablishmentEquipmentCount is the equipment count for one establishment.
// Establishments with no equipment appear with a zero count.
type EstablishmentEquipmentCount struct {
	EstablishmentName string `json:"establishment_name"`
	EquipmentCount    int64  `json:"equipmentCount"`
}

// DashboardSummary aggregates the equipment counts for the dashboard
type DashboardSummary struct {
	TotalEquipment int64          `json:"totalEquipment"`
	StatusCounts   []*StatusCount `json:"statusCounts"`
}
