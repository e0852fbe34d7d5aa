package database

import (
	"context"
)

// EquipmentFilter narrows equipment list reads. Zero values mean "no
// filter". EstablishmentID is kept as the raw query-string value; the
// store passes it through to the WHERE clause untouched.
type EquipmentFilter struct {
	Status          string
	EstablishmentID string
}

// Database defines the methods for database operations.
type Database interface {
	// Init creates the schema idempotently. Safe to call on every boot.
	Init(ctx context.Context) error

	// Close closes the database connection.
	Close() error

	// GetUserByUsername looks up a credential record by exact username.
	GetUserByUsername(ctx context.Context, username string) (*User, error)

	// EnsureUser inserts a user if no row with the same username exists.
	EnsureUser(ctx context.Context, user *User) error

	// ListEstablishments returns all establishments.
	ListEstablishments(ctx context.Context) ([]*Establishment, error)

	// CreateEstablishment inserts an establishment. Name uniqueness is
	// enforced by the store.
	CreateEstablishment(ctx context.Context, est *Establishment) error

	// UpdateEstablishment renames an establishment and reports the number
	// of rows actually affected.
	UpdateEstablishment(ctx context.Context, id, name string) (int64, error)

	// DeleteEstablishment deletes an establishment. Fails with a foreign
	// key constraint error when equipment rows still reference it.
	DeleteEstablishment(ctx context.Context, id string) (int64, error)

	// ListEquipment returns equipment joined with establishment names,
	// optionally filtered.
	ListEquipment(ctx context.Context, filter EquipmentFilter) ([]*EquipmentRow, error)

	// CreateEquipment inserts an equipment record. The establishment id is
	// not validated against existing establishments.
	CreateEquipment(ctx context.Context, eq *Equipment) error

	// UpdateEquipment replaces name, status and establishment_id of an
	// equipment record and reports the number of rows affected.
	UpdateEquipment(ctx context.Context, id string, eq *Equipment) (int64, error)

	// DeleteEquipment deletes an equipment record and reports the number
	// of rows affected.
	DeleteEquipment(ctx context.Context, id string) (int64, error)

	// CreateReport inserts a report. CreatedAt is server-assigned.
	CreateReport(ctx context.Context, report *Report) error

	// ListReports returns all reports, newest first.
	ListReports(ctx context.Context) ([]*Report, error)

	// GetReport returns one report or gorm.ErrRecordNotFound.
	GetReport(ctx context.Context, id string) (*Report, error)

	// CreateMission inserts a mission. Status defaults to "pending".
	CreateMission(ctx context.Context, mission *Mission) error

	// ListMissions returns all missions, newest first.
	ListMissions(ctx context.Context) ([]*Mission, error)

	// CountMissionsByStatus returns mission counts grouped by status.
	CountMissionsByStatus(ctx context.Context) ([]*StatusCount, error)

	// CountEquipment returns the total number of equipment rows.
	CountEquipment(ctx context.Context) (int64, error)

	// CountEquipmentByStatus returns equipment counts grouped by status.
	CountEquipmentByStatus(ctx context.Context) ([]*StatusCount, error)

	// CountEquipmentByEstablishment returns equipment counts per
	// establishment name, zero-equipment establishments included, ordered
	// by establishment name.
	CountEquipmentByEstablishment(ctx context.Context) ([]*EstablishmentEquipmentCount, error)
}
