package database

import (
	"context"
	"errors"

	"github.com/gestiparc/gestiparc/internal/common/config"

	"gorm.io/gorm"
)

// ErrEstablishmentReferenced is returned when deleting an establishment
// that equipment rows still reference. The text matches the driver-level
// constraint message the API contract surfaces.
var ErrEstablishmentReferenced = errors.New("FOREIGN KEY constraint failed: equipment references establishment")

// Store implements the Database interface on a gorm handle. One Store is
// shared process-wide; gorm's pooled *sql.DB underneath serializes sqlite
// writes.
type Store struct {
	db  *gorm.DB
	cfg *config.DatabaseConfig
}

// Init creates the schema idempotently
func (s *Store) Init(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(
		&User{},
		&Establishment{},
		&Equipment{},
		&Report{},
		&Mission{},
	)
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) EnsureUser(ctx context.Context, user *User) error {
	return s.db.WithContext(ctx).
		Where("username = ?", user.Username).
		FirstOrCreate(user).Error
}

func (s *Store) ListEstablishments(ctx context.Context) ([]*Establishment, error) {
	var ests []*Establishment
	err := s.db.WithContext(ctx).Find(&ests).Error
	return ests, err
}

func (s *Store) CreateEstablishment(ctx context.Context, est *Establishment) error {
	return s.db.WithContext(ctx).Create(est).Error
}

func (s *Store) UpdateEstablishment(ctx context.Context, id, name string) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&Establishment{}).
		Where("id = ?", id).
		Update("name", name)
	return res.RowsAffected, res.Error
}

func (s *Store) DeleteEstablishment(ctx context.Context, id string) (int64, error) {
	// The insert path deliberately leaves establishment_id unchecked, so
	// the referential restriction lives here instead of in a pragma.
	var refs int64
	if err := s.db.WithContext(ctx).
		Model(&Equipment{}).
		Where("establishment_id = ?", id).
		Count(&refs).Error; err != nil {
		return 0, err
	}
	if refs > 0 {
		return 0, ErrEstablishmentReferenced
	}

	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&Establishment{})
	return res.RowsAffected, res.Error
}

func (s *Store) ListEquipment(ctx context.Context, filter EquipmentFilter) ([]*EquipmentRow, error) {
	q := s.db.WithContext(ctx).
		Table("equipment").
		Select("equipment.id, equipment.name, equipment.status, equipment.establishment_id, establishments.name AS establishment_name").
		Joins("LEFT JOIN establishments ON equipment.establishment_id = establishments.id")

	if filter.Status != "" {
		q = q.Where("equipment.status = ?", filter.Status)
	}
	if filter.EstablishmentID != "" {
		q = q.Where("equipment.establishment_id = ?", filter.EstablishmentID)
	}

	var rows []*EquipmentRow
	err := q.Scan(&rows).Error
	return rows, err
}

func (s *Store) CreateEquipment(ctx context.Context, eq *Equipment) error {
	return s.db.WithContext(ctx).Create(eq).Error
}

func (s *Store) UpdateEquipment(ctx context.Context, id string, eq *Equipment) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&Equipment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":             eq.Name,
			"status":           eq.Status,
			"establishment_id": eq.EstablishmentID,
		})
	return res.RowsAffected, res.Error
}

func (s *Store) DeleteEquipment(ctx context.Context, id string) (int64, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&Equipment{})
	return res.RowsAffected, res.Error
}

func (s *Store) CreateReport(ctx context.Context, report *Report) error {
	return s.db.WithContext(ctx).Create(report).Error
}

func (s *Store) ListReports(ctx context.Context) ([]*Report, error) {
	var reports []*Report
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&reports).Error
	return reports, err
}

func (s *Store) GetReport(ctx context.Context, id string) (*Report, error) {
	var report Report
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *Store) CreateMission(ctx context.Context, mission *Mission) error {
	if mission.Status == "" {
		mission.Status = "pending"
	}
	return s.db.WithContext(ctx).Create(mission).Error
}

func (s *Store) ListMissions(ctx context.Context) ([]*Mission, error) {
	var missions []*Mission
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&missions).Error
	return missions, err
}

func (s *Store) CountMissionsByStatus(ctx context.Context) ([]*StatusCount, error) {
	var counts []*StatusCount
	err := s.db.WithContext(ctx).
		Model(&Mission{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}

func (s *Store) CountEquipment(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&Equipment{}).Count(&count).Error
	return count, err
}

func (s *Store) CountEquipmentByStatus(ctx context.Context) ([]*StatusCount, error) {
	var counts []*StatusCount
	err := s.db.WithContext(ctx).
		Model(&Equipment{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}

func (s *Store) CountEquipmentByEstablishment(ctx context.Context) ([]*EstablishmentEquipmentCount, error) {
	var counts []*EstablishmentEquipmentCount
	err := s.db.WithContext(ctx).
		Table("establishments").
		Select("establishments.name AS establishment_name, COUNT(equipment.id) AS equipment_count").
		Joins("LEFT JOIN equipment ON establishments.id = equipment.establishment_id").
		Group("establishments.name").
		Order("establishments.name").
		Scan(&counts).Error
	return counts, err
}
