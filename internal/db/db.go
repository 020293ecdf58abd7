package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/voicedoc/clinic-api/internal/config"
	domain "github.com/voicedoc/clinic-api/internal/domain/reservation"
	"github.com/voicedoc/clinic-api/internal/models"
)

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsProduction() {
		logLevel = logger.Error
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

// Migrate creates the schema, the status lookup rows and the index that
// keeps one live reservation per doctor, date and time.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Hospital{},
		&models.Subject{},
		&models.Doctor{},
		&models.WorkingDay{},
		&models.WorkingTimeSlot{},
		&models.ReservationStatus{},
		&models.Reservation{},
		&models.ReservationImage{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	statuses := make([]models.ReservationStatus, 0, len(domain.AllStatuses()))
	for _, s := range domain.AllStatuses() {
		statuses = append(statuses, models.ReservationStatus{ID: s.ID(), Name: s.Name()})
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&statuses).Error; err != nil {
		return fmt.Errorf("seed statuses: %w", err)
	}

	if err := db.Exec(fmt.Sprintf(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_reservations_live_slot
		ON reservations (doctor_id, date, time)
		WHERE status_id <> %d
	`, domain.StatusCanceled.ID())).Error; err != nil {
		return fmt.Errorf("create slot index: %w", err)
	}

	return nil
}
