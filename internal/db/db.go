package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/graindock/grain-scheduler/internal/config"
	"github.com/graindock/grain-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Warehouse{},
		&models.Grain{},
		&models.StorageZone{},
		&models.TimeSlotTemplate{},
		&models.TimeSlot{},
		&models.Appointment{},
		&models.Delivery{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Dedup key for the slot materializer: one non-deleted slot per
	// (zone, start instant).
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_timeslot_zone_start
        ON time_slots (zone_id, start_at)
        WHERE deleted_at IS NULL
    `)

	return db
}
