package db

import (
	"fmt"
	"log"
	"os"

	"github.com/SharadaShehan/IMS-Backend-sub000/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(conn); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return conn
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{}, &models.Lab{}, &models.Equipment{}, &models.Item{},
		&models.ItemReservation{}, &models.Maintenance{},
	); err != nil {
		return err
	}

	// DB-level backstop for the no-double-booking invariant: two records may
	// never claim the same item for overlapping windows. The application
	// serializes check-then-write with row locks; these constraints catch
	// anything that slips past them.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist;`).Error; err != nil {
		return err
	}

	if err := db.Exec(fmt.Sprintf(`
	  DO $$ BEGIN
	    IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s_no_hold_overlap') THEN
	      ALTER TABLE %s ADD CONSTRAINT %s_no_hold_overlap
	      EXCLUDE USING gist (item_id WITH =, daterange(start_date, end_date, '[]') WITH &&)
	      WHERE (status IN ('Reserved','Borrowed') AND is_active);
	    END IF;
	  END $$;
	`, models.ReservationTable, models.ReservationTable, models.ReservationTable)).Error; err != nil {
		return err
	}

	if err := db.Exec(fmt.Sprintf(`
	  DO $$ BEGIN
	    IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s_no_open_overlap') THEN
	      ALTER TABLE %s ADD CONSTRAINT %s_no_open_overlap
	      EXCLUDE USING gist (item_id WITH =, daterange(start_date, end_date, '[]') WITH &&)
	      WHERE (status NOT IN ('Completed','Canceled') AND is_active);
	    END IF;
	  END $$;
	`, models.MaintenanceTable, models.MaintenanceTable, models.MaintenanceTable)).Error; err != nil {
		return err
	}

	// open lifecycle records are listed by item constantly
	if err := db.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_open_by_item
	  ON %s (item_id, start_date)
	  WHERE status IN ('Reserved','Borrowed') AND is_active;
	`, models.ReservationTable, models.ReservationTable)).Error; err != nil {
		return err
	}

	return nil
}
