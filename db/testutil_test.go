package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/SharadaShehan/IMS-Backend-sub000/models"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testRepo opens the database named by TEST_DATABASE_URL, migrates it and
// wipes the tables. Tests in this package are integration tests and skip
// when no database is configured.
func testRepo(t *testing.T) *Repo {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := conn.Exec(`TRUNCATE ` +
		models.ReservationTable + `, ` + models.MaintenanceTable + `, ` +
		models.ItemTable + `, ` + models.EquipmentTable + `, ` +
		models.LabTable + `, ` + models.UserTable + ` CASCADE`).Error; err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return NewRepo(conn)
}

func seedUser(t *testing.T, r *Repo, role models.Role) *models.User {
	t.Helper()
	u := &models.User{
		ID:           uuid.NewString(),
		Email:        uuid.NewString() + "@example.edu",
		DisplayName:  string(role) + " user",
		PasswordHash: "x",
		Role:         role,
		IsActive:     true,
	}
	if err := r.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// seedInventory creates a lab with one equipment and n items.
func seedInventory(t *testing.T, r *Repo, n int) (*models.Equipment, []*models.Item) {
	t.Helper()
	ctx := context.Background()
	lab := &models.Lab{ID: uuid.NewString(), Name: "Physics Lab", IsActive: true}
	if err := r.CreateLab(ctx, lab); err != nil {
		t.Fatalf("seed lab: %v", err)
	}
	eq := &models.Equipment{ID: uuid.NewString(), LabID: lab.ID, Name: "Oscilloscope", IsActive: true}
	if err := r.CreateEquipment(ctx, eq); err != nil {
		t.Fatalf("seed equipment: %v", err)
	}
	var items []*models.Item
	for i := 0; i < n; i++ {
		it := &models.Item{
			ID:           uuid.NewString(),
			EquipmentID:  eq.ID,
			SerialNumber: uuid.NewString(),
			Status:       models.ItemAvailable,
			IsActive:     true,
		}
		if err := r.CreateItem(ctx, it); err != nil {
			t.Fatalf("seed item: %v", err)
		}
		items = append(items, it)
	}
	return eq, items
}

func day(d int) time.Time {
	return time.Date(2024, 10, d, 0, 0, 0, 0, time.UTC)
}
