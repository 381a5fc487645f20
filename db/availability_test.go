package db

import (
	"context"
	"errors"
	"testing"

	"github.com/SharadaShehan/IMS-Backend-sub000/models"
)

// A Reserved reservation on an item blocks maintenance creation for an
// overlapping window on the same item.
func TestReservedReservationBlocksMaintenance(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()
	student := seedUser(t, r, models.RoleStudent)
	clerk := seedUser(t, r, models.RoleClerk)
	tech := seedUser(t, r, models.RoleTechnician)
	eq, items := seedInventory(t, r, 1)

	res := mustCreatePending(t, r, student.ID, eq.ID, day(1), day(3))
	if _, err := r.AcceptReservation(ctx, res.ID, clerk.ID, items[0].ID, ""); err != nil {
		t.Fatalf("accept: %v", err)
	}

	_, err := r.CreateMaintenance(ctx, CreateMaintenanceInput{
		ItemID: items[0].ID, TechnicianID: tech.ID, ClerkID: clerk.ID,
		Task: "service", StartDate: day(2), EndDate: day(4),
	})
	if !errors.Is(err, ErrTimeSlotUnavailable) {
		t.Fatalf("got %v, want ErrTimeSlotUnavailable", err)
	}
}

// A Pending reservation has no item and must not block maintenance.
func TestPendingReservationDoesNotBlockMaintenance(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()
	student := seedUser(t, r, models.RoleStudent)
	clerk := seedUser(t, r, models.RoleClerk)
	tech := seedUser(t, r, models.RoleTechnician)
	eq, items := seedInventory(t, r, 1)

	mustCreatePending(t, r, student.ID, eq.ID, day(1), day(3))

	if _, err := r.CreateMaintenance(ctx, CreateMaintenanceInput{
		ItemID: items[0].ID, TechnicianID: tech.ID, ClerkID: clerk.ID,
		Task: "service", StartDate: day(2), EndDate: day(4),
	}); err != nil {
		t.Fatalf("maintenance should not be blocked by a pending request: %v", err)
	}
}

// Open maintenance blocks both accepting a reservation onto the item and the
// equipment-level check at reservation creation.
func TestOpenMaintenanceBlocksReservation(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()
	student := seedUser(t, r, models.RoleStudent)
	clerk := seedUser(t, r, models.RoleClerk)
	tech := seedUser(t, r, models.RoleTechnician)
	eq, items := seedInventory(t, r, 1)

	if _, err := r.CreateMaintenance(ctx, CreateMaintenanceInput{
		ItemID: items[0].ID, TechnicianID: tech.ID, ClerkID: clerk.ID,
		Task: "service", StartDate: day(1), EndDate: day(5),
	}); err != nil {
		t.Fatalf("create maintenance: %v", err)
	}

	_, err := r.CreateReservation(ctx, CreateReservationInput{
		EquipmentID: eq.ID, UserID: student.ID, StartDate: day(4), EndDate: day(6),
	})
	if !errors.Is(err, ErrTimeSlotUnavailable) {
		t.Fatalf("create over open maintenance: got %v, want ErrTimeSlotUnavailable", err)
	}

	// disjoint window is fine, and accept onto the item is blocked only on overlap
	res, err := r.CreateReservation(ctx, CreateReservationInput{
		EquipmentID: eq.ID, UserID: student.ID, StartDate: day(6), EndDate: day(8),
	})
	if err != nil {
		t.Fatalf("disjoint create: %v", err)
	}
	if _, err := r.AcceptReservation(ctx, res.ID, clerk.ID, items[0].ID, ""); err != nil {
		t.Fatalf("disjoint accept: %v", err)
	}
}

// Completed maintenance releases its window.
func TestCompletedMaintenanceDoesNotBlock(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()
	clerk := seedUser(t, r, models.RoleClerk)
	tech := seedUser(t, r, models.RoleTechnician)
	_, items := seedInventory(t, r, 1)

	m, err := r.CreateMaintenance(ctx, CreateMaintenanceInput{
		ItemID: items[0].ID, TechnicianID: tech.ID, ClerkID: clerk.ID,
		Task: "service", StartDate: day(1), EndDate: day(3),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := r.BorrowMaintenance(ctx, m.ID, tech.ID); err != nil {
		t.Fatalf("borrow: %v", err)
	}
	if _, err := r.SubmitMaintenance(ctx, m.ID, tech.ID, "done", 10); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := r.ReviewMaintenance(ctx, m.ID, clerk.ID, true, ""); err != nil {
		t.Fatalf("review: %v", err)
	}

	if free, err := r.IsItemSlotAvailable(ctx, items[0].ID, day(2), day(4)); err != nil || !free {
		t.Fatalf("completed maintenance must release the window: free=%v err=%v", free, err)
	}
}

// Closed-interval semantics at the SQL layer: windows that touch at one
// boundary date conflict.
func TestBoundaryDatesConflict(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()
	clerk := seedUser(t, r, models.RoleClerk)
	tech := seedUser(t, r, models.RoleTechnician)
	_, items := seedInventory(t, r, 1)

	if _, err := r.CreateMaintenance(ctx, CreateMaintenanceInput{
		ItemID: items[0].ID, TechnicianID: tech.ID, ClerkID: clerk.ID,
		Task: "service", StartDate: day(1), EndDate: day(3),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if free, _ := r.IsItemSlotAvailable(ctx, items[0].ID, day(3), day(5)); free {
		t.Fatal("window starting on the existing end date must conflict")
	}
	if free, _ := r.IsItemSlotAvailable(ctx, items[0].ID, day(4), day(5)); !free {
		t.Fatal("window starting the day after must be free")
	}
}
