package db

import (
	"context"
	"errors"
	"testing"

	"github.com/SharadaShehan/IMS-Backend-sub000/models"
)

func TestMaintenanceHappyPathWithReworkCycle(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()
	clerk := seedUser(t, r, models.RoleClerk)
	tech := seedUser(t, r, models.RoleTechnician)
	_, items := seedInventory(t, r, 1)

	m, err := r.CreateMaintenance(ctx, CreateMaintenanceInput{
		ItemID: items[0].ID, TechnicianID: tech.ID, ClerkID: clerk.ID,
		Task: "replace probe", StartDate: day(1), EndDate: day(5),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.Status != models.MaintenanceScheduled {
		t.Fatalf("create: status = %s", m.Status)
	}

	m, err = r.BorrowMaintenance(ctx, m.ID, tech.ID)
	if err != nil {
		t.Fatalf("borrow: %v", err)
	}
	if m.Status != models.MaintenanceOngoing {
		t.Fatalf("borrow: status = %s", m.Status)
	}
	// collecting the item for repair does not touch its status
	it, _ := r.FindItemByID(ctx, items[0].ID)
	if it.Status != models.ItemAvailable {
		t.Fatalf("item status after maintenance borrow = %s, want Available", it.Status)
	}

	m, err = r.SubmitMaintenance(ctx, m.ID, tech.ID, "done", 42.50)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if m.Status != models.MaintenanceUnderReview || m.SubmittedAt == nil || m.Cost == nil {
		t.Fatalf("submit: got %+v", m)
	}

	// rejected review bounces the task back to Ongoing, item flagged UnderRepair
	m, err = r.ReviewMaintenance(ctx, m.ID, clerk.ID, false, "probe still drifting")
	if err != nil {
		t.Fatalf("review-reject: %v", err)
	}
	if m.Status != models.MaintenanceOngoing || m.ReviewNote != "probe still drifting" {
		t.Fatalf("review-reject: got %+v", m)
	}
	it, _ = r.FindItemByID(ctx, items[0].ID)
	if it.Status != models.ItemUnderRepair {
		t.Fatalf("item status after rejected review = %s, want UnderRepair", it.Status)
	}

	// second round passes review and restores the item
	if _, err := r.SubmitMaintenance(ctx, m.ID, tech.ID, "recalibrated", 60); err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	m, err = r.ReviewMaintenance(ctx, m.ID, clerk.ID, true, "")
	if err != nil {
		t.Fatalf("review-accept: %v", err)
	}
	if m.Status != models.MaintenanceCompleted || m.ReviewedAt == nil {
		t.Fatalf("review-accept: got %+v", m)
	}
	it, _ = r.FindItemByID(ctx, items[0].ID)
	if it.Status != models.ItemAvailable {
		t.Fatalf("item status after completed review = %s, want Available", it.Status)
	}
}

func TestMaintenanceOnlyAssignedTechnician(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()
	clerk := seedUser(t, r, models.RoleClerk)
	tech := seedUser(t, r, models.RoleTechnician)
	otherTech := seedUser(t, r, models.RoleTechnician)
	_, items := seedInventory(t, r, 1)

	m, err := r.CreateMaintenance(ctx, CreateMaintenanceInput{
		ItemID: items[0].ID, TechnicianID: tech.ID, ClerkID: clerk.ID,
		Task: "service", StartDate: day(1), EndDate: day(3),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := r.BorrowMaintenance(ctx, m.ID, otherTech.ID); !errors.Is(err, ErrNotAssignedTechnician) {
		t.Fatalf("borrow by other tech: got %v, want ErrNotAssignedTechnician", err)
	}
	got, _ := r.FindMaintenanceByID(ctx, m.ID)
	if got.Status != models.MaintenanceScheduled {
		t.Fatalf("record mutated by failed transition: %+v", got)
	}

	if _, err := r.BorrowMaintenance(ctx, m.ID, tech.ID); err != nil {
		t.Fatalf("borrow: %v", err)
	}
	if _, err := r.SubmitMaintenance(ctx, m.ID, otherTech.ID, "", 0); !errors.Is(err, ErrNotAssignedTechnicianSubmit) {
		t.Fatalf("submit by other tech: got %v, want ErrNotAssignedTechnicianSubmit", err)
	}
}

func TestMaintenanceOrderingPreconditions(t *testing.T) {
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

	// no skipping states
	if _, err := r.SubmitMaintenance(ctx, m.ID, tech.ID, "", 0); !errors.Is(err, ErrMaintenanceNotOngoing) {
		t.Fatalf("submit from Scheduled: got %v, want ErrMaintenanceNotOngoing", err)
	}
	if _, err := r.ReviewMaintenance(ctx, m.ID, clerk.ID, true, ""); !errors.Is(err, ErrMaintenanceNotUnderReview) {
		t.Fatalf("review from Scheduled: got %v, want ErrMaintenanceNotUnderReview", err)
	}
}

func TestMaintenanceCreateRejectsUnavailableItem(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()
	clerk := seedUser(t, r, models.RoleClerk)
	tech := seedUser(t, r, models.RoleTechnician)
	_, items := seedInventory(t, r, 1)

	if err := r.DB.Model(&models.Item{}).
		Where("id = ?", items[0].ID).
		Update("status", models.ItemUnavailable).Error; err != nil {
		t.Fatalf("mark unavailable: %v", err)
	}

	_, err := r.CreateMaintenance(ctx, CreateMaintenanceInput{
		ItemID: items[0].ID, TechnicianID: tech.ID, ClerkID: clerk.ID,
		Task: "service", StartDate: day(1), EndDate: day(3),
	})
	if !errors.Is(err, ErrItemUnavailable) {
		t.Fatalf("got %v, want ErrItemUnavailable", err)
	}
}

func TestMaintenanceCreateRejectsNonTechnician(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()
	clerk := seedUser(t, r, models.RoleClerk)
	student := seedUser(t, r, models.RoleStudent)
	_, items := seedInventory(t, r, 1)

	_, err := r.CreateMaintenance(ctx, CreateMaintenanceInput{
		ItemID: items[0].ID, TechnicianID: student.ID, ClerkID: clerk.ID,
		Task: "service", StartDate: day(1), EndDate: day(3),
	})
	if !errors.Is(err, ErrNotTechnicianRole) {
		t.Fatalf("got %v, want ErrNotTechnicianRole", err)
	}
}
