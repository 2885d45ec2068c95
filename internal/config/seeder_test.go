package config

import (
	"context"
	"testing"

	"trichygold-order/internal/adapters/persistence/models"
	"trichygold-order/internal/adapters/persistence/testutil"
	"trichygold-order/internal/pkg/password"
)

func TestSeederCreatesAdminOnce(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	seeder := NewSeeder(db, AdminSeedConfig{Name: "Admin", Username: "admin", Password: "Track123"}, testutil.Logger(t))

	for i := 0; i < 2; i++ {
		if err := seeder.Run(ctx); err != nil {
			t.Fatalf("Run #%d: %v", i+1, err)
		}
	}

	var admins []models.Employee
	if err := db.Where("role = ?", "admin").Find(&admins).Error; err != nil {
		t.Fatalf("query admins: %v", err)
	}
	if len(admins) != 1 {
		t.Fatalf("expected exactly one admin, got %d", len(admins))
	}
	if admins[0].Password == "Track123" || !password.Verify("Track123", admins[0].Password) {
		t.Fatalf("admin password must be stored as a bcrypt hash")
	}
}

func TestSeederSkipsWithoutPassword(t *testing.T) {
	db := testutil.DB(t)
	seeder := NewSeeder(db, AdminSeedConfig{Name: "Admin", Username: "admin"}, testutil.Logger(t))

	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var count int64
	db.Model(&models.Employee{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no accounts, got %d", count)
	}
}
