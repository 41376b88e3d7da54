package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/db"
	"github.com/BruksfildServices01/clinic-scheduler/internal/db/dbtest"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func TestNewDB_SQLiteFile(t *testing.T) {
	cfg := &config.Config{SQLitePath: filepath.Join(t.TempDir(), "clinic.db")}

	gdb, err := db.NewDB(cfg)
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	defer db.Close(gdb)

	res := db.Migrate(gdb)
	if !res.OK() {
		t.Fatalf("migrate failed: %s", res.Error)
	}
	if res.Dialect != "sqlite" {
		t.Errorf("expected sqlite dialect, got %s", res.Dialect)
	}
	if len(res.Tables) != 6 {
		t.Errorf("expected 6 tables, got %v", res.Tables)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	gdb := dbtest.New(t)
	ctx := context.Background()

	seeded, err := db.Seed(ctx, gdb)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !seeded {
		t.Fatal("expected first seed to insert users")
	}

	seeded, err = db.Seed(ctx, gdb)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if seeded {
		t.Error("second seed should not insert users")
	}

	var doctors, settings int64
	gdb.Model(&models.User{}).Where("role = ?", models.RoleDoctor).Count(&doctors)
	gdb.Model(&models.SystemSetting{}).Count(&settings)

	if doctors != 6 {
		t.Errorf("expected 6 doctors, got %d", doctors)
	}
	if settings != 1 {
		t.Errorf("expected 1 setting row, got %d", settings)
	}
}
