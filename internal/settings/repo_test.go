package settings

import (
	"context"
	"testing"

	"github.com/angelmondragon/easydial-core/pkg/db/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.AppSetting{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewRepository(conn)
}

func TestGetMissingKey(t *testing.T) {
	repo := newTestRepo(t)

	_, ok, err := repo.Get(context.Background(), KeyCurrentRegion)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected missing key")
	}
}

func TestSetThenGetOverwrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Set(ctx, KeyCurrentRegion, "us"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, KeyCurrentRegion, "china"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	value, ok, err := repo.Get(ctx, KeyCurrentRegion)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if value != "china" {
		t.Fatalf("expected overwritten value, got %q", value)
	}
}

func TestIntAndBoolHelpers(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.SetInt(ctx, KeyContactsDataVersion, 2); err != nil {
		t.Fatalf("set int: %v", err)
	}
	version, ok, err := repo.GetInt(ctx, KeyContactsDataVersion)
	if err != nil || !ok || version != 2 {
		t.Fatalf("get int: got %d ok=%v err=%v", version, ok, err)
	}

	if err := repo.SetBool(ctx, KeyHasSeenSwipeHint, true); err != nil {
		t.Fatalf("set bool: %v", err)
	}
	seen, ok, err := repo.GetBool(ctx, KeyHasSeenSwipeHint)
	if err != nil || !ok || !seen {
		t.Fatalf("get bool: got %v ok=%v err=%v", seen, ok, err)
	}
}

func TestUnparsableValuesReportMissing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Set(ctx, KeyContactsDataVersion, "not-a-number"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok, err := repo.GetInt(ctx, KeyContactsDataVersion); err != nil || ok {
		t.Fatalf("expected unparsable int to read as missing, ok=%v err=%v", ok, err)
	}
}
