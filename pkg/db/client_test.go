package db

import (
	"context"
	"testing"

	"github.com/angelmondragon/easydial-core/pkg/config"
)

func TestNewPingAndClose(t *testing.T) {
	ctx := context.Background()
	client, err := New(ctx, config.StorageConfig{Driver: config.DriverSQLite, DSN: "file::memory:"}, nil)
	if err != nil {
		t.Fatalf("failed to open datastore: %v", err)
	}

	if err := client.Ping(ctx); err != nil {
		t.Fatalf("expected reachable datastore: %v", err)
	}
	if client.DB() == nil {
		t.Fatal("expected underlying connection")
	}
	if err := client.Close(); err != nil {
		t.Fatalf("failed to close: %v", err)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	ctx := context.Background()

	if _, err := New(ctx, config.StorageConfig{Driver: config.DriverSQLite}, nil); err == nil {
		t.Fatal("expected error for missing DSN")
	}
	if _, err := New(ctx, config.StorageConfig{Driver: "oracle", DSN: "x"}, nil); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
