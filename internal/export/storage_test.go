package export

import (
	"bytes"
	"context"
	"testing"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := NewLocalStorage(t.TempDir())

	inv := []byte(`{"account_id":"acct-1","artifacts":[]}`)
	if err := storage.PutInventory(ctx, "acct-1", "exp-1", inv); err != nil {
		t.Fatalf("PutInventory: %v", err)
	}

	got, err := storage.GetInventory(ctx, "acct-1", "exp-1")
	if err != nil {
		t.Fatalf("GetInventory: %v", err)
	}
	if !bytes.Equal(got, inv) {
		t.Errorf("GetInventory = %s, want %s", got, inv)
	}

	build := []byte(`{"total_score":400}`)
	if err := storage.PutBuild(ctx, "acct-1", "build-1", build); err != nil {
		t.Fatalf("PutBuild: %v", err)
	}
	got, err = storage.GetBuild(ctx, "acct-1", "build-1")
	if err != nil {
		t.Fatalf("GetBuild: %v", err)
	}
	if !bytes.Equal(got, build) {
		t.Errorf("GetBuild = %s, want %s", got, build)
	}
}

func TestLocalStorageIsolatesAccounts(t *testing.T) {
	ctx := context.Background()
	storage := NewLocalStorage(t.TempDir())

	if err := storage.PutInventory(ctx, "acct-1", "exp-1", []byte("{}")); err != nil {
		t.Fatalf("PutInventory: %v", err)
	}

	if _, err := storage.GetInventory(ctx, "acct-2", "exp-1"); err == nil {
		t.Error("expected miss for another account's export id")
	}
}

func TestLocalStorageMissingObject(t *testing.T) {
	storage := NewLocalStorage(t.TempDir())
	if _, err := storage.GetBuild(context.Background(), "acct-1", "nope"); err == nil {
		t.Error("expected error for missing build")
	}
}
