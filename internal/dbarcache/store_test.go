package dbarcache_test

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"ripcheck/internal/dbarcache"
)

func responseBlob(id1, id2, freedb uint32) []byte {
	data := []byte{2}
	data = binary.LittleEndian.AppendUint32(data, id1)
	data = binary.LittleEndian.AppendUint32(data, id2)
	data = binary.LittleEndian.AppendUint32(data, freedb)
	for i := 0; i < 2; i++ {
		data = append(data, 10)
		data = binary.LittleEndian.AppendUint32(data, 0x11111111)
		data = binary.LittleEndian.AppendUint32(data, 0x22222222)
	}
	return data
}

func openStore(t *testing.T) *dbarcache.Store {
	t.Helper()
	store, err := dbarcache.Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return store
}

func TestImportAndLookup(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	entry, err := store.Import(ctx, responseBlob(1, 2, 3))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if entry.TrackCount != 2 || entry.ResponseCount != 1 {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.Name() != "002-00000001-00000002-00000003" {
		t.Fatalf("unexpected entry name %s", entry.Name())
	}

	responses, found, err := store.Lookup(ctx, 1, 2, 3)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if !found {
		t.Fatal("expected imported disc to be found")
	}
	if len(responses) != 1 || len(responses[0].Tracks) != 2 {
		t.Fatalf("unexpected responses: %+v", responses)
	}
	if responses[0].Tracks[0].V1 != 0x11111111 {
		t.Fatalf("unexpected checksum %08x", responses[0].Tracks[0].V1)
	}
}

func TestLookupUnknownDisc(t *testing.T) {
	store := openStore(t)

	_, found, err := store.Lookup(context.Background(), 9, 9, 9)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if found {
		t.Fatal("did not expect an unknown disc to be found")
	}
}

func TestImportRejectsCorruptData(t *testing.T) {
	store := openStore(t)

	if _, err := store.Import(context.Background(), []byte{1, 2, 3}); err == nil {
		t.Fatal("expected corrupt data to be rejected")
	}
}

func TestImportReplacesExistingEntry(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if _, err := store.Import(ctx, responseBlob(1, 2, 3)); err != nil {
		t.Fatalf("first import failed: %v", err)
	}
	if _, err := store.Import(ctx, responseBlob(1, 2, 3)); err != nil {
		t.Fatalf("second import failed: %v", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 entry after reimport, got %d", count)
	}
}

func TestImportFile(t *testing.T) {
	store := openStore(t)

	path := filepath.Join(t.TempDir(), "dBAR-002.bin")
	if err := os.WriteFile(path, responseBlob(4, 5, 6), 0o644); err != nil {
		t.Fatalf("failed to write dbar file: %v", err)
	}

	entry, err := store.ImportFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ImportFile failed: %v", err)
	}
	if entry.ID1 != 4 || entry.ID2 != 5 || entry.FreeDB != 6 {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestListRemoveClear(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if _, err := store.Import(ctx, responseBlob(1, 2, 3)); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if _, err := store.Import(ctx, responseBlob(7, 8, 9)); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	removed, err := store.Remove(ctx, 1, 2, 3)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if !removed {
		t.Fatal("expected entry to be removed")
	}
	removed, err = store.Remove(ctx, 1, 2, 3)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if removed {
		t.Fatal("did not expect a second removal to succeed")
	}

	cleared, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if cleared != 1 {
		t.Fatalf("expected 1 cleared entry, got %d", cleared)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty cache, got %d entries", count)
	}
}
