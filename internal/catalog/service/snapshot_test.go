package service_test

import (
	"os"
	"path/filepath"
	"testing"

	"bikematch-service/internal/catalog/model"
	"bikematch-service/internal/catalog/service"
)

func TestSnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bikes.json")

	sale := 1999.0
	snap := &model.Snapshot{
		GeneratedAt: "2026-08-29T12:00:00Z",
		Items: []model.CatalogEntry{{
			SkuID:        "csid_5f0e3bad",
			Brand:        "Acme",
			ModelName:    "Volt",
			InStock:      true,
			PriceSaleGbp: &sale,
		}},
	}
	if err := service.WriteSnapshot(path, snap); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := service.ReadSnapshot(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got == nil || got.GeneratedAt != snap.GeneratedAt || len(got.Items) != 1 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	e := got.Items[0]
	if e.SkuID != "csid_5f0e3bad" || e.PriceSaleGbp == nil || *e.PriceSaleGbp != 1999 {
		t.Errorf("entry mismatch: %+v", e)
	}
	if e.PriceRrpGbp != nil {
		t.Error("omitted field must come back absent, not zero")
	}

	// no stray temp files after a successful replace
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected only the snapshot in %s, found %d entries", dir, len(entries))
	}
}

func TestReadSnapshot_MissingFileIsNotAnError(t *testing.T) {
	got, err := service.ReadSnapshot(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil || got != nil {
		t.Fatalf("missing snapshot must yield (nil, nil), got %v, %v", got, err)
	}
}

func TestWriteSnapshot_ReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bikes.json")

	first := &model.Snapshot{GeneratedAt: "2026-08-29T12:00:00Z"}
	second := &model.Snapshot{GeneratedAt: "2026-08-29T13:00:00Z"}
	if err := service.WriteSnapshot(path, first); err != nil {
		t.Fatal(err)
	}
	if err := service.WriteSnapshot(path, second); err != nil {
		t.Fatal(err)
	}
	got, err := service.ReadSnapshot(path)
	if err != nil || got.GeneratedAt != second.GeneratedAt {
		t.Fatalf("got %+v, %v", got, err)
	}
}
