package fileio_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bikematch-service/internal/fileio"
)

const sampleCSV = "sku_id,in_stock,price_rrp_gbp\nS1,true,\"£2,199.00\"\nS2,false,1800\n"

func TestFetchMaps_LocalCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retailer.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	rows, err := fileio.FetchMaps(context.Background(), path, 5*time.Second)
	if err != nil {
		t.Fatalf("FetchMaps: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0]["sku_id"] != "S1" || rows[0]["price_rrp_gbp"] != "£2,199.00" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1]["in_stock"] != "false" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestFetchMaps_HTTPCSV(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("fetch must send a User-Agent")
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	rows, err := fileio.FetchMaps(context.Background(), srv.URL+"/export.csv?gid=0", 5*time.Second)
	if err != nil {
		t.Fatalf("FetchMaps: %v", err)
	}
	if len(rows) != 2 || rows[0]["sku_id"] != "S1" {
		t.Fatalf("rows = %v", rows)
	}
}

func TestFetchMaps_RejectsHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<!DOCTYPE html><html><body>preview</body></html>"))
	}))
	defer srv.Close()

	_, err := fileio.FetchMaps(context.Background(), srv.URL+"/sheet.csv", 5*time.Second)
	if err == nil {
		t.Fatal("an HTML preview page must be rejected")
	}
	if !strings.Contains(err.Error(), "HTML") {
		t.Errorf("error should name the HTML problem: %v", err)
	}
}

func TestFetchMaps_MissingLocalFile(t *testing.T) {
	_, err := fileio.FetchMaps(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), time.Second)
	if err == nil {
		t.Fatal("unreadable source must fail the run")
	}
}

func TestReadAnyMaps_BlankHeadersAndEmptyRows(t *testing.T) {
	csv := "sku_id,,colour\nS1,ignored,Blue\n,,\nS2,x,Red\n"
	rows, err := fileio.ReadAnyMaps(strings.NewReader(csv), "skus.csv")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("fully empty rows must be skipped, got %d", len(rows))
	}
	if rows[0]["Column 2"] != "ignored" {
		t.Errorf("blank header must become Column N: %v", rows[0])
	}
}

func TestReadAnyMaps_UnsupportedExtension(t *testing.T) {
	if _, err := fileio.ReadAnyMaps(strings.NewReader("x"), "feed.pdf"); err == nil {
		t.Fatal("unsupported extensions must be rejected")
	}
}
