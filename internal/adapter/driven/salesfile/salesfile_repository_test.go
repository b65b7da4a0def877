package salesfile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.txt")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestReadLines_UTF8(t *testing.T) {
	path := writeTemp(t, []byte("T1|P1|C1|North|2|100.00|2024-01-01\nT2|P2|C2|South|1|50.00|2024-01-02\n"))

	repo := NewSalesDataRepository()
	lines, err := repo.ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}

	want := []string{
		"T1|P1|C1|North|2|100.00|2024-01-01",
		"T2|P2|C2|South|1|50.00|2024-01-02",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %v, want %v", lines, want)
	}
}

func TestReadLines_CRLF(t *testing.T) {
	path := writeTemp(t, []byte("T1|P1|C1|North|2|100.00|2024-01-01\r\nT2|P2|C2|South|1|50.00|2024-01-02\r\n"))

	repo := NewSalesDataRepository()
	lines, err := repo.ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0] != "T1|P1|C1|North|2|100.00|2024-01-01" {
		t.Errorf("line 0 = %q", lines[0])
	}
}

func TestReadLines_Windows1252Fallback(t *testing.T) {
	// "Café" with an 0xE9 byte, invalid as UTF-8.
	raw := append([]byte("T1|P1|C1|Caf"), 0xE9)
	raw = append(raw, []byte("|2|100.00|2024-01-01\n")...)
	path := writeTemp(t, raw)

	repo := NewSalesDataRepository()
	lines, err := repo.ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(lines))
	}
	if lines[0] != "T1|P1|C1|Café|2|100.00|2024-01-01" {
		t.Errorf("line = %q, want decoded Café", lines[0])
	}
}

func TestReadLines_EmptyFile(t *testing.T) {
	path := writeTemp(t, nil)

	repo := NewSalesDataRepository()
	lines, err := repo.ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("lines = %d, want 0", len(lines))
	}
}

func TestReadLines_MissingFile(t *testing.T) {
	repo := NewSalesDataRepository()
	if _, err := repo.ReadLines(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestReadLines_PreservesBlankLines(t *testing.T) {
	path := writeTemp(t, []byte("T1|P1|C1|North|2|100.00|2024-01-01\n\nT2|P2|C2|South|1|50.00|2024-01-02\n"))

	repo := NewSalesDataRepository()
	lines, err := repo.ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3 (blank line preserved)", len(lines))
	}
	if lines[1] != "" {
		t.Errorf("line 1 = %q, want empty", lines[1])
	}
}
