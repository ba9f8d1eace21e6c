package importer

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func writeTestCSV(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stores.csv")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write test CSV: %v", err)
	}
	return path
}

func TestParseStoresCSVFile(t *testing.T) {
	content := []byte("name,brand,address,city,postal_code,latitude,longitude\n" +
		"Lidl Anderlecht,Lidl,Rue Wayez 51,Anderlecht,1070,50.8362,4.3097\n" +
		"Colruyt Halle,Colruyt,Nijvelsesteenweg 5,Halle,1500,50.7301,4.2396\n")

	stores, err := ParseStoresCSVFile(writeTestCSV(t, content))
	if err != nil {
		t.Fatalf("ParseStoresCSVFile() error = %v", err)
	}
	if len(stores) != 2 {
		t.Fatalf("expected 2 stores, got %d", len(stores))
	}
	if stores[0].Name != "Lidl Anderlecht" {
		t.Errorf("Name = %q", stores[0].Name)
	}
	if stores[0].Lat != 50.8362 {
		t.Errorf("Lat = %f", stores[0].Lat)
	}
	if stores[1].City != "Halle" {
		t.Errorf("City = %q", stores[1].City)
	}
}

func TestParseStoresCSVFile_SemicolonDelimiter(t *testing.T) {
	content := []byte("name;city\nCarrefour Market Etterbeek;Etterbeek\n")

	stores, err := ParseStoresCSVFile(writeTestCSV(t, content))
	if err != nil {
		t.Fatalf("ParseStoresCSVFile() error = %v", err)
	}
	if len(stores) != 1 {
		t.Fatalf("expected 1 store, got %d", len(stores))
	}
	if stores[0].City != "Etterbeek" {
		t.Errorf("City = %q", stores[0].City)
	}
}

func TestParseStoresCSVFile_Windows1252(t *testing.T) {
	// Кодируем файл с диакритикой в Windows-1252
	utf8Content := "name,city\nDelhaize Molière,Forêt\n"
	encoder := charmap.Windows1252.NewEncoder()
	encoded, _, err := transform.Bytes(encoder, []byte(utf8Content))
	if err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}

	stores, err := ParseStoresCSVFile(writeTestCSV(t, encoded))
	if err != nil {
		t.Fatalf("ParseStoresCSVFile() error = %v", err)
	}
	if len(stores) != 1 {
		t.Fatalf("expected 1 store, got %d", len(stores))
	}
	if stores[0].Name != "Delhaize Molière" {
		t.Errorf("Name = %q, diacritics lost in decoding", stores[0].Name)
	}
	if stores[0].City != "Forêt" {
		t.Errorf("City = %q", stores[0].City)
	}
}

func TestParseStoresCSVFile_MissingNameColumn(t *testing.T) {
	content := []byte("city,phone\nBruxelles,+32 2 111 11 11\n")

	if _, err := ParseStoresCSVFile(writeTestCSV(t, content)); err == nil {
		t.Error("ParseStoresCSVFile() should fail without a name column")
	}
}

func TestDetectDelimiter(t *testing.T) {
	if got := detectDelimiter([]byte("a;b;c\n1;2;3")); got != ';' {
		t.Errorf("detectDelimiter = %q, want ';'", got)
	}
	if got := detectDelimiter([]byte("a,b,c\n")); got != ',' {
		t.Errorf("detectDelimiter = %q, want ','", got)
	}
	if got := detectDelimiter([]byte("single\n")); got != ',' {
		t.Errorf("detectDelimiter = %q, want ',' fallback", got)
	}
}
