// Package importer загружает записи магазинов из внешних файлов (Excel, CSV)
// в формат локального набора.
package importer

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"storefinder/dataset"
	"storefinder/openinghours"
)

// storeColumns индексы колонок в файле магазинов; -1 если колонка не найдена
type storeColumns struct {
	name       int
	brand      int
	address    int
	city       int
	postalCode int
	lat        int
	lon        int
	phone      int
	hours      int
}

// ParseStoresExcelFile парсит Excel-файл со списком магазинов.
// Колонки определяются по заголовкам первой строки, порядок не важен.
func ParseStoresExcelFile(filePath string) ([]dataset.Store, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("file is too short, expected header row and at least one data row")
	}

	cols := findStoreColumns(rows[0])
	if cols.name == -1 {
		return nil, fmt.Errorf("required column 'name' not found in headers")
	}

	slog.Info("parsing stores file",
		"component", "importer",
		"file", filePath,
		"rows", len(rows)-1,
	)

	return parseStoreRows(rows[1:], cols)
}

// findStoreColumns определяет индексы колонок по заголовкам
func findStoreColumns(headers []string) storeColumns {
	cols := storeColumns{
		name: -1, brand: -1, address: -1, city: -1,
		postalCode: -1, lat: -1, lon: -1, phone: -1, hours: -1,
	}

	for i, header := range headers {
		h := strings.TrimSpace(strings.ToLower(header))
		switch {
		case h == "name" || h == "nom" || h == "store" || h == "magasin":
			cols.name = i
		case h == "brand" || h == "enseigne" || h == "chain":
			cols.brand = i
		case strings.Contains(h, "address") || strings.Contains(h, "adresse"):
			cols.address = i
		case h == "city" || h == "ville" || h == "commune":
			cols.city = i
		case strings.Contains(h, "postal") || h == "zip" || h == "cp":
			cols.postalCode = i
		case h == "lat" || h == "latitude":
			cols.lat = i
		case h == "lon" || h == "lng" || h == "longitude":
			cols.lon = i
		case strings.Contains(h, "phone") || strings.Contains(h, "tel"):
			cols.phone = i
		case strings.Contains(h, "hours") || strings.Contains(h, "horaire"):
			cols.hours = i
		}
	}

	return cols
}

// parseStoreRows превращает строки таблицы в записи магазинов.
// Строки без имени пропускаются, мусор в координатах обнуляет их.
func parseStoreRows(rows [][]string, cols storeColumns) ([]dataset.Store, error) {
	stores := make([]dataset.Store, 0, len(rows))

	for _, row := range rows {
		name := cell(row, cols.name)
		if name == "" {
			continue
		}

		store := dataset.Store{
			Name:       name,
			Brand:      cell(row, cols.brand),
			Address:    cell(row, cols.address),
			City:       cell(row, cols.city),
			PostalCode: cell(row, cols.postalCode),
			Phone:      cell(row, cols.phone),
		}

		if lat, err := strconv.ParseFloat(cell(row, cols.lat), 64); err == nil {
			store.Lat = lat
		}
		if lon, err := strconv.ParseFloat(cell(row, cols.lon), 64); err == nil {
			store.Lon = lon
		}

		// Расписание в одной ячейке, строки разделены "|"
		if raw := cell(row, cols.hours); raw != "" {
			schedule := openinghours.Normalize(strings.Split(raw, "|"))
			if len(schedule) > 0 {
				store.Hours = schedule
			}
		}

		stores = append(stores, store)
	}

	if len(stores) == 0 {
		return nil, fmt.Errorf("no valid store rows found")
	}

	return stores, nil
}

// cell безопасно читает ячейку строки
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
