package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"storefinder/dataset"
)

// ParseStoresCSVFile парсит CSV-файл со списком магазинов. Муниципальные
// выгрузки нередко приходят в Latin-1: файл, не являющийся валидным UTF-8,
// прозрачно декодируется из Windows-1252.
func ParseStoresCSVFile(filePath string) ([]dataset.Store, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	if !utf8.Valid(raw) {
		decoder := charmap.Windows1252.NewDecoder()
		decoded, _, err := transform.Bytes(decoder, raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode CSV file as Windows-1252: %w", err)
		}
		raw = decoded
	}

	return parseStoresCSV(raw)
}

func parseStoresCSV(data []byte) ([]dataset.Store, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.Comma = detectDelimiter(data)

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := findStoreColumns(headers)
	if cols.name == -1 {
		return nil, fmt.Errorf("required column 'name' not found in headers")
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		rows = append(rows, row)
	}

	return parseStoreRows(rows, cols)
}

// detectDelimiter выбирает разделитель по первой строке: европейские
// выгрузки часто используют точку с запятой
func detectDelimiter(data []byte) rune {
	for _, b := range data {
		switch b {
		case '\n':
			return ','
		case ';':
			return ';'
		case ',':
			return ','
		}
	}
	return ','
}
