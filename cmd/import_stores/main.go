package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"storefinder/database"
	"storefinder/dataset"
	"storefinder/importer"
)

func main() {
	var (
		filePath = flag.String("file", "", "Path to the stores file (.xlsx or .csv)")
		dbPath   = flag.String("db", "./storefinder.db", "Path to the database")
		verbose  = flag.Bool("verbose", false, "Verbose output")
	)
	flag.Parse()

	if *filePath == "" {
		fmt.Println("Usage: import_stores -file <path_to_stores_file> [-db <database_path>] [-verbose]")
		fmt.Println("\nExample:")
		fmt.Println("  import_stores -file data/stores_brussels.xlsx -db storefinder.db")
		os.Exit(1)
	}

	if _, err := os.Stat(*filePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Fatalf("File not found: %s", *filePath)
		}
		log.Fatalf("Error checking file %s: %v", *filePath, err)
	}

	dbDir := filepath.Dir(*dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	// Парсим файл по расширению
	var (
		stores []dataset.Store
		err    error
	)
	switch strings.ToLower(filepath.Ext(*filePath)) {
	case ".xlsx":
		stores, err = importer.ParseStoresExcelFile(*filePath)
	case ".csv":
		stores, err = importer.ParseStoresCSVFile(*filePath)
	default:
		log.Fatalf("Unsupported file format: %s (expected .xlsx or .csv)", filepath.Ext(*filePath))
	}
	if err != nil {
		log.Fatalf("Failed to parse stores file: %v", err)
	}

	if *verbose {
		log.Printf("Parsed %d stores from %s", len(stores), *filePath)
		for _, store := range stores {
			log.Printf("  %s (%s, %s)", store.Name, store.Brand, store.City)
		}
	}

	db, err := database.Open(*dbPath, database.Config{})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.ReplaceStores(stores); err != nil {
		log.Fatalf("Failed to import stores: %v", err)
	}

	count, err := db.CountStores()
	if err != nil {
		log.Fatalf("Failed to count stores: %v", err)
	}

	log.Printf("Import complete: %d stores in database", count)
}
