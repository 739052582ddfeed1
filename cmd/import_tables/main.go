package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"agrodashboard/database"
	"agrodashboard/importer"
	"agrodashboard/internal/config"
	"agrodashboard/internal/infrastructure/persistence"
)

func main() {
	var (
		dbPath  = flag.String("db", "", "Path to staging database (STAGING_DATABASE_PATH by default)")
		verbose = flag.Bool("verbose", false, "Verbose output")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dbPath == "" {
		*dbPath = cfg.StagingDatabasePath
	}

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	db, err := database.NewStagingDBWithConfig(*dbPath, database.DBConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	source := persistence.NewFileSource(cfg.SourcePaths(), cfg.SourceEncoding)
	imported, err := importTables(context.Background(), source, db, *verbose)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	fmt.Println("\n=== Import Results ===")
	for _, info := range imported {
		fmt.Printf("%-15s %6d rows  %d columns  import_id=%s\n", info.Name, info.RowCount, len(info.Columns), info.ImportID)
	}
	fmt.Printf("Database: %s\n", *dbPath)
}

// importTables копирует все таблицы источника в staging базу.
// Отсутствующая таблица правил пропускается, остальные обязательны.
func importTables(ctx context.Context, source persistence.RawSource, db *database.StagingDB, verbose bool) ([]database.TableInfo, error) {
	var imported []database.TableInfo

	for _, name := range persistence.TableNames {
		table, err := source.ReadTable(ctx, name)
		if err != nil {
			if name == persistence.TableRules && errors.Is(err, importer.ErrTableNotFound) {
				log.Printf("Skipping %s: %v", name, err)
				continue
			}
			return imported, fmt.Errorf("read %s: %w", name, err)
		}

		if verbose {
			log.Printf("Read %s from %s: %d rows", name, source.Describe(), table.Len())
		}

		info, err := db.SaveTable(ctx, table)
		if err != nil {
			return imported, fmt.Errorf("save %s: %w", name, err)
		}
		imported = append(imported, *info)
	}

	return imported, nil
}
