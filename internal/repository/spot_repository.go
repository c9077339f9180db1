// Package repository provides data access implementations
package repository

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/DecayAI/windwizard/internal/entities"
	_ "github.com/mattn/go-sqlite3"
)

// SpotRepository defines the interface for kite spot persistence operations
type SpotRepository interface {
	SaveSpots(spots []entities.Spot) error
	GetAllSpots() ([]entities.Spot, error)
	CountSpots() (int, error)
	Close() error
}

// SQLiteSpotRepository implements SpotRepository using SQLite
type SQLiteSpotRepository struct {
	db     *sql.DB
	DBPath string
}

// NewSQLiteSpotRepository creates and initializes a new SQLite spot repository
func NewSQLiteSpotRepository(dbPath string) (*SQLiteSpotRepository, error) {
	if dbPath == "" {
		// Set default path if not specified
		dbDir := "data"
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %v", err)
		}
		dbPath = filepath.Join(dbDir, "spots.db")
	}

	log.Printf("Opening spot database at %s", dbPath)
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	// Create spots table if it doesn't exist
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS spots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		region TEXT,
		description TEXT,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_spots_region ON spots(region);`

	_, err = db.Exec(createTableSQL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %v", err)
	}

	return &SQLiteSpotRepository{
		db:     db,
		DBPath: dbPath,
	}, nil
}

// Close closes the database connection
func (r *SQLiteSpotRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// SaveSpots stores spots in the database, updating existing ones by name
func (r *SQLiteSpotRepository) SaveSpots(spots []entities.Spot) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO spots(name, lat, lon, region, description)
		VALUES(?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
		lat=excluded.lat,
		lon=excluded.lon,
		region=excluded.region,
		description=excluded.description,
		updated_at=CURRENT_TIMESTAMP
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare statement: %v", err)
	}
	defer stmt.Close()

	for _, s := range spots {
		_, err := stmt.Exec(
			s.Name,
			s.Lat,
			s.Lon,
			s.Region,
			s.Description,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert spot %s: %v", s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	log.Printf("Successfully saved %d spots", len(spots))
	return nil
}

// GetAllSpots retrieves every spot in the database ordered by name
func (r *SQLiteSpotRepository) GetAllSpots() ([]entities.Spot, error) {
	query := `
		SELECT id, name, lat, lon, region, description
		FROM spots
		ORDER BY name`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query spots: %v", err)
	}
	defer rows.Close()

	var result []entities.Spot
	for rows.Next() {
		var s entities.Spot
		var region, description sql.NullString
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Lat,
			&s.Lon,
			&region,
			&description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}
		s.Region = region.String
		s.Description = description.String
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %v", err)
	}

	return result, nil
}

// CountSpots returns the number of spots in the database
func (r *SQLiteSpotRepository) CountSpots() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM spots").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count spots: %v", err)
	}
	return count, nil
}

// SeedDefaults inserts the built-in demo spots when the table is empty.
// It returns the number of spots inserted, zero when data already exists.
func (r *SQLiteSpotRepository) SeedDefaults() (int, error) {
	count, err := r.CountSpots()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	if err := r.SaveSpots(DefaultSpots); err != nil {
		return 0, fmt.Errorf("failed to seed default spots: %v", err)
	}
	return len(DefaultSpots), nil
}
