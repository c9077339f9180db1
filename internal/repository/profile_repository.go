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

// ProfileRepository defines the interface for rider profile persistence
type ProfileRepository interface {
	SaveProfile(profile entities.Profile) error
	GetProfile(userID string) (entities.Profile, bool, error)
	ListAlertProfiles() ([]entities.Profile, error)
	Close() error
}

// SQLiteProfileRepository implements ProfileRepository using SQLite
type SQLiteProfileRepository struct {
	db     *sql.DB
	DBPath string
}

// NewSQLiteProfileRepository creates and initializes a new SQLite profile repository
func NewSQLiteProfileRepository(dbPath string) (*SQLiteProfileRepository, error) {
	if dbPath == "" {
		// Set default path if not specified
		dbDir := "data"
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %v", err)
		}
		dbPath = filepath.Join(dbDir, "profiles.db")
	}

	log.Printf("Opening profile database at %s", dbPath)
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	// Create profiles table if it doesn't exist
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS profiles (
		user_id TEXT PRIMARY KEY,
		weight REAL,
		skill TEXT,
		phone TEXT,
		email TEXT,
		telegram_chat_id INTEGER,
		home_lat REAL,
		home_lon REAL,
		alerts_enabled INTEGER NOT NULL DEFAULT 0,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	_, err = db.Exec(createTableSQL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %v", err)
	}

	return &SQLiteProfileRepository{
		db:     db,
		DBPath: dbPath,
	}, nil
}

// Close closes the database connection
func (r *SQLiteProfileRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// SaveProfile stores a profile, replacing any previous one for the same user
func (r *SQLiteProfileRepository) SaveProfile(p entities.Profile) error {
	if p.UserID == "" {
		return fmt.Errorf("user_id is required")
	}

	_, err := r.db.Exec(`
		INSERT INTO profiles(user_id, weight, skill, phone, email, telegram_chat_id,
			home_lat, home_lon, alerts_enabled, updated_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
		weight=excluded.weight,
		skill=excluded.skill,
		phone=excluded.phone,
		email=excluded.email,
		telegram_chat_id=excluded.telegram_chat_id,
		home_lat=excluded.home_lat,
		home_lon=excluded.home_lon,
		alerts_enabled=excluded.alerts_enabled,
		updated_at=CURRENT_TIMESTAMP
	`,
		p.UserID,
		p.Weight,
		p.Skill,
		p.Phone,
		p.Email,
		p.TelegramChatID,
		p.HomeLat,
		p.HomeLon,
		boolToInt(p.AlertsEnabled),
	)
	if err != nil {
		return fmt.Errorf("failed to save profile for %s: %v", p.UserID, err)
	}

	log.Printf("Saved profile for user %s", p.UserID)
	return nil
}

// GetProfile retrieves a profile by user id. The second return value reports
// whether the profile exists.
func (r *SQLiteProfileRepository) GetProfile(userID string) (entities.Profile, bool, error) {
	var p entities.Profile
	var alertsEnabled int
	err := r.db.QueryRow(`
		SELECT user_id, weight, skill, phone, email, telegram_chat_id,
			home_lat, home_lon, alerts_enabled
		FROM profiles
		WHERE user_id = ?`, userID).Scan(
		&p.UserID,
		&p.Weight,
		&p.Skill,
		&p.Phone,
		&p.Email,
		&p.TelegramChatID,
		&p.HomeLat,
		&p.HomeLon,
		&alertsEnabled,
	)
	if err == sql.ErrNoRows {
		return entities.Profile{}, false, nil
	}
	if err != nil {
		return entities.Profile{}, false, fmt.Errorf("failed to query profile for %s: %v", userID, err)
	}
	p.AlertsEnabled = alertsEnabled != 0
	return p, true, nil
}

// ListAlertProfiles returns every profile that opted into stoke alerts
func (r *SQLiteProfileRepository) ListAlertProfiles() ([]entities.Profile, error) {
	rows, err := r.db.Query(`
		SELECT user_id, weight, skill, phone, email, telegram_chat_id,
			home_lat, home_lon, alerts_enabled
		FROM profiles
		WHERE alerts_enabled = 1
		ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query alert profiles: %v", err)
	}
	defer rows.Close()

	var result []entities.Profile
	for rows.Next() {
		var p entities.Profile
		var alertsEnabled int
		if err := rows.Scan(
			&p.UserID,
			&p.Weight,
			&p.Skill,
			&p.Phone,
			&p.Email,
			&p.TelegramChatID,
			&p.HomeLat,
			&p.HomeLon,
			&alertsEnabled,
		); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}
		p.AlertsEnabled = alertsEnabled != 0
		result = append(result, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %v", err)
	}

	return result, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
