package game

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

const walksTableName = "walks"

// JournalService keeps one summary row per finished walk. The world itself
// is never stored.
type JournalService struct {
	db *sql.DB
}

type Walk struct {
	ID         int
	WalkerName string
	Accepted   int
	Blocked    int
	Planted    int
	CreatedAt  time.Time
}

func NewJournalService(path string) (*JournalService, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}

	service := &JournalService{db: db}
	if err := service.createTable(); err != nil {
		db.Close()
		return nil, err
	}

	return service, nil
}

func (s *JournalService) Close() error {
	return s.db.Close()
}

// createTable creates the walks table if it does not exist.
func (s *JournalService) createTable() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + walksTableName + ` (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		walker_name TEXT NOT NULL,
		accepted INTEGER NOT NULL,
		blocked INTEGER NOT NULL,
		planted INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := s.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to execute CREATE TABLE: %w", err)
	}
	log.Debug("Walks table ensured.")
	return nil
}

func (s *JournalService) SaveWalk(walkerName string, stats Stats) error {
	const insertSQL = `
	INSERT INTO ` + walksTableName + ` (walker_name, accepted, blocked, planted)
	VALUES (?, ?, ?, ?);`

	_, err := s.db.Exec(insertSQL, walkerName, stats.Accepted, stats.Blocked, stats.Planted)
	if err != nil {
		return fmt.Errorf("failed to insert walk for %s: %w", walkerName, err)
	}
	return nil
}

// RecentWalks returns a page of walks, newest first.
func (s *JournalService) RecentWalks(limit, offset int) ([]Walk, error) {
	const selectSQL = `
	SELECT id, walker_name, accepted, blocked, planted, created_at
	FROM ` + walksTableName + `
	ORDER BY id DESC
	LIMIT ? OFFSET ?;`

	rows, err := s.db.Query(selectSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query walks: %w", err)
	}
	defer rows.Close()

	var walks []Walk
	for rows.Next() {
		var walk Walk
		if err := rows.Scan(&walk.ID, &walk.WalkerName, &walk.Accepted, &walk.Blocked, &walk.Planted, &walk.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		walks = append(walks, walk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return walks, nil
}

func (s *JournalService) CountWalks() (int, error) {
	const countSQL = `SELECT COUNT(*) FROM ` + walksTableName + `;`
	var count int
	if err := s.db.QueryRow(countSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get walk count: %w", err)
	}
	return count, nil
}
