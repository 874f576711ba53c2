package pg

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/threadhub-dev/threadhub/internal/config"
	"github.com/threadhub-dev/threadhub/internal/logger"
)

type Storage struct {
	db *sql.DB
}

func New(cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db")
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")

	storage := &Storage{db}
	if err := storage.seedCategories(); err != nil {
		return nil, err
	}
	return storage, nil
}

func Connect(cfg *config.Config) (*sql.DB, error) {
	pg := cfg.Private.Pg
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		pg.Host, pg.Port, pg.User, pg.Password, pg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// seedCategories inserts the default taxonomy on first startup.
func (s *Storage) seedCategories() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	titles := []string{"Food", "Travel", "Fashion", "Sports", "Music", "Movies", "Books"}
	for _, title := range titles {
		if _, err := s.db.Exec("INSERT INTO categories (title) VALUES ($1)", title); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", title, err)
		}
	}
	logger.Log.Info("default categories created")
	return nil
}
