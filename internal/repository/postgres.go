package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"churro/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresRepository loads the car inventory from PostgreSQL. It is only
// touched at startup; the running pipeline reads the in-memory store.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// LoadCars fetches the full inventory in insertion order. The seq serial
// column preserves load order; id is the outward string key.
func (r *PostgresRepository) LoadCars(ctx context.Context) ([]model.Car, error) {
	query := `
		SELECT
			id, make, model, year, category, daily_rate, image_url, features,
			seats, transmission, fuel_type, available, mileage_policy,
			location, pickup_method
		FROM cars
		ORDER BY seq
	`
	var cars []model.Car
	if err := r.db.SelectContext(ctx, &cars, query); err != nil {
		return nil, fmt.Errorf("failed to fetch cars: %w", err)
	}
	return cars, nil
}
