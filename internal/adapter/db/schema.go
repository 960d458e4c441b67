package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
  id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
  name VARCHAR(100) NOT NULL,
  email VARCHAR(255) NOT NULL,
  created_at DATETIME NOT NULL,
  UNIQUE KEY uq_users_email (email)
)`,
	`CREATE TABLE IF NOT EXISTS shops (
  id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
  name VARCHAR(100) NOT NULL,
  description VARCHAR(500) NULL,
  created_at DATETIME NOT NULL,
  UNIQUE KEY uq_shops_name (name)
)`,
	`CREATE TABLE IF NOT EXISTS channels (
  id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
  name VARCHAR(100) NOT NULL,
  description VARCHAR(500) NULL,
  created_at DATETIME NOT NULL,
  UNIQUE KEY uq_channels_name (name)
)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE COLLATE NOCASE,
  created_at DATETIME NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS shops (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE COLLATE NOCASE,
  description TEXT NULL,
  created_at DATETIME NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS channels (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE COLLATE NOCASE,
  description TEXT NULL,
  created_at DATETIME NOT NULL
)`,
}

type sampleUser struct {
	name  string
	email string
}

type sampleCatalogItem struct {
	name        string
	description string
}

var sampleUsers = []sampleUser{
	{"John Doe", "john@example.com"},
	{"Jane Smith", "jane@example.com"},
	{"Bob Johnson", "bob@example.com"},
	{"Alice Brown", "alice@example.com"},
	{"Charlie Wilson", "charlie@example.com"},
}

var sampleShops = []sampleCatalogItem{
	{"Tech Store", "Electronics and gadgets for technology enthusiasts"},
	{"Fashion Hub", "Trendy clothing and accessories for modern lifestyle"},
	{"Book Corner", "Books, magazines and educational materials"},
	{"Health & Wellness", "Health supplements and wellness products"},
	{"Home Decor", "Beautiful home decoration items and furniture"},
}

var sampleChannels = []sampleCatalogItem{
	{"Main Channel", "Primary content channel for general audience"},
	{"Gaming", "Gaming content, reviews and live streaming"},
	{"Lifestyle", "Lifestyle content and daily vlogs"},
	{"Tech Reviews", "Technology product reviews and tutorials"},
	{"Food & Cooking", "Cooking recipes and food-related content"},
}

// Migrate creates the entity tables for the connection's driver.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	statements := mysqlSchema
	if db.DriverName() == "sqlite" {
		statements = sqliteSchema
	}

	for _, statement := range statements {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("could not apply schema: %w", err)
		}
	}
	return nil
}

// SeedSampleData inserts the sample users, shops and channels into tables that
// are still empty. Tables that already hold rows are left alone.
func SeedSampleData(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	if empty, err := tableEmpty(ctx, tx, "users"); err != nil {
		return err
	} else if empty {
		for _, user := range sampleUsers {
			if _, err := tx.ExecContext(ctx, "INSERT INTO users (name, email, created_at) VALUES (?, ?, ?)", user.name, user.email, now); err != nil {
				return fmt.Errorf("could not insert sample user: %w", err)
			}
		}
	}

	for _, table := range []struct {
		name  string
		items []sampleCatalogItem
	}{
		{"shops", sampleShops},
		{"channels", sampleChannels},
	} {
		empty, err := tableEmpty(ctx, tx, table.name)
		if err != nil {
			return err
		}
		if !empty {
			continue
		}
		query := "INSERT INTO " + table.name + " (name, description, created_at) VALUES (?, ?, ?)"
		for _, item := range table.items {
			if _, err := tx.ExecContext(ctx, query, item.name, item.description, now); err != nil {
				return fmt.Errorf("could not insert sample %s: %w", table.name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	zap.L().Info("sample data ready")
	return nil
}

func tableEmpty(ctx context.Context, tx *sqlx.Tx, table string) (bool, error) {
	var count int
	if err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+table); err != nil {
		return false, fmt.Errorf("could not count %s: %w", table, err)
	}
	return count == 0, nil
}
