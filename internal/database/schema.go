package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema holds the CREATE TABLE statements for every table the service
// uses.  Statements are idempotent so EnsureSchema can run on every boot.
//
// bookings carries two uniqueness guarantees the handlers rely on:
//   - uq_show_slot: two users can never hold the same slot of a show; the
//     duplicate-key error surfaces as a retryable "slot taken" response.
//   - uq_user_show: a user holds at most one booking per show; re-signup
//     replaces the old row inside a transaction.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name          VARCHAR(64)  NOT NULL,
		email         VARCHAR(120) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		level         TINYINT UNSIGNED NOT NULL DEFAULT 0,
		created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_name  (name),
		UNIQUE KEY uq_users_email (email),
		KEY idx_users_level (level)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id    BIGINT UNSIGNED NOT NULL,
		token_hash CHAR(64) NOT NULL,
		expires_at DATETIME NOT NULL,
		revoked_at DATETIME NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_refresh_hash (token_hash),
		KEY idx_refresh_user (user_id),
		CONSTRAINT fk_refresh_user FOREIGN KEY (user_id) REFERENCES users (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS audition_blocks (
		id              BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		show_name       VARCHAR(64) NOT NULL,
		audition_on     DATE NOT NULL,
		starts_at       DATETIME NOT NULL,
		ends_at         DATETIME NOT NULL,
		slot_length_sec INT UNSIGNED NOT NULL,
		created_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_blocks_show (show_name),
		KEY idx_blocks_date (audition_on)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		show_name  VARCHAR(64) NOT NULL,
		slot_at    DATETIME NOT NULL,
		user_id    BIGINT UNSIGNED NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_show_slot (show_name, slot_at),
		UNIQUE KEY uq_user_show (user_id, show_name),
		CONSTRAINT fk_bookings_user FOREIGN KEY (user_id) REFERENCES users (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates any missing tables.  It is safe to call on every
// startup; existing tables are left untouched.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
