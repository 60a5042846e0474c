package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/iliyamo/troupe-audition-scheduler/internal/utils"
)

// Role levels are ordinal: every webmaster is also an admin, every admin
// also a member. Permission checks compare with >=.
const (
	LevelMember    uint8 = 0
	LevelAdmin     uint8 = 1
	LevelWebmaster uint8 = 2
)

// User mirrors the 'users' table.
type User struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
	Level        uint8
	CreatedAt    time.Time
}

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

var ErrEmailExists = errors.New("email already exists")
var ErrNameExists = errors.New("name already exists")

// Create inserts a member-level user and returns its ID. Name and email
// are stored lowercased so lookups are case-insensitive.
func (r *UserRepo) Create(ctx context.Context, name, email, password string, cost int) (uint64, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, level) VALUES (?,?,?,?)",
		name, email, hash, LevelMember)
	if err != nil {
		if isDuplicate(err, "uq_users_email") {
			return 0, ErrEmailExists
		}
		if isDuplicate(err, "uq_users_name") {
			return 0, ErrNameExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,level,created_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Level, &u.CreatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (User, error) {
	var u User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,level,created_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Level, &u.CreatedAt)
	return u, err
}

// List returns every user ordered by name. Password hashes are included;
// handlers must not serialize them.
func (r *UserRepo) List(ctx context.Context) ([]User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,email,password_hash,level,created_at FROM users ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Level, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// SetLevel changes a user's role level. Demoting the last webmaster is
// refused so the site always keeps at least one level-2 account; the check
// and the update run in one transaction to keep the count honest.
func (r *UserRepo) SetLevel(ctx context.Context, userID uint64, level uint8) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var current uint8
	err = tx.QueryRowContext(ctx,
		"SELECT level FROM users WHERE id=? FOR UPDATE", userID).Scan(&current)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if current == LevelWebmaster && level < LevelWebmaster {
		var remaining int
		if err := tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM users WHERE level=? AND id<>?",
			LevelWebmaster, userID).Scan(&remaining); err != nil {
			return err
		}
		if remaining == 0 {
			return ErrLastWebmaster
		}
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE users SET level=? WHERE id=?", level, userID); err != nil {
		return err
	}
	return tx.Commit()
}
