package auth

import (
	"context"
	"embed"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var embedded embed.FS

// Migrations holds the goose migrations for the users table, rooted for
// db.Migrate.
var Migrations = mustSub(embedded, "migrations")

const uniqueViolation = "23505"

// Postgres authenticates against the lizardui_users table.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) Authenticate(ctx context.Context, username, password string) (*User, error) {
	var u User
	err := p.pool.QueryRow(ctx,
		`SELECT id::text, username, password_hash, is_active FROM lizardui_users WHERE username = $1`,
		normalizeUsername(username),
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !checkPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

// CreateUser inserts a user and returns its ID.
func (p *Postgres) CreateUser(ctx context.Context, username, password string, active bool) (string, error) {
	username = normalizeUsername(username)
	if username == "" {
		return "", ErrEmptyUsername
	}
	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}

	var id string
	err = p.pool.QueryRow(ctx,
		`INSERT INTO lizardui_users (username, password_hash, is_active) VALUES ($1, $2, $3) RETURNING id::text`,
		username, hash, active,
	).Scan(&id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return "", ErrUserExists
	}
	return id, err
}
