package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/vivahalink/vivaha-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials hides whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AdminRepository interface {
	Authenticate(ctx context.Context, email, password string) (models.Admin, error)
	GetByID(ctx context.Context, adminID string) (models.Admin, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, email, password string) (models.Admin, error)
}

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Authenticate(ctx context.Context, email, password string) (models.Admin, error) {
	var admin models.Admin

	const query = `
		SELECT id, email, password_hash, created_at
		FROM admins
		WHERE lower(email) = lower($1)`
	err := r.db.QueryRowContext(ctx, query, strings.TrimSpace(email)).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Admin{}, ErrInvalidCredentials
		}
		return models.Admin{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return models.Admin{}, ErrInvalidCredentials
	}

	return admin, nil
}

func (r *adminRepository) GetByID(ctx context.Context, adminID string) (models.Admin, error) {
	var admin models.Admin

	const query = `
		SELECT id, email, password_hash, created_at
		FROM admins
		WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, adminID).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.CreatedAt,
	)
	if err != nil {
		return models.Admin{}, err
	}

	return admin, nil
}

func (r *adminRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count)
	return count, err
}

func (r *adminRepository) Create(ctx context.Context, email, password string) (models.Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Admin{}, err
	}

	admin := models.Admin{
		Email:        strings.TrimSpace(email),
		PasswordHash: string(hash),
	}

	const query = `
		INSERT INTO admins (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at`
	err = r.db.QueryRowContext(ctx, query, admin.Email, admin.PasswordHash).Scan(&admin.ID, &admin.CreatedAt)
	if err != nil {
		return models.Admin{}, err
	}

	return admin, nil
}
