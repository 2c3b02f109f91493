package repository

import (
	"context"
	"errors"
	"time"

	"internhub/internal/database"

	"github.com/google/uuid"
)

var ErrApplicationNotFound = errors.New("application not found")

type Application struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	InternshipID    string
	Company         string
	Role            string
	CoverLetter     string
	AdditionalNotes string
	Status          string
	AppliedAt       time.Time
}

type ApplicationRepository interface {
	Create(ctx context.Context, a Application) error
	// FindByUserID returns every application owned by the identity ordered by
	// applied_at descending. The ordering is a presentation contract.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Application, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, user_id, internship_id, company, role,
		                           cover_letter, additional_notes, status, applied_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.UserID, a.InternshipID, a.Company, a.Role,
		a.CoverLetter, a.AdditionalNotes, a.Status, a.AppliedAt,
	)
	return err
}

func (r *PostgresApplicationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, internship_id, company, role,
		        cover_letter, additional_notes, status, applied_at
		 FROM applications
		 WHERE user_id = $1
		 ORDER BY applied_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Application, 0)
	for rows.Next() {
		var a Application
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.InternshipID, &a.Company, &a.Role,
			&a.CoverLetter, &a.AdditionalNotes, &a.Status, &a.AppliedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
