package repository

import (
	"context"
	"errors"
	"time"

	"internhub/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("profile not found")

type Profile struct {
	UserID         uuid.UUID
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	University     string
	Major          string
	GraduationYear string
	GPA            string
	Bio            string
	Skills         []string
	UpdatedAt      time.Time
}

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	Upsert(ctx context.Context, p Profile) error
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, first_name, last_name, email, phone, university, major,
		        graduation_year, gpa, bio, skills, updated_at
		 FROM profiles
		 WHERE user_id = $1`,
		userID,
	)

	var p Profile
	err := row.Scan(
		&p.UserID, &p.FirstName, &p.LastName, &p.Email, &p.Phone,
		&p.University, &p.Major, &p.GraduationYear, &p.GPA, &p.Bio,
		&p.Skills, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrProfileNotFound
		}
		return Profile{}, err
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return p, nil
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, p Profile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO profiles (user_id, first_name, last_name, email, phone, university,
		                       major, graduation_year, gpa, bio, skills, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
		 ON CONFLICT (user_id) DO UPDATE SET
		   first_name = EXCLUDED.first_name,
		   last_name = EXCLUDED.last_name,
		   email = EXCLUDED.email,
		   phone = EXCLUDED.phone,
		   university = EXCLUDED.university,
		   major = EXCLUDED.major,
		   graduation_year = EXCLUDED.graduation_year,
		   gpa = EXCLUDED.gpa,
		   bio = EXCLUDED.bio,
		   skills = EXCLUDED.skills,
		   updated_at = now()`,
		p.UserID, p.FirstName, p.LastName, p.Email, p.Phone, p.University,
		p.Major, p.GraduationYear, p.GPA, p.Bio, p.Skills,
	)
	return err
}
