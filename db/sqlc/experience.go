// db/experience.go

package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createExperience = `
INSERT INTO experiences (user_id, title, company, start_date, end_date, description)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, user_id, title, company, start_date, end_date, description, created_at
`

type CreateExperienceParams struct {
	UserID      int64
	Title       string
	Company     string
	StartDate   pgtype.Date
	EndDate     pgtype.Date
	Description pgtype.Text
}

// CreateExperience inserts an experience row for a user and returns it.
func (q *Queries) CreateExperience(ctx context.Context, arg CreateExperienceParams) (Experience, error) {
	row := q.db.QueryRow(ctx, createExperience,
		arg.UserID, arg.Title, arg.Company, arg.StartDate, arg.EndDate, arg.Description,
	)
	var e Experience
	err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Company, &e.StartDate, &e.EndDate, &e.Description, &e.CreatedAt)
	return e, err
}

const getExperience = `
SELECT id, user_id, title, company, start_date, end_date, description, created_at
FROM experiences
WHERE id = $1 AND user_id = $2
`

type GetExperienceParams struct {
	ID     int64
	UserID int64
}

// GetExperience fetches one experience, scoped to its owner.
func (q *Queries) GetExperience(ctx context.Context, arg GetExperienceParams) (Experience, error) {
	row := q.db.QueryRow(ctx, getExperience, arg.ID, arg.UserID)
	var e Experience
	err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Company, &e.StartDate, &e.EndDate, &e.Description, &e.CreatedAt)
	return e, err
}

const listExperiences = `
SELECT id, user_id, title, company, start_date, end_date, description, created_at
FROM experiences
WHERE user_id = $1
ORDER BY start_date DESC NULLS LAST, id DESC
`

// ListExperiences returns all experiences of a user, most recent first.
func (q *Queries) ListExperiences(ctx context.Context, userID int64) ([]Experience, error) {
	rows, err := q.db.Query(ctx, listExperiences, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Experience{}
	for rows.Next() {
		var e Experience
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Company, &e.StartDate, &e.EndDate, &e.Description, &e.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const updateExperience = `
UPDATE experiences
SET title = $3, company = $4, start_date = $5, end_date = $6, description = $7
WHERE id = $1 AND user_id = $2
RETURNING id, user_id, title, company, start_date, end_date, description, created_at
`

type UpdateExperienceParams struct {
	ID          int64
	UserID      int64
	Title       string
	Company     string
	StartDate   pgtype.Date
	EndDate     pgtype.Date
	Description pgtype.Text
}

func (q *Queries) UpdateExperience(ctx context.Context, arg UpdateExperienceParams) (Experience, error) {
	row := q.db.QueryRow(ctx, updateExperience,
		arg.ID, arg.UserID, arg.Title, arg.Company, arg.StartDate, arg.EndDate, arg.Description,
	)
	var e Experience
	err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Company, &e.StartDate, &e.EndDate, &e.Description, &e.CreatedAt)
	return e, err
}

const deleteExperience = `
DELETE FROM experiences
WHERE id = $1 AND user_id = $2
`

type DeleteExperienceParams struct {
	ID     int64
	UserID int64
}

// DeleteExperience removes an experience; join rows go with it via ON DELETE CASCADE.
func (q *Queries) DeleteExperience(ctx context.Context, arg DeleteExperienceParams) error {
	_, err := q.db.Exec(ctx, deleteExperience, arg.ID, arg.UserID)
	return err
}

const countDistinctCompanies = `
SELECT COUNT(DISTINCT company)
FROM experiences
WHERE user_id = $1
`

func (q *Queries) CountDistinctCompanies(ctx context.Context, userID int64) (int64, error) {
	row := q.db.QueryRow(ctx, countDistinctCompanies, userID)
	var count int64
	err := row.Scan(&count)
	return count, err
}
