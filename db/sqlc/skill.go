// db/skill.go

package db

import (
	"context"
)

const upsertSkill = `
INSERT INTO skills (user_id, skill_name, proficiency, source)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, skill_name)
DO UPDATE SET proficiency = EXCLUDED.proficiency, source = EXCLUDED.source
RETURNING id, user_id, skill_name, proficiency, source
`

type UpsertSkillParams struct {
	UserID      int64
	SkillName   string
	Proficiency NullProficiencyLevel
	Source      string
}

// UpsertSkill inserts a skill, or updates proficiency and source when the
// (user_id, skill_name) unique constraint already holds a row. Re-importing a
// resume therefore updates skills instead of duplicating them.
func (q *Queries) UpsertSkill(ctx context.Context, arg UpsertSkillParams) (Skill, error) {
	row := q.db.QueryRow(ctx, upsertSkill, arg.UserID, arg.SkillName, arg.Proficiency, arg.Source)
	var s Skill
	err := row.Scan(&s.ID, &s.UserID, &s.SkillName, &s.Proficiency, &s.Source)
	return s, err
}

const getSkill = `
SELECT id, user_id, skill_name, proficiency, source
FROM skills
WHERE id = $1 AND user_id = $2
`

type GetSkillParams struct {
	ID     int64
	UserID int64
}

func (q *Queries) GetSkill(ctx context.Context, arg GetSkillParams) (Skill, error) {
	row := q.db.QueryRow(ctx, getSkill, arg.ID, arg.UserID)
	var s Skill
	err := row.Scan(&s.ID, &s.UserID, &s.SkillName, &s.Proficiency, &s.Source)
	return s, err
}

const listSkills = `
SELECT id, user_id, skill_name, proficiency, source
FROM skills
WHERE user_id = $1
ORDER BY skill_name
`

func (q *Queries) ListSkills(ctx context.Context, userID int64) ([]Skill, error) {
	rows, err := q.db.Query(ctx, listSkills, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Skill{}
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.SkillName, &s.Proficiency, &s.Source); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

const updateSkillProficiency = `
UPDATE skills
SET proficiency = $3
WHERE id = $1 AND user_id = $2
RETURNING id, user_id, skill_name, proficiency, source
`

type UpdateSkillProficiencyParams struct {
	ID          int64
	UserID      int64
	Proficiency NullProficiencyLevel
}

func (q *Queries) UpdateSkillProficiency(ctx context.Context, arg UpdateSkillProficiencyParams) (Skill, error) {
	row := q.db.QueryRow(ctx, updateSkillProficiency, arg.ID, arg.UserID, arg.Proficiency)
	var s Skill
	err := row.Scan(&s.ID, &s.UserID, &s.SkillName, &s.Proficiency, &s.Source)
	return s, err
}

const deleteSkill = `
DELETE FROM skills
WHERE id = $1 AND user_id = $2
`

type DeleteSkillParams struct {
	ID     int64
	UserID int64
}

func (q *Queries) DeleteSkill(ctx context.Context, arg DeleteSkillParams) error {
	_, err := q.db.Exec(ctx, deleteSkill, arg.ID, arg.UserID)
	return err
}

const countDistinctSkills = `
SELECT COUNT(DISTINCT skill_name)
FROM skills
WHERE user_id = $1
`

func (q *Queries) CountDistinctSkills(ctx context.Context, userID int64) (int64, error) {
	row := q.db.QueryRow(ctx, countDistinctSkills, userID)
	var count int64
	err := row.Scan(&count)
	return count, err
}
