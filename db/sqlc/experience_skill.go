// db/experience_skill.go

package db

import (
	"context"
)

const linkExperienceSkill = `
INSERT INTO experience_skills (experience_id, skill_id)
VALUES ($1, $2)
ON CONFLICT (experience_id, skill_id) DO NOTHING
`

type LinkExperienceSkillParams struct {
	ExperienceID int64
	SkillID      int64
}

// LinkExperienceSkill creates the join row between an experience and a skill.
// Both referenced rows must already exist; re-linking the same pair is a no-op.
func (q *Queries) LinkExperienceSkill(ctx context.Context, arg LinkExperienceSkillParams) error {
	_, err := q.db.Exec(ctx, linkExperienceSkill, arg.ExperienceID, arg.SkillID)
	return err
}

const listSkillsForExperience = `
SELECT s.id, s.user_id, s.skill_name, s.proficiency, s.source
FROM experience_skills es
JOIN skills s ON s.id = es.skill_id
WHERE es.experience_id = $1 AND s.user_id = $2
ORDER BY s.skill_name
`

type ListSkillsForExperienceParams struct {
	ExperienceID int64
	UserID       int64
}

func (q *Queries) ListSkillsForExperience(ctx context.Context, arg ListSkillsForExperienceParams) ([]Skill, error) {
	rows, err := q.db.Query(ctx, listSkillsForExperience, arg.ExperienceID, arg.UserID)
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

const getMostLinkedSkill = `
SELECT s.skill_name, COUNT(*) AS uses
FROM experience_skills es
JOIN skills s ON s.id = es.skill_id
WHERE s.user_id = $1
GROUP BY s.skill_name
ORDER BY uses DESC, s.skill_name
LIMIT 1
`

type GetMostLinkedSkillRow struct {
	SkillName string
	Uses      int64
}

// GetMostLinkedSkill returns the skill referenced by the most experiences.
// Returns pgx.ErrNoRows when the user has no skill links at all.
func (q *Queries) GetMostLinkedSkill(ctx context.Context, userID int64) (GetMostLinkedSkillRow, error) {
	row := q.db.QueryRow(ctx, getMostLinkedSkill, userID)
	var r GetMostLinkedSkillRow
	err := row.Scan(&r.SkillName, &r.Uses)
	return r, err
}
