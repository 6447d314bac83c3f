// db/models.go

package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

////////////////////////////////////////////////////////////////////////
// Enums
////////////////////////////////////////////////////////////////////////

// ProficiencyLevel mirrors the proficiency_level enum in Postgres.
type ProficiencyLevel string

const (
	ProficiencyLevelBeginner     ProficiencyLevel = "Beginner"
	ProficiencyLevelIntermediate ProficiencyLevel = "Intermediate"
	ProficiencyLevelAdvanced     ProficiencyLevel = "Advanced"
)

func (e *ProficiencyLevel) Scan(src interface{}) error {
	switch s := src.(type) {
	case []byte:
		*e = ProficiencyLevel(s)
	case string:
		*e = ProficiencyLevel(s)
	default:
		return fmt.Errorf("unsupported scan type for ProficiencyLevel: %T", src)
	}
	return nil
}

// Valid reports whether the value is one of the enum's members.
func (e ProficiencyLevel) Valid() bool {
	switch e {
	case ProficiencyLevelBeginner, ProficiencyLevelIntermediate, ProficiencyLevelAdvanced:
		return true
	}
	return false
}

// NullProficiencyLevel represents a proficiency_level column that may be NULL.
type NullProficiencyLevel struct {
	ProficiencyLevel ProficiencyLevel
	Valid            bool // Valid is true if ProficiencyLevel is not NULL
}

func (ns *NullProficiencyLevel) Scan(src interface{}) error {
	if src == nil {
		ns.ProficiencyLevel, ns.Valid = "", false
		return nil
	}
	ns.Valid = true
	return ns.ProficiencyLevel.Scan(src)
}

func (ns NullProficiencyLevel) Value() (driver.Value, error) {
	if !ns.Valid {
		return nil, nil
	}
	return string(ns.ProficiencyLevel), nil
}

// MarshalJSON renders the level as a bare string, or null when the column is NULL,
// so API responses match what the frontend record types expect.
func (ns NullProficiencyLevel) MarshalJSON() ([]byte, error) {
	if !ns.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(string(ns.ProficiencyLevel))
}

func (ns *NullProficiencyLevel) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		ns.ProficiencyLevel, ns.Valid = "", false
		return nil
	}
	ns.ProficiencyLevel, ns.Valid = ProficiencyLevel(*s), true
	return nil
}

////////////////////////////////////////////////////////////////////////
// Table models
////////////////////////////////////////////////////////////////////////

type User struct {
	ID           int64              `json:"id"`
	Name         pgtype.Text        `json:"name"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"-"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

type Experience struct {
	ID          int64              `json:"id"`
	UserID      int64              `json:"user_id"`
	Title       string             `json:"title"`
	Company     string             `json:"company"`
	StartDate   pgtype.Date        `json:"start_date"`
	EndDate     pgtype.Date        `json:"end_date"`
	Description pgtype.Text        `json:"description"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

type Skill struct {
	ID          int64                `json:"id"`
	UserID      int64                `json:"user_id"`
	SkillName   string               `json:"skill_name"`
	Proficiency NullProficiencyLevel `json:"proficiency"`
	Source      string               `json:"source"`
}

// ExperienceSkill is the many-to-many join between experiences and skills.
type ExperienceSkill struct {
	ExperienceID int64 `json:"experience_id"`
	SkillID      int64 `json:"skill_id"`
}
