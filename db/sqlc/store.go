// db/store.go

package db

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

////////////////////////////////////////////////////////////////////////
// Store Definition
////////////////////////////////////////////////////////////////////////

// Store provides all functions to execute db queries and transactions.
type Store struct {
	*Queries
	dbpool *pgxpool.Pool
	caser  cases.Caser // Unicode-correct title casing for skill names
}

// NewStore creates a new Store.
func NewStore(dbpool *pgxpool.Pool) *Store {
	return &Store{
		dbpool:  dbpool,
		Queries: New(dbpool),
		caser:   cases.Title(language.English),
	}
}

// execTx executes a function within a database transaction.
func (s *Store) execTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := s.dbpool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) // Rollback is a no-op if the transaction has been committed.

	q := New(tx)
	err = fn(q)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

////////////////////////////////////////////////////////////////////////
// Transaction: ImportResume
////////////////////////////////////////////////////////////////////////

// ImportSkill is one skill reference coming out of a parsed resume.
type ImportSkill struct {
	Name        string
	Proficiency NullProficiencyLevel
	Source      string
}

// ImportExperience is one experience coming out of a parsed resume, with the
// skills it mentions inline.
type ImportExperience struct {
	Title       string
	Company     string
	StartDate   pgtype.Date
	EndDate     pgtype.Date
	Description pgtype.Text
	Skills      []ImportSkill
}

// ImportResumeTxParams contains everything needed to persist one parsed resume.
type ImportResumeTxParams struct {
	UserID      int64
	Experiences []ImportExperience
	Skills      []ImportSkill // document-level skills not tied to any one experience
}

// ImportResumeTxResult contains the rows written during the import.
type ImportResumeTxResult struct {
	ImportID     uuid.UUID
	Experiences  []Experience
	Skills       []Skill
	LinksCreated int
}

// ImportResumeTx persists a parsed resume in a single transaction:
//
//  1. Insert every experience, collecting generated ids by array position.
//     Keying by position rather than title keeps two same-titled roles in one
//     resume from stealing each other's skill links.
//  2. Union the distinct skills across the document and all experiences,
//     de-duplicated by title-cased name; the last-seen proficiency and source win.
//  3. Upsert that set against the (user_id, skill_name) unique constraint,
//     collecting generated ids by name.
//  4. Insert one join row per (experience, skill) pairing. A pairing whose
//     skill did not resolve is skipped with a log line, not an error.
//
// Any failed insert or upsert rolls the whole import back, so a resume is
// either fully persisted or absent — experiences can never outlive their
// skill links because of a crash between steps.
func (s *Store) ImportResumeTx(ctx context.Context, arg ImportResumeTxParams) (ImportResumeTxResult, error) {
	result := ImportResumeTxResult{ImportID: uuid.New()}

	err := s.execTx(ctx, func(q *Queries) error {
		// Step 1: Insert experiences; experienceIDs[i] belongs to arg.Experiences[i].
		experienceIDs := make([]int64, len(arg.Experiences))
		for i, exp := range arg.Experiences {
			created, err := q.CreateExperience(ctx, CreateExperienceParams{
				UserID:      arg.UserID,
				Title:       exp.Title,
				Company:     exp.Company,
				StartDate:   exp.StartDate,
				EndDate:     exp.EndDate,
				Description: exp.Description,
			})
			if err != nil {
				return fmt.Errorf("failed to insert experience %q: %w", exp.Title, err)
			}
			experienceIDs[i] = created.ID
			result.Experiences = append(result.Experiences, created)
		}

		// Step 2: Union distinct skills across the document and every experience.
		distinct := make(map[string]ImportSkill)
		var order []string
		collect := func(skills []ImportSkill) {
			for _, sk := range skills {
				name := s.normalizeSkillName(sk.Name)
				if name == "" {
					continue
				}
				if _, seen := distinct[name]; !seen {
					order = append(order, name)
				}
				sk.Name = name
				distinct[name] = sk // last-seen proficiency/source wins
			}
		}
		collect(arg.Skills)
		for _, exp := range arg.Experiences {
			collect(exp.Skills)
		}

		// Step 3: Upsert the de-duplicated set; skillIDs is keyed by canonical name.
		skillIDs := make(map[string]int64, len(distinct))
		for _, name := range order {
			sk := distinct[name]
			source := sk.Source
			if source == "" {
				source = "resume"
			}
			upserted, err := q.UpsertSkill(ctx, UpsertSkillParams{
				UserID:      arg.UserID,
				SkillName:   sk.Name,
				Proficiency: sk.Proficiency,
				Source:      source,
			})
			if err != nil {
				return fmt.Errorf("failed to upsert skill %q: %w", sk.Name, err)
			}
			skillIDs[sk.Name] = upserted.ID
			result.Skills = append(result.Skills, upserted)
		}

		// Step 4: Link each experience to the skills it mentioned.
		for i, exp := range arg.Experiences {
			for _, sk := range exp.Skills {
				name := s.normalizeSkillName(sk.Name)
				skillID, ok := skillIDs[name]
				if !ok {
					log.Printf("resume import %s: skipping unresolved skill %q on experience %q", result.ImportID, sk.Name, exp.Title)
					continue
				}
				err := q.LinkExperienceSkill(ctx, LinkExperienceSkillParams{
					ExperienceID: experienceIDs[i],
					SkillID:      skillID,
				})
				if err != nil {
					return fmt.Errorf("failed to link skill %q to experience %q: %w", name, exp.Title, err)
				}
				result.LinksCreated++
			}
		}

		return nil
	})
	if err != nil {
		return ImportResumeTxResult{}, err
	}

	return result, nil
}

// normalizeSkillName trims and title-cases a raw skill name so that "go" and
// "Go" land on the same (user_id, skill_name) row.
func (s *Store) normalizeSkillName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return s.caser.String(strings.ToLower(name))
}
