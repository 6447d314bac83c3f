// db/test_helpers_test.go
package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"github.com/arjunvx/skillfolio/util"
)

////////////////////////////////////////////////////////////////////////

// createRandomUser creates a user with a hashed random password.
func createRandomUser(t *testing.T) User {
	password := util.RandomString(10)
	hash, err := util.HashPassword(password)
	require.NoError(t, err)

	arg := CreateUserParams{
		Name:         pgtype.Text{String: util.RandomName(), Valid: true},
		Email:        util.RandomEmail(),
		PasswordHash: hash,
	}

	user, err := testQueries.CreateUser(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, user)

	require.Equal(t, arg.Email, user.Email)
	require.Equal(t, arg.PasswordHash, user.PasswordHash)
	require.NotZero(t, user.ID)
	require.True(t, user.CreatedAt.Valid)

	return user
}

////////////////////////////////////////////////////////////////////////

// createRandomExperience creates an experience for the given user with a
// random start date and an open end date.
func createRandomExperience(t *testing.T, user User) Experience {
	arg := CreateExperienceParams{
		UserID:      user.ID,
		Title:       util.RandomJobTitle(),
		Company:     util.RandomCompany(),
		StartDate:   pgtype.Date{Time: util.RandomDate(), Valid: true},
		EndDate:     pgtype.Date{Valid: false},
		Description: pgtype.Text{String: util.RandomDescription(), Valid: true},
	}

	experience, err := testQueries.CreateExperience(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, experience)

	require.Equal(t, arg.UserID, experience.UserID)
	require.Equal(t, arg.Title, experience.Title)
	require.Equal(t, arg.Company, experience.Company)
	require.False(t, experience.EndDate.Valid)
	require.NotZero(t, experience.ID)

	return experience
}

////////////////////////////////////////////////////////////////////////

// createRandomSkill upserts a random skill for the given user.
func createRandomSkill(t *testing.T, user User) Skill {
	arg := UpsertSkillParams{
		UserID:    user.ID,
		SkillName: util.RandomSkillName(),
		Proficiency: NullProficiencyLevel{
			ProficiencyLevel: ProficiencyLevel(util.RandomProficiency()),
			Valid:            true,
		},
		Source: "resume",
	}

	skill, err := testQueries.UpsertSkill(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, skill)

	require.Equal(t, arg.UserID, skill.UserID)
	require.Equal(t, arg.SkillName, skill.SkillName)
	require.Equal(t, arg.Proficiency, skill.Proficiency)
	require.NotZero(t, skill.ID)

	return skill
}
