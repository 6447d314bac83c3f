// db/experience_test.go
package db

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"github.com/arjunvx/skillfolio/util"
)

////////////////////////////////////////////////////////////////////////

func TestCreateExperience(t *testing.T) {
	user := createRandomUser(t)
	createRandomExperience(t, user)
}

////////////////////////////////////////////////////////////////////////

func TestGetExperience(t *testing.T) {
	user := createRandomUser(t)
	experience1 := createRandomExperience(t, user)

	experience2, err := testQueries.GetExperience(context.Background(), GetExperienceParams{
		ID:     experience1.ID,
		UserID: user.ID,
	})
	require.NoError(t, err)
	require.Equal(t, experience1.ID, experience2.ID)
	require.Equal(t, experience1.Title, experience2.Title)
	require.Equal(t, experience1.Company, experience2.Company)
}

////////////////////////////////////////////////////////////////////////

// Experiences are scoped to their owner; another user never sees them.
func TestGetExperienceWrongUser(t *testing.T) {
	owner := createRandomUser(t)
	other := createRandomUser(t)
	experience := createRandomExperience(t, owner)

	_, err := testQueries.GetExperience(context.Background(), GetExperienceParams{
		ID:     experience.ID,
		UserID: other.ID,
	})
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

////////////////////////////////////////////////////////////////////////

func TestListExperiencesOrdering(t *testing.T) {
	user := createRandomUser(t)

	// Three experiences with known, distinct start dates.
	dates := []time.Time{
		time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 11, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		_, err := testQueries.CreateExperience(context.Background(), CreateExperienceParams{
			UserID:    user.ID,
			Title:     util.RandomJobTitle(),
			Company:   util.RandomCompany(),
			StartDate: pgtype.Date{Time: d, Valid: true},
		})
		require.NoError(t, err)
	}

	experiences, err := testQueries.ListExperiences(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, experiences, 3)

	// Most recent start date first.
	require.Equal(t, 2022, experiences[0].StartDate.Time.Year())
	require.Equal(t, 2020, experiences[1].StartDate.Time.Year())
	require.Equal(t, 2019, experiences[2].StartDate.Time.Year())
}

////////////////////////////////////////////////////////////////////////

func TestUpdateExperience(t *testing.T) {
	user := createRandomUser(t)
	experience1 := createRandomExperience(t, user)

	arg := UpdateExperienceParams{
		ID:        experience1.ID,
		UserID:    user.ID,
		Title:     util.RandomJobTitle(),
		Company:   experience1.Company,
		StartDate: experience1.StartDate,
		EndDate:   pgtype.Date{Time: time.Now().UTC().Truncate(24 * time.Hour), Valid: true},
	}

	experience2, err := testQueries.UpdateExperience(context.Background(), arg)
	require.NoError(t, err)
	require.Equal(t, experience1.ID, experience2.ID)
	require.Equal(t, arg.Title, experience2.Title)
	require.True(t, experience2.EndDate.Valid)
	require.False(t, experience2.Description.Valid) // update clears fields not supplied
}

////////////////////////////////////////////////////////////////////////

func TestDeleteExperience(t *testing.T) {
	user := createRandomUser(t)
	experience := createRandomExperience(t, user)

	err := testQueries.DeleteExperience(context.Background(), DeleteExperienceParams{
		ID:     experience.ID,
		UserID: user.ID,
	})
	require.NoError(t, err)

	_, err = testQueries.GetExperience(context.Background(), GetExperienceParams{
		ID:     experience.ID,
		UserID: user.ID,
	})
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

////////////////////////////////////////////////////////////////////////

func TestCountDistinctCompanies(t *testing.T) {
	user := createRandomUser(t)

	company := util.RandomCompany()
	for range 2 {
		_, err := testQueries.CreateExperience(context.Background(), CreateExperienceParams{
			UserID:  user.ID,
			Title:   util.RandomJobTitle(),
			Company: company,
		})
		require.NoError(t, err)
	}
	createRandomExperience(t, user)

	count, err := testQueries.CountDistinctCompanies(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}
