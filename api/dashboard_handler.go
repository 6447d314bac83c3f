package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	db "github.com/arjunvx/skillfolio/db/sqlc"
)

////////////////////////////////////////////////////////////////////////
// Dashboard Summary Endpoint: GET /api/dashboard/summary
////////////////////////////////////////////////////////////////////////

// dashboardSummaryResponse aggregates a user's career data for the dashboard
// header cards.
type dashboardSummaryResponse struct {
	TotalSkills       int64   `json:"total_skills"`
	TotalCompanies    int64   `json:"total_companies"`
	AvgDurationMonths float64 `json:"avg_duration_months"`
	MostUsedSkill     *string `json:"most_used_skill"`
}

// dashboardSummary computes the per-user aggregates: distinct skills,
// distinct companies, average role duration in months (open-ended roles
// count up to today) and the skill linked to the most experiences.
func (server *Server) dashboardSummary(ctx *gin.Context) {
	userID, err := getAuthUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	totalSkills, err := server.store.CountDistinctSkills(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	totalCompanies, err := server.store.CountDistinctCompanies(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	experiences, err := server.store.ListExperiences(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	var mostUsedSkill *string
	top, err := server.store.GetMostLinkedSkill(ctx, userID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	if err == nil {
		mostUsedSkill = &top.SkillName
	}

	ctx.JSON(http.StatusOK, dashboardSummaryResponse{
		TotalSkills:       totalSkills,
		TotalCompanies:    totalCompanies,
		AvgDurationMonths: avgDurationMonths(experiences, time.Now()),
		MostUsedSkill:     mostUsedSkill,
	})
}

// avgDurationMonths averages role lengths in whole months. Experiences
// without a start date are skipped; a missing end date means the role is
// ongoing and counts up to now.
func avgDurationMonths(experiences []db.Experience, now time.Time) float64 {
	var total, counted int
	for _, exp := range experiences {
		if !exp.StartDate.Valid {
			continue
		}
		end := now
		if exp.EndDate.Valid {
			end = exp.EndDate.Time
		}
		months := (end.Year()-exp.StartDate.Time.Year())*12 + int(end.Month()) - int(exp.StartDate.Time.Month())
		total += months
		counted++
	}
	if counted == 0 {
		return 0
	}
	return float64(total) / float64(counted)
}
