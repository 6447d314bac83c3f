package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	db "github.com/arjunvx/skillfolio/db/sqlc"
)

////////////////////////////////////////////////////////////////////////
// Request/response shapes
////////////////////////////////////////////////////////////////////////

// experienceRequest is the payload for creating or updating an experience.
// Field names are camelCase to match what the frontend forms send.
type experienceRequest struct {
	Title       string  `json:"title" binding:"required"`
	Company     string  `json:"company" binding:"required"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Description *string `json:"description"`
}

////////////////////////////////////////////////////////////////////////
// Conversion helpers shared by experience and resume handlers
////////////////////////////////////////////////////////////////////////

// dateFromString parses a YYYY-MM-DD string into a nullable pg date.
// nil or empty input becomes a NULL column value.
func dateFromString(s *string) (pgtype.Date, error) {
	if s == nil || *s == "" {
		return pgtype.Date{}, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return pgtype.Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", *s)
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}

// textFromString converts an optional string into a nullable pg text value.
func textFromString(s *string) pgtype.Text {
	if s == nil || *s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// pathID parses the numeric :id path parameter.
func pathID(ctx *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", ctx.Param("id"))
	}
	return id, nil
}

////////////////////////////////////////////////////////////////////////
// Handlers
////////////////////////////////////////////////////////////////////////

// createExperience handles POST /api/experiences.
func (server *Server) createExperience(ctx *gin.Context) {
	userID, err := getAuthUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	var req experienceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	startDate, err := dateFromString(req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	endDate, err := dateFromString(req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	experience, err := server.store.CreateExperience(ctx, db.CreateExperienceParams{
		UserID:      userID,
		Title:       req.Title,
		Company:     req.Company,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: textFromString(req.Description),
	})
	if err != nil {
		// Storage errors surface to the caller with the underlying message.
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, experience)
}

// listExperiences handles GET /api/experiences, ordered by start_date descending.
func (server *Server) listExperiences(ctx *gin.Context) {
	userID, err := getAuthUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	experiences, err := server.store.ListExperiences(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, experiences)
}

// getExperience handles GET /api/experiences/:id.
func (server *Server) getExperience(ctx *gin.Context) {
	userID, err := getAuthUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	id, err := pathID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	experience, err := server.store.GetExperience(ctx, db.GetExperienceParams{ID: id, UserID: userID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("experience not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, experience)
}

// updateExperience handles PUT /api/experiences/:id.
func (server *Server) updateExperience(ctx *gin.Context) {
	userID, err := getAuthUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	id, err := pathID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req experienceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	startDate, err := dateFromString(req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	endDate, err := dateFromString(req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	experience, err := server.store.UpdateExperience(ctx, db.UpdateExperienceParams{
		ID:          id,
		UserID:      userID,
		Title:       req.Title,
		Company:     req.Company,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: textFromString(req.Description),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("experience not found")))
			return
		}
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, experience)
}

// deleteExperience handles DELETE /api/experiences/:id. Join rows cascade.
func (server *Server) deleteExperience(ctx *gin.Context) {
	userID, err := getAuthUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	id, err := pathID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := server.store.DeleteExperience(ctx, db.DeleteExperienceParams{ID: id, UserID: userID}); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
