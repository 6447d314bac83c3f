package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	db "github.com/arjunvx/skillfolio/db/sqlc"
)

// updateSkillRequest carries the new proficiency; null clears it.
type updateSkillRequest struct {
	Proficiency *string `json:"proficiency"`
}

// listSkills handles GET /api/skills.
func (server *Server) listSkills(ctx *gin.Context) {
	userID, err := getAuthUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	skills, err := server.store.ListSkills(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, skills)
}

// updateSkill handles PUT /api/skills/:id, changing only the proficiency.
func (server *Server) updateSkill(ctx *gin.Context) {
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

	var req updateSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var proficiency db.NullProficiencyLevel
	if req.Proficiency != nil {
		level := db.ProficiencyLevel(*req.Proficiency)
		if !level.Valid() {
			err := fmt.Errorf("invalid proficiency %q, expected Beginner, Intermediate or Advanced", *req.Proficiency)
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		proficiency = db.NullProficiencyLevel{ProficiencyLevel: level, Valid: true}
	}

	skill, err := server.store.UpdateSkillProficiency(ctx, db.UpdateSkillProficiencyParams{
		ID:          id,
		UserID:      userID,
		Proficiency: proficiency,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("skill not found")))
			return
		}
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, skill)
}

// deleteSkill handles DELETE /api/skills/:id. Join rows cascade.
func (server *Server) deleteSkill(ctx *gin.Context) {
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

	if err := server.store.DeleteSkill(ctx, db.DeleteSkillParams{ID: id, UserID: userID}); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
