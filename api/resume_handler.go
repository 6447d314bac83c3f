package api

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	db "github.com/arjunvx/skillfolio/db/sqlc"
	"github.com/arjunvx/skillfolio/resume"
)

////////////////////////////////////////////////////////////////////////
// Resume Upload Endpoint: POST /api/resume
////////////////////////////////////////////////////////////////////////

// uploadResumeResponse summarizes one completed import.
type uploadResumeResponse struct {
	Message     string                   `json:"message"`
	ImportID    string                   `json:"import_id"`
	Skills      []db.Skill               `json:"skills"`
	Education   []resume.ParsedEducation `json:"education"`
	Experiences []db.Experience          `json:"experiences"`
}

// uploadResume runs the full ingestion pipeline for one uploaded file:
// extract text, prompt the model, normalize its output and persist the
// result for the authenticated user. No step is retried; the first failure
// is returned to the caller.
func (server *Server) uploadResume(ctx *gin.Context) {
	userID, err := getAuthUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	fileHeader, err := ctx.FormFile("resume")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("no file uploaded")))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	// Step 1: Decode the document into plain text.
	text, err := resume.ExtractText(data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, resume.ErrUnsupportedFileType) {
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	// Step 2: Have the model structure the text; normalization and date
	// canonicalization happen inside Parse.
	parsed, err := server.parser.Parse(ctx, text)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	// Step 3: Persist everything in one transaction.
	result, err := server.store.ImportResumeTx(ctx, importParams(userID, parsed))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	log.Printf("resume import %s: user %d, %d experiences, %d skills, %d links",
		result.ImportID, userID, len(result.Experiences), len(result.Skills), result.LinksCreated)

	ctx.JSON(http.StatusOK, uploadResumeResponse{
		Message:     "Resume parsed and experiences saved",
		ImportID:    result.ImportID.String(),
		Skills:      result.Skills,
		Education:   parsed.Education,
		Experiences: result.Experiences,
	})
}

////////////////////////////////////////////////////////////////////////
// Conversion from parsed resume to import transaction params
////////////////////////////////////////////////////////////////////////

func importParams(userID int64, parsed *resume.ParsedResume) db.ImportResumeTxParams {
	arg := db.ImportResumeTxParams{
		UserID: userID,
		Skills: importSkills(parsed.Skills),
	}
	for _, exp := range parsed.Experiences {
		// Dates are already canonical YYYY-MM-DD or nil; a conversion failure
		// here would mean the canonicalizer broke its own contract.
		startDate, _ := dateFromString(exp.StartDate)
		endDate, _ := dateFromString(exp.EndDate)
		description := exp.Description
		arg.Experiences = append(arg.Experiences, db.ImportExperience{
			Title:       exp.Title,
			Company:     exp.Company,
			StartDate:   startDate,
			EndDate:     endDate,
			Description: textFromString(&description),
			Skills:      importSkills(exp.Skills),
		})
	}
	return arg
}

func importSkills(skills []resume.ParsedSkill) []db.ImportSkill {
	out := make([]db.ImportSkill, 0, len(skills))
	for _, sk := range skills {
		var proficiency db.NullProficiencyLevel
		if sk.Proficiency != nil {
			proficiency = db.NullProficiencyLevel{
				ProficiencyLevel: db.ProficiencyLevel(*sk.Proficiency),
				Valid:            true,
			}
		}
		out = append(out, db.ImportSkill{
			Name:        sk.Name,
			Proficiency: proficiency,
			Source:      sk.Source,
		})
	}
	return out
}
