package api

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/arjunvx/skillfolio/config"
	db "github.com/arjunvx/skillfolio/db/sqlc"
	"github.com/arjunvx/skillfolio/resume"
	"github.com/arjunvx/skillfolio/token"
)

// Server serves HTTP requests for the career tracker.
type Server struct {
	config     config.Config
	store      *db.Store
	tokenMaker *token.JWTMaker
	parser     resume.Parser
	router     *gin.Engine
}

// NewServer creates the server, wires middleware and registers all routes.
func NewServer(cfg config.Config, store *db.Store, parser resume.Parser) (*Server, error) {
	tokenMaker, err := token.NewJWTMaker(cfg.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	server := &Server{
		config:     cfg,
		store:      store,
		tokenMaker: tokenMaker,
		parser:     parser,
	}

	router := gin.Default()

	// Only the configured frontend origin may call the API from a browser.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendURL}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", server.healthCheck)

	router.POST("/api/auth/register", server.registerUser)
	router.POST("/api/auth/login", server.loginUser)

	authed := router.Group("/api")
	authed.Use(authMiddleware(server.tokenMaker))
	{
		authed.POST("/experiences", server.createExperience)
		authed.GET("/experiences", server.listExperiences)
		authed.GET("/experiences/:id", server.getExperience)
		authed.PUT("/experiences/:id", server.updateExperience)
		authed.DELETE("/experiences/:id", server.deleteExperience)

		authed.GET("/skills", server.listSkills)
		authed.PUT("/skills/:id", server.updateSkill)
		authed.DELETE("/skills/:id", server.deleteSkill)

		authed.POST("/resume", server.uploadResume)

		authed.GET("/dashboard/summary", server.dashboardSummary)
	}

	server.router = router
	return server, nil
}

// Start runs the HTTP server on the given address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

func (server *Server) healthCheck(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"status": "ok"})
}

// errorResponse shapes an error into the JSON body every failing endpoint returns.
func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
