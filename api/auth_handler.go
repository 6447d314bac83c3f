package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	db "github.com/arjunvx/skillfolio/db/sqlc"
	"github.com/arjunvx/skillfolio/util"
)

////////////////////////////////////////////////////////////////////////
// Register Endpoint (Public): /api/auth/register
////////////////////////////////////////////////////////////////////////

// registerUserRequest defines the expected JSON payload for registration.
type registerUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// registerUserResponse mirrors the created user without the password hash.
type registerUserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (server *Server) registerUser(ctx *gin.Context) {
	var req registerUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	user, err := server.store.CreateUser(ctx, db.CreateUserParams{
		Name:         pgtype.Text{String: req.Name, Valid: req.Name != ""},
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		// 23505 is Postgres' unique_violation: the email is already registered.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("email already registered")))
			return
		}
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, registerUserResponse{
		ID:    user.ID,
		Name:  user.Name.String,
		Email: user.Email,
	})
}

////////////////////////////////////////////////////////////////////////
// Login Endpoint (Public): /api/auth/login
////////////////////////////////////////////////////////////////////////

// loginUserRequest defines the expected JSON payload for login.
type loginUserRequest struct {
	Email    string `json:"email" binding:"required,email"`    // Required field, must be a valid email
	Password string `json:"password" binding:"required,min=6"` // Required field, minimum 6 characters
}

// loginUserResponse contains a signed JWT token the client can use for
// authenticated requests.
type loginUserResponse struct {
	Token string `json:"token"`
}

// loginUser authenticates a user using email and password and returns a
// signed JWT token if the credentials are valid.
func (server *Server) loginUser(ctx *gin.Context) {
	var req loginUserRequest

	// Step 1: Bind and validate the request body (email and password)
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// Step 2: Retrieve user from the database by email
	user, err := server.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	// Step 3: Check that the provided password matches the stored hash
	if err := util.CheckPasswordHash(req.Password, user.PasswordHash); err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	// Step 4: Generate a JWT token for the authenticated user
	accessToken, err := server.tokenMaker.CreateToken(
		user.ID,
		user.Email,
		server.config.AccessTokenDuration,
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, loginUserResponse{Token: accessToken})
}
