package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitness-api/models"
	"fitness-api/repositories"
	"fitness-api/services"
)

type AuthController struct {
	users  *repositories.UserRepository
	tokens *services.TokenService
}

func NewAuthController(users *repositories.UserRepository, tokens *services.TokenService) *AuthController {
	return &AuthController{
		users:  users,
		tokens: tokens,
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	// Check if the username is taken (case-sensitive exact match)
	if _, err := ac.users.FindByUsername(req.Username); err == nil {
		c.String(http.StatusBadRequest, "Username already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		ID:       uuid.New().String(),
		Username: req.Username,
		Password: string(hashedPassword),
	}

	if err := ac.users.Create(&user); err != nil {
		// A concurrent registration with the same username loses against
		// the unique index; report it the same as the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.String(http.StatusBadRequest, "Username already exists.")
			return
		}
		c.String(http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.String(http.StatusOK, "User registered successfully.")
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	// Unknown user and wrong password produce the same generic message.
	user, err := ac.users.FindByUsername(req.Username)
	if err != nil {
		c.String(http.StatusUnauthorized, "Invalid username or password.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.String(http.StatusUnauthorized, "Invalid username or password.")
		return
	}

	token, err := ac.tokens.Generate(user.Username)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to generate token")
		return
	}

	// The token is the response body, not a JSON envelope; existing
	// clients depend on the bare string.
	c.String(http.StatusOK, token)
}
