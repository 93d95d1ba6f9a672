package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"baliestate_backend/internals/configs"
	"baliestate_backend/internals/features/users/model"
	helper "baliestate_backend/internals/helpers"
)

var validateAuth = validator.New()

const tokenTTL = 12 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// =============================
// 🔐 Staff login
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_email = ?", body.Email).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(body.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Account has been deactivated")
	}

	expiresAt := time.Now().Add(tokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.UserID.String(),
		"exp":     expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to issue token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    signed,
		Expires:  expiresAt,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.Success(c, "Login successful", fiber.Map{
		"access_token": signed,
		"expires_at":   expiresAt,
		"user": fiber.Map{
			"user_id":       user.UserID.String(),
			"user_name":     user.UserName,
			"user_email":    user.UserEmail,
			"user_is_staff": user.UserIsStaff,
		},
	})
}

// =============================
// 🚪 Logout (cookie clear)
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.Success(c, "Logged out", nil)
}
