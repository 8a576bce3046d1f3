package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"olympus-app/config"
	"olympus-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// issueToken opens a server-side session row and signs a JWT bound to it.
// Revoking the session kills the token before its exp.
func issueToken(db *gorm.DB, userID uint, role string) (string, error) {
	sessionID := uuid.NewString()
	expiresAt := time.Now().Add(time.Duration(config.JWTExpiration) * time.Second)

	session := models.UserSession{
		SessionID:      sessionID,
		UserID:         userID,
		Role:           role,
		IsActive:       true,
		ExpiresAt:      expiresAt,
		LastActivityAt: time.Now(),
	}
	if err := db.Create(&session).Error; err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"user_id":    float64(userID),
		"role":       role,
		"session_id": sessionID,
		"exp":        expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := c.DB.Where("username = ? OR email = ?", input.Username, input.Username).First(&user).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}
	if !user.IsActive {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Account is deactivated"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	now := time.Now()
	c.DB.Model(&user).Update("last_login", now)

	token, err := issueToken(c.DB, user.ID, models.RoleSuperadmin)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Cookie(config.GetTokenCookie(token))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data": fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":        user.ID,
				"username":  user.Username,
				"full_name": user.FullName,
				"email":     user.Email,
			},
		},
	})
}

// GetSession echoes the authenticated account, used by the frontend on
// reload. Customers and staff live in different tables, the token role
// decides which one to read.
func (c *AuthController) GetSession(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(float64)
	role, _ := ctx.Locals("role").(string)

	if role == models.RoleCustomer {
		var customer models.Customer
		if err := c.DB.First(&customer, uint(userID)).Error; err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Session user not found"})
		}
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"data": fiber.Map{
				"id":         customer.ID,
				"first_name": customer.FirstName,
				"last_name":  customer.LastName,
				"email":      customer.Email,
				"role":       role,
			},
		})
	}

	var user models.User
	if err := c.DB.First(&user, uint(userID)).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Session user not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":         user.ID,
			"username":   user.Username,
			"full_name":  user.FullName,
			"email":      user.Email,
			"role":       role,
			"last_login": user.LastLogin,
		},
	})
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	sessionID, _ := ctx.Locals("sessionID").(string)
	if sessionID != "" {
		c.DB.Model(&models.UserSession{}).
			Where("session_id = ?", sessionID).
			Update("is_active", false)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Logged out"})
}

func (c *AuthController) ListUsers(ctx *fiber.Ctx) error {
	var users []models.User
	if err := c.DB.Order("created_at desc").Find(&users).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Users found", "data": users})
}

// CreateUser generates the initial password and returns it exactly once in
// the response.
func (c *AuthController) CreateUser(ctx *fiber.Ctx) error {
	var input struct {
		Username string `json:"username" validate:"required"`
		FullName string `json:"full_name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	c.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", input.Username, input.Email).
		Count(&count)
	if count > 0 {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Username or email already in use"})
	}

	password, err := generatePassword()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	user := models.User{
		Username:  input.Username,
		FullName:  input.FullName,
		Email:     input.Email,
		Password:  string(hashed),
		IsActive:  true,
		CreatedBy: int(ctxUserID(ctx)),
	}
	if err := c.DB.Create(&user).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created",
		"data": fiber.Map{
			"user":     user,
			"password": password,
		},
	})
}

func (c *AuthController) UpdateUser(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var user models.User
	if err := c.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		FullName *string `json:"full_name"`
		Email    *string `json:"email"`
		IsActive *bool   `json:"is_active"`
		Password *string `json:"password"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updates := map[string]interface{}{"updated_by": int(ctxUserID(ctx))}
	if input.FullName != nil {
		updates["full_name"] = *input.FullName
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if input.Password != nil && *input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		updates["password"] = string(hashed)
	}

	if err := c.DB.Model(&user).Updates(updates).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Deactivating an account revokes every open session with it.
	if input.IsActive != nil && !*input.IsActive {
		c.DB.Model(&models.UserSession{}).
			Where("user_id = ?", user.ID).
			Update("is_active", false)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "User updated"})
}

func (c *AuthController) DeleteUser(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}
	if uint(id) == uint(ctxUserID(ctx)) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot delete your own account"})
	}

	res := c.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	c.DB.Model(&models.UserSession{}).Where("user_id = ?", id).Update("is_active", false)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "User deleted"})
}

func ctxUserID(ctx *fiber.Ctx) float64 {
	id, _ := ctx.Locals("userID").(float64)
	return id
}

func generatePassword() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
