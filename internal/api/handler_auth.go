package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"resort-booking-backend/internal/auth"
	"resort-booking-backend/internal/model"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	DOB      string `json:"dob" binding:"omitempty,bookdate"`
	Address  string `json:"address"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Name, email and password are required", nil)
		return
	}

	hash, err := auth.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		respondError(c, err)
		return
	}

	user := model.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		DateOfBirth:  req.DOB,
		Address:      req.Address,
		PasswordHash: hash,
	}
	if err := h.store.CreateUser(c.Request.Context(), &user); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "Registration successful", gin.H{"id": user.ID})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login. The same message is used for unknown
// emails and wrong passwords.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Email and password are required", nil)
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondFail(c, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		respondFail(c, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}

	token := h.sessions.Issue(user.ID)
	respondOK(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Logout handles POST /api/auth/logout.
func (h *Handler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	h.sessions.Revoke(token)
	respondOK(c, http.StatusOK, "Logged out successfully", nil)
}

// Me handles GET /api/auth/me.
func (h *Handler) Me(c *gin.Context) {
	user, err := h.store.GetUserByID(c.Request.Context(), currentUserID(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondFail(c, http.StatusUnauthorized, "No user logged in", nil)
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "User found", user)
}
