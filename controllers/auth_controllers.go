package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/adisyonqr/restaurant-app/models"
	"github.com/adisyonqr/restaurant-app/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Login -> phone + password in, role-bearing JWT out as an HTTP-only
// cookie valid for 7 days.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Phone    string `json:"phone" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("please enter phone and password"))
		return
	}

	var staff models.Staff
	if err := ac.DB.Where("phone = ?", input.Phone).First(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if !staff.IsActive {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("account is not active"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(staff.ID, staff.Name, staff.Phone, staff.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	maxAge := int(utils.TokenLifetime.Seconds())
	c.SetCookie(utils.AuthCookieName, token, maxAge, "/", "", false, true)

	utils.InfoLogger.Printf("Staff %s logged in (role=%s)", staff.Phone, staff.Role)
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"role":  staff.Role,
		"name":  staff.Name,
	})
}

// Logout clears the cookie and blacklists the token for the remainder
// of its lifetime.
func (ac *AuthController) Logout(c *gin.Context) {
	if token := c.GetString("token"); token != "" {
		utils.BlacklistToken(token)
	}
	c.SetCookie(utils.AuthCookieName, "", -1, "/", "", false, true)
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

// Profile returns the authenticated staff record.
func (ac *AuthController) Profile(c *gin.Context) {
	staffID := c.GetUint("staffID")

	var staff models.Staff
	if err := ac.DB.First(&staff, staffID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile", staff)
}
