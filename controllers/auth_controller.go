package controllers

import (
	"net/http"
	"os"
	"time"

	"go-postgres-ziswaf/config"
	"go-postgres-ziswaf/models"
	"go-postgres-ziswaf/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func secureCookie() bool {
	return os.Getenv("APP_ENV") == "production"
}

// Login memverifikasi email+password lalu menaruh JWT di cookie "token":
// httpOnly, SameSite=Strict, umur 1 jam. Tidak ada refresh.
func Login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? AND is_active = true", in.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Email atau password salah"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Email atau password salah"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Nama, time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat token"})
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login_at", &now)

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", token, 3600, "/", "", secureCookie(), true)

	c.JSON(http.StatusOK, gin.H{"message": "Login berhasil", "user": user})
}

// Logout menimpa cookie dengan nilai kosong yang langsung kedaluwarsa.
func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", "", -1, "/", "", secureCookie(), true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout berhasil"})
}

func Me(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - Token tidak valid"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}
