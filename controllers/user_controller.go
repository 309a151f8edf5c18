package controllers

import (
	"errors"
	"net/http"

	"go-postgres-ziswaf/config"
	"go-postgres-ziswaf/models"
	"go-postgres-ziswaf/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserInput struct {
	Nama     string `json:"nama" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

func GetAllUsers(c *gin.Context) {
	var rows []models.User
	if err := config.DB.Order("id ASC").Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data user", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data user", rows)
}

func CreateUser(c *gin.Context) {
	var in CreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal memproses password", err)
		return
	}

	role := in.Role
	if role == "" {
		role = "amil"
	}

	user := models.User{
		Nama:         in.Nama,
		Email:        in.Email,
		PasswordHash: string(hashed),
		Role:         role,
		IsActive:     true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			utils.Error(c, http.StatusBadRequest, "Email sudah terdaftar", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal menyimpan user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User berhasil dibuat", "data": user})
}
