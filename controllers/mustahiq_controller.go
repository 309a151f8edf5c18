package controllers

import (
	"net/http"
	"strconv"
	"time"

	"go-postgres-ziswaf/config"
	"go-postgres-ziswaf/models"
	"go-postgres-ziswaf/utils"

	"github.com/gin-gonic/gin"
)

type MustahiqInput struct {
	NIK          string     `json:"nik" binding:"required"`
	Nama         string     `json:"nama" binding:"required"`
	JenisKelamin string     `json:"jenis_kelamin"`
	TempatLahir  string     `json:"tempat_lahir"`
	TanggalLahir *time.Time `json:"tanggal_lahir"`
	Alamat       string     `json:"alamat"`
	Pekerjaan    string     `json:"pekerjaan"`
	Asnaf        string     `json:"asnaf"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	Status       string     `json:"status"`
}

func CreateMustahiq(c *gin.Context) {
	var in MustahiqInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	// NIK unik
	var exist models.Mustahiq
	if err := config.DB.Where("nik = ?", in.NIK).First(&exist).Error; err == nil {
		utils.Error(c, http.StatusBadRequest, "NIK sudah terdaftar", nil)
		return
	}

	status := in.Status
	if status == "" {
		status = "active"
	}

	m := models.Mustahiq{
		NIK:          in.NIK,
		Nama:         in.Nama,
		JenisKelamin: in.JenisKelamin,
		TempatLahir:  in.TempatLahir,
		TanggalLahir: in.TanggalLahir,
		Alamat:       in.Alamat,
		Pekerjaan:    in.Pekerjaan,
		Asnaf:        in.Asnaf,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		Status:       status,
	}

	if err := config.DB.Create(&m).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menyimpan mustahiq", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Mustahiq berhasil ditambahkan", "data": m})
}

func GetAllMustahiq(c *gin.Context) {
	var rows []models.Mustahiq
	if err := config.DB.Order("id DESC").Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data mustahiq", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data mustahiq", rows)
}

func GetMustahiqByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	var m models.Mustahiq
	if err := config.DB.First(&m, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Mustahiq tidak ditemukan", nil)
		return
	}
	utils.Success(c, "Berhasil mengambil data mustahiq", m)
}

func UpdateMustahiq(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	var m models.Mustahiq
	if err := config.DB.First(&m, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Mustahiq tidak ditemukan", nil)
		return
	}

	var in MustahiqInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	if in.NIK != m.NIK {
		var exist models.Mustahiq
		if err := config.DB.Where("nik = ?", in.NIK).First(&exist).Error; err == nil {
			utils.Error(c, http.StatusBadRequest, "NIK sudah terdaftar", nil)
			return
		}
	}

	updates := map[string]interface{}{
		"nik":           in.NIK,
		"nama":          in.Nama,
		"jenis_kelamin": in.JenisKelamin,
		"tempat_lahir":  in.TempatLahir,
		"tanggal_lahir": in.TanggalLahir,
		"alamat":        in.Alamat,
		"pekerjaan":     in.Pekerjaan,
		"asnaf":         in.Asnaf,
		"latitude":      in.Latitude,
		"longitude":     in.Longitude,
	}
	if in.Status != "" {
		updates["status"] = in.Status
	}

	if err := config.DB.Model(&m).Updates(updates).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengupdate mustahiq", err)
		return
	}

	config.DB.First(&m, m.ID)
	utils.Success(c, "Mustahiq berhasil diupdate", m)
}

func DeleteMustahiq(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	var m models.Mustahiq
	if err := config.DB.First(&m, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Mustahiq tidak ditemukan", nil)
		return
	}

	// tolak selama masih dirujuk penyaluran
	var cnt int64
	if err := config.DB.Model(&models.Penyaluran{}).
		Where("mustahiq_id = ?", m.ID).Count(&cnt).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal cek penyaluran", err)
		return
	}
	if cnt > 0 {
		utils.Error(c, http.StatusBadRequest, "Mustahiq masih memiliki penyaluran", nil)
		return
	}

	if err := config.DB.Delete(&m).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menghapus mustahiq", err)
		return
	}
	utils.Success(c, "Mustahiq berhasil dihapus", nil)
}
