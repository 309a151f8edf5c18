package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"go-postgres-ziswaf/config"
	"go-postgres-ziswaf/models"
	"go-postgres-ziswaf/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

type CoaInput struct {
	Kode           string `json:"kode" binding:"required"`
	Nama           string `json:"nama"`
	JenisTransaksi string `json:"jenis_transaksi"`
}

// Tidak ada endpoint update: kode yang sudah dirujuk penyaluran dianggap
// beku.
func CreateCoa(c *gin.Context) {
	var in CoaInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	if !utils.ValidKodeCoA(in.Kode) {
		utils.Error(c, http.StatusBadRequest, "Format kode COA harus NNN.NN.NNN.NNN", nil)
		return
	}

	coa := models.CoA{
		Kode:           in.Kode,
		Nama:           in.Nama,
		JenisTransaksi: in.JenisTransaksi,
	}
	if err := config.DB.Create(&coa).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			utils.Error(c, http.StatusBadRequest, "Kode COA sudah digunakan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal menyimpan COA", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "COA berhasil ditambahkan", "data": coa})
}

func GetAllCoa(c *gin.Context) {
	var rows []models.CoA
	if err := config.DB.Order("kode ASC").Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data COA", err)
		return
	}
	utils.Success(c, "Berhasil mengambil data COA", rows)
}

func GetCoaByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	var coa models.CoA
	if err := config.DB.First(&coa, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "COA tidak ditemukan", nil)
		return
	}
	utils.Success(c, "Berhasil mengambil data COA", coa)
}

func DeleteCoa(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	var coa models.CoA
	if err := config.DB.First(&coa, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "COA tidak ditemukan", nil)
		return
	}

	var cnt int64
	if err := config.DB.Model(&models.Penyaluran{}).
		Where("coa_debet_id = ? OR coa_kredit_id = ?", coa.ID, coa.ID).
		Count(&cnt).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal cek penyaluran", err)
		return
	}
	if cnt > 0 {
		utils.Error(c, http.StatusBadRequest, "COA masih digunakan oleh penyaluran", nil)
		return
	}

	if err := config.DB.Delete(&coa).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menghapus COA", err)
		return
	}
	utils.Success(c, "COA berhasil dihapus", nil)
}
