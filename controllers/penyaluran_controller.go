package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"go-postgres-ziswaf/config"
	"go-postgres-ziswaf/models"
	"go-postgres-ziswaf/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PenyaluranInput struct {
	MustahiqID  uint    `json:"mustahiq_id" binding:"required"`
	ProgramID   uint    `json:"program_id" binding:"required"`
	Tanggal     string  `json:"tanggal" binding:"required"` // YYYY-MM-DD
	Jumlah      float64 `json:"jumlah" binding:"required"`
	Keterangan  string  `json:"keterangan"`
	Status      string  `json:"status"`
	CoaDebetID  *uint   `json:"coa_debet_id"`
	CoaKreditID *uint   `json:"coa_kredit_id"`

	ParameterValues []service.ParameterValueInput `json:"parameter_values"`
}

// validasi bersama create & update; satu sumber aturan untuk keduanya
func validatePenyaluranInput(c *gin.Context, in PenyaluranInput) (time.Time, bool) {
	tanggal, err := time.Parse("2006-01-02", in.Tanggal)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Format tanggal tidak valid (YYYY-MM-DD)"})
		return time.Time{}, false
	}

	if err := service.ValidateJumlah(in.Jumlah); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return time.Time{}, false
	}

	svc := service.NewService(config.DB)
	if err := svc.ValidateReferensi(c.Request.Context(), service.RefInput{
		MustahiqID:  in.MustahiqID,
		ProgramID:   in.ProgramID,
		CoaDebetID:  in.CoaDebetID,
		CoaKreditID: in.CoaKreditID,
	}); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return time.Time{}, false
	}

	if err := svc.ValidateParameterValues(c.Request.Context(), in.ProgramID, in.ParameterValues); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return time.Time{}, false
	}

	return tanggal, true
}

func buildParameterValueRows(p models.Penyaluran, values []service.ParameterValueInput) []models.ParameterFieldValue {
	rows := make([]models.ParameterFieldValue, 0, len(values))
	for _, v := range values {
		rows = append(rows, models.ParameterFieldValue{
			PenyaluranID:     p.ID,
			ParameterFieldID: v.ParameterFieldID,
			ProgramID:        p.ProgramID,
			MustahiqID:       p.MustahiqID,
			Value:            v.Value,
		})
	}
	return rows
}

func CreatePenyaluran(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - Token tidak valid"})
		return
	}

	var in PenyaluranInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Data tidak valid", "error": err.Error()})
		return
	}

	tanggal, ok := validatePenyaluranInput(c, in)
	if !ok {
		return
	}

	status := models.PenyaluranStatus(in.Status)
	if status == "" {
		status = models.PenyaluranActive
	}

	p := models.Penyaluran{
		MustahiqID:  in.MustahiqID,
		ProgramID:   in.ProgramID,
		CoaDebetID:  in.CoaDebetID,
		CoaKreditID: in.CoaKreditID,
		Jumlah:      in.Jumlah,
		Tanggal:     tanggal,
		Keterangan:  in.Keterangan,
		Status:      status,
		CreatedByID: uid,
	}

	// header + nilai parameter satu transaksi, tidak boleh setengah jadi
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		if rows := buildParameterValueRows(p, in.ParameterValues); len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat penyaluran", "error": err.Error()})
		return
	}

	if err := config.DB.
		Preload("Mustahiq").
		Preload("Program").
		Preload("CoaDebet").
		Preload("CoaKredit").
		Preload("ParameterValues").
		First(&p, p.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal memuat ulang penyaluran", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Penyaluran berhasil dibuat", "penyaluran": p})
}

func GetAllPenyaluran(c *gin.Context) {
	var rows []models.Penyaluran
	if err := config.DB.
		Preload("Mustahiq").
		Preload("Program").
		Preload("CoaDebet").
		Preload("CoaKredit").
		Preload("CreatedBy").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data penyaluran", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}

func GetPenyaluranByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var p models.Penyaluran
	if err := config.DB.
		Preload("Mustahiq").
		Preload("Program").
		Preload("CoaDebet").
		Preload("CoaKredit").
		Preload("CreatedBy").
		Preload("ParameterValues").
		First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Penyaluran tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data penyaluran", "error": err.Error()})
		return
	}

	svc := service.NewService(config.DB)
	fields, err := svc.ResolveParameterFields(c.Request.Context(), p.ProgramID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil field program", "error": err.Error()})
		return
	}

	// gabungkan definisi field dengan nilai tersimpan; field tanpa nilai
	// tampil dengan string kosong
	valueByField := make(map[uint]string, len(p.ParameterValues))
	for _, v := range p.ParameterValues {
		valueByField[v.ParameterFieldID] = v.Value
	}
	merged := make([]gin.H, 0, len(fields))
	for _, f := range fields {
		merged = append(merged, gin.H{
			"parameter_field_id": f.ID,
			"field_name":         f.FieldName,
			"field_type":         f.FieldType,
			"is_required":        f.IsRequired,
			"options":            f.Options,
			"value":              valueByField[f.ID],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"id":               p.ID,
		"mustahiq":         p.Mustahiq,
		"program":          p.Program,
		"coa_debet":        p.CoaDebet,
		"coa_kredit":       p.CoaKredit,
		"jumlah":           p.Jumlah,
		"tanggal":          p.Tanggal.Format("2006-01-02"),
		"keterangan":       p.Keterangan,
		"status":           p.Status,
		"created_by":       p.CreatedBy,
		"created_at":       p.CreatedAt,
		"parameter_values": merged,
	})
}

func UpdatePenyaluran(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var in PenyaluranInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Data tidak valid", "error": err.Error()})
		return
	}

	tanggal, ok := validatePenyaluranInput(c, in)
	if !ok {
		return
	}

	status := models.PenyaluranStatus(in.Status)
	if status == "" {
		status = models.PenyaluranActive
	}

	var p models.Penyaluran
	// update skalar + ganti total nilai parameter (replace, bukan merge)
	// dalam satu transaksi
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"mustahiq_id":   in.MustahiqID,
			"program_id":    in.ProgramID,
			"coa_debet_id":  in.CoaDebetID,
			"coa_kredit_id": in.CoaKreditID,
			"jumlah":        in.Jumlah,
			"tanggal":       tanggal,
			"keterangan":    in.Keterangan,
			"status":        status,
		}
		if err := tx.Model(&p).Updates(updates).Error; err != nil {
			return err
		}
		// Updates via map tidak menyentuh struct; nilai parameter harus
		// merujuk referensi yang baru
		p.MustahiqID = in.MustahiqID
		p.ProgramID = in.ProgramID

		if err := tx.Where("penyaluran_id = ?", p.ID).
			Delete(&models.ParameterFieldValue{}).Error; err != nil {
			return err
		}
		if rows := buildParameterValueRows(p, in.ParameterValues); len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Penyaluran tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengupdate penyaluran", "error": err.Error()})
		return
	}

	if err := config.DB.
		Preload("Mustahiq").
		Preload("Program").
		Preload("CoaDebet").
		Preload("CoaKredit").
		Preload("ParameterValues").
		First(&p, p.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal memuat ulang penyaluran", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Penyaluran berhasil diupdate", "updated": p})
}

func DeletePenyaluran(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	// hapus nilai parameter dulu baru header, satu transaksi
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var p models.Penyaluran
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		if err := tx.Where("penyaluran_id = ?", p.ID).
			Delete(&models.ParameterFieldValue{}).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Penyaluran tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menghapus penyaluran", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Penyaluran berhasil dihapus"})
}
