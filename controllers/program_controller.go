package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"go-postgres-ziswaf/config"
	"go-postgres-ziswaf/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SumberDanaInput struct {
	Sumber     string `json:"sumber" binding:"required"`
	Keterangan string `json:"keterangan"`
}

type ParameterFieldInput struct {
	FieldName   string `json:"field_name" binding:"required"`
	FieldType   string `json:"field_type"`
	IsRequired  bool   `json:"is_required"`
	Options     string `json:"options"`
	Description string `json:"description"`
}

type ProgramInput struct {
	NamaProgram     string                `json:"nama_program" binding:"required"`
	Kategori        string                `json:"kategori"`
	Status          string                `json:"status"`
	SumberDana      []SumberDanaInput     `json:"sumber_dana"`
	ParameterFields []ParameterFieldInput `json:"parameter_fields"`
}

func validFieldType(t string) bool {
	switch t {
	case models.FieldText, models.FieldSelect, models.FieldNumber:
		return true
	}
	return false
}

func buildParameterFields(programID uint, inputs []ParameterFieldInput) ([]models.ParameterField, error) {
	fields := make([]models.ParameterField, 0, len(inputs))
	for i, f := range inputs {
		ft := f.FieldType
		if ft == "" {
			ft = models.FieldText
		}
		if !validFieldType(ft) {
			return nil, errors.New("field_type harus text, select, atau number")
		}
		if ft == models.FieldSelect && f.Options == "" {
			return nil, errors.New("field select wajib punya options")
		}
		fields = append(fields, models.ParameterField{
			ProgramID:   programID,
			FieldName:   f.FieldName,
			FieldType:   ft,
			IsRequired:  f.IsRequired,
			Options:     f.Options,
			Description: f.Description,
			Urutan:      i,
		})
	}
	return fields, nil
}

func CreateProgram(c *gin.Context) {
	var in ProgramInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Data tidak valid", "error": err.Error()})
		return
	}

	status := models.ProgramStatus(in.Status)
	if status == "" {
		status = models.ProgramActive
	}

	program := models.ProgramBantuan{
		NamaProgram: in.NamaProgram,
		Kategori:    in.Kategori,
		Status:      status,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&program).Error; err != nil {
			return err
		}
		for _, sd := range in.SumberDana {
			row := models.SumberDana{ProgramID: program.ID, Sumber: sd.Sumber, Keterangan: sd.Keterangan}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		fields, err := buildParameterFields(program.ID, in.ParameterFields)
		if err != nil {
			return err
		}
		if len(fields) > 0 {
			if err := tx.Create(&fields).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Gagal membuat program", "error": err.Error()})
		return
	}

	config.DB.Preload("SumberDana").Preload("ParameterFields").First(&program, program.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Program berhasil dibuat", "data": program})
}

func GetAllProgram(c *gin.Context) {
	var rows []models.ProgramBantuan
	if err := config.DB.
		Preload("SumberDana").
		Preload("ParameterFields", func(db *gorm.DB) *gorm.DB {
			return db.Order("urutan ASC, id ASC")
		}).
		Order("id DESC").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data program", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Berhasil mengambil data program", "data": rows})
}

func GetProgramByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var program models.ProgramBantuan
	if err := config.DB.
		Preload("SumberDana").
		Preload("ParameterFields", func(db *gorm.DB) *gorm.DB {
			return db.Order("urutan ASC, id ASC")
		}).
		First(&program, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Program tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Berhasil mengambil data program", "data": program})
}

// UpdateProgram mengganti skalar program dan MENGGANTI TOTAL set field
// parameternya. Field lama dihapus berikut nilai-nilainya (cascade ke
// parameter_field_values), lalu set baru dibuat.
func UpdateProgram(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var in ProgramInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Data tidak valid", "error": err.Error()})
		return
	}

	var program models.ProgramBantuan
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&program, id).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"nama_program": in.NamaProgram,
			"kategori":     in.Kategori,
		}
		if in.Status != "" {
			updates["status"] = in.Status
		}
		if err := tx.Model(&program).Updates(updates).Error; err != nil {
			return err
		}

		// ganti sumber dana
		if err := tx.Where("program_id = ?", program.ID).
			Delete(&models.SumberDana{}).Error; err != nil {
			return err
		}
		for _, sd := range in.SumberDana {
			row := models.SumberDana{ProgramID: program.ID, Sumber: sd.Sumber, Keterangan: sd.Keterangan}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		// ganti field parameter; nilai milik field lama ikut hilang
		if err := tx.Where("program_id = ?", program.ID).
			Delete(&models.ParameterFieldValue{}).Error; err != nil {
			return err
		}
		if err := tx.Where("program_id = ?", program.ID).
			Delete(&models.ParameterField{}).Error; err != nil {
			return err
		}
		fields, err := buildParameterFields(program.ID, in.ParameterFields)
		if err != nil {
			return err
		}
		if len(fields) > 0 {
			if err := tx.Create(&fields).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Program tidak ditemukan"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Gagal mengupdate program", "error": err.Error()})
		return
	}

	config.DB.Preload("SumberDana").Preload("ParameterFields").First(&program, program.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Program berhasil diupdate", "data": program})
}

func DeleteProgram(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID tidak valid"})
		return
	}

	var program models.ProgramBantuan
	if err := config.DB.First(&program, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Program tidak ditemukan"})
		return
	}

	var cnt int64
	if err := config.DB.Model(&models.Penyaluran{}).
		Where("program_id = ?", program.ID).Count(&cnt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal cek penyaluran", "error": err.Error()})
		return
	}
	if cnt > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Program masih memiliki penyaluran"})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("program_id = ?", program.ID).
			Delete(&models.ParameterField{}).Error; err != nil {
			return err
		}
		if err := tx.Where("program_id = ?", program.ID).
			Delete(&models.SumberDana{}).Error; err != nil {
			return err
		}
		return tx.Delete(&program).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menghapus program", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Program berhasil dihapus"})
}
