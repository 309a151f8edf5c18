package controllers

import (
	"fmt"
	"net/http"

	"go-postgres-ziswaf/config"
	"go-postgres-ziswaf/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

var eksportHeaders = []interface{}{
	"No", "Tanggal", "Nama Mustahiq", "NIK", "Program",
	"COA Debet", "COA Kredit", "Nominal", "Status", "Keterangan",
}

// EksportPenyaluran menulis seluruh tabel penyaluran (join mustahiq,
// program, kedua CoA) ke satu file xlsx, urut terbaru dulu.
func EksportPenyaluran(c *gin.Context) {
	var rows []models.Penyaluran
	if err := config.DB.
		Preload("Mustahiq").
		Preload("Program").
		Preload("CoaDebet").
		Preload("CoaKredit").
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat file Excel"})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Penyaluran"
	f.SetSheetName("Sheet1", sheet)
	if err := f.SetSheetRow(sheet, "A1", &eksportHeaders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat file Excel"})
		return
	}

	for i, p := range rows {
		coaDebet := ""
		if p.CoaDebet != nil {
			coaDebet = p.CoaDebet.Kode
		}
		coaKredit := ""
		if p.CoaKredit != nil {
			coaKredit = p.CoaKredit.Kode
		}
		record := []interface{}{
			i + 1,
			p.Tanggal.Format("2006-01-02"),
			p.Mustahiq.Nama,
			p.Mustahiq.NIK,
			p.Program.NamaProgram,
			coaDebet,
			coaKredit,
			p.Jumlah,
			string(p.Status),
			p.Keterangan,
		}
		cellRef := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cellRef, &record); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat file Excel"})
			return
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat file Excel"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=DataPenyaluran.xlsx")
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
