package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"go-postgres-ziswaf/config"
	"go-postgres-ziswaf/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ImportPenyaluran menerima file xlsx (field form "file"), memproses
// sheet pertama baris demi baris. Baris gagal tidak membatalkan batch:
// hasilnya 200 kalau semua sukses, 207 kalau sebagian, 400 kalau semua
// gagal.
func ImportPenyaluran(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - Token tidak valid"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File tidak ditemukan"})
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".xlsx") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Format file harus .xlsx"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File tidak bisa dibaca"})
		return
	}
	defer f.Close()

	wb, err := excelize.OpenReader(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File tidak bisa dibaca"})
		return
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File kosong"})
		return
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File tidak bisa dibaca"})
		return
	}

	svc := service.NewService(config.DB)
	result, err := svc.ImportPenyaluran(c.Request.Context(), rows, uid)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	switch {
	case result.Summary.Success == 0:
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Import gagal",
			"summary": result.Summary,
			"errors":  result.Errors,
		})
	case result.Summary.Failed > 0:
		c.JSON(http.StatusMultiStatus, gin.H{
			"message": "Import berhasil sebagian",
			"summary": result.Summary,
			"errors":  result.Errors,
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message": "Import berhasil",
			"summary": result.Summary,
		})
	}
}
