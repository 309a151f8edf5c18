package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go-postgres-ziswaf/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var importHeader = []string{"ID PM", "ID Program", "COA Debet", "COA Kredit", "Nominal", "Tgl Salur", "Keterangan"}

func importRow(fx fixtures, nominal, tgl, ket string) []string {
	return []string{
		fmt.Sprint(fx.mustahiq.ID),
		fmt.Sprint(fx.program.ID),
		fx.coaDebet.Kode,
		fx.coaKredit.Kode,
		nominal,
		tgl,
		ket,
	}
}

func TestImportAllSuccess(t *testing.T) {
	db, fx := setupDB(t)
	svc := NewService(db)

	rows := [][]string{
		importHeader,
		importRow(fx, "500000", "2024-01-01", "beras"),
		importRow(fx, "250000", "2024-01-02", ""),
	}

	result, err := svc.ImportPenyaluran(context.Background(), rows, fx.user.ID)
	require.NoError(t, err)
	assert.Equal(t, ImportSummary{Total: 2, Success: 2, Failed: 0}, result.Summary)
	assert.Empty(t, result.Errors)

	var saved []models.Penyaluran
	require.NoError(t, db.Order("id ASC").Find(&saved).Error)
	require.Len(t, saved, 2)
	assert.Equal(t, models.PenyaluranActive, saved[0].Status)
	assert.Equal(t, fx.user.ID, saved[0].CreatedByID)
	require.NotNil(t, saved[0].CoaDebetID)
	assert.Equal(t, fx.coaDebet.ID, *saved[0].CoaDebetID)
	assert.Equal(t, "2024-01-01", saved[0].Tanggal.Format("2006-01-02"))

	// import tidak mengisi field dinamis
	var valueCnt int64
	db.Model(&models.ParameterFieldValue{}).Count(&valueCnt)
	assert.Zero(t, valueCnt)
}

func TestImportPartialFailure(t *testing.T) {
	db, fx := setupDB(t)
	svc := NewService(db)

	badMustahiq := importRow(fx, "100000", "", "")
	badMustahiq[0] = "9999"

	rows := [][]string{
		importHeader,
		importRow(fx, "500000", "2024-01-01", ""),
		badMustahiq,
	}

	result, err := svc.ImportPenyaluran(context.Background(), rows, fx.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Summary.Total)
	assert.Equal(t, 1, result.Summary.Success)
	assert.Equal(t, 1, result.Summary.Failed)
	assert.Equal(t, result.Summary.Total, result.Summary.Success+result.Summary.Failed)
	require.Len(t, result.Errors, 1)
	// header = baris 1, jadi baris data kedua dilaporkan sebagai baris 3
	assert.Contains(t, result.Errors[0], "Baris 3")
	assert.Contains(t, result.Errors[0], "tidak ditemukan")
}

func TestImportAllFailed(t *testing.T) {
	db, fx := setupDB(t)
	svc := NewService(db)

	bad := importRow(fx, "100000", "", "")
	bad[2] = "999.99.999.999"

	result, err := svc.ImportPenyaluran(context.Background(), [][]string{importHeader, bad}, fx.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Summary.Success)
	assert.Equal(t, 1, result.Summary.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "COA Debet")
}

func TestImportRejectsNonPositiveNominal(t *testing.T) {
	db, fx := setupDB(t)
	svc := NewService(db)

	rows := [][]string{
		importHeader,
		importRow(fx, "0", "", ""),
		importRow(fx, "-5", "", ""),
		importRow(fx, "abc", "", ""),
	}

	result, err := svc.ImportPenyaluran(context.Background(), rows, fx.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Summary.Success)
	assert.Equal(t, 3, result.Summary.Failed)
	for _, msg := range result.Errors {
		assert.Contains(t, msg, "Nominal")
	}
}

func TestImportEmptyRequiredCell(t *testing.T) {
	db, fx := setupDB(t)
	svc := NewService(db)

	bad := importRow(fx, "100000", "", "")
	bad[4] = "" // Nominal kosong

	result, err := svc.ImportPenyaluran(context.Background(), [][]string{importHeader, bad}, fx.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Summary.Failed)
	assert.Contains(t, result.Errors[0], "kosong")
}

func TestImportMissingColumn(t *testing.T) {
	db, fx := setupDB(t)
	svc := NewService(db)

	header := []string{"ID PM", "ID Program", "COA Debet", "COA Kredit"} // tanpa Nominal
	_, err := svc.ImportPenyaluran(context.Background(), [][]string{header}, fx.user.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nominal")
}

func TestImportEmptyFile(t *testing.T) {
	db, fx := setupDB(t)
	svc := NewService(db)

	_, err := svc.ImportPenyaluran(context.Background(), nil, fx.user.ID)
	assert.Error(t, err)

	_, err = svc.ImportPenyaluran(context.Background(), [][]string{importHeader}, fx.user.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data")
}

func TestImportBadDateIsNotRowFailure(t *testing.T) {
	db, fx := setupDB(t)
	svc := NewService(db)

	before := time.Now().Add(-time.Minute)
	rows := [][]string{importHeader, importRow(fx, "100000", "bukan-tanggal", "")}

	result, err := svc.ImportPenyaluran(context.Background(), rows, fx.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Summary.Success)

	var p models.Penyaluran
	require.NoError(t, db.First(&p).Error)
	assert.True(t, p.Tanggal.After(before), "tanggal tak terbaca harus jatuh ke waktu sekarang")
}

func TestImportErrorListCapped(t *testing.T) {
	db, fx := setupDB(t)
	svc := NewService(db)

	rows := [][]string{importHeader}
	for i := 0; i < 12; i++ {
		bad := importRow(fx, "100000", "", "")
		bad[0] = "9999"
		rows = append(rows, bad)
	}

	result, err := svc.ImportPenyaluran(context.Background(), rows, fx.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, result.Summary.Failed)
	assert.Len(t, result.Errors, 10)
}

func TestParseTanggalSalur(t *testing.T) {
	for _, raw := range []string{"2024-03-15", "15-03-2024", "15/03/2024"} {
		got := ParseTanggalSalur(raw)
		assert.Equal(t, "2024-03-15", got.Format("2006-01-02"), raw)
	}
}
