package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-postgres-ziswaf/models"
)

// Header kolom file import, harus sama persis dengan template.
var importRequiredColumns = []string{"ID PM", "ID Program", "COA Debet", "COA Kredit", "Nominal"}

const (
	colTglSalur   = "Tgl Salur"
	colKeterangan = "Keterangan"
)

// maksimal error yang ikut dikirim ke client; counter tetap lengkap
const maxImportErrors = 10

type ImportSummary struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

type ImportResult struct {
	Summary ImportSummary `json:"summary"`
	Errors  []string      `json:"errors,omitempty"`
}

var tanggalLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006"}

// ParseTanggalSalur: tanggal opsional; tidak terbaca bukan kegagalan
// baris, jatuh ke waktu sekarang.
func ParseTanggalSalur(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range tanggalLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now()
}

// ImportPenyaluran memproses seluruh isi sheet (baris pertama = header).
// Kebijakan: baris gagal dicatat lalu lanjut ke baris berikutnya, batch
// tidak pernah dibatalkan di tengah. error non-nil hanya untuk kegagalan
// seluruh request (file kosong / kolom wajib hilang).
func (s *service) ImportPenyaluran(ctx context.Context, rows [][]string, actorID uint) (ImportResult, error) {
	var result ImportResult

	if len(rows) == 0 {
		return result, errors.New("File kosong")
	}

	colIdx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		colIdx[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range importRequiredColumns {
		if _, ok := colIdx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return result, fmt.Errorf("Kolom wajib tidak ditemukan: %s", strings.Join(missing, ", "))
	}

	dataRows := rows[1:]
	if len(dataRows) == 0 {
		return result, errors.New("File tidak berisi data")
	}

	result.Summary.Total = len(dataRows)

	for i, row := range dataRows {
		// header = baris 1 di spreadsheet, data mulai baris 2
		rowNum := i + 2

		cell := func(name string) string {
			idx, ok := colIdx[name]
			if !ok || idx >= len(row) {
				return "" // kolom opsional boleh tidak ada
			}
			return strings.TrimSpace(row[idx])
		}

		if err := s.importRow(ctx, rowNum, cell, actorID); err != nil {
			result.Summary.Failed++
			if len(result.Errors) < maxImportErrors {
				result.Errors = append(result.Errors, err.Error())
			}
			continue
		}
		result.Summary.Success++
	}

	return result, nil
}

func (s *service) importRow(ctx context.Context, rowNum int, cell func(string) string, actorID uint) error {
	for _, name := range importRequiredColumns {
		if cell(name) == "" {
			return fmt.Errorf("Baris %d: kolom %s kosong", rowNum, name)
		}
	}

	mustahiqID, err := strconv.ParseUint(cell("ID PM"), 10, 64)
	if err != nil {
		return fmt.Errorf("Baris %d: ID PM %s tidak valid", rowNum, cell("ID PM"))
	}
	var cnt int64
	if err := s.db.WithContext(ctx).Model(&models.Mustahiq{}).
		Where("id = ?", mustahiqID).Count(&cnt).Error; err != nil {
		return fmt.Errorf("Baris %d: gagal cek mustahiq", rowNum)
	}
	if cnt == 0 {
		return fmt.Errorf("Baris %d: Mustahiq dengan ID %s tidak ditemukan", rowNum, cell("ID PM"))
	}

	programID, err := strconv.ParseUint(cell("ID Program"), 10, 64)
	if err != nil {
		return fmt.Errorf("Baris %d: ID Program %s tidak valid", rowNum, cell("ID Program"))
	}
	if err := s.db.WithContext(ctx).Model(&models.ProgramBantuan{}).
		Where("id = ?", programID).Count(&cnt).Error; err != nil {
		return fmt.Errorf("Baris %d: gagal cek program", rowNum)
	}
	if cnt == 0 {
		return fmt.Errorf("Baris %d: Program dengan ID %s tidak ditemukan", rowNum, cell("ID Program"))
	}

	coaDebet, err := s.CariCoaByKode(ctx, cell("COA Debet"))
	if err != nil {
		return fmt.Errorf("Baris %d: COA Debet %s tidak ditemukan", rowNum, cell("COA Debet"))
	}
	coaKredit, err := s.CariCoaByKode(ctx, cell("COA Kredit"))
	if err != nil {
		return fmt.Errorf("Baris %d: COA Kredit %s tidak ditemukan", rowNum, cell("COA Kredit"))
	}

	nominal, err := strconv.ParseFloat(cell("Nominal"), 64)
	if err != nil || ValidateJumlah(nominal) != nil {
		return fmt.Errorf("Baris %d: Nominal harus angka lebih dari 0", rowNum)
	}

	p := models.Penyaluran{
		MustahiqID:  uint(mustahiqID),
		ProgramID:   uint(programID),
		CoaDebetID:  &coaDebet.ID,
		CoaKreditID: &coaKredit.ID,
		Jumlah:      nominal,
		Tanggal:     ParseTanggalSalur(cell(colTglSalur)),
		Keterangan:  cell(colKeterangan),
		Status:      models.PenyaluranActive,
		CreatedByID: actorID,
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return fmt.Errorf("Baris %d: gagal menyimpan penyaluran", rowNum)
	}
	return nil
}
