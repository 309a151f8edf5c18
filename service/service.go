package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go-postgres-ziswaf/models"

	"gorm.io/gorm"
)

// ===== DTO umum =====

type RefInput struct {
	MustahiqID  uint
	ProgramID   uint
	CoaDebetID  *uint
	CoaKreditID *uint
}

type ParameterValueInput struct {
	ParameterFieldID uint   `json:"parameter_field_id"`
	Value            string `json:"value"`
}

// ===== Service =====

type Service interface {
	// Cek semua referensi penyaluran sekaligus; error menyebut referensi
	// mana yang tidak ada.
	ValidateReferensi(ctx context.Context, in RefInput) error

	// Daftar field dinamis milik program, urut sesuai definisi.
	ResolveParameterFields(ctx context.Context, programID uint) ([]models.ParameterField, error)

	// Validasi nilai parameter terhadap definisi field program:
	// is_required, field_type, dan pilihan untuk select.
	ValidateParameterValues(ctx context.Context, programID uint, values []ParameterValueInput) error

	CariCoaByKode(ctx context.Context, kode string) (*models.CoA, error)

	// Import per baris spreadsheet, lanjut walau ada baris gagal.
	ImportPenyaluran(ctx context.Context, rows [][]string, actorID uint) (ImportResult, error)
}

type service struct{ db *gorm.DB }

func NewService(db *gorm.DB) Service { return &service{db: db} }

// ValidateJumlah adalah satu-satunya aturan nominal; dipakai create,
// update, dan import supaya tidak ada dua versi aturan.
func ValidateJumlah(jumlah float64) error {
	if jumlah <= 0 {
		return errors.New("jumlah harus lebih dari 0")
	}
	return nil
}

// ===== Implementations =====

func (s *service) ValidateReferensi(ctx context.Context, in RefInput) error {
	var cnt int64
	if err := s.db.WithContext(ctx).Model(&models.Mustahiq{}).
		Where("id = ?", in.MustahiqID).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		return errors.New("Mustahiq tidak ditemukan")
	}

	if err := s.db.WithContext(ctx).Model(&models.ProgramBantuan{}).
		Where("id = ?", in.ProgramID).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		return errors.New("Program tidak ditemukan")
	}

	if in.CoaDebetID != nil {
		if err := s.db.WithContext(ctx).Model(&models.CoA{}).
			Where("id = ?", *in.CoaDebetID).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return errors.New("COA debet tidak ditemukan")
		}
	}
	if in.CoaKreditID != nil {
		if err := s.db.WithContext(ctx).Model(&models.CoA{}).
			Where("id = ?", *in.CoaKreditID).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return errors.New("COA kredit tidak ditemukan")
		}
	}
	return nil
}

func (s *service) ResolveParameterFields(ctx context.Context, programID uint) ([]models.ParameterField, error) {
	var fields []models.ParameterField
	if err := s.db.WithContext(ctx).
		Where("program_id = ?", programID).
		Order("urutan ASC, id ASC").
		Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

func (s *service) ValidateParameterValues(ctx context.Context, programID uint, values []ParameterValueInput) error {
	fields, err := s.ResolveParameterFields(ctx, programID)
	if err != nil {
		return err
	}

	byID := make(map[uint]models.ParameterField, len(fields))
	for _, f := range fields {
		byID[f.ID] = f
	}

	submitted := make(map[uint]string, len(values))
	for _, v := range values {
		f, ok := byID[v.ParameterFieldID]
		if !ok {
			return fmt.Errorf("field parameter %d bukan milik program ini", v.ParameterFieldID)
		}
		val := strings.TrimSpace(v.Value)
		submitted[v.ParameterFieldID] = val

		if val == "" {
			continue // field kosong dicek lewat is_required di bawah
		}
		switch f.FieldType {
		case models.FieldNumber:
			if _, err := strconv.ParseFloat(val, 64); err != nil {
				return fmt.Errorf("field %s harus berupa angka", f.FieldName)
			}
		case models.FieldSelect:
			if !optionAllowed(f.Options, val) {
				return fmt.Errorf("nilai %q tidak ada dalam pilihan field %s", val, f.FieldName)
			}
		}
	}

	for _, f := range fields {
		if f.IsRequired && submitted[f.ID] == "" {
			return fmt.Errorf("field %s wajib diisi", f.FieldName)
		}
	}
	return nil
}

func optionAllowed(options, val string) bool {
	for _, opt := range strings.Split(options, ",") {
		if strings.TrimSpace(opt) == val {
			return true
		}
	}
	return false
}

func (s *service) CariCoaByKode(ctx context.Context, kode string) (*models.CoA, error) {
	var coa models.CoA
	if err := s.db.WithContext(ctx).Where("kode = ?", kode).First(&coa).Error; err != nil {
		return nil, err
	}
	return &coa, nil
}
