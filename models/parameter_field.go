package models

import "time"

// Tipe field dinamis milik program. Untuk "select", Options berisi
// daftar pilihan dipisah koma.
const (
	FieldText   = "text"
	FieldSelect = "select"
	FieldNumber = "number"
)

type ParameterField struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProgramID   uint      `gorm:"index" json:"program_id"`
	FieldName   string    `gorm:"size:120;not null" json:"field_name"`
	FieldType   string    `gorm:"size:12;default:text" json:"field_type"`
	IsRequired  bool      `json:"is_required"`
	Options     string    `gorm:"size:255" json:"options"`
	Description string    `gorm:"size:255" json:"description"`
	Urutan      int       `json:"urutan"`
	CreatedAt   time.Time `json:"created_at"`
}

// Satu nilai untuk satu tuple (program, field, mustahiq, penyaluran).
// Dibuat bersama penyaluran, dihapus saat penyaluran dihapus atau saat
// field program diganti.
type ParameterFieldValue struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	PenyaluranID     uint      `gorm:"index" json:"penyaluran_id"`
	ParameterFieldID uint      `gorm:"index" json:"parameter_field_id"`
	ProgramID        uint      `json:"program_id"`
	MustahiqID       uint      `json:"mustahiq_id"`
	Value            string    `gorm:"size:255" json:"value"`
	CreatedAt        time.Time `json:"created_at"`
}
