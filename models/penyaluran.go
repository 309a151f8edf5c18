package models

import "time"

type PenyaluranStatus string

const (
	PenyaluranActive   PenyaluranStatus = "active"
	PenyaluranInactive PenyaluranStatus = "inactive"
)

type Penyaluran struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	MustahiqID  uint             `gorm:"not null;index" json:"mustahiq_id"`
	Mustahiq    Mustahiq         `json:"mustahiq"`
	ProgramID   uint             `gorm:"not null;index" json:"program_id"`
	Program     ProgramBantuan   `gorm:"foreignKey:ProgramID" json:"program"`
	CoaDebetID  *uint            `json:"coa_debet_id"`
	CoaDebet    *CoA             `gorm:"foreignKey:CoaDebetID" json:"coa_debet"`
	CoaKreditID *uint            `json:"coa_kredit_id"`
	CoaKredit   *CoA             `gorm:"foreignKey:CoaKreditID" json:"coa_kredit"`
	Jumlah      float64          `gorm:"not null" json:"jumlah"`
	Tanggal     time.Time        `json:"tanggal"`
	Keterangan  string           `gorm:"size:255" json:"keterangan"`
	Status      PenyaluranStatus `gorm:"size:20;default:active" json:"status"`

	ParameterValues []ParameterFieldValue `gorm:"foreignKey:PenyaluranID" json:"parameter_values,omitempty"`

	CreatedByID uint      `json:"created_by_id"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Penyaluran) TableName() string { return "penyalurans" }
