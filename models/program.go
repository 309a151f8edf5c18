package models

import "time"

type ProgramStatus string

const (
	ProgramActive   ProgramStatus = "active"
	ProgramInactive ProgramStatus = "inactive"
)

type ProgramBantuan struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	NamaProgram     string           `gorm:"size:180;not null" json:"nama_program"`
	Kategori        string           `gorm:"size:80" json:"kategori"`
	Status          ProgramStatus    `gorm:"size:12;default:active" json:"status"`
	SumberDana      []SumberDana     `gorm:"foreignKey:ProgramID" json:"sumber_dana"`
	ParameterFields []ParameterField `gorm:"foreignKey:ProgramID" json:"parameter_fields"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type SumberDana struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ProgramID  uint   `gorm:"index" json:"program_id"`
	Sumber     string `gorm:"size:120;not null" json:"sumber"`
	Keterangan string `gorm:"size:255" json:"keterangan"`
}
