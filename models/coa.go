package models

import "time"

// Kode pembukuan, format NNN.NN.NNN.NNN. Tidak ada endpoint update:
// setelah dipakai penyaluran, kode dianggap beku.
type CoA struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Kode           string    `gorm:"uniqueIndex;size:20;not null" json:"kode"`
	Nama           string    `gorm:"size:180" json:"nama"`
	JenisTransaksi string    `gorm:"size:40" json:"jenis_transaksi"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (CoA) TableName() string { return "coas" }
