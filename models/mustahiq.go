package models

import "time"

type Mustahiq struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	NIK          string     `gorm:"uniqueIndex;size:20" json:"nik"`
	Nama         string     `gorm:"size:180;not null" json:"nama"`
	JenisKelamin string     `gorm:"size:12" json:"jenis_kelamin"`
	TempatLahir  string     `gorm:"size:120" json:"tempat_lahir"`
	TanggalLahir *time.Time `json:"tanggal_lahir"`
	Alamat       string     `gorm:"size:255" json:"alamat"`
	Pekerjaan    string     `gorm:"size:120" json:"pekerjaan"`
	Asnaf        string     `gorm:"size:40" json:"asnaf"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	Status       string     `gorm:"size:20;default:active" json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
