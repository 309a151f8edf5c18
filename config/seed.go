package config

import (
	"log"
	"os"

	"go-postgres-ziswaf/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

// SeedAdmin membuat satu akun admin kalau belum ada, kredensial dari env.
func SeedAdmin() {
	var cnt int64
	DB.Model(&models.User{}).Where("role = ?", "admin").Count(&cnt)
	if cnt > 0 {
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@ziswaf.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("⚠️  Gagal hash password admin: %v", err)
		return
	}

	admin := models.User{
		Nama:         "Administrator",
		Email:        email,
		PasswordHash: string(hashed),
		Role:         "admin",
		IsActive:     true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("⚠️  Gagal seed admin: %v", err)
	}
}

// SeedCoA mengisi kode pembukuan dasar. Idempotent: kode yang sudah ada
// dibiarkan.
func SeedCoA() {
	codes := []models.CoA{
		{Kode: "101.01.001.001", Nama: "Kas Zakat", JenisTransaksi: "debet"},
		{Kode: "101.01.001.002", Nama: "Kas Infaq", JenisTransaksi: "debet"},
		{Kode: "101.01.001.003", Nama: "Kas Wakaf", JenisTransaksi: "debet"},
		{Kode: "501.01.001.001", Nama: "Penyaluran Zakat", JenisTransaksi: "kredit"},
		{Kode: "501.01.001.002", Nama: "Penyaluran Infaq", JenisTransaksi: "kredit"},
	}
	if err := DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kode"}},
		DoNothing: true,
	}).Create(&codes).Error; err != nil {
		log.Printf("⚠️  Gagal seed CoA: %v", err)
	}
}
