package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidKodeCoA(t *testing.T) {
	valid := []string{"101.01.001.001", "999.99.999.999", "000.00.000.000"}
	for _, kode := range valid {
		assert.True(t, ValidKodeCoA(kode), kode)
	}

	invalid := []string{
		"",
		"101.01.001",        // kurang segmen
		"101.01.001.001.01", // kelebihan segmen
		"1.01.001.001",      // segmen pertama kurang digit
		"101-01-001-001",    // pemisah salah
		"abc.de.fgh.ijk",
		" 101.01.001.001",
	}
	for _, kode := range invalid {
		assert.False(t, ValidKodeCoA(kode), kode)
	}
}
