// utils/coa.go
package utils

import "regexp"

var kodeCoaRe = regexp.MustCompile(`^\d{3}\.\d{2}\.\d{3}\.\d{3}$`)

// ValidKodeCoA memeriksa format kode CoA NNN.NN.NNN.NNN.
func ValidKodeCoA(kode string) bool {
	return kodeCoaRe.MatchString(kode)
}
