// Package textnorm normaliza texto para búsquedas insensibles a acentos y
// mayúsculas (ej. "Queso Añejo" coincide con "queso anejo").
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold devuelve s en minúsculas y sin marcas diacríticas.
// El transformer se construye por llamada: las cadenas de transform no son
// seguras para uso concurrente.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Contains indica si needle aparece en haystack ignorando acentos y mayúsculas.
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
