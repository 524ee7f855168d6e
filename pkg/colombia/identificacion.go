// Package colombia reúne validaciones de documentos y datos de contacto colombianos:
// cédula de ciudadanía, NIT con dígito de verificación, teléfonos y coordenadas.
package colombia

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// pesos para el cálculo del dígito de verificación NIT (Orden Administrativa 4 de 1989, DIAN).
// Se aplican a los 9 primeros dígitos del NIT, de izquierda a derecha.
var nitWeights = [9]int{41, 37, 29, 23, 19, 17, 13, 7, 3}

var (
	reMovil = regexp.MustCompile(`^3\d{9}$`)
	reFijo  = regexp.MustCompile(`^(60\d{8}|\d{7})$`)
)

// ValidateCedula exige solo dígitos, entre 6 y 10, sin cero inicial.
func ValidateCedula(cedula string) error {
	c := strings.TrimSpace(cedula)
	if len(c) < 6 || len(c) > 10 {
		return fmt.Errorf("cédula debe tener entre 6 y 10 dígitos")
	}
	for _, r := range c {
		if r < '0' || r > '9' {
			return fmt.Errorf("cédula solo admite dígitos")
		}
	}
	if c[0] == '0' {
		return fmt.Errorf("cédula no puede iniciar en cero")
	}
	return nil
}

// ValidateDocumento acepta una cédula o un NIT con dígito de verificación ("900123456-8").
// Los clientes empresariales se registran con NIT.
func ValidateDocumento(doc string) error {
	if strings.Contains(doc, "-") {
		return ValidateNITVerificationDigit(doc)
	}
	return ValidateCedula(doc)
}

// ValidateNITVerificationDigit valida que el NIT (con o sin puntos/guiones) tenga
// un dígito de verificación correcto según el algoritmo módulo 11 de la DIAN.
func ValidateNITVerificationDigit(taxID string) error {
	digits := extractDigits(taxID)
	if len(digits) != 10 {
		return fmt.Errorf("NIT debe tener 9 dígitos más el dígito de verificación, se encontraron %d", len(digits))
	}
	expected, err := ComputeNITVerificationDigit(string(digits[:9]))
	if err != nil {
		return err
	}
	if digits[9] != expected {
		return fmt.Errorf("dígito de verificación del NIT inválido: esperado %c, recibido %c", expected, digits[9])
	}
	return nil
}

// ComputeNITVerificationDigit calcula el dígito de verificación para los 9 primeros dígitos del NIT.
func ComputeNITVerificationDigit(taxID string) (byte, error) {
	digits := extractDigits(taxID)
	if len(digits) < 9 {
		return 0, fmt.Errorf("se requieren al menos 9 dígitos para calcular el dígito de verificación, se encontraron %d", len(digits))
	}
	var sum int
	for i, d := range digits[:9] {
		sum += int(d-'0') * nitWeights[i]
	}
	remainder := sum % 11
	if remainder == 0 || remainder == 1 {
		return byte('0' + remainder), nil
	}
	return byte('0' + (11 - remainder)), nil
}

// ValidateTelefono acepta celular (10 dígitos iniciando en 3) o fijo (60X + 7 dígitos, o 7 dígitos).
// Ignora espacios, guiones y el prefijo +57.
func ValidateTelefono(tel string) error {
	t := NormalizeTelefono(tel)
	if reMovil.MatchString(t) || reFijo.MatchString(t) {
		return nil
	}
	return fmt.Errorf("teléfono inválido: use celular de 10 dígitos o fijo")
}

// NormalizeTelefono quita separadores y el indicativo de país.
func NormalizeTelefono(tel string) string {
	t := string(extractDigits(tel))
	if strings.HasPrefix(strings.TrimSpace(tel), "+57") && len(t) == 12 {
		t = t[2:]
	}
	return t
}

// ParseCoordenadas interpreta "lat,lng" en grados decimales dentro de rango.
func ParseCoordenadas(s string) (lat, lng float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("coordenadas deben tener formato lat,lng")
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("latitud inválida")
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("longitud inválida")
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return 0, 0, fmt.Errorf("coordenadas fuera de rango")
	}
	return lat, lng, nil
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
