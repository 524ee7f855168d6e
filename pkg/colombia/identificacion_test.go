package colombia_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-instalaciones/pkg/colombia"
)

func TestValidateCedula(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"1098765432", true},
		{"123456", true},
		{"12345", false},
		{"12345678901", false},
		{"0123456", false},
		{"10987A5432", false},
	}
	for _, tc := range cases {
		err := colombia.ValidateCedula(tc.in)
		if tc.ok {
			assert.NoError(t, err, tc.in)
		} else {
			assert.Error(t, err, tc.in)
		}
	}
}

func TestComputeNITVerificationDigit(t *testing.T) {
	// 900123456 → suma ponderada 586, 586 % 11 = 3 → DV 11-3 = 8
	dv, err := colombia.ComputeNITVerificationDigit("900123456")
	require.NoError(t, err)
	assert.Equal(t, byte('8'), dv)
}

func TestValidateDocumento_NIT(t *testing.T) {
	assert.NoError(t, colombia.ValidateDocumento("900.123.456-8"))
	assert.Error(t, colombia.ValidateDocumento("900123456-7"))
	assert.Error(t, colombia.ValidateDocumento("90012-1"))
}

func TestValidateTelefono(t *testing.T) {
	assert.NoError(t, colombia.ValidateTelefono("3001234567"))
	assert.NoError(t, colombia.ValidateTelefono("+57 300 123 4567"))
	assert.NoError(t, colombia.ValidateTelefono("6076543210"))
	assert.NoError(t, colombia.ValidateTelefono("6543210"))
	assert.Error(t, colombia.ValidateTelefono("2001234567"))
	assert.Error(t, colombia.ValidateTelefono("300123"))
}

func TestParseCoordenadas(t *testing.T) {
	lat, lng, err := colombia.ParseCoordenadas("7.1193, -73.1227")
	require.NoError(t, err)
	assert.InDelta(t, 7.1193, lat, 1e-9)
	assert.InDelta(t, -73.1227, lng, 1e-9)

	_, _, err = colombia.ParseCoordenadas("95,10")
	assert.Error(t, err)
	_, _, err = colombia.ParseCoordenadas("7.1")
	assert.Error(t, err)
}
