package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const municipiosXML = `<?xml version="1.0" encoding="ISO-8859-1"?>
<parametros>
  <tabla nombre="Municipios">
    <valor cod="52001" nombre="Pasto"><otro codigo="52" valor="Nariño"/></valor>
    <valor cod="05001" nombre="Medellín"><otro codigo="05" valor="Antioquia"/></valor>
    <valor cod="52001" nombre="Pasto duplicado"><otro codigo="52" valor="Nariño"/></valor>
    <valor cod="99999" nombre="Sin departamento"/>
    <valor cod="" nombre="Sin código"><otro codigo="05" valor="Antioquia"/></valor>
    <valor cod="54001" nombre="San José de Cúcuta"><otro codigo="54" valor="Norte de Santander"/></valor>
  </tabla>
</parametros>`

func latin1(t *testing.T, s string) []byte {
	t.Helper()
	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func TestParseMunicipios_ISO88591(t *testing.T) {
	list, err := parseMunicipios(bytes.NewReader(latin1(t, municipiosXML)))
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "05001", list[0].Codigo)
	assert.Equal(t, "Medellín", list[0].Nombre)
	assert.Equal(t, "52001", list[1].Codigo)
	assert.Equal(t, "Pasto", list[1].Nombre, "gana la primera aparición del código")
	assert.Equal(t, "Nariño", list[1].Departamento)
	assert.Equal(t, "San José de Cúcuta", list[2].Nombre)
}

func TestParseMunicipios_SinMunicipios(t *testing.T) {
	_, err := parseMunicipios(strings.NewReader(`<?xml version="1.0"?><parametros><tabla/></parametros>`))
	assert.Error(t, err)
}

func TestParseMunicipios_XMLInvalido(t *testing.T) {
	_, err := parseMunicipios(strings.NewReader(`<parametros><tabla>`))
	assert.Error(t, err)
}

func TestWriteSQL_EscapaComillas(t *testing.T) {
	list, err := parseMunicipios(strings.NewReader(`<?xml version="1.0"?>
<parametros><tabla>
  <valor cod="13001" nombre="Cartagena de Indias"><otro codigo="13" valor="Bolívar"/></valor>
  <valor cod="25001" nombre="Agua de Dios"><otro codigo="25" valor="Cundinamarca"/></valor>
  <valor cod="88001" nombre="San Andrés"><otro codigo="88" valor="Archipiélago de San Andrés, Providencia y Santa Catalina"/></valor>
  <valor cod="99001" nombre="Puerto Carreño's"><otro codigo="99" valor="Vichada"/></valor>
</tabla></parametros>`))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeSQL(&buf, list))
	sql := buf.String()

	assert.Contains(t, sql, "INSERT INTO municipios (codigo, nombre, departamento) VALUES")
	assert.Contains(t, sql, "('99001', 'Puerto Carreño''s', 'Vichada')\n")
	assert.Contains(t, sql, "('13001', 'Cartagena de Indias', 'Bolívar'),")
	assert.True(t, strings.HasSuffix(sql, "ON CONFLICT (codigo) DO UPDATE SET nombre = EXCLUDED.nombre, departamento = EXCLUDED.departamento;\n"))
}
