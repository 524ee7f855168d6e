package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
)

// parseMunicipios lee el XML paramétrico de municipios (DIAN, ISO-8859-1):
//
//	<valor cod="52001" nombre="Pasto"><otro codigo="52" valor="Nariño"/></valor>
//
// Omite entradas incompletas y devuelve la lista ordenada por código.
func parseMunicipios(r io.Reader) ([]*entity.Municipio, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		switch strings.ToUpper(charset) {
		case "ISO-8859-1", "ISO8859-1", "LATIN1":
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		case "WINDOWS-1252", "CP1252":
			return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
		}
		return input, nil
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("decodificar XML: %w", err)
	}

	seen := make(map[string]struct{})
	var out []*entity.Municipio
	for _, v := range doc.FindElements("//valor") {
		cod := strings.TrimSpace(v.SelectAttrValue("cod", ""))
		nombre := strings.TrimSpace(v.SelectAttrValue("nombre", ""))
		otro := v.SelectElement("otro")
		if cod == "" || nombre == "" || otro == nil {
			continue
		}
		depto := strings.TrimSpace(otro.SelectAttrValue("valor", ""))
		if depto == "" {
			continue
		}
		if _, dup := seen[cod]; dup {
			continue
		}
		seen[cod] = struct{}{}
		out = append(out, &entity.Municipio{Codigo: cod, Nombre: nombre, Departamento: depto})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("el XML no contiene municipios")
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Codigo < out[j].Codigo })
	return out, nil
}

// writeSQL escribe un script idempotente para la tabla municipios.
func writeSQL(w io.Writer, list []*entity.Municipio) error {
	var b strings.Builder
	b.WriteString("-- Municipios de Colombia (código DANE)\n")
	b.WriteString("-- Generado con cmd/seed_municipios\n\n")
	b.WriteString("INSERT INTO municipios (codigo, nombre, departamento) VALUES\n")
	for i, m := range list {
		sep := ","
		if i == len(list)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "    ('%s', '%s', '%s')%s\n", escapeSQL(m.Codigo), escapeSQL(m.Nombre), escapeSQL(m.Departamento), sep)
	}
	b.WriteString("ON CONFLICT (codigo) DO UPDATE SET nombre = EXCLUDED.nombre, departamento = EXCLUDED.departamento;\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
