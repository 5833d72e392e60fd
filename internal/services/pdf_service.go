package services

import (
	"bytes"
	"fmt"
	"time"

	"sisgad/internal/domain"

	"github.com/phpdave11/gofpdf"
)

// BuildQuejaPDF renders the printable summary of one complaint that the
// dashboard offers from the complaint detail screen.
func BuildQuejaPDF(queja domain.Record) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Reporte de Queja", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "REPORTE DE QUEJA")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Codigo          : %s", campo(queja, "codigo")),
		fmt.Sprintf("Tipo de queja   : %s", campo(queja, "tipoQuejaId")),
		fmt.Sprintf("Estado          : %s", campo(queja, "estadoQuejaId")),
		fmt.Sprintf("Telefono        : %s", campo(queja, "telefonoId")),
		fmt.Sprintf("Trabajador      : %s", campo(queja, "trabajadorId")),
		fmt.Sprintf("Fecha reporte   : %s", campo(queja, "fechaReporte")),
		fmt.Sprintf("Fecha solucion  : %s", campo(queja, "fechaSolucion")),
		fmt.Sprintf("Generado        : %s", time.Now().Format("2006-01-02 15:04")),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Descripcion:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, campo(queja, "descripcion"), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("generar pdf: %w", err)
	}

	filename := fmt.Sprintf("QUEJA_%s.pdf", campo(queja, "codigo"))
	return buf.Bytes(), filename, nil
}

func campo(rec domain.Record, name string) string {
	v, ok := rec[name]
	if !ok || v == nil {
		return "-"
	}
	switch t := v.(type) {
	case string:
		if t == "" {
			return "-"
		}
		return t
	case time.Time:
		return t.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", t)
	}
}
