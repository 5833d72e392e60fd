package services

import (
	"bytes"
	"fmt"
	"time"

	"sisgad/internal/domain"
	"sisgad/internal/entities"

	"github.com/xuri/excelize/v2"
)

// ExportLimit caps how many rows one XLSX export pulls from the store.
const ExportLimit = 5000

// BuildXLSX renders a filtered entity list as a spreadsheet: one header row
// with the API field names, one row per record.
func BuildXLSX(ent entities.Entity, rows []domain.Record) ([]byte, string, error) {
	f := excelize.NewFile()

	sheet := "Datos"
	index, err := f.NewSheet(sheet)
	if err != nil {
		f.Close()
		return nil, "", fmt.Errorf("crear hoja: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, "", fmt.Errorf("crear estilo: %w", err)
	}

	_, names := ent.SelectColumns()
	for col, name := range names {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, "", fmt.Errorf("celda de cabecera: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			f.Close()
			return nil, "", fmt.Errorf("escribir cabecera: %w", err)
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(names))
	_ = f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle)

	for i, rec := range rows {
		for col, name := range names {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				f.Close()
				return nil, "", fmt.Errorf("celda de datos: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, cellValue(rec[name])); err != nil {
				f.Close()
				return nil, "", fmt.Errorf("escribir fila %d: %w", i+1, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		f.Close()
		return nil, "", fmt.Errorf("serializar xlsx: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, "", fmt.Errorf("cerrar xlsx: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.xlsx", ent.Name, time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

func cellValue(v any) any {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		return t.Format("2006-01-02 15:04:05")
	default:
		return t
	}
}
