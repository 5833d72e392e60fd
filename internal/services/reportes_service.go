package services

import (
	"context"
	"database/sql"
	"fmt"
)

// Fila is one bar/slice of a dashboard chart.
type Fila struct {
	Etiqueta string `json:"etiqueta"`
	Total    int64  `json:"total"`
}

// Reportes computes the aggregate counts behind the dashboard charts.
type Reportes struct {
	DB *sql.DB
}

// QuejasPorEstado counts open complaints per workflow state.
func (s Reportes) QuejasPorEstado(ctx context.Context) ([]Fila, error) {
	return s.agrupar(ctx, `
        SELECT COALESCE(e.nombre, 'sin estado'), COUNT(q.id)
        FROM quejas q
        LEFT JOIN estados_queja e ON e.id = q.estado_queja_id
        WHERE q.esbaja = 0
        GROUP BY e.nombre
        ORDER BY COUNT(q.id) DESC
    `)
}

// TelefonosPorMunicipio counts active telephones per municipality, walking
// telefono -> centro -> municipio.
func (s Reportes) TelefonosPorMunicipio(ctx context.Context) ([]Fila, error) {
	return s.agrupar(ctx, `
        SELECT COALESCE(m.nombre, 'sin municipio'), COUNT(t.id)
        FROM telefonos t
        LEFT JOIN centros c ON c.id = t.centro_id
        LEFT JOIN municipios m ON m.id = c.municipio_id
        WHERE t.esbaja = 0
        GROUP BY m.nombre
        ORDER BY COUNT(t.id) DESC
    `)
}

// LineasPorTipo counts active lines per line type.
func (s Reportes) LineasPorTipo(ctx context.Context) ([]Fila, error) {
	return s.agrupar(ctx, `
        SELECT COALESCE(tl.nombre, 'sin tipo'), COUNT(l.id)
        FROM lineas l
        LEFT JOIN tipos_linea tl ON tl.id = l.tipo_linea_id
        WHERE l.esbaja = 0
        GROUP BY tl.nombre
        ORDER BY COUNT(l.id) DESC
    `)
}

func (s Reportes) agrupar(ctx context.Context, query string) ([]Fila, error) {
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("consulta de reporte: %w", err)
	}
	defer rows.Close()

	out := []Fila{}
	for rows.Next() {
		var f Fila
		if err := rows.Scan(&f.Etiqueta, &f.Total); err != nil {
			return nil, fmt.Errorf("leer fila de reporte: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar reporte: %w", err)
	}
	return out, nil
}
