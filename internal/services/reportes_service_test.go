package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestQuejasPorEstado(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM quejas q`).
		WillReturnRows(sqlmock.NewRows([]string{"nombre", "total"}).
			AddRow("Pendiente", 12).
			AddRow("Resuelta", 30))

	filas, err := Reportes{DB: db}.QuejasPorEstado(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(filas) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(filas))
	}
	if filas[0].Etiqueta != "Pendiente" || filas[0].Total != 12 {
		t.Fatalf("fila incorrecta: %+v", filas[0])
	}
}

func TestTelefonosPorMunicipioEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM telefonos t`).
		WillReturnRows(sqlmock.NewRows([]string{"nombre", "total"}))

	filas, err := Reportes{DB: db}.TelefonosPorMunicipio(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(filas) != 0 {
		t.Fatalf("expected empty report, got %v", filas)
	}
}
