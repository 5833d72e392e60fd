package repositories

import (
	"context"
	"testing"
	"time"

	"sisgad/internal/domain"
	"sisgad/internal/entities"

	"github.com/DATA-DOG/go-sqlmock"
)

func nomencladorRows(pairs ...[2]any) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "nombre", "descripcion", "esbaja", "created_at", "updated_at"})
	now := time.Now()
	for i, p := range pairs {
		rows.AddRow(int64(i+1), p[0], p[1], 0, now, now)
	}
	return rows
}

func testEntity(t *testing.T, name string) entities.Entity {
	t.Helper()
	ent, ok := entities.ByName(name)
	if !ok {
		t.Fatalf("entidad %s no registrada", name)
	}
	return ent
}

func TestListWithSearch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	ent := testEntity(t, "marcas")
	repo := Generic{DB: db}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM marcas WHERE \(LOWER\(nombre\) LIKE \? OR LOWER\(descripcion\) LIKE \?\)`).
		WithArgs("%cable%", "%cable%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT id, nombre, descripcion, esbaja, created_at, updated_at FROM marcas WHERE .+ ORDER BY created_at DESC LIMIT \? OFFSET \?`).
		WithArgs("%cable%", "%cable%", 10, 0).
		WillReturnRows(nomencladorRows([2]any{"Cable Norte", ""}))

	q := domain.DefaultListQuery()
	q.Search = "Cable"

	result, err := repo.List(context.Background(), ent, q)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Pagination.Total != 1 {
		t.Fatalf("total should be 1, got %d", result.Pagination.Total)
	}
	if len(result.Data) != 1 {
		t.Fatalf("expected one row, got %d", len(result.Data))
	}
	if result.Data[0]["nombre"] != "Cable Norte" {
		t.Fatalf("unexpected row: %v", result.Data[0])
	}
	if result.Pagination.Pages != 1 {
		t.Fatalf("pages should be 1, got %d", result.Pagination.Pages)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListAppliesFiltersAndWindow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	ent := testEntity(t, "telefonos")
	repo := Generic{DB: db}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM telefonos WHERE esbaja = \?`).
		WithArgs("0").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(`FROM telefonos WHERE esbaja = \? ORDER BY numero ASC LIMIT \? OFFSET \?`).
		WithArgs("0", 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "numero", "modelo", "marca_id", "centro_id", "local_id",
			"trabajador_id", "estado", "esbaja", "created_at", "updated_at",
		}))

	q := domain.DefaultListQuery()
	q.Page = 2
	q.SortBy = "numero"
	q.SortOrder = "ASC"
	q.Filters = map[string]string{"esbaja": "0"}

	result, err := repo.List(context.Background(), ent, q)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Pagination.Pages != 3 {
		t.Fatalf("25/10 should be 3 pages, got %d", result.Pagination.Pages)
	}
	if len(result.Data) != 0 {
		t.Fatalf("windowed page past the data should be empty, got %d", len(result.Data))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListInvalidSortFallsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	ent := testEntity(t, "marcas")
	repo := Generic{DB: db}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM marcas`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`FROM marcas ORDER BY created_at DESC LIMIT \? OFFSET \?`).
		WithArgs(10, 0).
		WillReturnRows(nomencladorRows())

	q := domain.DefaultListQuery()
	q.SortBy = "campoinventado"

	result, err := repo.List(context.Background(), ent, q)
	if err != nil {
		t.Fatalf("invalid sortBy must degrade, not error: %v", err)
	}
	if result.Pagination.Pages != 1 {
		t.Fatalf("empty set should still report page 1, got %d", result.Pagination.Pages)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateReturnsStoredRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	ent := testEntity(t, "marcas")
	repo := Generic{DB: db}

	mock.ExpectExec(`INSERT INTO marcas \(nombre, created_at, updated_at\) VALUES \(\?, NOW\(\), NOW\(\)\)`).
		WithArgs("Alcatel").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery(`SELECT id, nombre, descripcion, esbaja, created_at, updated_at FROM marcas WHERE id = \?`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "descripcion", "esbaja", "created_at", "updated_at"}).
			AddRow(int64(7), "Alcatel", "", 0, time.Now(), time.Now()))

	rec, err := repo.Create(context.Background(), ent, map[string]any{"nombre": "Alcatel"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec["id"] != int64(7) {
		t.Fatalf("expected generated id 7, got %v", rec["id"])
	}
	if rec["createdAt"] == nil {
		t.Fatalf("createdAt should be set by the store")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateMissingRequiredFields(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	ent := testEntity(t, "trabajadores")
	repo := Generic{DB: db}

	_, err = repo.Create(context.Background(), ent, map[string]any{"apellidos": "Pérez"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	details := domain.ValidationDetails(err)
	if len(details) != 2 {
		t.Fatalf("nombre and ci should both be reported, got %v", details)
	}
}

func TestUpdateMissingIDIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	ent := testEntity(t, "marcas")
	repo := Generic{DB: db}

	mock.ExpectQuery(`SELECT id FROM marcas WHERE id = \?`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.Update(context.Background(), ent, 99, map[string]any{"nombre": "Nueva"})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteTwiceReportsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	ent := testEntity(t, "marcas")
	repo := Generic{DB: db}

	mock.ExpectExec(`DELETE FROM marcas WHERE id = \?`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM marcas WHERE id = \?`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), ent, 5); err != nil {
		t.Fatalf("first delete should succeed: %v", err)
	}
	if err := repo.Delete(context.Background(), ent, 5); !domain.IsNotFound(err) {
		t.Fatalf("second delete must be not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	ent := testEntity(t, "marcas")
	repo := Generic{DB: db}

	mock.ExpectQuery(`FROM marcas WHERE id = \?`).
		WithArgs(int64(404)).
		WillReturnRows(nomencladorRows())

	_, err = repo.GetByID(context.Background(), ent, 404)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
