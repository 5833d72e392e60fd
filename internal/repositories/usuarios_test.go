package repositories

import (
	"context"
	"testing"

	"sisgad/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestFindByLoginUnknownUserIsUnauthorized(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM usuarios`).
		WithArgs("nadie", "nadie").
		WillReturnRows(sqlmock.NewRows([]string{"id", "usuario", "nombre", "password_hash", "esbaja"}))

	_, err = Usuarios{DB: db}.FindByLogin(context.Background(), "nadie")
	if !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoadIdentityAssemblesRolesAndPermissions(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM usuarios`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "usuario", "nombre", "esbaja"}).
			AddRow(5, "mperez", "María Pérez", 0))
	mock.ExpectQuery(`FROM usuario_roles ur`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "codigo"}).
			AddRow(1, "Administrador", "usuarios.leer").
			AddRow(1, "Administrador", "usuarios.crear").
			AddRow(2, "Consultor", "quejas.leer"))

	ident, err := Usuarios{DB: db}.LoadIdentity(context.Background(), 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ident.Roles) != 2 {
		t.Fatalf("expected 2 roles, got %+v", ident.Roles)
	}
	if len(ident.Roles[0].Permisos) != 2 || ident.Roles[0].Nombre != "Administrador" {
		t.Fatalf("rol incorrecto: %+v", ident.Roles[0])
	}
	if !ident.HasPermission("quejas.leer") || ident.HasPermission("cables.editar") {
		t.Fatalf("union de permisos incorrecta: %+v", ident)
	}
}

func TestLoadIdentityRoleWithoutPermissions(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM usuarios`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "usuario", "nombre", "esbaja"}).
			AddRow(9, "vacio", "Sin Permisos", 0))
	mock.ExpectQuery(`FROM usuario_roles ur`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "codigo"}).
			AddRow(3, "Invitado", nil))

	ident, err := Usuarios{DB: db}.LoadIdentity(context.Background(), 9)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ident.Roles) != 1 || len(ident.Roles[0].Permisos) != 0 {
		t.Fatalf("rol sin permisos incorrecto: %+v", ident.Roles)
	}
	if ident.HasPermission("quejas.leer") {
		t.Fatalf("no debe tener permisos")
	}
}

func TestLoadIdentityDeletedUserIsUnauthorized(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM usuarios`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "usuario", "nombre", "esbaja"}).
			AddRow(4, "baja", "Dado de Baja", 1))

	_, err = Usuarios{DB: db}.LoadIdentity(context.Background(), 4)
	if !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
