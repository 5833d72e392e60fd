package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sisgad/internal/domain"
)

// Usuarios resolves credentials and identities. Kept separate from the
// generic repository because auth needs the password hash and the
// role/permission join, neither of which the registry exposes.
type Usuarios struct {
	DB *sql.DB
}

type Credenciales struct {
	ID           int64
	Usuario      string
	Nombre       string
	PasswordHash string
	Esbaja       bool
}

// FindByLogin matches the login against usuario or correo.
func (r Usuarios) FindByLogin(ctx context.Context, login string) (Credenciales, error) {
	var c Credenciales
	err := r.DB.QueryRowContext(ctx, `
        SELECT id, usuario, nombre, password_hash, esbaja
        FROM usuarios
        WHERE usuario = ? OR correo = ?
    `, login, login).Scan(&c.ID, &c.Usuario, &c.Nombre, &c.PasswordHash, &c.Esbaja)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Credenciales{}, domain.UnauthorizedError{Msg: "usuario o contraseña incorrectos"}
		}
		return Credenciales{}, fmt.Errorf("buscar usuario: %w", err)
	}
	return c, nil
}

// LoadIdentity rebuilds the caller's roles and permission sets from the
// store. Runs on every authenticated request; authorization decisions are
// never cached across requests.
func (r Usuarios) LoadIdentity(ctx context.Context, userID int64) (domain.Identity, error) {
	var (
		ident  domain.Identity
		esbaja bool
	)
	err := r.DB.QueryRowContext(ctx, `
        SELECT id, usuario, nombre, esbaja
        FROM usuarios
        WHERE id = ?
    `, userID).Scan(&ident.ID, &ident.Usuario, &ident.Nombre, &esbaja)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Identity{}, domain.UnauthorizedError{Msg: "usuario no existe"}
		}
		return domain.Identity{}, fmt.Errorf("cargar usuario: %w", err)
	}
	if esbaja {
		return domain.Identity{}, domain.UnauthorizedError{Msg: "usuario dado de baja"}
	}

	rows, err := r.DB.QueryContext(ctx, `
        SELECT r.id, r.nombre, p.codigo
        FROM usuario_roles ur
        JOIN roles r ON r.id = ur.rol_id
        LEFT JOIN rol_permisos rp ON rp.rol_id = r.id
        LEFT JOIN permisos p ON p.id = rp.permiso_id
        WHERE ur.usuario_id = ?
        ORDER BY r.id
    `, userID)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("cargar roles: %w", err)
	}
	defer rows.Close()

	byID := map[int64]*domain.Role{}
	order := []int64{}
	for rows.Next() {
		var (
			roleID int64
			nombre string
			codigo sql.NullString
		)
		if err := rows.Scan(&roleID, &nombre, &codigo); err != nil {
			return domain.Identity{}, fmt.Errorf("leer rol: %w", err)
		}
		role, ok := byID[roleID]
		if !ok {
			role = &domain.Role{ID: roleID, Nombre: nombre}
			byID[roleID] = role
			order = append(order, roleID)
		}
		if codigo.Valid {
			role.Permisos = append(role.Permisos, codigo.String)
		}
	}
	if err := rows.Err(); err != nil {
		return domain.Identity{}, fmt.Errorf("iterar roles: %w", err)
	}

	for _, id := range order {
		ident.Roles = append(ident.Roles, *byID[id])
	}
	return ident, nil
}
