package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermissionUnionOverRoles(t *testing.T) {
	ident := Identity{
		ID:      1,
		Usuario: "tecnico",
		Roles: []Role{
			{ID: 1, Nombre: "A", Permisos: []string{"telefonos.leer"}},
			{ID: 2, Nombre: "B", Permisos: []string{"quejas.crear"}},
		},
	}

	assert.True(t, ident.HasPermission("telefonos.leer"))
	assert.True(t, ident.HasPermission("quejas.crear"))
	assert.False(t, ident.HasPermission("usuarios.leer"))
}

func TestHasPermissionNoPartialMatches(t *testing.T) {
	ident := Identity{Roles: []Role{{Nombre: "A", Permisos: []string{"telefonos.leer"}}}}

	assert.False(t, ident.HasPermission("telefonos"))
	assert.False(t, ident.HasPermission("telefonos.*"))
	assert.False(t, ident.HasPermission("telefonos.leer.extra"))
}

func TestPermissionsDeduplicatesUnion(t *testing.T) {
	ident := Identity{
		Roles: []Role{
			{Nombre: "A", Permisos: []string{"quejas.leer", "quejas.crear"}},
			{Nombre: "B", Permisos: []string{"quejas.leer", "reportes.leer"}},
		},
	}

	assert.ElementsMatch(t, []string{"quejas.leer", "quejas.crear", "reportes.leer"}, ident.Permissions())
}

func TestHasPermissionEmptyIdentity(t *testing.T) {
	assert.False(t, Identity{}.HasPermission("telefonos.leer"))
}
