package entities

// The registry is the offline-generated artifact the dynamic schema scripts
// of earlier SISGAD versions used to emit: one descriptor per table,
// maintained by hand together with migrations/.

// nomenclador builds the standard lookup-table shape shared by every
// nomenclator: nombre + descripcion + soft-delete flag.
func nomenclador(name, label, table string) Entity {
	return Entity{
		Name:  name,
		Label: label,
		Table: table,
		Fields: []Field{
			{Name: "nombre", Column: "nombre", Required: true, Search: true},
			{Name: "descripcion", Column: "descripcion", Search: true},
			{Name: "esbaja", Column: "esbaja", Filter: true},
		},
	}
}

var registry = []Entity{
	{
		Name:  "telefonos",
		Label: "teléfono",
		Table: "telefonos",
		Fields: []Field{
			{Name: "numero", Column: "numero", Required: true, Search: true},
			{Name: "modelo", Column: "modelo", Search: true},
			{Name: "marcaId", Column: "marca_id", Filter: true},
			{Name: "centroId", Column: "centro_id", Filter: true},
			{Name: "localId", Column: "local_id", Filter: true},
			{Name: "trabajadorId", Column: "trabajador_id", Filter: true},
			{Name: "estado", Column: "estado", Filter: true},
			{Name: "esbaja", Column: "esbaja", Filter: true},
		},
	},
	{
		Name:  "lineas",
		Label: "línea",
		Table: "lineas",
		Fields: []Field{
			{Name: "numero", Column: "numero", Required: true, Search: true},
			{Name: "par", Column: "par"},
			{Name: "tipoLineaId", Column: "tipo_linea_id", Filter: true},
			{Name: "telefonoId", Column: "telefono_id", Filter: true},
			{Name: "pizarraId", Column: "pizarra_id", Filter: true},
			{Name: "estado", Column: "estado", Filter: true},
			{Name: "esbaja", Column: "esbaja", Filter: true},
		},
	},
	{
		Name:  "cables",
		Label: "cable",
		Table: "cables",
		Fields: []Field{
			{Name: "codigo", Column: "codigo", Required: true, Search: true},
			{Name: "pares", Column: "pares"},
			{Name: "calibre", Column: "calibre"},
			{Name: "tipoCableId", Column: "tipo_cable_id", Filter: true},
			{Name: "rutaId", Column: "ruta_id", Filter: true},
			{Name: "estado", Column: "estado", Filter: true},
			{Name: "esbaja", Column: "esbaja", Filter: true},
		},
	},
	{
		Name:  "pizarras",
		Label: "pizarra",
		Table: "pizarras",
		Fields: []Field{
			{Name: "codigo", Column: "codigo", Required: true, Search: true},
			{Name: "capacidad", Column: "capacidad"},
			{Name: "centroId", Column: "centro_id", Filter: true},
			{Name: "servicioId", Column: "servicio_id", Filter: true},
			{Name: "estado", Column: "estado", Filter: true},
			{Name: "esbaja", Column: "esbaja", Filter: true},
		},
	},
	{
		Name:  "quejas",
		Label: "queja",
		Table: "quejas",
		Fields: []Field{
			{Name: "codigo", Column: "codigo", Required: true, Search: true},
			{Name: "descripcion", Column: "descripcion", Required: true, Search: true},
			{Name: "tipoQuejaId", Column: "tipo_queja_id", Filter: true},
			{Name: "estadoQuejaId", Column: "estado_queja_id", Filter: true},
			{Name: "telefonoId", Column: "telefono_id", Filter: true},
			{Name: "trabajadorId", Column: "trabajador_id", Filter: true},
			{Name: "fechaReporte", Column: "fecha_reporte"},
			{Name: "fechaSolucion", Column: "fecha_solucion"},
			{Name: "esbaja", Column: "esbaja", Filter: true},
		},
	},
	{
		Name:  "trabajadores",
		Label: "trabajador",
		Table: "trabajadores",
		Fields: []Field{
			{Name: "nombre", Column: "nombre", Required: true, Search: true},
			{Name: "apellidos", Column: "apellidos", Search: true},
			{Name: "ci", Column: "ci", Required: true, Search: true},
			{Name: "telefono", Column: "telefono"},
			{Name: "correo", Column: "correo"},
			{Name: "cargoId", Column: "cargo_id", Filter: true},
			{Name: "areaId", Column: "area_id", Filter: true},
			{Name: "esbaja", Column: "esbaja", Filter: true},
		},
	},
	{
		Name:  "usuarios",
		Label: "usuario",
		Table: "usuarios",
		Fields: []Field{
			{Name: "usuario", Column: "usuario", Required: true, Search: true},
			{Name: "nombre", Column: "nombre", Required: true, Search: true},
			{Name: "correo", Column: "correo", Search: true},
			{Name: "password", Column: "password_hash", Required: true, WriteOnly: true},
			{Name: "esbaja", Column: "esbaja", Filter: true},
		},
	},

	nomenclador("municipios", "municipio", "municipios"),
	nomenclador("zonas", "zona", "zonas"),
	nomenclador("distritos", "distrito", "distritos"),
	{
		Name:  "centros",
		Label: "centro",
		Table: "centros",
		Fields: []Field{
			{Name: "nombre", Column: "nombre", Required: true, Search: true},
			{Name: "descripcion", Column: "descripcion", Search: true},
			{Name: "municipioId", Column: "municipio_id", Filter: true},
			{Name: "esbaja", Column: "esbaja", Filter: true},
		},
	},
	nomenclador("areas", "área", "areas"),
	nomenclador("cargos", "cargo", "cargos"),
	nomenclador("marcas", "marca", "marcas"),
	nomenclador("servicios", "servicio", "servicios"),
	nomenclador("locales", "local", "locales"),
	nomenclador("rutas", "ruta", "rutas"),
	nomenclador("tipos-telefono", "tipo de teléfono", "tipos_telefono"),
	nomenclador("tipos-linea", "tipo de línea", "tipos_linea"),
	nomenclador("tipos-cable", "tipo de cable", "tipos_cable"),
	nomenclador("tipos-queja", "tipo de queja", "tipos_queja"),
	nomenclador("estados-queja", "estado de queja", "estados_queja"),
	nomenclador("motivos-baja", "motivo de baja", "motivos_baja"),
}

// All returns the descriptors in mount order.
func All() []Entity {
	return registry
}

// ByName looks an entity up by its URL segment.
func ByName(name string) (Entity, bool) {
	for _, e := range registry {
		if e.Name == name {
			return e, true
		}
	}
	return Entity{}, false
}
