package entities

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"sisgad/internal/domain"
)

// Field describes one API-visible attribute of an entity and how it maps to
// its table column.
type Field struct {
	Name      string // JSON / query-string name
	Column    string
	Required  bool // must be present and non-empty on create
	Filter    bool // accepted as a query-string filter
	Search    bool // included in the search OR-group
	WriteOnly bool // accepted on writes, never returned (password hashes)
}

// Entity is the table-driven descriptor every generic handler, repository
// and route mount works from. One descriptor replaces one hand-written
// controller/route/service trio.
type Entity struct {
	Name   string // URL segment and permission prefix, e.g. "telefonos"
	Label  string // singular label for messages, e.g. "teléfono"
	Table  string
	Fields []Field
}

// Every table carries these; they are not listed per entity.
var implicitFields = []Field{
	{Name: "id", Column: "id", Filter: true},
	{Name: "createdAt", Column: "created_at"},
	{Name: "updatedAt", Column: "updated_at"},
}

// Column resolves an API field name to its column. Implicit id/createdAt/
// updatedAt resolve for every entity.
func (e Entity) Column(name string) (string, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f.Column, true
		}
	}
	for _, f := range implicitFields {
		if f.Name == name {
			return f.Column, true
		}
	}
	return "", false
}

// SortColumn validates sortBy against the field set and degrades to
// created_at instead of failing the request.
func (e Entity) SortColumn(sortBy string) string {
	if col, ok := e.Column(sortBy); ok {
		return col
	}
	return "created_at"
}

// SearchColumns lists the columns matched by the search OR-group.
func (e Entity) SearchColumns() []string {
	cols := []string{}
	for _, f := range e.Fields {
		if f.Search {
			cols = append(cols, f.Column)
		}
	}
	return cols
}

// SelectColumns returns the ordered column list and the matching API names
// used to shape rows. Order is fixed so queries stay deterministic.
func (e Entity) SelectColumns() (cols []string, names []string) {
	cols = append(cols, "id")
	names = append(names, "id")
	for _, f := range e.Fields {
		if f.WriteOnly {
			continue
		}
		cols = append(cols, f.Column)
		names = append(names, f.Name)
	}
	cols = append(cols, "created_at", "updated_at")
	names = append(names, "createdAt", "updatedAt")
	return cols, names
}

// Permission builds the permission code gating one action,
// e.g. telefonos.leer.
func (e Entity) Permission(action string) string {
	return e.Name + "." + action
}

// ParseListQuery builds the list contract from raw query-string values.
//
// Missing or empty page/limit fall back to defaults; values that are present
// but non-numeric or < 1 are a ValidationError. Unknown filter keys are
// ignored so one client can talk to heterogeneous entities; unknown sortBy
// degrades to createdAt via SortColumn at query time.
func (e Entity) ParseListQuery(values url.Values) (domain.ListQuery, error) {
	q := domain.DefaultListQuery()

	page, err := positiveInt(values.Get("page"), "page", domain.DefaultPage)
	if err != nil {
		return q, err
	}
	q.Page = page

	limit, err := positiveInt(values.Get("limit"), "limit", domain.DefaultLimit)
	if err != nil {
		return q, err
	}
	if limit > domain.MaxLimit {
		limit = domain.MaxLimit
	}
	q.Limit = limit

	q.Search = strings.TrimSpace(values.Get("search"))

	if sortBy := strings.TrimSpace(values.Get("sortBy")); sortBy != "" {
		q.SortBy = sortBy
	}
	if order := strings.ToUpper(strings.TrimSpace(values.Get("sortOrder"))); order == "ASC" || order == "DESC" {
		q.SortOrder = order
	}

	for _, f := range e.Fields {
		if !f.Filter {
			continue
		}
		if v := strings.TrimSpace(values.Get(f.Name)); v != "" {
			q.Filters[f.Name] = v
		}
	}

	return q, nil
}

func positiveInt(raw, name string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, domain.ValidationError{
			Msg:     fmt.Sprintf("parámetro %s no válido", name),
			Details: []string{fmt.Sprintf("%s debe ser un entero positivo", name)},
			Err:     err,
		}
	}
	return n, nil
}
