package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"sisgad/internal/domain"
	"sisgad/internal/entities"

	"github.com/go-sql-driver/mysql"
)

// Generic serves list/get/create/update/delete for every entity in the
// registry. One implementation instead of one repository per table.
type Generic struct {
	DB *sql.DB
}

// List runs the paginated query contract: a COUNT over the filter and a
// windowed SELECT ordered by the validated sort column. The two reads are
// independent; a write landing between them may skew total versus the page
// by a small margin, which the API accepts.
func (r Generic) List(ctx context.Context, ent entities.Entity, q domain.ListQuery) (domain.ListResult, error) {
	where, args := buildWhere(ent, q)

	var total int64
	countSQL := "SELECT COUNT(*) FROM " + ent.Table + where
	if err := r.DB.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return domain.ListResult{}, fmt.Errorf("contar %s: %w", ent.Name, err)
	}

	cols, names := ent.SelectColumns()
	order := q.SortOrder
	if order != "ASC" {
		order = "DESC"
	}
	selectSQL := "SELECT " + strings.Join(cols, ", ") + " FROM " + ent.Table + where +
		" ORDER BY " + ent.SortColumn(q.SortBy) + " " + order +
		" LIMIT ? OFFSET ?"

	rows, err := r.DB.QueryContext(ctx, selectSQL, append(args, q.Limit, q.Offset())...)
	if err != nil {
		return domain.ListResult{}, fmt.Errorf("listar %s: %w", ent.Name, err)
	}
	defer rows.Close()

	data := []domain.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows, names)
		if err != nil {
			return domain.ListResult{}, fmt.Errorf("leer fila de %s: %w", ent.Name, err)
		}
		data = append(data, rec)
	}
	if err := rows.Err(); err != nil {
		return domain.ListResult{}, fmt.Errorf("iterar %s: %w", ent.Name, err)
	}

	return domain.ListResult{
		Data:       data,
		Pagination: domain.NewPagination(q.Page, q.Limit, total),
	}, nil
}

func (r Generic) GetByID(ctx context.Context, ent entities.Entity, id int64) (domain.Record, error) {
	cols, names := ent.SelectColumns()
	query := "SELECT " + strings.Join(cols, ", ") + " FROM " + ent.Table + " WHERE id = ?"

	rows, err := r.DB.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("consultar %s: %w", ent.Label, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("consultar %s: %w", ent.Label, err)
		}
		return nil, domain.NotFoundError{Resource: ent.Label}
	}
	return scanRecord(rows, names)
}

// Create validates the required-field list, inserts with store-assigned
// timestamps and returns the stored record. Unique-key clashes surface as
// ValidationError, not 500s.
func (r Generic) Create(ctx context.Context, ent entities.Entity, payload map[string]any) (domain.Record, error) {
	details := []string{}
	for _, f := range ent.Fields {
		if !f.Required {
			continue
		}
		if isEmptyValue(payload[f.Name]) {
			details = append(details, fmt.Sprintf("%s es obligatorio", f.Name))
		}
	}
	if len(details) > 0 {
		return nil, domain.ValidationError{Msg: "faltan campos obligatorios", Details: details}
	}

	cols := []string{}
	args := []any{}
	for _, f := range ent.Fields {
		v, ok := payload[f.Name]
		if !ok {
			continue
		}
		cols = append(cols, f.Column)
		args = append(args, v)
	}
	cols = append(cols, "created_at", "updated_at")

	placeholders := strings.Repeat("?, ", len(args)) + "NOW(), NOW()"
	insertSQL := "INSERT INTO " + ent.Table + " (" + strings.Join(cols, ", ") + ") VALUES (" + placeholders + ")"

	res, err := r.DB.ExecContext(ctx, insertSQL, args...)
	if err != nil {
		if isDuplicate(err) {
			return nil, domain.ValidationError{
				Msg:     fmt.Sprintf("%s duplicado", ent.Label),
				Details: []string{"ya existe un registro con ese valor único"},
				Err:     err,
			}
		}
		return nil, fmt.Errorf("insertar %s: %w", ent.Label, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("id de %s: %w", ent.Label, err)
	}
	return r.GetByID(ctx, ent, id)
}

// Update applies the known fields present in the payload and returns the
// post-update record. Existence is checked up front because MySQL reports
// zero affected rows for no-op updates of an existing row.
func (r Generic) Update(ctx context.Context, ent entities.Entity, id int64, payload map[string]any) (domain.Record, error) {
	var existing int64
	err := r.DB.QueryRowContext(ctx, "SELECT id FROM "+ent.Table+" WHERE id = ?", id).Scan(&existing)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundError{Resource: ent.Label}
		}
		return nil, fmt.Errorf("buscar %s: %w", ent.Label, err)
	}

	sets := []string{}
	args := []any{}
	for _, f := range ent.Fields {
		v, ok := payload[f.Name]
		if !ok {
			continue
		}
		sets = append(sets, f.Column+" = ?")
		args = append(args, v)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, ent, id)
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	updateSQL := "UPDATE " + ent.Table + " SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := r.DB.ExecContext(ctx, updateSQL, args...); err != nil {
		if isDuplicate(err) {
			return nil, domain.ValidationError{
				Msg:     fmt.Sprintf("%s duplicado", ent.Label),
				Details: []string{"ya existe un registro con ese valor único"},
				Err:     err,
			}
		}
		return nil, fmt.Errorf("actualizar %s: %w", ent.Label, err)
	}

	return r.GetByID(ctx, ent, id)
}

// Delete removes the row. Zero affected rows is a NotFoundError: deleting
// an already-deleted id must report the absence, never silently succeed.
func (r Generic) Delete(ctx context.Context, ent entities.Entity, id int64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM "+ent.Table+" WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("eliminar %s: %w", ent.Label, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("eliminar %s: %w", ent.Label, err)
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: ent.Label}
	}
	return nil
}

// buildWhere assembles the conjunctive filter: every supplied filter AND'd,
// AND'd with the OR-group of substring matches when search is non-empty.
// Filter keys were already restricted to the entity's field set at parse
// time; anything else never reaches this point.
func buildWhere(ent entities.Entity, q domain.ListQuery) (string, []any) {
	conds := []string{}
	args := []any{}

	appendFilter := func(name, column string) {
		if v, ok := q.Filters[name]; ok {
			conds = append(conds, column+" = ?")
			args = append(args, v)
		}
	}
	for _, f := range ent.Fields {
		appendFilter(f.Name, f.Column)
	}

	if q.Search != "" {
		like := "%" + strings.ToLower(q.Search) + "%"
		group := []string{}
		for _, col := range ent.SearchColumns() {
			group = append(group, "LOWER("+col+") LIKE ?")
			args = append(args, like)
		}
		if len(group) > 0 {
			conds = append(conds, "("+strings.Join(group, " OR ")+")")
		}
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// scanRecord reads the current row into a Record keyed by API field names.
func scanRecord(rows *sql.Rows, names []string) (domain.Record, error) {
	dest := make([]any, len(names))
	for i := range dest {
		var v any
		dest[i] = &v
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}

	rec := domain.Record{}
	for i, name := range names {
		v := *(dest[i].(*any))
		if b, ok := v.([]byte); ok {
			rec[name] = string(b)
		} else {
			rec[name] = v
		}
	}
	return rec, nil
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	default:
		return false
	}
}

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
