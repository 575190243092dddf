// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Apex Glitch

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/apexglitch/crm/models"
)

// buildInsertCustomerQuery builds an INSERT over exactly the columns present
// in fields. Column order follows [models.CustomerColumns], so generated SQL
// is deterministic for any given field set.
//
// The field set must already be validated: a key that is not a known customer
// column fails the build with [ErrBuildingSQLQuery] instead of reaching the
// database.
func buildInsertCustomerQuery(fields models.CustomerFields) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("%w: empty field set", ErrBuildingSQLQuery)
	}

	columns := make([]string, 0, len(fields))
	values := make([]any, 0, len(fields))
	for _, column := range models.CustomerColumns {
		if value, ok := fields[column]; ok {
			columns = append(columns, column)
			values = append(values, value)
		}
	}

	// Any leftover key is not a known column.
	if len(columns) != len(fields) {
		return "", nil, fmt.Errorf("%w: unknown column in field set", ErrBuildingSQLQuery)
	}

	return sq.Insert("customers").
		Columns(columns...).
		Values(values...).
		ToSql()
}

// buildUpdateCustomerQuery builds an UPDATE that overwrites exactly the
// columns present in fields for the row identified by id. Columns the client
// did not send keep their stored values; the caller decides whether that set
// is a full record or not.
func buildUpdateCustomerQuery(id int64, fields models.CustomerFields) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("%w: empty field set", ErrBuildingSQLQuery)
	}

	builder := sq.Update("customers")

	applied := 0
	for _, column := range models.CustomerColumns {
		if value, ok := fields[column]; ok {
			builder = builder.Set(column, value)
			applied++
		}
	}

	if applied != len(fields) {
		return "", nil, fmt.Errorf("%w: unknown column in field set", ErrBuildingSQLQuery)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		ToSql()
}
