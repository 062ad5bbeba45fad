package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/smartenum/internal/catalog"
	"github.com/roach88/smartenum/internal/enum"
	"github.com/roach88/smartenum/internal/token"
)

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// LoadRegistry rebuilds the stored catalog. Stored values go through the
// same kind checks as a declaration file.
func (s *Store) LoadRegistry(ctx context.Context) (*enum.Registry, error) {
	types, err := readTypes(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}

	defs := make([]catalog.Definition, 0, len(types))
	for _, t := range types {
		kind, err := enum.ParseKind(t.kind)
		if err != nil {
			return nil, fmt.Errorf("load registry: %s: %w", t.name, err)
		}
		def := catalog.Definition{Name: t.name, Kind: kind}
		for _, m := range t.members {
			r, err := token.NewJSONReader([]byte(m.value))
			if err != nil {
				return nil, fmt.Errorf("load registry: %s.%s: %w", t.name, m.name, err)
			}
			def.Members = append(def.Members, catalog.MemberDef{Name: m.name, Value: r})
		}
		defs = append(defs, def)
	}

	reg, err := catalog.Build(defs)
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}
	s.logger.Debug().Int("enums", reg.Len()).Msg("loaded catalog from store")
	return reg, nil
}

// Revision returns the revision stamped on typeName by its last change.
// Returns sql.ErrNoRows if the enumeration is not stored.
func (s *Store) Revision(ctx context.Context, typeName string) (string, error) {
	var rev string
	err := s.db.QueryRowContext(ctx, `
		SELECT revision FROM enum_types WHERE name = ?
	`, typeName).Scan(&rev)
	if err != nil {
		return "", err
	}
	return rev, nil
}

// readTypes returns every stored enumeration with its members, ordered by
// name and member position.
func readTypes(ctx context.Context, q queryer) ([]storedType, error) {
	types, err := readTypeRows(ctx, q)
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(types))
	for i, t := range types {
		index[t.name] = i
	}

	// Members are read after the type rows are closed; the store holds a
	// single connection.
	rows, err := q.QueryContext(ctx, `
		SELECT type_name, name, value
		FROM enum_members
		ORDER BY type_name COLLATE BINARY ASC, position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query enum members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var typeName string
		var m storedMember
		if err := rows.Scan(&typeName, &m.name, &m.value); err != nil {
			return nil, fmt.Errorf("scan enum member: %w", err)
		}
		i, ok := index[typeName]
		if !ok {
			return nil, fmt.Errorf("member %s.%s has no enumeration row", typeName, m.name)
		}
		types[i].members = append(types[i].members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate enum members: %w", err)
	}

	return types, nil
}

func readTypeRows(ctx context.Context, q queryer) ([]storedType, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT name, kind, revision
		FROM enum_types
		ORDER BY name COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query enum types: %w", err)
	}
	defer rows.Close()

	var types []storedType
	for rows.Next() {
		var t storedType
		if err := rows.Scan(&t.name, &t.kind, &t.revision); err != nil {
			return nil, fmt.Errorf("scan enum type: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate enum types: %w", err)
	}
	return types, nil
}
