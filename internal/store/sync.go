package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/roach88/smartenum/internal/convert"
	"github.com/roach88/smartenum/internal/enum"
	"github.com/roach88/smartenum/internal/token"
)

// SyncResult lists enumeration names by what SyncRegistry did to them.
// Each list is sorted.
type SyncResult struct {
	// Revision stamped on added and updated enumerations; empty when
	// nothing changed.
	Revision  string
	Added     []string
	Updated   []string
	Unchanged []string
	Removed   []string
}

// Changed reports whether the sync wrote anything.
func (r *SyncResult) Changed() bool {
	return len(r.Added)+len(r.Updated)+len(r.Removed) > 0
}

type storedMember struct {
	name  string
	value string // JSON token text
}

type storedType struct {
	name     string
	kind     string
	revision string
	members  []storedMember
}

func (t storedType) sameContent(other storedType) bool {
	return t.kind == other.kind && slices.Equal(t.members, other.members)
}

// SyncRegistry makes the stored catalog match reg in one transaction.
// Enumerations missing from reg are removed. A single revision is
// generated per sync and only when something changes.
func (s *Store) SyncRegistry(ctx context.Context, reg *enum.Registry) (*SyncResult, error) {
	want, err := encodeRegistry(reg)
	if err != nil {
		return nil, fmt.Errorf("sync registry: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sync registry: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	have, err := readTypes(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("sync registry: %w", err)
	}
	stored := make(map[string]storedType, len(have))
	for _, t := range have {
		stored[t.name] = t
	}

	result := &SyncResult{}
	for _, t := range want {
		prev, exists := stored[t.name]
		delete(stored, t.name)
		if exists && prev.sameContent(t) {
			result.Unchanged = append(result.Unchanged, t.name)
			continue
		}

		if result.Revision == "" {
			result.Revision = s.revs.Generate()
		}
		t.revision = result.Revision
		if err := writeType(ctx, tx, t); err != nil {
			return nil, fmt.Errorf("sync registry: %w", err)
		}
		if exists {
			result.Updated = append(result.Updated, t.name)
		} else {
			result.Added = append(result.Added, t.name)
		}
	}

	for name := range stored {
		if _, err := tx.ExecContext(ctx, `DELETE FROM enum_types WHERE name = ?`, name); err != nil {
			return nil, fmt.Errorf("sync registry: delete %s: %w", name, err)
		}
		result.Removed = append(result.Removed, name)
	}
	slices.Sort(result.Removed)

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("sync registry: commit: %w", err)
	}

	s.logger.Info().
		Str("revision", result.Revision).
		Int("added", len(result.Added)).
		Int("updated", len(result.Updated)).
		Int("unchanged", len(result.Unchanged)).
		Int("removed", len(result.Removed)).
		Msg("synced catalog")
	return result, nil
}

// encodeRegistry renders every enumeration in name order.
func encodeRegistry(reg *enum.Registry) ([]storedType, error) {
	names := reg.Names()
	types := make([]storedType, 0, len(names))
	for _, name := range names {
		d, _ := reg.Get(name)
		t := storedType{name: d.Name(), kind: d.Kind().String()}
		for _, inst := range d.Instances() {
			w := token.NewJSONWriter()
			if err := convert.WriteInstance(w, inst); err != nil {
				return nil, fmt.Errorf("encode %s.%s: %w", name, inst.Name(), err)
			}
			t.members = append(t.members, storedMember{name: inst.Name(), value: string(w.Bytes())})
		}
		types = append(types, t)
	}
	return types, nil
}

// writeType upserts the enumeration row and replaces its members.
func writeType(ctx context.Context, tx *sql.Tx, t storedType) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO enum_types (name, kind, revision)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET kind = excluded.kind, revision = excluded.revision
	`, t.name, t.kind, t.revision)
	if err != nil {
		return fmt.Errorf("write %s: %w", t.name, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM enum_members WHERE type_name = ?`, t.name); err != nil {
		return fmt.Errorf("write %s: clear members: %w", t.name, err)
	}

	for i, m := range t.members {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO enum_members (type_name, position, name, value)
			VALUES (?, ?, ?, ?)
		`, t.name, i, m.name, m.value)
		if err != nil {
			return fmt.Errorf("write %s.%s: %w", t.name, m.name, err)
		}
	}
	return nil
}
