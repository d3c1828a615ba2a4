package index

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Entry is one stored declaration of a symbol.
type Entry struct {
	UnitID    uuid.UUID
	Unit      string
	Name      string
	Type      string
	Explicit  bool
	Arity     int
	Line      int
	Column    int
	Instances int
}

// Lookup returns every stored declaration of name, ordered by unit path.
func (ix *Index) Lookup(ctx context.Context, name string) ([]Entry, error) {
	rows, err := ix.db.QueryContext(ctx, `
		SELECT u.id, u.path, s.name, s.type, s.explicit, s.arity, s.line, s.col,
		       (SELECT COUNT(*) FROM instances i WHERE i.unit_id = s.unit_id AND i.symbol = s.name)
		FROM symbols s JOIN units u ON u.id = s.unit_id
		WHERE s.name = ?
		ORDER BY u.path`, name)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", name, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e  Entry
			id string
		)
		if err := rows.Scan(&id, &e.Unit, &e.Name, &e.Type, &e.Explicit, &e.Arity, &e.Line, &e.Column, &e.Instances); err != nil {
			return nil, err
		}
		if e.UnitID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("lookup %s: bad unit id %q: %w", name, id, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Reference is a symbol whose equations mention another name.
type Reference struct {
	Unit   string
	Symbol string
}

// References returns the symbols that refer to target.
func (ix *Index) References(ctx context.Context, target string) ([]Reference, error) {
	rows, err := ix.db.QueryContext(ctx, `
		SELECT u.path, r.symbol
		FROM refs r JOIN units u ON u.id = r.unit_id
		WHERE r.target = ?
		ORDER BY u.path, r.symbol`, target)
	if err != nil {
		return nil, fmt.Errorf("references %s: %w", target, err)
	}
	defer rows.Close()

	var refs []Reference
	for rows.Next() {
		var r Reference
		if err := rows.Scan(&r.Unit, &r.Symbol); err != nil {
			return nil, err
		}
		refs = append(refs, r)
	}
	return refs, rows.Err()
}

// Units returns the stored unit paths.
func (ix *Index) Units(ctx context.Context) ([]string, error) {
	rows, err := ix.db.QueryContext(ctx, `SELECT path FROM units ORDER BY path`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}
