// Package index persists analysis results in a SQLite database so that
// symbols can be looked up across previously analyzed files.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/funvibe/hsfront/internal/ast"
	"github.com/funvibe/hsfront/internal/symbols"
)

const schema = `
CREATE TABLE IF NOT EXISTS units (
	id        TEXT PRIMARY KEY,
	path      TEXT NOT NULL UNIQUE,
	stored_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS symbols (
	unit_id  TEXT NOT NULL,
	name     TEXT NOT NULL,
	type     TEXT NOT NULL,
	explicit INTEGER NOT NULL,
	arity    INTEGER NOT NULL,
	line     INTEGER NOT NULL,
	col      INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS instances (
	unit_id TEXT NOT NULL,
	symbol  TEXT NOT NULL,
	ordinal INTEGER NOT NULL,
	args    TEXT NOT NULL,
	scope   TEXT NOT NULL,
	line    INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS types (
	unit_id      TEXT NOT NULL,
	name         TEXT NOT NULL,
	constructors TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS refs (
	unit_id TEXT NOT NULL,
	symbol  TEXT NOT NULL,
	target  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS symbols_name ON symbols(name);
CREATE INDEX IF NOT EXISTS refs_target ON refs(target);
`

var unitTables = []string{"symbols", "instances", "types", "refs"}

// Index is a handle to an open symbol database.
type Index struct {
	db *sql.DB
}

// Open opens or creates the database at path. ":memory:" is accepted.
func Open(ctx context.Context, path string) (*Index, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open index %s: %w", path, err)
	}
	// A single connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init index %s: %w", path, err)
	}
	return &Index{db: db}, nil
}

func (ix *Index) Close() error {
	return ix.db.Close()
}

// Store records the tables of one unit, replacing whatever was stored for
// the same path before. It returns the new unit ID.
func (ix *Index) Store(ctx context.Context, unit string, tables *symbols.Tables) (uuid.UUID, error) {
	tx, err := ix.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer tx.Rollback()

	if err := deleteUnit(ctx, tx, unit); err != nil {
		return uuid.Nil, err
	}
	id := uuid.New()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO units (id, path, stored_at) VALUES (?, ?, ?)`,
		id.String(), unit, time.Now().Unix()); err != nil {
		return uuid.Nil, fmt.Errorf("store unit %s: %w", unit, err)
	}
	for _, sym := range tables.Symbols.All() {
		if err := storeSymbol(ctx, tx, id, sym); err != nil {
			return uuid.Nil, fmt.Errorf("store symbol %s: %w", sym.Name, err)
		}
	}
	for _, t := range tables.Types.All() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO types (unit_id, name, constructors) VALUES (?, ?, ?)`,
			id.String(), t.Name, strings.Join(t.ConstructorNames(), " ")); err != nil {
			return uuid.Nil, fmt.Errorf("store type %s: %w", t.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func deleteUnit(ctx context.Context, tx *sql.Tx, unit string) error {
	var old string
	err := tx.QueryRowContext(ctx, `SELECT id FROM units WHERE path = ?`, unit).Scan(&old)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}
	for _, table := range unitTables {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE unit_id = ?`, old); err != nil {
			return err
		}
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM units WHERE id = ?`, old)
	return err
}

func storeSymbol(ctx context.Context, tx *sql.Tx, id uuid.UUID, sym *symbols.Symbol) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO symbols (unit_id, name, type, explicit, arity, line, col) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id.String(), sym.Name, sym.Type.String(), sym.Explicit, sym.Arity(), sym.Token.Line, sym.Token.Column); err != nil {
		return err
	}
	seen := make(map[string]bool)
	for i, inst := range sym.Instances {
		args := make([]string, len(inst.Args))
		for j, a := range inst.Args {
			args[j] = a.String()
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO instances (unit_id, symbol, ordinal, args, scope, line) VALUES (?, ?, ?, ?, ?, ?)`,
			id.String(), sym.Name, i, strings.Join(args, " "), strings.Join(inst.Scope.Names(), " "), inst.Token.Line); err != nil {
			return err
		}
		for _, target := range bodyReferences(inst) {
			if seen[target] {
				continue
			}
			seen[target] = true
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO refs (unit_id, symbol, target) VALUES (?, ?, ?)`,
				id.String(), sym.Name, target); err != nil {
				return err
			}
		}
	}
	return nil
}

// bodyReferences lists names an equation refers to, minus its own
// parameters.
func bodyReferences(inst *symbols.Instance) []string {
	var exprs []ast.Expression
	switch b := inst.Body.(type) {
	case *ast.ExpressionBody:
		exprs = append(exprs, b.Expression)
	case *ast.GuardedBody:
		for _, g := range b.Guards {
			exprs = append(exprs, g.Condition, g.Result)
		}
	}
	var out []string
	for _, e := range exprs {
		for _, name := range ast.Identifiers(e) {
			if _, local := inst.Scope.Lookup(name); !local {
				out = append(out, name)
			}
		}
	}
	return out
}
