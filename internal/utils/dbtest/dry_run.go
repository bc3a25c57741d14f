// Package dbtest opens a gorm session against the postgres dialect that
// builds SQL without sending it, so repository queries can be checked
// without a database.
package dbtest

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var errNoDatabase = errors.New("dbtest: no database behind a dry run")

// Statement is one statement gorm built.
type Statement struct {
	SQL      string
	Vars     []any
	Preloads []string
}

type Recorder struct {
	mu         sync.Mutex
	statements []Statement
	begins     int
	commits    int
	rollbacks  int
}

func (r *Recorder) record(tx *gorm.DB) {
	stmt := Statement{
		SQL:  tx.Statement.SQL.String(),
		Vars: append([]any(nil), tx.Statement.Vars...),
	}
	for name := range tx.Statement.Preloads {
		stmt.Preloads = append(stmt.Preloads, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.statements = append(r.statements, stmt)
}

func (r *Recorder) Statements() []Statement {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Statement(nil), r.statements...)
}

// Find returns the first statement whose SQL contains fragment.
func (r *Recorder) Find(fragment string) (Statement, bool) {
	for _, stmt := range r.Statements() {
		if strings.Contains(stmt.SQL, fragment) {
			return stmt, true
		}
	}
	return Statement{}, false
}

// Transactions reports how many transactions were begun, committed and
// rolled back.
func (r *Recorder) Transactions() (begun, committed, rolledBack int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.begins, r.commits, r.rollbacks
}

// DryRun returns a postgres-dialect gorm.DB in dry-run mode and the recorder
// every built statement is appended to.
func DryRun(t testing.TB) (*gorm.DB, *Recorder) {
	t.Helper()

	rec := &Recorder{}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: &pool{rec: rec}}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	callbacks := db.Callback()
	require.NoError(t, callbacks.Create().After("gorm:create").Register("dbtest:record", rec.record))
	require.NoError(t, callbacks.Query().After("gorm:query").Register("dbtest:record", rec.record))
	require.NoError(t, callbacks.Update().After("gorm:update").Register("dbtest:record", rec.record))
	require.NoError(t, callbacks.Delete().After("gorm:delete").Register("dbtest:record", rec.record))

	return db, rec
}

// conn satisfies gorm.ConnPool; a dry run never reaches it.
type conn struct{}

func (conn) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	return nil, errNoDatabase
}

func (conn) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, errNoDatabase
}

func (conn) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, errNoDatabase
}

func (conn) QueryRowContext(context.Context, string, ...any) *sql.Row {
	return nil
}

type pool struct {
	conn
	rec *Recorder
}

func (p *pool) BeginTx(context.Context, *sql.TxOptions) (gorm.ConnPool, error) {
	p.rec.mu.Lock()
	p.rec.begins++
	p.rec.mu.Unlock()
	return &tx{rec: p.rec}, nil
}

type tx struct {
	conn
	rec *Recorder
}

func (t *tx) Commit() error {
	t.rec.mu.Lock()
	t.rec.commits++
	t.rec.mu.Unlock()
	return nil
}

func (t *tx) Rollback() error {
	t.rec.mu.Lock()
	t.rec.rollbacks++
	t.rec.mu.Unlock()
	return nil
}
