// Package duckdb implements a dpyr Engine on top of DuckDB, an embedded columnar
// database. Every DataFrame is backed by its own DuckDB table, created from its
// parent with CREATE TABLE ... AS SELECT, so that each step of a pipe produces a
// new immutable table and row order survives from one step to the next.
package duckdb

import (
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-sif/dpyr"
	"github.com/go-sif/dpyr/logging"
	uuid "github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" database/sql driver
)

// Options configures an Engine
type Options struct {
	Path        string      // The database file. Defaults to "" (an in-memory database).
	Threads     int         // The number of threads DuckDB may use. Defaults to 0 (DuckDB's own default).
	MemoryLimit string      // A DuckDB memory limit such as "2GB". Defaults to "" (DuckDB's own default).
	Logger      *zap.Logger // Receives debug logs of every statement. Defaults to a no-op logger.
}

// Engine is a dpyr.Engine backed by a DuckDB database
type Engine struct {
	db     *sql.DB
	logger *zap.Logger
	lock   sync.Mutex
	tables map[string]bool // tables backing live DataFrames
	stats  dpyr.RuntimeStatistics
}

var _ dpyr.Engine = (*Engine)(nil)

// Open connects to a DuckDB database
func Open(opts *Options) (*Engine, error) {
	if opts == nil {
		opts = &Options{}
	}
	db, err := sql.Open("duckdb", dataSourceName(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to open DuckDB: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to DuckDB: %w", err)
	}
	e := &Engine{
		db:     db,
		logger: logging.OrNop(opts.Logger).Named("duckdb"),
		tables: make(map[string]bool),
	}
	e.logger.Debug("opened engine", zap.String("path", opts.Path))
	return e, nil
}

// dataSourceName encodes Options as a duckdb-go DSN, with settings as query parameters
func dataSourceName(opts *Options) string {
	params := url.Values{}
	if opts.Threads > 0 {
		params.Set("threads", strconv.Itoa(opts.Threads))
	}
	if len(opts.MemoryLimit) > 0 {
		params.Set("memory_limit", opts.MemoryLimit)
	}
	if len(params) == 0 {
		return opts.Path
	}
	return opts.Path + "?" + params.Encode()
}

// Close drops the tables backing every live DataFrame and closes the database
func (e *Engine) Close() error {
	e.lock.Lock()
	tables := make([]string, 0, len(e.tables))
	for table := range e.tables {
		tables = append(tables, table)
	}
	e.tables = make(map[string]bool)
	e.lock.Unlock()

	var multierr *multierror.Error
	for _, table := range tables {
		if err := e.exec("DROP TABLE IF EXISTS " + quoteIdent(table)); err != nil {
			multierr = multierror.Append(multierr, err)
		}
	}
	if err := e.db.Close(); err != nil {
		multierr = multierror.Append(multierr, err)
	}
	return multierr.ErrorOrNil()
}

// NumFrames returns the number of DataFrames currently backed by a table of this Engine
func (e *Engine) NumFrames() int {
	e.lock.Lock()
	defer e.lock.Unlock()
	return len(e.tables)
}

// LastRunStatistics returns statistics about the most recent call to DataFrame.To
// on a DataFrame of this Engine, or nil if there was none
func (e *Engine) LastRunStatistics() dpyr.RuntimeStatistics {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.stats
}

func (e *Engine) setLastRunStatistics(rs dpyr.RuntimeStatistics) {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.stats = rs
}

func (e *Engine) exec(query string, args ...interface{}) error {
	e.logger.Debug("exec", zap.String("sql", query))
	_, err := e.db.Exec(query, args...)
	return err
}

// newTableName generates a unique name for a table backing a DataFrame
func newTableName() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("failed to generate UUID: %v", err)
	}
	return "dpyr_" + strings.ReplaceAll(id.String(), "-", ""), nil
}

// materialize stores the result of a query in a new table and wraps it as a DataFrame
func (e *Engine) materialize(query string) (*dataFrame, error) {
	table, err := newTableName()
	if err != nil {
		return nil, err
	}
	if err := e.exec("CREATE TABLE " + quoteIdent(table) + " AS " + query); err != nil {
		return nil, err
	}
	return e.adopt(table)
}

// adopt registers an existing table as the backing of a new DataFrame
func (e *Engine) adopt(table string) (*dataFrame, error) {
	s, err := e.describe(table)
	if err != nil {
		_ = e.exec("DROP TABLE IF EXISTS " + quoteIdent(table))
		return nil, err
	}
	e.lock.Lock()
	e.tables[table] = true
	e.lock.Unlock()
	return &dataFrame{engine: e, table: table, schema: s}, nil
}

// frame recovers this Engine's representation of a DataFrame
func (e *Engine) frame(df dpyr.DataFrame) (*dataFrame, error) {
	f, ok := df.(*dataFrame)
	if !ok || f.engine != e {
		return nil, errForeignFrame
	}
	if f.isReleased() {
		return nil, releasedFrameError(f.table)
	}
	return f, nil
}

// Release drops the table backing a DataFrame. Releasing a DataFrame twice does nothing.
func (e *Engine) Release(df dpyr.DataFrame) error {
	f, ok := df.(*dataFrame)
	if !ok || f.engine != e {
		return errForeignFrame
	}
	if !f.markReleased() {
		return nil
	}
	e.lock.Lock()
	delete(e.tables, f.table)
	e.lock.Unlock()
	return e.exec("DROP TABLE IF EXISTS " + quoteIdent(f.table))
}
