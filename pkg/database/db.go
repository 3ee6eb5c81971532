package database

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/superhawk610/sqlit/pkg/catalog"
	dberror "github.com/superhawk610/sqlit/pkg/error"
	"github.com/superhawk610/sqlit/pkg/logging"
	"github.com/superhawk610/sqlit/pkg/parser/parser"
	"github.com/superhawk610/sqlit/pkg/parser/statements"
	"github.com/superhawk610/sqlit/pkg/table"
	"github.com/superhawk610/sqlit/pkg/types"
)

// Database represents the main database engine that coordinates all components.
// Mutating statements take the write lock; selects share the read lock.
type Database struct {
	catalog   *catalog.Catalog
	formatter *ResultFormatter
	name      string

	mutex  sync.RWMutex
	stats  *DatabaseStats
	log    *slog.Logger
	closed bool
}

// DatabaseStats tracks query counters
type DatabaseStats struct {
	QueriesExecuted int64
	RowsInserted    int64
	ErrorCount      int64
	mutex           sync.RWMutex
}

// QueryResult represents the result of a query execution
type QueryResult struct {
	Success      bool
	Columns      []string
	Rows         [][]string
	RowsAffected int
	Message      string
}

// DatabaseInfo contains database metadata
type DatabaseInfo struct {
	Name            string
	Tables          []string
	TableCount      int
	RowCount        int
	QueriesExecuted int64
	RowsInserted    int64
	ErrorCount      int64
}

// Open creates an empty in-memory database. The identifier names the
// database; nothing is read from or written to disk.
func Open(identifier string) (*Database, error) {
	name := strings.TrimSpace(identifier)
	if name == "" {
		return nil, dberror.NewConnectionFailure("database identifier cannot be empty", nil)
	}

	db := &Database{
		catalog:   catalog.NewCatalog(),
		formatter: NewResultFormatter(),
		name:      name,
		stats:     &DatabaseStats{},
		log:       logging.WithDatabase(name),
	}
	db.log.Info("database opened")
	return db, nil
}

// Name returns the database identifier.
func (db *Database) Name() string {
	return db.name
}

// ExecuteQuery parses and executes a single statement.
func (db *Database) ExecuteQuery(query string) (QueryResult, error) {
	stmt, err := parser.ParseStatement(query)
	if err != nil {
		db.recordError()
		db.log.Warn("parse failed", "error", err)
		return QueryResult{}, err
	}
	return db.Execute(stmt)
}

// Execute runs an already parsed statement.
func (db *Database) Execute(stmt statements.Statement) (QueryResult, error) {
	result, err := db.execute(stmt)
	if err != nil {
		db.recordError()
		logging.WithStatement(stmt.GetType().String()).Warn("execution failed",
			"database", db.name, "error", err)
		return QueryResult{}, err
	}

	db.recordSuccess()
	log := logging.WithStatement(stmt.GetType().String())
	if stmt.GetType().IsDDL() {
		log.Info("catalog changed", "database", db.name, "message", result.Message)
	} else {
		log.Debug("statement executed", "database", db.name, "rows", result.RowsAffected)
	}
	return result, nil
}

func (db *Database) execute(stmt statements.Statement) (QueryResult, error) {
	switch s := stmt.(type) {
	case *statements.CreateStatement:
		db.mutex.Lock()
		defer db.mutex.Unlock()
		if err := db.checkOpen(); err != nil {
			return QueryResult{}, err
		}
		return db.executeCreate(s)

	case *statements.InsertStatement:
		db.mutex.Lock()
		defer db.mutex.Unlock()
		if err := db.checkOpen(); err != nil {
			return QueryResult{}, err
		}
		return db.executeInsert(s)

	case *statements.SelectStatement:
		db.mutex.RLock()
		defer db.mutex.RUnlock()
		if err := db.checkOpen(); err != nil {
			return QueryResult{}, err
		}
		return db.executeSelect(s)

	default:
		return QueryResult{}, fmt.Errorf("unsupported statement type: %s", stmt.GetType())
	}
}

func (db *Database) executeCreate(stmt *statements.CreateStatement) (QueryResult, error) {
	if err := stmt.Validate(); err != nil {
		return QueryResult{}, dberror.NewInvalidQuery(err.Error(), err)
	}

	// a parsed statement may be executed more than once, so each execution
	// registers its own empty table
	t := table.NewTable(stmt.TableName(), stmt.Table.Schema())
	res, err := db.catalog.CreateTable(t, stmt.IfNotExists)
	if err != nil {
		return QueryResult{}, err
	}
	return db.formatter.FormatCreate(stmt.TableName(), res), nil
}

func (db *Database) executeSelect(stmt *statements.SelectStatement) (QueryResult, error) {
	if err := stmt.Validate(); err != nil {
		return QueryResult{}, dberror.NewInvalidQuery(err.Error(), err)
	}

	t, err := db.catalog.GetTable(stmt.TableName)
	if err != nil {
		return QueryResult{}, err
	}

	var result *table.Result
	if stmt.Fields.IsAll() {
		result = t.SelectAll()
	} else {
		result = t.Select(stmt.Fields.Names())
	}
	if stmt.Distinct {
		result = result.Distinct()
	}
	return db.formatter.FormatSelect(result), nil
}

func (db *Database) executeInsert(stmt *statements.InsertStatement) (QueryResult, error) {
	if err := stmt.Validate(); err != nil {
		return QueryResult{}, dberror.NewInvalidQuery(err.Error(), err)
	}

	t, err := db.catalog.GetTable(stmt.TableName)
	if err != nil {
		return QueryResult{}, err
	}

	for _, col := range stmt.Columns {
		if !t.Schema().HasColumn(col) {
			return QueryResult{}, dberror.NewInvalidInsert(
				fmt.Sprintf("table `%s` has no column `%s`", stmt.TableName, col))
		}
	}

	inserted := 0
	for _, row := range stmt.Rows() {
		if err := t.Insert(row); err != nil {
			return QueryResult{}, fmt.Errorf("failed to insert row %d: %w", inserted+1, err)
		}
		inserted++
	}

	db.stats.mutex.Lock()
	db.stats.RowsInserted += int64(inserted)
	db.stats.mutex.Unlock()

	return db.formatter.FormatInsert(inserted), nil
}

// CreateTable registers a table built outside the parser.
func (db *Database) CreateTable(t *table.Table, ifNotExists bool) (catalog.CreateResult, error) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	if err := db.checkOpen(); err != nil {
		return catalog.Skipped, err
	}
	return db.catalog.CreateTable(t, ifNotExists)
}

// Insert appends one row to the named table.
func (db *Database) Insert(tableName string, values map[string]types.Field) error {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	if err := db.checkOpen(); err != nil {
		return err
	}

	t, err := db.catalog.GetTable(tableName)
	if err != nil {
		return err
	}
	if err := t.Insert(values); err != nil {
		return err
	}

	db.stats.mutex.Lock()
	db.stats.RowsInserted++
	db.stats.mutex.Unlock()
	return nil
}

// Select projects the named table onto the requested columns.
func (db *Database) Select(tableName string, names []string) (*table.Result, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	if err := db.checkOpen(); err != nil {
		return nil, err
	}

	t, err := db.catalog.GetTable(tableName)
	if err != nil {
		return nil, err
	}
	return t.Select(names), nil
}

// GetTables returns a list of all tables in the database
func (db *Database) GetTables() ([]string, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	if err := db.checkOpen(); err != nil {
		return nil, err
	}
	return db.catalog.TableNames(), nil
}

// GetTableSchema returns the CREATE TABLE rendering of the named table.
func (db *Database) GetTableSchema(tableName string) (string, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	if err := db.checkOpen(); err != nil {
		return "", err
	}

	t, err := db.catalog.GetTable(tableName)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

// GetStatistics returns current database statistics
func (db *Database) GetStatistics() DatabaseInfo {
	db.mutex.RLock()
	tables := db.catalog.TableNames()
	rows := db.catalog.RowCount()
	db.mutex.RUnlock()

	db.stats.mutex.RLock()
	defer db.stats.mutex.RUnlock()

	return DatabaseInfo{
		Name:            db.name,
		Tables:          tables,
		TableCount:      len(tables),
		RowCount:        rows,
		QueriesExecuted: db.stats.QueriesExecuted,
		RowsInserted:    db.stats.RowsInserted,
		ErrorCount:      db.stats.ErrorCount,
	}
}

// Close releases the database. Later calls fail with CONNECTION_FAILURE.
func (db *Database) Close() error {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	if db.closed {
		return nil
	}
	db.closed = true
	db.log.Info("database closed", "tables", db.catalog.TableCount())
	return nil
}

func (db *Database) checkOpen() error {
	if db.closed {
		return dberror.NewConnectionFailure(fmt.Sprintf("database `%s` is closed", db.name), nil)
	}
	return nil
}

// recordError updates error statistics
func (db *Database) recordError() {
	db.stats.mutex.Lock()
	db.stats.ErrorCount++
	db.stats.mutex.Unlock()
}

// recordSuccess updates success statistics
func (db *Database) recordSuccess() {
	db.stats.mutex.Lock()
	db.stats.QueriesExecuted++
	db.stats.mutex.Unlock()
}
