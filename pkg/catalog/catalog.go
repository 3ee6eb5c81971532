package catalog

import (
	"log/slog"
	"maps"
	"slices"

	dberror "github.com/superhawk610/sqlit/pkg/error"
	"github.com/superhawk610/sqlit/pkg/logging"
	"github.com/superhawk610/sqlit/pkg/table"
)

// CreateResult tells whether CreateTable registered a new table or left an
// existing one in place.
type CreateResult int

const (
	Created CreateResult = iota
	Skipped
)

func (r CreateResult) String() string {
	switch r {
	case Created:
		return "Created"
	case Skipped:
		return "Skipped"
	default:
		return "Unknown"
	}
}

// Catalog maps table names to tables. Names are unique.
//
// A Catalog is not safe for concurrent use on its own; the database facade
// guards it.
type Catalog struct {
	tables map[string]*table.Table
	log    *slog.Logger
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		tables: make(map[string]*table.Table),
		log:    logging.WithComponent("catalog"),
	}
}

// CreateTable registers t under its name. If a table with that name already
// exists, it is left untouched and the call either reports Skipped (when
// ifNotExists is set) or fails with TABLE_ALREADY_EXISTS.
func (c *Catalog) CreateTable(t *table.Table, ifNotExists bool) (CreateResult, error) {
	name := t.Name()

	if c.TableExists(name) {
		if ifNotExists {
			c.log.Info("table exists, skipping create", "table", name)
			return Skipped, nil
		}
		return Skipped, dberror.NewTableAlreadyExists(name)
	}

	c.tables[name] = t
	c.log.Info("table created", "table", name, "columns", len(t.Columns()))
	return Created, nil
}

// GetTable looks up a table by name.
func (c *Catalog) GetTable(name string) (*table.Table, error) {
	t, exists := c.tables[name]
	if !exists {
		return nil, dberror.NewTableNotFound(name)
	}
	return t, nil
}

// TableExists reports whether a table with the given name is registered.
func (c *Catalog) TableExists(name string) bool {
	_, exists := c.tables[name]
	return exists
}

// TableNames returns the registered table names in sorted order.
func (c *Catalog) TableNames() []string {
	return slices.Sorted(maps.Keys(c.tables))
}

// TableCount returns the number of registered tables.
func (c *Catalog) TableCount() int {
	return len(c.tables)
}

// RowCount returns the total number of rows across all tables.
func (c *Catalog) RowCount() int {
	total := 0
	for _, t := range c.tables {
		total += t.NumRows()
	}
	return total
}
