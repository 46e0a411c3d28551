package crc

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultTableCacheSize is the number of tables kept by NewTableCache when
// given a non-positive size.
const DefaultTableCacheSize = 16

type tableKey struct {
	poly  uint32
	order BitOrder
}

// TableCache memoizes lookup tables by (polynomial, bit order) so engines
// with the same configuration share one table. It is safe for concurrent use.
type TableCache struct {
	tables *lru.Cache[tableKey, *Table]
}

// NewTableCache returns a cache holding at most size tables.
func NewTableCache(size int) (*TableCache, error) {
	if size <= 0 {
		size = DefaultTableCacheSize
	}

	tables, err := lru.New[tableKey, *Table](size)
	if err != nil {
		return nil, err
	}
	return &TableCache{tables: tables}, nil
}

// Get returns the table for poly and order, building it on a miss. Two
// goroutines missing at once may both build it; the tables are identical.
func (c *TableCache) Get(poly uint32, order BitOrder) *Table {
	key := tableKey{poly: poly, order: order}
	if t, ok := c.tables.Get(key); ok {
		return t
	}

	t := BuildTable(poly, order)
	c.tables.Add(key, t)
	return t
}

// Len returns the number of cached tables.
func (c *TableCache) Len() int {
	return c.tables.Len()
}
