// Package medicines loads the medicine, interaction and brand tables
// from CSV files and exposes them as immutable in-memory read models.
// A load failure never aborts startup: the package degrades to a
// built-in sample dataset so the service keeps answering.
package medicines

import (
	"strings"

	"github.com/medivoice/medivoice-api/medicines/entities"
)

// NormalizeKey turns a medicine name into its catalog lookup key.
func NormalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Catalog is the insertion-ordered, key-indexed medicine read model.
// It is built once by the loader and never mutated afterwards; a
// duplicate name overwrites the record but keeps its original position.
type Catalog struct {
	records []entities.Medicine
	index   map[string]int
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		index: make(map[string]int),
	}
}

// Put inserts or overwrites a record under its normalized name.
func (c *Catalog) Put(m entities.Medicine) {
	key := NormalizeKey(m.Name)
	if pos, exists := c.index[key]; exists {
		c.records[pos] = m
		return
	}
	c.index[key] = len(c.records)
	c.records = append(c.records, m)
}

// Get returns the record stored under the given normalized key.
func (c *Catalog) Get(key string) (entities.Medicine, bool) {
	if pos, ok := c.index[key]; ok {
		return c.records[pos], true
	}
	return entities.Medicine{}, false
}

// All returns every record in load order. Callers must not modify
// the returned slice.
func (c *Catalog) All() []entities.Medicine {
	return c.records
}

// Keys returns the lookup keys in load order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.records))
	for i := range c.records {
		keys[i] = NormalizeKey(c.records[i].Name)
	}
	return keys
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

// pairKey identifies an ordered medicine pair. The loader stores both
// orderings of every row so lookup stays O(1) in either direction.
type pairKey struct {
	first, second string
}

// InteractionTable maps medicine pairs to interaction data.
type InteractionTable struct {
	pairs map[pairKey]entities.Interaction
	rows  int
}

// NewInteractionTable creates an empty interaction table.
func NewInteractionTable() *InteractionTable {
	return &InteractionTable{
		pairs: make(map[pairKey]entities.Interaction),
	}
}

// Put stores an interaction under both orderings of the pair.
func (t *InteractionTable) Put(med1, med2 string, in entities.Interaction) {
	a := NormalizeKey(med1)
	b := NormalizeKey(med2)
	t.pairs[pairKey{a, b}] = in
	t.pairs[pairKey{b, a}] = in
	t.rows++
}

// Lookup returns the interaction for the pair, trying both orderings.
func (t *InteractionTable) Lookup(med1, med2 string) (entities.Interaction, bool) {
	a := NormalizeKey(med1)
	b := NormalizeKey(med2)
	if in, ok := t.pairs[pairKey{a, b}]; ok {
		return in, true
	}
	if in, ok := t.pairs[pairKey{b, a}]; ok {
		return in, true
	}
	return entities.Interaction{}, false
}

// Rows returns the number of source rows loaded (not the number of
// stored orderings).
func (t *InteractionTable) Rows() int {
	return t.rows
}

// BrandTable maps a lowercased generic name to its brand entries in
// load order.
type BrandTable struct {
	byGeneric map[string][]entities.Brand
	rows      int
}

// NewBrandTable creates an empty brand table.
func NewBrandTable() *BrandTable {
	return &BrandTable{
		byGeneric: make(map[string][]entities.Brand),
	}
}

// Put appends a brand entry for the generic name.
func (t *BrandTable) Put(genericName string, b entities.Brand) {
	key := NormalizeKey(genericName)
	t.byGeneric[key] = append(t.byGeneric[key], b)
	t.rows++
}

// Get returns the brand entries for a generic name, or nil.
func (t *BrandTable) Get(genericName string) []entities.Brand {
	return t.byGeneric[NormalizeKey(genericName)]
}

// Rows returns the number of brand rows loaded.
func (t *BrandTable) Rows() int {
	return t.rows
}
