// Package data provides the thread-safe container holding the loaded
// medicine read models. Tables are swapped atomically on reload, so
// readers never see a partially built catalog and no locking is needed
// on the query path.
package data

import (
	"sync/atomic"
	"time"

	"github.com/medivoice/medivoice-api/interfaces"
	"github.com/medivoice/medivoice-api/logging"
	"github.com/medivoice/medivoice-api/medicines"
)

// Compile-time check to ensure Container implements DataStore
var _ interfaces.DataStore = (*Container)(nil)

// Container holds the catalog, interaction and brand tables behind
// atomic pointers for zero-downtime swaps.
type Container struct {
	catalog         atomic.Value // *medicines.Catalog
	interactions    atomic.Value // *medicines.InteractionTable
	brands          atomic.Value // *medicines.BrandTable
	lastUpdated     atomic.Value // time.Time
	updating        atomic.Bool
	serverStartTime atomic.Value // time.Time
}

// NewContainer creates a container with empty tables.
func NewContainer() *Container {
	c := &Container{}
	c.catalog.Store(medicines.NewCatalog())
	c.interactions.Store(medicines.NewInteractionTable())
	c.brands.Store(medicines.NewBrandTable())
	c.lastUpdated.Store(time.Time{})
	c.serverStartTime.Store(time.Now())
	return c
}

// GetCatalog returns the current medicine catalog.
func (c *Container) GetCatalog() *medicines.Catalog {
	if v := c.catalog.Load(); v != nil {
		if catalog, ok := v.(*medicines.Catalog); ok {
			return catalog
		}
	}

	logging.Warn("Catalog is empty or invalid")
	return medicines.NewCatalog()
}

// GetInteractions returns the current interaction table.
func (c *Container) GetInteractions() *medicines.InteractionTable {
	if v := c.interactions.Load(); v != nil {
		if table, ok := v.(*medicines.InteractionTable); ok {
			return table
		}
	}

	logging.Warn("Interaction table is empty or invalid")
	return medicines.NewInteractionTable()
}

// GetBrands returns the current brand table.
func (c *Container) GetBrands() *medicines.BrandTable {
	if v := c.brands.Load(); v != nil {
		if table, ok := v.(*medicines.BrandTable); ok {
			return table
		}
	}

	logging.Warn("Brand table is empty or invalid")
	return medicines.NewBrandTable()
}

// GetLastUpdated returns the time of the last successful load.
func (c *Container) GetLastUpdated() time.Time {
	if v := c.lastUpdated.Load(); v != nil {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}

	logging.Warn("Could not get the last updated value")
	return time.Time{}
}

// GetServerStartTime returns when the container was created.
func (c *Container) GetServerStartTime() time.Time {
	if v := c.serverStartTime.Load(); v != nil {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Time{}
}

// IsUpdating reports whether a reload is in progress.
func (c *Container) IsUpdating() bool {
	return c.updating.Load()
}

// UpdateData atomically swaps in freshly loaded tables.
func (c *Container) UpdateData(catalog *medicines.Catalog, interactions *medicines.InteractionTable, brands *medicines.BrandTable) {
	c.catalog.Store(catalog)
	c.interactions.Store(interactions)
	c.brands.Store(brands)
	c.lastUpdated.Store(time.Now())
}

// BeginUpdate marks a reload as started. Returns false when another
// reload is already running.
func (c *Container) BeginUpdate() bool {
	return c.updating.CompareAndSwap(false, true)
}

// EndUpdate marks the reload as finished.
func (c *Container) EndUpdate() {
	c.updating.Store(false)
}
