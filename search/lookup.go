package search

import (
	"github.com/medivoice/medivoice-api/medicines"
	"github.com/medivoice/medivoice-api/medicines/entities"
)

// CheckInteraction looks up the interaction between two medicines.
// Identifiers are normalized and both orderings are tried, so the
// lookup is symmetric. Returns nil when the pair is unknown.
func CheckInteraction(med1, med2 string, table *medicines.InteractionTable) *entities.Interaction {
	if in, ok := table.Lookup(med1, med2); ok {
		return &in
	}
	return nil
}

// GetBrands resolves a medicine via the tiered matcher, then returns
// the brand entries for its generic name. An unmatched medicine or a
// medicine without brand entries yields an empty sequence.
func GetBrands(query string, catalog *medicines.Catalog, brands *medicines.BrandTable) []entities.Brand {
	med := FindMedicine(query, catalog)
	if med == nil {
		return nil
	}
	return brands.Get(med.GenericName)
}
