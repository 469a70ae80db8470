// Package search implements the medicine lookup core: the tiered
// query matcher, the stricter transcript matcher used by the voice
// path, the field extractor and the interaction/brand lookups. All
// operations are pure functions over the loaded read models and are
// safe for concurrent use.
package search

import (
	"strings"

	"github.com/medivoice/medivoice-api/medicines"
	"github.com/medivoice/medivoice-api/medicines/entities"
)

// FindMedicine finds the single best-matching medicine for a free-text
// query. Tiers are tried in strict priority order and the first hit
// wins; within a tier, candidates are visited in catalog load order so
// results are deterministic. Transcripts from the voice front end are
// noisy, so the later tiers deliberately trade precision for recall.
//
// Tiers: exact key, name substring (both directions), generic-name
// substring, brand-name substring. Returns nil when nothing matches;
// that is a normal outcome, not an error.
func FindMedicine(query string, catalog *medicines.Catalog) *entities.Medicine {
	q := medicines.NormalizeKey(query)
	if q == "" {
		return nil
	}

	// Tier 1: exact key match
	if med, ok := catalog.Get(q); ok {
		return &med
	}

	records := catalog.All()

	// Tier 2: substring over names, either direction, first candidate
	// in load order satisfying either test wins
	for i := range records {
		key := medicines.NormalizeKey(records[i].Name)
		if strings.Contains(key, q) || strings.Contains(q, key) {
			return &records[i]
		}
	}

	// Tier 3: substring over generic names
	for i := range records {
		if strings.Contains(strings.ToLower(records[i].GenericName), q) {
			return &records[i]
		}
	}

	// Tier 4: substring over brand names
	for i := range records {
		for _, brand := range records[i].BrandNames {
			if strings.Contains(strings.ToLower(brand), q) {
				return &records[i]
			}
		}
	}

	return nil
}

// FindByTranscript is the stricter matcher used by the voice-trigger
// request path. It only tests containment of the transcript inside a
// medicine name, then falls back to testing each whitespace token of
// the transcript. It is intentionally not interchangeable with
// FindMedicine: the two call sites depend on different precision.
func FindByTranscript(transcript string, catalog *medicines.Catalog) *entities.Medicine {
	t := medicines.NormalizeKey(transcript)
	if t == "" {
		return nil
	}

	records := catalog.All()

	for i := range records {
		if strings.Contains(strings.ToLower(records[i].Name), t) {
			return &records[i]
		}
	}

	// Token fallback: first record in load order whose name contains
	// any individual token of the transcript
	for i := range records {
		name := strings.ToLower(records[i].Name)
		for _, token := range strings.Fields(t) {
			if strings.Contains(name, token) {
				return &records[i]
			}
		}
	}

	return nil
}

// SearchAll returns every medicine whose name, generic name or any
// brand name contains the query, in load order.
func SearchAll(query string, catalog *medicines.Catalog) []entities.Medicine {
	q := medicines.NormalizeKey(query)
	if q == "" {
		return nil
	}

	var results []entities.Medicine

	for _, med := range catalog.All() {
		if strings.Contains(medicines.NormalizeKey(med.Name), q) {
			results = append(results, med)
			continue
		}

		if strings.Contains(strings.ToLower(med.GenericName), q) {
			results = append(results, med)
			continue
		}

		for _, brand := range med.BrandNames {
			if strings.Contains(strings.ToLower(brand), q) {
				results = append(results, med)
				break
			}
		}
	}

	return results
}

// MedicinesByClass returns every medicine whose class contains the
// given class name (case-insensitive), in load order.
func MedicinesByClass(class string, catalog *medicines.Catalog) []entities.Medicine {
	c := strings.ToLower(strings.TrimSpace(class))
	if c == "" {
		return nil
	}

	var results []entities.Medicine
	for _, med := range catalog.All() {
		if strings.Contains(strings.ToLower(med.Class), c) {
			results = append(results, med)
		}
	}

	return results
}
