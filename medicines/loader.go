package medicines

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/medivoice/medivoice-api/logging"
	"github.com/medivoice/medivoice-api/medicines/entities"
)

// ErrMalformedRecord indicates a row missing a mandatory column. The
// loader treats it as fatal for that file and falls back to the
// built-in dataset instead of serving a partial catalog.
var ErrMalformedRecord = errors.New("malformed record")

// File names expected under the data directory.
const (
	medicinesFile    = "medicines.csv"
	interactionsFile = "interactions.csv"
	brandsFile       = "brands.csv"
)

// Loader reads the three CSV sources from a data directory.
type Loader struct {
	DataDir string
}

// NewLoader creates a loader rooted at dataDir.
func NewLoader(dataDir string) *Loader {
	return &Loader{DataDir: dataDir}
}

// LoadAll loads every table. Errors are recovered: the medicine and
// interaction tables degrade to the built-in samples, the brand table
// to an empty table. LoadAll never fails.
func (l *Loader) LoadAll() (*Catalog, *InteractionTable, *BrandTable) {
	catalog, err := l.loadMedicines()
	if err != nil {
		logging.Warn("Falling back to sample medicine data", "error", err)
		catalog = SampleCatalog()
	}

	interactions, err := l.loadInteractions()
	if err != nil {
		logging.Warn("Falling back to sample interaction data", "error", err)
		interactions = SampleInteractions()
	}

	brands, err := l.loadBrands()
	if err != nil {
		logging.Warn("No brand data loaded", "error", err)
		brands = NewBrandTable()
	}

	return catalog, interactions, brands
}

// loadMedicines parses medicines.csv into a catalog.
func (l *Loader) loadMedicines() (*Catalog, error) {
	rows, cols, err := l.readTable(medicinesFile)
	if err != nil {
		return nil, err
	}

	catalog := NewCatalog()

	for i, row := range rows {
		record, err := parseMedicineRow(row, cols)
		if err != nil {
			// Header is line 1, data starts at line 2
			return nil, fmt.Errorf("%s line %d: %w", medicinesFile, i+2, err)
		}
		catalog.Put(record)
	}

	logging.Info("Loaded medicines from CSV", "count", catalog.Len())
	return catalog, nil
}

// parseMedicineRow turns one CSV row into a Medicine, applying the
// documented defaults for every missing optional column.
func parseMedicineRow(row []string, cols map[string]int) (entities.Medicine, error) {
	name := strings.TrimSpace(field(row, cols, "name"))
	if name == "" {
		return entities.Medicine{}, fmt.Errorf("missing medicine name: %w", ErrMalformedRecord)
	}

	return entities.Medicine{
		Name:              name,
		GenericName:       fieldOrDefault(row, cols, "generic_name", name),
		Class:             fieldOrDefault(row, cols, "class", "Unknown"),
		Uses:              splitList(field(row, cols, "uses")),
		DosageAdults:      fieldOrDefault(row, cols, "dosage_adults", "Not specified"),
		DosageChildren:    fieldOrDefault(row, cols, "dosage_children", "Not specified"),
		Prescription:      strings.TrimSpace(field(row, cols, "prescription")),
		SideEffects:       splitList(field(row, cols, "side_effects")),
		Contraindications: splitList(field(row, cols, "contraindications")),
		Interactions:      splitList(field(row, cols, "interactions")),
		Pregnancy:         fieldOrDefault(row, cols, "pregnancy", "Not specified"),
		Storage:           fieldOrDefault(row, cols, "storage", "Room temperature"),
		Mechanism:         fieldOrDefault(row, cols, "mechanism", "Not specified"),
		Onset:             fieldOrDefault(row, cols, "onset", "Not specified"),
		Duration:          fieldOrDefault(row, cols, "duration", "Not specified"),
		BrandNames:        splitList(field(row, cols, "brand_names")),
	}, nil
}

// loadInteractions parses interactions.csv, storing both orderings of
// every pair so lookup is symmetric.
func (l *Loader) loadInteractions() (*InteractionTable, error) {
	rows, cols, err := l.readTable(interactionsFile)
	if err != nil {
		return nil, err
	}

	table := NewInteractionTable()

	for i, row := range rows {
		med1 := strings.TrimSpace(field(row, cols, "medicine1"))
		med2 := strings.TrimSpace(field(row, cols, "medicine2"))
		if med1 == "" || med2 == "" {
			return nil, fmt.Errorf("%s line %d: missing medicine pair: %w", interactionsFile, i+2, ErrMalformedRecord)
		}

		table.Put(med1, med2, entities.Interaction{
			Severity:       fieldOrDefault(row, cols, "severity", "Unknown"),
			Effect:         fieldOrDefault(row, cols, "effect", "Interaction present"),
			Recommendation: fieldOrDefault(row, cols, "recommendation", "Consult doctor"),
			Mechanism:      fieldOrDefault(row, cols, "mechanism", "Not specified"),
		})
	}

	logging.Info("Loaded interactions from CSV", "count", table.Rows())
	return table, nil
}

// loadBrands parses brands.csv into the generic-name keyed brand table.
func (l *Loader) loadBrands() (*BrandTable, error) {
	rows, cols, err := l.readTable(brandsFile)
	if err != nil {
		return nil, err
	}

	table := NewBrandTable()

	for i, row := range rows {
		generic := strings.TrimSpace(field(row, cols, "generic_name"))
		brand := strings.TrimSpace(field(row, cols, "brand_name"))
		if generic == "" || brand == "" {
			return nil, fmt.Errorf("%s line %d: missing brand columns: %w", brandsFile, i+2, ErrMalformedRecord)
		}

		table.Put(generic, entities.Brand{
			BrandName:  brand,
			Company:    fieldOrDefault(row, cols, "company", "Unknown"),
			Form:       fieldOrDefault(row, cols, "form", "Tablet"),
			Strength:   strings.TrimSpace(field(row, cols, "strength")),
			PriceRange: fieldOrDefault(row, cols, "price_range", "Medium"),
		})
	}

	logging.Info("Loaded brand entries from CSV", "count", table.Rows())
	return table, nil
}

// readTable reads a CSV file and returns its data rows plus a header
// column index. Column names are matched lowercased and trimmed.
func (l *Loader) readTable(name string) ([][]string, map[string]int, error) {
	path := filepath.Join(l.DataDir, name)

	if _, err := os.Stat(path); err != nil {
		return nil, nil, fmt.Errorf("%s not found: %w", path, err)
	}

	raw, err := readFileDecoded(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(records) == 0 {
		// Empty-but-well-formed source: no rows, no error
		return nil, map[string]int{}, nil
	}

	cols := make(map[string]int, len(records[0]))
	for i, header := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(header))] = i
	}

	return records[1:], cols, nil
}

// field returns the raw value of a named column, or "" when the column
// is absent from the header or the row is short.
func field(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// fieldOrDefault returns the trimmed column value, or def when the
// column is absent or empty.
func fieldOrDefault(row []string, cols map[string]int, name, def string) string {
	v := strings.TrimSpace(field(row, cols, name))
	if v == "" {
		return def
	}
	return v
}

// splitList splits a ";"-delimited column into trimmed, non-empty
// segments, preserving order.
func splitList(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}

	parts := strings.Split(v, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
