package entities

// Medicine represents one entry of the medicine catalog. The catalog
// lookup key is the lowercased, trimmed Name; all multi-value fields
// are parsed from ";"-delimited CSV columns.
type Medicine struct {
	Name              string   `json:"name"`
	GenericName       string   `json:"generic_name"`
	Class             string   `json:"class"`
	Uses              []string `json:"uses"`
	DosageAdults      string   `json:"dosage_adults"`
	DosageChildren    string   `json:"dosage_children"`
	Prescription      string   `json:"prescription"`
	SideEffects       []string `json:"side_effects"`
	Contraindications []string `json:"contraindications"`
	Interactions      []string `json:"interactions"`
	Pregnancy         string   `json:"pregnancy"`
	Storage           string   `json:"storage"`
	Mechanism         string   `json:"mechanism"`
	Onset             string   `json:"onset"`
	Duration          string   `json:"duration"`
	BrandNames        []string `json:"brand_names"`
}
