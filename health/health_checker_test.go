package health

import (
	"testing"
	"time"

	"github.com/medivoice/medivoice-api/medicines"
	"github.com/medivoice/medivoice-api/medicines/entities"
)

// stubStore lets tests pin the catalog size and data age directly.
type stubStore struct {
	catalog     *medicines.Catalog
	lastUpdated time.Time
}

func (s *stubStore) GetCatalog() *medicines.Catalog { return s.catalog }
func (s *stubStore) GetInteractions() *medicines.InteractionTable {
	return medicines.NewInteractionTable()
}
func (s *stubStore) GetBrands() *medicines.BrandTable { return medicines.NewBrandTable() }
func (s *stubStore) GetLastUpdated() time.Time        { return s.lastUpdated }
func (s *stubStore) GetServerStartTime() time.Time    { return time.Now() }
func (s *stubStore) IsUpdating() bool                 { return false }
func (s *stubStore) UpdateData(*medicines.Catalog, *medicines.InteractionTable, *medicines.BrandTable) {
}
func (s *stubStore) BeginUpdate() bool { return true }
func (s *stubStore) EndUpdate()        {}

func populatedCatalog() *medicines.Catalog {
	catalog := medicines.NewCatalog()
	catalog.Put(entities.Medicine{Name: "Paracetamol"})
	return catalog
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		store      *stubStore
		wantStatus string
		wantCode   int
	}{
		{
			name:       "fresh data",
			store:      &stubStore{catalog: populatedCatalog(), lastUpdated: time.Now()},
			wantStatus: StatusHealthy,
			wantCode:   200,
		},
		{
			name:       "stale data still serves",
			store:      &stubStore{catalog: populatedCatalog(), lastUpdated: time.Now().Add(-25 * time.Hour)},
			wantStatus: StatusDegraded,
			wantCode:   200,
		},
		{
			name:       "empty catalog",
			store:      &stubStore{catalog: medicines.NewCatalog(), lastUpdated: time.Now()},
			wantStatus: StatusUnhealthy,
			wantCode:   503,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := NewChecker(tt.store).Evaluate()
			if status != tt.wantStatus || code != tt.wantCode {
				t.Errorf("Evaluate() = (%q, %d), want (%q, %d)", status, code, tt.wantStatus, tt.wantCode)
			}
		})
	}
}

func TestNextUpdate(t *testing.T) {
	checker := NewChecker(&stubStore{catalog: populatedCatalog()})

	next := checker.NextUpdate()
	now := time.Now()

	if !next.After(now) {
		t.Fatalf("NextUpdate() = %s, want a future time", next)
	}
	if next.Sub(now) > 24*time.Hour {
		t.Errorf("NextUpdate() = %s, more than a day away", next)
	}
	if h := next.Hour(); h != 6 && h != 18 {
		t.Errorf("NextUpdate() hour = %d, want 06:00 or 18:00", h)
	}
}
