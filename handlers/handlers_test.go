package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/medivoice/medivoice-api/data"
	"github.com/medivoice/medivoice-api/medicines"
	"github.com/medivoice/medivoice-api/medicines/entities"
)

func testStore() *data.Container {
	catalog := medicines.NewCatalog()
	catalog.Put(entities.Medicine{
		Name:         "Paracetamol",
		GenericName:  "Acetaminophen",
		Class:        "Analgesic",
		Uses:         []string{"Fever", "Mild to moderate pain"},
		DosageAdults: "500-1000mg every 4-6 hours",
		Prescription: "Available over the counter",
		BrandNames:   []string{"Crocin", "Tylenol"},
	})
	catalog.Put(entities.Medicine{
		Name:        "Ibuprofen",
		GenericName: "Ibuprofen",
		Class:       "NSAID",
	})

	interactions := medicines.NewInteractionTable()
	interactions.Put("Paracetamol", "Alcohol", entities.Interaction{
		Severity: "High",
		Effect:   "Increased risk of liver damage",
	})

	brands := medicines.NewBrandTable()
	brands.Put("Acetaminophen", entities.Brand{BrandName: "Crocin", Company: "GSK"})
	brands.Put("Acetaminophen", entities.Brand{BrandName: "Tylenol", Company: "Johnson & Johnson"})

	container := data.NewContainer()
	container.UpdateData(catalog, interactions, brands)
	return container
}

func testRouter(store *data.Container) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/query", Query(store))
	r.Get("/database", ServeAllMedicines(store))
	r.Get("/database/{pageNumber}", ServePagedMedicines(store))
	r.Get("/medicine/{name}", FindMedicine(store))
	r.Get("/interactions/{med1}/{med2}", CheckInteraction(store))
	r.Get("/brands/{medicine}", GetBrands(store))
	r.Get("/health", HealthCheck(store))
	return r
}

func doRequest(t *testing.T, router *chi.Mux, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestQueryEndpoint(t *testing.T) {
	router := testRouter(testStore())

	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantReply string
	}{
		{
			name:      "dosage lookup",
			body:      `{"text":"dosage of paracetamol"}`,
			wantCode:  http.StatusOK,
			wantReply: "Paracetamol - 500-1000mg every 4-6 hours",
		},
		{
			name:      "unknown medicine",
			body:      `{"text":"aspirin dosage"}`,
			wantCode:  http.StatusOK,
			wantReply: "Medicine not found.",
		},
		{
			name:      "wake word",
			body:      `{"text":"hey murf medu"}`,
			wantCode:  http.StatusOK,
			wantReply: "yes tell me",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/query", tt.body)
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d, body %s", rec.Code, tt.wantCode, rec.Body.String())
			}

			var resp struct {
				Reply string `json:"reply"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON response: %v", err)
			}
			if resp.Reply != tt.wantReply {
				t.Errorf("reply = %q, want %q", resp.Reply, tt.wantReply)
			}
		})
	}
}

func TestQueryEndpointClientErrors(t *testing.T) {
	router := testRouter(testStore())

	tests := []struct {
		name string
		body string
	}{
		{"invalid JSON", `{"text":`},
		{"empty text", `{"text":""}`},
		{"whitespace text", `{"text":"   "}`},
		{"dangerous content", `{"text":"<script>alert(1)</script>"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/query", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestServeAllMedicines(t *testing.T) {
	router := testRouter(testStore())

	rec := doRequest(t, router, http.MethodGet, "/database", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var all []entities.Medicine
	if err := json.Unmarshal(rec.Body.Bytes(), &all); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d medicines, want 2", len(all))
	}

	rec = doRequest(t, router, http.MethodGet, "/database?class=NSAID", "")
	var filtered []entities.Medicine
	if err := json.Unmarshal(rec.Body.Bytes(), &filtered); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Name != "Ibuprofen" {
		t.Errorf("class filter returned %v", filtered)
	}
}

func TestServePagedMedicines(t *testing.T) {
	router := testRouter(testStore())

	rec := doRequest(t, router, http.MethodGet, "/database/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var page struct {
		Data       []entities.Medicine `json:"data"`
		Page       int                 `json:"page"`
		TotalItems int                 `json:"totalItems"`
		MaxPage    int                 `json:"maxPage"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if page.Page != 1 || page.TotalItems != 2 || page.MaxPage != 1 || len(page.Data) != 2 {
		t.Errorf("unexpected page payload: %+v", page)
	}

	if rec := doRequest(t, router, http.MethodGet, "/database/0", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("page 0 status = %d, want 400", rec.Code)
	}
	if rec := doRequest(t, router, http.MethodGet, "/database/abc", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric page status = %d, want 400", rec.Code)
	}
	if rec := doRequest(t, router, http.MethodGet, "/database/99", ""); rec.Code != http.StatusNotFound {
		t.Errorf("out-of-range page status = %d, want 404", rec.Code)
	}
}

func TestFindMedicineEndpoint(t *testing.T) {
	router := testRouter(testStore())

	rec := doRequest(t, router, http.MethodGet, "/medicine/crocin", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var results []entities.Medicine
	if err := json.Unmarshal(rec.Body.Bytes(), &results); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Paracetamol" {
		t.Errorf("brand search returned %v", results)
	}

	if rec := doRequest(t, router, http.MethodGet, "/medicine/xyznotreal", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown medicine status = %d, want 404", rec.Code)
	}
}

func TestCheckInteractionEndpoint(t *testing.T) {
	router := testRouter(testStore())

	for _, target := range []string{
		"/interactions/paracetamol/alcohol",
		"/interactions/alcohol/paracetamol",
	} {
		rec := doRequest(t, router, http.MethodGet, target, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d, want 200", target, rec.Code)
		}

		var in entities.Interaction
		if err := json.Unmarshal(rec.Body.Bytes(), &in); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if in.Severity != "High" {
			t.Errorf("%s severity = %q, want \"High\"", target, in.Severity)
		}
	}

	if rec := doRequest(t, router, http.MethodGet, "/interactions/paracetamol/ibuprofen", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown pair status = %d, want 404", rec.Code)
	}
}

func TestGetBrandsEndpoint(t *testing.T) {
	router := testRouter(testStore())

	rec := doRequest(t, router, http.MethodGet, "/brands/paracetamol", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var brands []entities.Brand
	if err := json.Unmarshal(rec.Body.Bytes(), &brands); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(brands) != 2 {
		t.Errorf("got %d brands, want 2", len(brands))
	}

	// No brands is an empty list, never null
	rec = doRequest(t, router, http.MethodGet, "/brands/ibuprofen", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %s, want []", body)
	}
}

func TestHealthCheckEndpoint(t *testing.T) {
	router := testRouter(testStore())

	rec := doRequest(t, router, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %q, want \"healthy\"", resp.Status)
	}
	if count, ok := resp.Data["medicines"].(float64); !ok || count != 2 {
		t.Errorf("medicines count = %v, want 2", resp.Data["medicines"])
	}
}

func TestHealthCheckEmptyCatalog(t *testing.T) {
	router := testRouter(data.NewContainer())

	rec := doRequest(t, router, http.MethodGet, "/health", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Status != "unhealthy" {
		t.Errorf("status = %q, want \"unhealthy\"", resp.Status)
	}
}
