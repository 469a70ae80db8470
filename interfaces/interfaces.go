// Package interfaces defines the core abstractions of the MediVoice
// API so the data store, loader, scheduler and adapters can be swapped
// for fakes in tests.
package interfaces

import (
	"context"
	"time"

	"github.com/medivoice/medivoice-api/medicines"
)

// DataStore is the contract for the process-wide read model. It gives
// thread-safe access to the loaded tables and atomic swap operations
// for zero-downtime reloads.
type DataStore interface {
	GetCatalog() *medicines.Catalog
	GetInteractions() *medicines.InteractionTable
	GetBrands() *medicines.BrandTable
	GetLastUpdated() time.Time
	GetServerStartTime() time.Time
	IsUpdating() bool

	UpdateData(catalog *medicines.Catalog, interactions *medicines.InteractionTable, brands *medicines.BrandTable)
	BeginUpdate() bool
	EndUpdate()
}

// Loader is the contract for building the read models from the data
// sources. LoadAll recovers every failure internally and never fails.
type Loader interface {
	LoadAll() (*medicines.Catalog, *medicines.InteractionTable, *medicines.BrandTable)
}

// Scheduler manages the initial load gate and the periodic reloads.
type Scheduler interface {
	Start() error
	Stop()
}

// Speaker converts reply text to audio bytes. A nil result with an
// error means no audio is available; callers log and continue.
type Speaker interface {
	GenerateSpeech(ctx context.Context, text string, opts SpeechOptions) ([]byte, error)
}

// SpeechOptions carries voice parameters for text-to-speech calls.
type SpeechOptions struct {
	VoiceID string
	Speed   float64
	Pitch   int
}

// Transcriber converts opaque audio bytes into a transcript. A ""
// result with an error means no transcript is available.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, model string) (string, error)
}

// Assistant generates an enrichment reply for a prompt. Implementations
// must degrade to a rule-based reply instead of failing.
type Assistant interface {
	Generate(ctx context.Context, prompt, systemPrompt string) (reply string, source string)
}
