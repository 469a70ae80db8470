// Package speech holds the external speech and LLM adapters. Each
// adapter wraps one third-party API behind a narrow contract and
// recovers every failure locally: callers get "no result" back, never
// a crash, and the text core keeps answering without them.
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/medivoice/medivoice-api/interfaces"
	"github.com/medivoice/medivoice-api/logging"
)

const murfDefaultBaseURL = "https://api.murf.ai/v1/speech/generate"

// maxSpeechLength caps the text sent to the TTS service.
const maxSpeechLength = 1000

// Compile-time check to ensure MurfTTS implements Speaker
var _ interfaces.Speaker = (*MurfTTS)(nil)

// MurfTTS generates speech audio through the Murf API.
type MurfTTS struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewMurfTTS creates a Murf adapter. An empty API key is allowed; the
// adapter then reports itself unconfigured on every call.
func NewMurfTTS(apiKey string, timeout time.Duration) *MurfTTS {
	return &MurfTTS{
		apiKey:  apiKey,
		baseURL: murfDefaultBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// murfRequest is the Murf speech generation payload.
type murfRequest struct {
	Text       string  `json:"text"`
	Voice      string  `json:"voice"`
	SampleRate int     `json:"sampleRate"`
	Format     string  `json:"format"`
	Speed      float64 `json:"speed"`
	Pitch      int     `json:"pitch"`
}

// GenerateSpeech converts text to mp3 audio bytes. Text is capped at
// maxSpeechLength characters. Any failure returns a nil payload with
// an error; the caller logs and continues without audio.
func (m *MurfTTS) GenerateSpeech(ctx context.Context, text string, opts interfaces.SpeechOptions) ([]byte, error) {
	if m.apiKey == "" {
		return nil, fmt.Errorf("murf API key not configured")
	}

	if len(text) > maxSpeechLength {
		// Back off to a rune boundary so the payload stays valid UTF-8
		cut := maxSpeechLength
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	voice := opts.VoiceID
	if voice == "" {
		voice = "en-US-1"
	}
	speed := opts.Speed
	if speed == 0 {
		speed = 1.0
	}

	payload, err := json.Marshal(murfRequest{
		Text:       text,
		Voice:      voice,
		SampleRate: 24000,
		Format:     "mp3",
		Speed:      speed,
		Pitch:      opts.Pitch,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal murf request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build murf request: %w", err)
	}
	req.Header.Set("api-key", m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("murf request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn("Failed to close murf response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("murf API error %d: %s", resp.StatusCode, string(body))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read murf audio: %w", err)
	}

	return audio, nil
}
