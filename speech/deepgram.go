package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/medivoice/medivoice-api/interfaces"
	"github.com/medivoice/medivoice-api/logging"
)

const deepgramDefaultBaseURL = "https://api.deepgram.com/v1/listen"

// Compile-time check to ensure DeepgramASR implements Transcriber
var _ interfaces.Transcriber = (*DeepgramASR)(nil)

// DeepgramASR transcribes audio through the Deepgram API.
type DeepgramASR struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewDeepgramASR creates a Deepgram adapter.
func NewDeepgramASR(apiKey string, timeout time.Duration) *DeepgramASR {
	return &DeepgramASR{
		apiKey:  apiKey,
		baseURL: deepgramDefaultBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// deepgramResponse mirrors the part of the Deepgram payload we read.
type deepgramResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string `json:"transcript"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

// Transcribe converts audio bytes into a best-effort transcript. Any
// failure returns "" with an error, which the caller surfaces as "no
// transcript available".
func (d *DeepgramASR) Transcribe(ctx context.Context, audio []byte, model string) (string, error) {
	if d.apiKey == "" {
		return "", fmt.Errorf("deepgram API key not configured")
	}

	if model == "" {
		model = "nova-2"
	}

	params := url.Values{}
	params.Set("model", model)
	params.Set("language", "en-US")
	params.Set("smart_format", "true")
	params.Set("utterances", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"?"+params.Encode(), bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("failed to build deepgram request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+d.apiKey)
	req.Header.Set("Content-Type", "audio/wav")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("deepgram request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn("Failed to close deepgram response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("deepgram API error %d: %s", resp.StatusCode, string(body))
	}

	var result deepgramResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode deepgram response: %w", err)
	}

	if len(result.Results.Channels) == 0 || len(result.Results.Channels[0].Alternatives) == 0 {
		return "", fmt.Errorf("deepgram returned no transcript")
	}

	return strings.TrimSpace(result.Results.Channels[0].Alternatives[0].Transcript), nil
}
