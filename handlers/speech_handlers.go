package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/medivoice/medivoice-api/interfaces"
	"github.com/medivoice/medivoice-api/logging"
	"github.com/medivoice/medivoice-api/validation"
)

// speakRequest is the body accepted by POST /speak.
type speakRequest struct {
	Text    string  `json:"text"`
	VoiceID string  `json:"voice_id"`
	Speed   float64 `json:"speed"`
	Pitch   int     `json:"pitch"`
}

// Speak converts reply text to audio through the TTS adapter. Adapter
// failure is non-fatal: the client gets a 502 and continues without
// audio.
func Speak(tts interfaces.Speaker, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req speakRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		if strings.TrimSpace(req.Text) == "" {
			RespondWithError(w, http.StatusBadRequest, "No text provided")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		audio, err := tts.GenerateSpeech(ctx, req.Text, interfaces.SpeechOptions{
			VoiceID: req.VoiceID,
			Speed:   req.Speed,
			Pitch:   req.Pitch,
		})
		if err != nil {
			logging.Warn("Speech synthesis failed", "error", err)
			RespondWithError(w, http.StatusBadGateway, "speech synthesis unavailable")
			return
		}

		w.Header().Set("Content-Type", "audio/mpeg")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(audio); err != nil {
			logging.Error("Failed to write audio response", "error", err)
		}
	}
}

// transcribeResponse is the body returned by POST /transcribe.
type transcribeResponse struct {
	Transcript string `json:"transcript"`
}

// Transcribe converts opaque audio bytes into a transcript through the
// ASR adapter. Failure surfaces as "no transcript available".
func Transcribe(asr interfaces.Transcriber, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		audio, err := io.ReadAll(r.Body)
		if err != nil {
			RespondWithError(w, http.StatusBadRequest, "Failed to read audio body")
			return
		}

		if len(audio) == 0 {
			RespondWithError(w, http.StatusBadRequest, "No audio provided")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		transcript, err := asr.Transcribe(ctx, audio, r.URL.Query().Get("model"))
		if err != nil {
			logging.Warn("Transcription failed", "error", err)
			RespondWithError(w, http.StatusBadGateway, "no transcript available")
			return
		}

		RespondWithJSON(w, r, http.StatusOK, transcribeResponse{Transcript: transcript})
	}
}

// assistantRequest is the body accepted by POST /assistant.
type assistantRequest struct {
	Prompt       string `json:"prompt"`
	SystemPrompt string `json:"system_prompt"`
}

// assistantResponse reports the reply and whether it came from the LLM
// or the rule-based fallback.
type assistantResponse struct {
	Reply  string `json:"reply"`
	Source string `json:"source"`
}

// Assistant generates an enrichment reply. The adapter degrades to the
// rule table internally, so this endpoint never returns a gateway
// error for LLM failures.
func Assistant(assistant interfaces.Assistant, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req assistantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		if strings.TrimSpace(req.Prompt) == "" {
			RespondWithError(w, http.StatusBadRequest, "No prompt provided")
			return
		}

		if err := validation.ValidateQueryText(req.Prompt); err != nil {
			RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		reply, source := assistant.Generate(ctx, req.Prompt, req.SystemPrompt)
		RespondWithJSON(w, r, http.StatusOK, assistantResponse{Reply: reply, Source: source})
	}
}
