// Package speech turns announcement text into WAV audio with the Gemini
// text-to-speech model.
package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultModel  = "gemini-2.5-flash-preview-tts"
	DefaultVoice  = "Kore"

	Instruction = "Read aloud in an accurate, bright, and friendly tone. Please read numbers slowly and clearly for better understanding: "
)

var (
	ErrMissingAPIKey = errors.New("speech API key is not configured")
	ErrRequestFailed = errors.New("speech API request failed")
	ErrNoAudio       = errors.New("speech API returned no audio data")
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	APIKey  string
	BaseURL string
	Model   string
	Voice   string
	HTTP    HTTPClient
}

func NewClient(apiKey, baseURL, model, voice string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	if model == "" {
		model = DefaultModel
	}
	if voice == "" {
		voice = DefaultVoice
	}
	return &Client{
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Model:   model,
		Voice:   voice,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	ResponseModalities []string     `json:"responseModalities"`
	SpeechConfig       speechConfig `json:"speechConfig"`
}

type speechConfig struct {
	VoiceConfig struct {
		PrebuiltVoiceConfig struct {
			VoiceName string `json:"voiceName"`
		} `json:"prebuiltVoiceConfig"`
	} `json:"voiceConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Synthesize returns text spoken as a 24 kHz mono WAV file.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	pcm, err := c.SynthesizePCM(ctx, text)
	if err != nil {
		return nil, err
	}
	return EncodeWAV(pcm, SampleRate, Channels), nil
}

// SynthesizePCM returns the raw 16-bit PCM the model produced.
func (c *Client) SynthesizePCM(ctx context.Context, text string) ([]byte, error) {
	if c.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: Instruction + text}}}},
		GenerationConfig: generationConfig{
			ResponseModalities: []string{"AUDIO"},
		},
	}
	body.GenerationConfig.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName = c.Voice

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s:generateContent", c.BaseURL, c.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		msg := http.StatusText(resp.StatusCode)
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, msg)
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 ||
		out.Candidates[0].Content.Parts[0].InlineData == nil || out.Candidates[0].Content.Parts[0].InlineData.Data == "" {
		return nil, ErrNoAudio
	}

	pcm, err := base64.StdEncoding.DecodeString(out.Candidates[0].Content.Parts[0].InlineData.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoAudio, err)
	}
	return pcm, nil
}
