package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

const translateEndpoint = "https://translate.googleapis.com/translate_a/single"

// Translator is a pass-through client for the Google Translate web endpoint.
// It holds no state beyond the HTTP client and its bounded timeout.
type Translator struct {
	Endpoint string
	Client   *http.Client
}

func NewTranslator() *Translator {
	return &Translator{
		Endpoint: translateEndpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Translate sends one text for translation with auto-detected source
// language. Any upstream failure, malformed body, or timeout comes back as
// ErrTranslationFailed.
func (t *Translator) Translate(ctx context.Context, text string, targetLang string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto")
	params.Set("tl", targetLang)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}

	resp, err := t.Client.Do(req)
	if err != nil {
		log.Println("translation request failed:", err)
		return "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Println("translation upstream status:", resp.StatusCode)
		return "", fmt.Errorf("%w: upstream status %d", ErrTranslationFailed, resp.StatusCode)
	}

	// The body is a deeply nested array; the translated text sits at [0][0][0].
	var body []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || len(body) == 0 {
		return "", fmt.Errorf("%w: unexpected response body", ErrTranslationFailed)
	}
	var segments [][]json.RawMessage
	if err := json.Unmarshal(body[0], &segments); err != nil || len(segments) == 0 || len(segments[0]) == 0 {
		return "", fmt.Errorf("%w: unexpected response body", ErrTranslationFailed)
	}
	var translated string
	if err := json.Unmarshal(segments[0][0], &translated); err != nil {
		return "", fmt.Errorf("%w: unexpected response body", ErrTranslationFailed)
	}

	return translated, nil
}

// TranslateAll translates a batch best-effort: a failed item becomes nil
// instead of failing the whole batch.
func (t *Translator) TranslateAll(ctx context.Context, texts []string, targetLang string) []*string {
	translations := make([]*string, 0, len(texts))
	for _, text := range texts {
		translated, err := t.Translate(ctx, text, targetLang)
		if err != nil {
			translations = append(translations, nil)
			continue
		}
		s := translated
		translations = append(translations, &s)
	}
	return translations
}
