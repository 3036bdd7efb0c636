package handlers

import (
	"net/http"

	"softkom/utils"

	"github.com/redis/go-redis/v9"
)

type translateRequest struct {
	Text       string   `json:"text"`
	Texts      []string `json:"texts"`
	TargetLang string   `json:"target_lang"`
}

// TranslateHandler forwards text to the translation upstream. A batch
// degrades per-item (failed entries come back null); a single text surfaces
// the failure as a 500. No store transaction is held across the call.
func TranslateHandler(w http.ResponseWriter, r *http.Request, redisClient *redis.Client, translator *utils.Translator) {
	if _, err := utils.AuthorizeRequest(r, redisClient); err != nil {
		errorJSON(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var in translateRequest
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	if len(in.Texts) > 0 && in.TargetLang != "" {
		translations := translator.TranslateAll(r.Context(), in.Texts, in.TargetLang)
		writeJSON(w, http.StatusOK, map[string]any{"translations": translations})
		return
	}

	if in.Text != "" && in.TargetLang != "" {
		translated, err := translator.Translate(r.Context(), in.Text, in.TargetLang)
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, "Translation failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"translated": translated})
		return
	}

	errorJSON(w, http.StatusBadRequest, "Missing text(s) or target language")
}
