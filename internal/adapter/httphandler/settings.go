package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/savora-app/savora/internal/core/domain"
	"github.com/savora-app/savora/internal/core/port"
)

// GET /v1/settings (200 OK)
// PUT /v1/settings (204 No content, 400 Bad request)
// GET /v1/onboarding, PUT /v1/onboarding {"completed"}
// POST /v1/reset (204 No content)

type SettingsHandler struct {
	settings port.SettingsManager
	resetter port.AppResetter
}

func RegisterSettings(
	mux *http.ServeMux,
	settings port.SettingsManager,
	resetter port.AppResetter,
) {
	h := SettingsHandler{settings, resetter}
	mux.HandleFunc("GET /v1/settings", h.GetSettings)
	mux.HandleFunc("PUT /v1/settings", h.PutSettings)
	mux.HandleFunc("GET /v1/onboarding", h.GetOnboarding)
	mux.HandleFunc("PUT /v1/onboarding", h.PutOnboarding)
	mux.HandleFunc("POST /v1/reset", h.PostReset)
}

func (h SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	const op = "SettingsHandler.GetSettings"
	log := slog.With("op", op)

	writeJSON(w, log, toSettings(h.settings.Settings(r.Context())))
}

func (h SettingsHandler) PutSettings(w http.ResponseWriter, r *http.Request) {
	const op = "SettingsHandler.PutSettings"
	log := slog.With("op", op)

	var req UserSettings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	settings, err := req.toDomain()
	if err != nil {
		http.Error(w, "unknown category", http.StatusBadRequest)
		return
	}

	if err := h.settings.UpdateSettings(r.Context(), settings); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			http.Error(w, "invalid settings", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to update settings", http.StatusInternalServerError)
		log.Error("failed to update settings", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h SettingsHandler) GetOnboarding(w http.ResponseWriter, r *http.Request) {
	const op = "SettingsHandler.GetOnboarding"
	log := slog.With("op", op)

	writeJSON(w, log, map[string]bool{
		"completed": h.settings.CompletedOnboarding(r.Context()),
	})
}

func (h SettingsHandler) PutOnboarding(w http.ResponseWriter, r *http.Request) {
	const op = "SettingsHandler.PutOnboarding"
	log := slog.With("op", op)

	var req struct {
		Completed bool `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	err := h.settings.SetCompletedOnboarding(r.Context(), req.Completed)
	if err != nil {
		http.Error(
			w, "failed to update onboarding flag",
			http.StatusInternalServerError,
		)
		log.Error("failed to set onboarding flag", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h SettingsHandler) PostReset(w http.ResponseWriter, r *http.Request) {
	const op = "SettingsHandler.PostReset"
	log := slog.With("op", op)

	if err := h.resetter.ResetApp(r.Context()); err != nil {
		http.Error(w, "failed to reset", http.StatusInternalServerError)
		log.Error("failed to reset application state", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
