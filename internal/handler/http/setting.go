package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/setting"
	"github.com/cmlabs-hris/attendance-engine/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SettingHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
}

type settingHandlerImpl struct {
	settingService setting.SettingService
}

func NewSettingHandler(settingService setting.SettingService) SettingHandler {
	return &settingHandlerImpl{settingService: settingService}
}

// List implements SettingHandler.
func (h *settingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingService.ListSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, settings)
}

// Upsert implements SettingHandler.
func (h *settingHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Error("Failed to decode setting request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.settingService.UpsertSetting(r.Context(), setting.UpsertSettingRequest{
		Key:   chi.URLParam(r, "key"),
		Value: body.Value,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Setting updated", "key", saved.Key)
	response.SuccessWithMessage(w, "Setting saved", saved)
}
