package setting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/setting"
)

type SettingServiceImpl struct {
	setting.SettingRepository
}

func NewSettingService(settingRepo setting.SettingRepository) setting.SettingService {
	return &SettingServiceImpl{SettingRepository: settingRepo}
}

// GetSetting implements setting.SettingService.
func (s *SettingServiceImpl) GetSetting(ctx context.Context, key string) (*string, error) {
	st, err := s.SettingRepository.Get(ctx, key)
	if err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return &st.Value, nil
}

// AllowedOfficeIPs implements setting.SettingService.
func (s *SettingServiceImpl) AllowedOfficeIPs(ctx context.Context) ([]string, error) {
	value, err := s.GetSetting(ctx, setting.KeyAllowedOfficeIPs)
	if err != nil || value == nil {
		return nil, err
	}

	var ips []string
	for _, entry := range strings.Split(*value, ",") {
		if ip := strings.TrimSpace(entry); ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips, nil
}

// ListSettings implements setting.SettingService.
func (s *SettingServiceImpl) ListSettings(ctx context.Context) ([]setting.SettingResponse, error) {
	settings, err := s.SettingRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	responses := make([]setting.SettingResponse, 0, len(settings))
	for _, st := range settings {
		responses = append(responses, toResponse(st))
	}
	return responses, nil
}

// UpsertSetting implements setting.SettingService.
func (s *SettingServiceImpl) UpsertSetting(ctx context.Context, req setting.UpsertSettingRequest) (setting.SettingResponse, error) {
	req.Key = strings.TrimSpace(req.Key)
	if err := req.Validate(); err != nil {
		return setting.SettingResponse{}, err
	}

	saved, err := s.SettingRepository.Upsert(ctx, setting.Setting{Key: req.Key, Value: req.Value})
	if err != nil {
		return setting.SettingResponse{}, err
	}
	return toResponse(saved), nil
}

func toResponse(st setting.Setting) setting.SettingResponse {
	return setting.SettingResponse{
		Key:       st.Key,
		Value:     st.Value,
		UpdatedAt: st.UpdatedAt.Format(time.RFC3339),
	}
}
