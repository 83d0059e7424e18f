package setting

import "context"

type SettingService interface {
	// GetSetting returns nil when the key has never been set.
	GetSetting(ctx context.Context, key string) (*string, error)

	// AllowedOfficeIPs returns the parsed office allow-list; empty means unrestricted.
	AllowedOfficeIPs(ctx context.Context) ([]string, error)

	ListSettings(ctx context.Context) ([]SettingResponse, error)
	UpsertSetting(ctx context.Context, req UpsertSettingRequest) (SettingResponse, error)
}
