package setting

import "github.com/cmlabs-hris/attendance-engine/internal/pkg/validator"

type UpsertSettingRequest struct {
	Key   string `json:"key" validate:"required,max=100"`
	Value string `json:"value" validate:"max=4000"`
}

func (r *UpsertSettingRequest) Validate() error {
	return validator.Struct(r)
}

type SettingResponse struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updatedAt"`
}
