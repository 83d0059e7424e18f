package setting

import "time"

// Keys consumed by the service.
const (
	KeyAllowedOfficeIPs = "ALLOWED_OFFICE_IPS"
)

type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
