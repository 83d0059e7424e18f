package setting

import "context"

type SettingRepository interface {
	// Get returns ErrSettingNotFound when the key is absent.
	Get(ctx context.Context, key string) (Setting, error)
	List(ctx context.Context) ([]Setting, error)
	Upsert(ctx context.Context, s Setting) (Setting, error)
}
