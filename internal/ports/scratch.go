package ports

import "context"

// Scratch keys kept in local storage by the dashboard
const (
	ScratchKeyUserID   = "weatherUserId"
	ScratchKeyLocation = "weatherLocation"
	ScratchKeyAPIKey   = "weatherApiKey"
)

// ScratchStore is the local key/value storage of the dashboard device
type ScratchStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
