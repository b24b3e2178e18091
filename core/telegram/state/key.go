package state

import "fmt"

// DefaultKeyBuilder formats keys as "/{chat_id}/{user_id}/".
type DefaultKeyBuilder struct{}

// Build returns the persisted string form of key.
func (DefaultKeyBuilder) Build(key StorageKey) string {
	return fmt.Sprintf("/%d/%d/", key.ChatID, key.UserID)
}
