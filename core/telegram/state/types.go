package state

import "context"

// State identifies a finite-state-machine step used in conversations.
type State string

// StateNone indicates there is no active conversation for the key.
const StateNone State = ""

// StorageKey identifies one conversation's persisted state.
type StorageKey struct {
	ChatID int64
	UserID int64
}

// KeyBuilder maps a StorageKey to the string form it is persisted under.
// Build must be deterministic and collision-free for distinct keys.
type KeyBuilder interface {
	Build(key StorageKey) string
}

// Storage persists state labels and scratch data per conversation key.
// Implementations are not required to support concurrent calls against the
// same instance; callers serialize access or use one instance per worker.
type Storage interface {
	SetState(ctx context.Context, key StorageKey, st State) error
	GetState(ctx context.Context, key StorageKey) (State, error)
	SetData(ctx context.Context, key StorageKey, data map[string]any) error
	GetData(ctx context.Context, key StorageKey) (map[string]any, error)
	Close() error
}
