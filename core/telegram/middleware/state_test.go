package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m3rciful/pgstate/core/telegram/state"

	tele "gopkg.in/telebot.v4"
)

// fakeContext implements the small slice of tele.Context the middleware touches.
type fakeContext struct {
	tele.Context
	chat   *tele.Chat
	sender *tele.User
	store  map[string]any
}

func newFakeContext(chatID, userID int64) *fakeContext {
	return &fakeContext{
		chat:   &tele.Chat{ID: chatID},
		sender: &tele.User{ID: userID},
		store:  map[string]any{},
	}
}

func (f *fakeContext) Chat() *tele.Chat   { return f.chat }
func (f *fakeContext) Sender() *tele.User { return f.sender }
func (f *fakeContext) Get(key string) any { return f.store[key] }

func (f *fakeContext) Set(key string, val any) {
	f.store[key] = val
}

func TestKeyOf(t *testing.T) {
	c := newFakeContext(42, 7)
	require.Equal(t, state.StorageKey{ChatID: 42, UserID: 7}, KeyOf(c))
}

func TestKeyOfMissingChatAndSender(t *testing.T) {
	c := &fakeContext{store: map[string]any{}}
	require.Equal(t, state.StorageKey{}, KeyOf(c))
}

func TestStateMiddlewarePassesOnMatch(t *testing.T) {
	store := state.NewMemoryStorage()
	key := state.StorageKey{ChatID: 42, UserID: 7}
	require.NoError(t, store.SetState(context.Background(), key, "awaiting_name"))

	called := false
	handler := State(store, "awaiting_name")(func(c tele.Context) error {
		called = true
		return nil
	})

	require.NoError(t, handler(newFakeContext(42, 7)))
	require.True(t, called)
}

func TestStateMiddlewareSkipsOnMismatch(t *testing.T) {
	store := state.NewMemoryStorage()
	key := state.StorageKey{ChatID: 42, UserID: 7}
	require.NoError(t, store.SetState(context.Background(), key, "awaiting_age"))

	called := false
	handler := State(store, "awaiting_name")(func(c tele.Context) error {
		called = true
		return nil
	})

	require.NoError(t, handler(newFakeContext(42, 7)))
	require.False(t, called)
}

type failingStore struct{}

func (failingStore) GetState(context.Context, state.StorageKey) (state.State, error) {
	return state.StateNone, errors.New("storage unavailable")
}

func TestStateMiddlewareSwallowsLookupError(t *testing.T) {
	called := false
	handler := State(failingStore{}, "awaiting_name")(func(c tele.Context) error {
		called = true
		return nil
	})

	require.NoError(t, handler(newFakeContext(42, 7)))
	require.False(t, called)
}

func TestStateMiddlewareSurfacesLookupError(t *testing.T) {
	called := false
	handler := StateWithOptions(StateOptions{
		Store:    failingStore{},
		Expected: "awaiting_name",
		OnError: func(c tele.Context, err error) error {
			return err
		},
	})(func(c tele.Context) error {
		called = true
		return nil
	})

	err := handler(newFakeContext(42, 7))
	require.ErrorContains(t, err, "storage unavailable")
	require.False(t, called)
}
