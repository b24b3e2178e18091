package middleware

import (
	"context"

	"github.com/m3rciful/pgstate/core/logger"
	tghelpers "github.com/m3rciful/pgstate/core/telegram/helpers"
	"github.com/m3rciful/pgstate/core/telegram/state"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// StateStore is the minimal interface required from a state storage.
type StateStore interface {
	GetState(ctx context.Context, key state.StorageKey) (state.State, error)
}

// KeyOf extracts the conversation key from a telebot context.
func KeyOf(c tele.Context) state.StorageKey {
	var key state.StorageKey
	if chat := c.Chat(); chat != nil {
		key.ChatID = chat.ID
	}
	if sender := c.Sender(); sender != nil {
		key.UserID = sender.ID
	}
	return key
}

// StateOptions configures the state gate middleware.
type StateOptions struct {
	Store    StateStore
	Expected state.State

	// OnError decides what happens when the state lookup itself fails, so a
	// dead storage can be told apart from a state mismatch. Nil keeps the
	// default of logging the failure and dropping the update.
	OnError func(c tele.Context, err error) error
}

// State returns a middleware that passes the update through only when the
// stored conversation state matches the expected one. Lookup failures are
// logged and the update is dropped; use StateWithOptions to surface them.
func State(store StateStore, expected state.State) tele.MiddlewareFunc {
	return StateWithOptions(StateOptions{Store: store, Expected: expected})
}

// StateWithOptions is State with a configurable lookup-failure policy.
func StateWithOptions(opts StateOptions) tele.MiddlewareFunc {
	store, expected := opts.Store, opts.Expected
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			key := KeyOf(c)
			ctx := tghelpers.BuildContext(c)
			current, err := store.GetState(ctx, key)
			if err != nil {
				logger.TG.LogAttrs(ctx, slog.LevelError, "fsm.lookup_failed",
					slog.String("expected", string(expected)),
					slog.String("err", err.Error()),
				)
				if opts.OnError != nil {
					return opts.OnError(c, err)
				}
				return nil
			}
			if current == expected {
				logger.TG.LogAttrs(ctx, slog.LevelDebug, "fsm.match",
					slog.String("state", string(current)),
					slog.String("expected", string(expected)),
				)
				return next(c)
			}
			logger.TG.LogAttrs(ctx, slog.LevelDebug, "fsm.skip",
				slog.String("state", string(current)),
				slog.String("expected", string(expected)),
			)
			// Ignore message if user is in a different state
			return nil
		}
	}
}
