package middleware

import (
	"context"

	"github.com/m3rciful/pgstate/core/logger"
	tghelpers "github.com/m3rciful/pgstate/core/telegram/helpers"
	"github.com/m3rciful/pgstate/core/users"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// UserSource combines user lookup with the registration collaborator.
type UserSource interface {
	users.Repository
	GetByID(ctx context.Context, id int64) (*users.User, error)
}

// Register returns a middleware that keeps the users table in sync with the
// sender's profile on every update. Sync failures are logged and never block
// the update.
func Register(repo UserSource) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if repo == nil || sender == nil {
				return next(c)
			}
			ctx := tghelpers.BuildContext(c)

			existing, err := repo.GetByID(ctx, sender.ID)
			if err == nil {
				profile := users.Profile{
					ID:        sender.ID,
					FirstName: sender.FirstName,
					LastName:  sender.LastName,
					Username:  sender.Username,
				}
				err = users.Register(ctx, repo, profile, existing)
			}
			if err != nil {
				logger.TG.LogAttrs(ctx, slog.LevelError, "users.sync_failed",
					slog.String("err", err.Error()),
				)
			}
			return next(c)
		}
	}
}
