package relay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/insighteer/relaybot/internal/channel"
	"github.com/insighteer/relaybot/internal/telemetry"
)

// DailyMotivation returns the job body for the daily announcement: pick
// one phrase uniformly at random and post it to the admin chat. Errors
// are returned to the scheduler, which logs them and keeps the next
// firing intact.
func DailyMotivation(sender channel.Sender, adminChatID int64, phrases []string) func(context.Context) error {
	return func(ctx context.Context) error {
		if len(phrases) == 0 {
			return errors.New("no motivational phrases configured")
		}
		phrase := phrases[rand.IntN(len(phrases))]
		text := fmt.Sprintf("<b>%s</b>\n\n%s", motivationHeader, phrase)

		if _, err := sender.SendText(ctx, adminChatID, text, &channel.SendOptions{ParseHTML: true}); err != nil {
			return fmt.Errorf("post motivation: %w", err)
		}
		telemetry.CountDailyPost()
		slog.Info("daily motivation posted")
		return nil
	}
}
