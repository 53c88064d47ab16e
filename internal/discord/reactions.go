package discord

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

// EntryEmoji is the reaction people use to enter a giveaway.
const EntryEmoji = "🎉"

const reactionPageSize = 100

// reactionAdd records an entry when someone reacts to the running giveaway's
// announcement. The harvest at conclusion stays the fallback for entries
// missed while the bot was down.
func (b *Bot) reactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.Emoji.Name != EntryEmoji {
		return
	}
	if r.Member != nil && r.Member.User != nil && r.Member.User.Bot {
		return
	}

	ctx := context.Background()
	active, err := b.Services.Giveaway.GetActive(ctx)
	if err != nil || active == nil || active.MessageID != r.MessageID {
		return
	}

	if err := b.Services.Giveaway.Enter(ctx, active.ID, r.UserID); err != nil &&
		!errors.Is(err, domain.ErrGiveawayEnded) {
		slog.Error("Failed to record giveaway entry",
			"giveaway_id", active.ID, "user_id", r.UserID, "error", err)
	}
}

// harvestReactionUsers collects the ids of everyone who reacted to the
// message with the entry emoji. Bots are skipped; order of first reaction is
// preserved and duplicates removed.
func harvestReactionUsers(s *discordgo.Session, channelID, messageID string) []string {
	var ids []string
	seen := make(map[string]struct{})

	afterID := ""
	for {
		users, err := s.MessageReactions(channelID, messageID, EntryEmoji, reactionPageSize, "", afterID)
		if err != nil {
			slog.Error("Failed to fetch giveaway reactions",
				"channel_id", channelID, "message_id", messageID, "error", err)
			break
		}
		if len(users) == 0 {
			break
		}

		for _, u := range users {
			if u.Bot {
				continue
			}
			if _, dup := seen[u.ID]; dup {
				continue
			}
			seen[u.ID] = struct{}{}
			ids = append(ids, u.ID)
		}

		if len(users) < reactionPageSize {
			break
		}
		afterID = users[len(users)-1].ID
	}

	return ids
}
