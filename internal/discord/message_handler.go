package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/exile7/ExileBot_Go/internal/metrics"
)

// messageCreate awards XP for guild messages. Bots never earn XP and the
// spam channel is exempt so calculator sessions do not inflate levels.
func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	if b.cfg.SpamChannelName != "" && inChannelNamed(s, m.ChannelID, b.cfg.SpamChannelName) {
		return
	}

	ctx := context.Background()
	metrics.MessagesProcessed.Inc()

	level, err := b.Services.Leveling.CurrentLevel(ctx, m.Author.ID)
	if err != nil {
		slog.Error("Failed to look up user level", "user_id", m.Author.ID, "error", err)
		return
	}

	var roleIDs []string
	if m.Member != nil {
		roleIDs = m.Member.Roles
	}

	xp, breakdown := b.Services.Leveling.ComputeMessageXP(roleIDs, m.ChannelID, level)
	if xp <= 0 {
		return
	}

	result, err := b.Services.Leveling.AwardXP(ctx, m.Author.ID, m.Author.Username, xp)
	if err != nil {
		slog.Error("Failed to award xp",
			"user_id", m.Author.ID, "xp", xp, "error", err)
		return
	}
	metrics.XPAwarded.Add(float64(xp))

	slog.Debug("Awarded message xp",
		"user_id", m.Author.ID, "xp", xp,
		"base", breakdown.BaseXP, "subtotal", breakdown.Subtotal, "total", breakdown.Total)

	if result.LeveledUp {
		metrics.LevelUps.Inc()
		b.announceLevelUp(s, m, result.NewLevel)
	}
}

func (b *Bot) announceLevelUp(s *discordgo.Session, m *discordgo.MessageCreate, newLevel int) {
	channelID := m.ChannelID
	if b.cfg.LevelChannelName != "" {
		if ch := findTextChannel(s, m.GuildID, b.cfg.LevelChannelName); ch != nil {
			channelID = ch.ID
		}
	}

	content := fmt.Sprintf("🎊 Congratulations <@%s>, you reached level **%d**!", m.Author.ID, newLevel)
	if _, err := s.ChannelMessageSend(channelID, content); err != nil {
		slog.Error("Failed to announce level up",
			"user_id", m.Author.ID, "level", newLevel, "error", err)
	}
}
