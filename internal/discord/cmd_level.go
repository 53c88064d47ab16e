package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

// RankCommand returns the rank command definition and handler
func RankCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "rank",
		Description: "Show your level and XP progress",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Member to look up (default: you)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferResponse(s, i) {
			return
		}

		target := getInteractionUser(i)
		if opts := getOptions(i); len(opts) > 0 {
			target = opts[0].UserValue(s)
		}

		info, err := b.Services.Leveling.Progress(context.Background(), target.ID)
		if err != nil {
			if !errors.Is(err, domain.ErrUserNotFound) {
				slog.Error("Failed to look up rank", "user_id", target.ID, "error", err)
			}
			respondFriendlyError(s, i, err.Error())
			return
		}

		var progress string
		if info.XPForNextLevel > 0 {
			progress = fmt.Sprintf("**Next level:** %s / %s XP",
				formatInt(info.XPProgress), formatInt(info.XPForNextLevel))
		} else {
			progress = "**Max level reached**"
		}

		description := fmt.Sprintf("**Level:** %d\n**Total XP:** %s\n%s",
			info.Level, formatInt(info.XP), progress)
		embed := createEmbed(fmt.Sprintf("🏅 %s", info.Username), description, 0x3498db, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// LeaderboardCommand returns the leaderboard command definition and handler
func LeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "leaderboard",
		Description: "Show the top XP earners",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferResponse(s, i) {
			return
		}

		top, err := b.Services.Leveling.TopUsers(context.Background(), 10)
		if err != nil {
			slog.Error("Failed to load leaderboard", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		if len(top) == 0 {
			respondText(s, i, "Nobody has earned XP yet.")
			return
		}

		var sb strings.Builder
		medals := []string{"🥇", "🥈", "🥉"}
		for idx, record := range top {
			rank := fmt.Sprintf("`#%d`", idx+1)
			if idx < len(medals) {
				rank = medals[idx]
			}
			fmt.Fprintf(&sb, "%s **%s** — level %d, %s XP\n",
				rank, record.Username, record.Level, formatInt(record.XP))
		}

		embed := createEmbed("🏆 Leaderboard", sb.String(), 0xf1c40f, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// LevelCostsCommand returns the lvl-costs command definition and handler
func LevelCostsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "lvl-costs",
		Description: "Show the XP required for each level",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferResponse(s, i) {
			return
		}

		costs := b.Services.Leveling.Costs()
		levels := make([]int, 0, len(costs))
		for level := range costs {
			levels = append(levels, level)
		}
		sort.Ints(levels)

		var sb strings.Builder
		for _, level := range levels {
			fmt.Fprintf(&sb, "**%d** → %s XP\n", level, formatInt(costs[level]))
		}
		if sb.Len() == 0 {
			sb.WriteString("No level cost table loaded.")
		}

		embed := createEmbed("📈 Level Costs", sb.String(), 0x9b59b6, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
