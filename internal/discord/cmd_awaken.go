package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/exile7/ExileBot_Go/internal/metrics"
)

// AwakenCommand returns the awaken command definition and handler
func AwakenCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "awaken",
		Description: "Simulate hero awakenings",
		Options: []*discordgo.ApplicationCommandOption{
			intOption("times", "Number of times to awaken (1-999)", 1, 999, true),
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		// Simulations are spammy, keep them in the spam channel
		if b.cfg.SpamChannelName != "" && !inChannelNamed(s, i.ChannelID, b.cfg.SpamChannelName) {
			respondEphemeral(s, i, fmt.Sprintf(
				"This command can only be used in the #%s channel.", b.cfg.SpamChannelName))
			return
		}

		if !deferResponse(s, i) {
			return
		}

		pulls := int(getOptions(i)[0].IntValue())
		sim, err := b.Services.Awakening.Simulate(context.Background(), pulls)
		if err != nil {
			slog.Error("Awakening simulation failed", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}
		metrics.AwakeningPulls.WithLabelValues(sim.PoolName).Add(float64(pulls))

		var sb strings.Builder
		fmt.Fprintf(&sb, "You awakened `%d` times with **%s** odds\n\n", sim.Pulls, sim.PoolName)
		for _, oc := range sim.Outcomes {
			fmt.Fprintf(&sb, "- %s x %d → %s retire\n",
				oc.Outcome.Emoji, oc.Count, formatInt(int64(oc.Outcome.Retire*oc.Count)))
		}
		fmt.Fprintf(&sb, "\nCSG spent: `%s`\nRetired amount: `%s`\nReturn valued at: `%.1f%%`\n\nPoints earned for Gala: `%s`",
			formatInt(sim.CrystalsSpent), formatInt(sim.RetireTotal), sim.ReturnPercent(), formatInt(sim.GalaPoints))

		embed := createEmbed("✨ Awakening", sb.String(), 0xe67e22, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// SwitchPoolCommand returns the switch-pool command definition and handler
func SwitchPoolCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	adminPerm := int64(discordgo.PermissionManageServer)

	cmd := &discordgo.ApplicationCommand{
		Name:                     "switch-pool",
		Description:              "Switch the awakening pool (true for normal odds)",
		DefaultMemberPermissions: &adminPerm,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "value",
				Description: "true for the normal pool, false for the buffed pool",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferResponse(s, i) {
			return
		}

		normal := getOptions(i)[0].BoolValue()
		name, err := b.Services.Awakening.SwitchPool(context.Background(), normal)
		if err != nil {
			slog.Error("Failed to switch awakening pool", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		respondText(s, i, fmt.Sprintf("✅ Switched to the **%s** pool.", name))
	}

	return cmd, handler
}

// inChannelNamed reports whether channelID resolves to a channel with the
// given name.
func inChannelNamed(s *discordgo.Session, channelID, name string) bool {
	ch, err := s.State.Channel(channelID)
	if err != nil {
		ch, err = s.Channel(channelID)
		if err != nil {
			return false
		}
	}
	return ch.Name == name
}
