package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/exile7/ExileBot_Go/internal/dice"
)

// DiceCommand returns the dice command definition and handler
func DiceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "dice",
		Description: "Roll a die",
		Options: []*discordgo.ApplicationCommandOption{
			intOption("sides", "Number of sides (default: 6)", 2, 1000, false),
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		sides := dice.DefaultSides
		if opts := getOptions(i); len(opts) > 0 {
			sides = int(opts[0].IntValue())
		}

		value, err := dice.Roll(b.rnd, sides)
		if err != nil {
			respondEphemeral(s, i, formatFriendlyError(err.Error()))
			return
		}

		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("🎲 You rolled a **%d** (d%d)", value, sides),
			},
		}); err != nil {
			slog.Error("Failed to respond to dice roll", "error", err)
		}
	}

	return cmd, handler
}
