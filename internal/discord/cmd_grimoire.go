package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/exile7/ExileBot_Go/internal/grimoire"
)

// GrimoireCalcCommand returns the grim-calc command definition and handler
func GrimoireCalcCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "grim-calc",
		Description: "Calculate Grimoire upgrade costs for either book",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "book",
				Description: "Select the Grimoire book",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Enable", Value: "enable"},
					{Name: "Imprint", Value: "imprint"},
				},
			},
			intOption("goal_lvl", "Target grimoire level (1-150)", 1, 150, true),
			intOption("current_lvl", "Your current grimoire level (1-150)", 1, 150, false),
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferResponse(s, i) {
			return
		}

		opts := optionMap(getOptions(i))
		book, err := grimoire.ParseBook(opts["book"].StringValue())
		if err != nil {
			respondFriendlyError(s, i, err.Error())
			return
		}

		goal := int(opts["goal_lvl"].IntValue())
		current := 0
		if opt, ok := opts["current_lvl"]; ok {
			current = int(opt.IntValue())
		}

		result, err := grimoire.Calculate(book, goal, current)
		if err != nil {
			slog.Error("Grimoire calculation failed", "book", book, "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		span := fmt.Sprintf("→ `%d`", goal)
		if current > 0 {
			span = fmt.Sprintf("`%d → %d`", current, goal)
		}

		bookName := "Grimoire • Enabling Chapter"
		if book == grimoire.BookImprint {
			bookName = "Grimoire • Imprint Chapter"
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "**%s** %s\n\n", bookName, span)
		fmt.Fprintf(&sb, "🟣 Essence: `%s` (%.2f event choices)\n",
			formatInt(result.EssenceCost), result.EssenceChoices)
		if book == grimoire.BookImprint {
			fmt.Fprintf(&sb, "🔵 Imprint: `%s` (%.2f event choices)\n",
				formatInt(result.ImprintCost), result.ImprintChoices)
		}

		embed := createEmbed("📚 Grimoire", sb.String(), 0x8e44ad, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
