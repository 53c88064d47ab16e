package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/exile7/ExileBot_Go/internal/expedition"
)

// ExpeditionHPCommand returns the se-hp command definition and handler
func ExpeditionHPCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "se-hp",
		Description: "Look up Star Expedition boss HP",
		Options: []*discordgo.ApplicationCommandOption{
			intOption("boss", "Boss stage (1-200)", 1, 200, true),
			intOption("percentage", "Remaining HP percentage (1-100)", 1, 100, false),
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferResponse(s, i) {
			return
		}

		opts := optionMap(getOptions(i))
		stage := int(opts["boss"].IntValue())
		percentage := 100
		if opt, ok := opts["percentage"]; ok {
			percentage = int(opt.IntValue())
		}

		hp, err := expedition.BossHP(stage, percentage)
		if err != nil {
			slog.Error("Boss HP lookup failed", "stage", stage, "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		description := fmt.Sprintf("**Stage %d** at **%d%%**\n\n❤️ `%.4e` remaining",
			stage, percentage, hp)
		embed := createEmbed("⚔️ Star Expedition", description, 0xe74c3c, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
