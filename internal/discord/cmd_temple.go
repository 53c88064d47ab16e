package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/exile7/ExileBot_Go/internal/temple"
)

func intOption(name, description string, min, max float64, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: description,
		Required:    required,
		MinValue:    &min,
		MaxValue:    max,
	}
}

// TempleCalcCommand returns the dt-calc command definition and handler
func TempleCalcCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "dt-calc",
		Description: "Compare your resources against a Divine Temple level",
		Options: []*discordgo.ApplicationCommandOption{
			intOption("temple_level", "Goal temple level (1-22)", 1, 22, true),
			intOption("origin", "Origin (D1) heroes (0-16)", 0, 16, false),
			intOption("surge", "Surge (D2) heroes (0-16)", 0, 16, false),
			intOption("chaos", "Chaos (D3) heroes (0-16)", 0, 16, false),
			intOption("core", "Core (D4) heroes (0-16)", 0, 16, false),
			intOption("polystar", "Polystar (D5) heroes (0-16)", 0, 16, false),
			intOption("nirvana", "Nirvana (D6) heroes (0-12)", 0, 12, false),
			intOption("bag_aurora", "Aurora Gems in your bag (0-100)", 0, 100, false),
			intOption("bag_spirit", "Scattered Spiritvein Shards in your bag", 0, 999999, false),
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferResponse(s, i) {
			return
		}

		opts := optionMap(getOptions(i))
		intOf := func(name string) int {
			if opt, ok := opts[name]; ok {
				return int(opt.IntValue())
			}
			return 0
		}

		input := temple.Input{
			GoalLevel: intOf("temple_level"),
			RankCounts: [6]int{
				intOf("origin"), intOf("surge"), intOf("chaos"),
				intOf("core"), intOf("polystar"), intOf("nirvana"),
			},
			BagGems:    int64(intOf("bag_aurora")),
			BagSpirits: int64(intOf("bag_spirit")),
		}

		result, err := temple.Calculate(input)
		if err != nil {
			slog.Error("Temple calculation failed", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "**Temple %d requires** → `%s` 💎 `%s` 🔮\n",
			input.GoalLevel, formatInt(result.Requirement.Gems), formatInt(result.Requirement.Spiritveins))

		if result.UserGems > 0 || result.UserSpirits > 0 {
			fmt.Fprintf(&sb, "\n**You have** → `%s` 💎 `%s` 🔮\n",
				formatInt(result.UserGems), formatInt(result.UserSpirits))

			if result.MissingGems < 0 || result.MissingSpiritveins < 0 {
				sb.WriteString("\n**You exceed** → ")
				if result.MissingGems < 0 {
					fmt.Fprintf(&sb, "`%s` 💎 ", formatInt(-result.MissingGems))
				}
				if result.MissingSpiritveins < 0 {
					fmt.Fprintf(&sb, "`%s` 🔮", formatInt(-result.MissingSpiritveins))
				}
				sb.WriteString("\n")
			}
			if result.MissingGems > 0 || result.MissingSpiritveins > 0 {
				sb.WriteString("\n**You are missing** → ")
				if result.MissingGems > 0 {
					fmt.Fprintf(&sb, "`%s` 💎 ", formatInt(result.MissingGems))
				}
				if result.MissingSpiritveins > 0 {
					fmt.Fprintf(&sb, "`%s` 🔮", formatInt(result.MissingSpiritveins))
				}
				sb.WriteString("\n")
			}
		}

		embed := createEmbed("🏛️ Divine Temple", sb.String(), 0x1abc9c, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
