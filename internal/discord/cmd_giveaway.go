package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/exile7/ExileBot_Go/internal/domain"
	"github.com/exile7/ExileBot_Go/internal/giveaway"
	"github.com/exile7/ExileBot_Go/internal/metrics"
)

// GiveawayChannelName is the channel giveaway announcements are posted in.
const GiveawayChannelName = "giveaway"

// durationChoices maps the offered duration labels to their length.
var durationChoices = map[string]time.Duration{
	"12 hours": 12 * time.Hour,
	"1 day":    24 * time.Hour,
	"2 days":   48 * time.Hour,
	"3 days":   72 * time.Hour,
	"7 days":   168 * time.Hour,
}

// GiveawayCommand returns the giveaway command definition and handler
func GiveawayCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(durationChoices))
	for _, label := range []string{"12 hours", "1 day", "2 days", "3 days", "7 days"} {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: label, Value: label})
	}

	one, three := float64(1), float64(3)

	cmd := &discordgo.ApplicationCommand{
		Name:        "giveaway",
		Description: "Manage giveaways",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "start",
				Description: "Start a giveaway event",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "prize",
						Description: "Detailed description of the giveaway prize",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "duration",
						Description: "Choose the duration of the giveaway",
						Required:    true,
						Choices:     choices,
					},
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "host",
						Description: "Host (mention a server member)",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "winners",
						Description: "Number of winners (max 3)",
						Required:    true,
						MinValue:    &one,
						MaxValue:    three,
					},
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "mention",
						Description: "Mention @everyone?",
						Required:    false,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "message",
						Description: "Custom message to be attached",
						Required:    false,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "end",
				Description: "End the running giveaway now",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "reroll",
				Description: "Draw new winners for an ended giveaway",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "id",
						Description: "Giveaway id (shown when it ends)",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "status",
				Description: "Show the running giveaway",
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !isGiveawayManager(i, b.cfg.GiveawayManagerRole) {
			respondEphemeral(s, i, MsgNotManager)
			return
		}

		sub := getOptions(i)[0]
		switch sub.Name {
		case "start":
			handleGiveawayStart(s, i, b, sub.Options)
		case "end":
			handleGiveawayEnd(s, i, b)
		case "reroll":
			handleGiveawayReroll(s, i, b, sub.Options)
		case "status":
			handleGiveawayStatus(s, i, b)
		}
	}

	return cmd, handler
}

// isGiveawayManager checks for the configured manager role, falling back to
// the Manage Server permission when no role is configured.
func isGiveawayManager(i *discordgo.InteractionCreate, managerRole string) bool {
	if i.Member == nil {
		return false
	}
	if managerRole != "" {
		for _, roleID := range i.Member.Roles {
			if roleID == managerRole {
				return true
			}
		}
	}
	return i.Member.Permissions&discordgo.PermissionManageServer != 0
}

func handleGiveawayStart(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot, options []*discordgo.ApplicationCommandInteractionDataOption) {
	if !deferEphemeral(s, i) {
		return
	}

	opts := optionMap(options)

	duration, ok := durationChoices[opts["duration"].StringValue()]
	if !ok {
		respondError(s, i, "Unknown duration.")
		return
	}

	channel := findTextChannel(s, i.GuildID, GiveawayChannelName)
	if channel == nil {
		respondError(s, i, fmt.Sprintf("The #%s channel does not exist.", GiveawayChannelName))
		return
	}

	host := opts["host"].UserValue(s)
	input := giveaway.StartInput{
		Prize:     opts["prize"].StringValue(),
		HostID:    host.ID,
		HostName:  host.Username,
		Winners:   int(opts["winners"].IntValue()),
		Duration:  duration,
		ChannelID: channel.ID,
	}
	if opt, ok := opts["mention"]; ok {
		input.Mention = opt.BoolValue()
	}
	if opt, ok := opts["message"]; ok {
		input.Message = opt.StringValue()
	}

	ctx := context.Background()
	g, err := b.Services.Giveaway.Start(ctx, input)
	if err != nil {
		slog.Error("Failed to start giveaway", "error", err)
		respondFriendlyError(s, i, err.Error())
		return
	}
	metrics.GiveawaysStarted.Inc()

	content := ""
	if g.Mention {
		content = "@everyone"
	}
	msg, err := s.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Content: content,
		Embeds:  []*discordgo.MessageEmbed{giveawayStartEmbed(g)},
	})
	if err != nil {
		slog.Error("Failed to post giveaway announcement", "giveaway_id", g.ID, "error", err)
		respondError(s, i, MsgGenericError)
		return
	}

	// Entry is by reacting to the announcement
	if err := s.MessageReactionAdd(channel.ID, msg.ID, EntryEmoji); err != nil {
		slog.Error("Failed to add entry reaction", "giveaway_id", g.ID, "error", err)
	}

	if err := b.Services.Giveaway.SetMessageID(ctx, g.ID, channel.ID, msg.ID); err != nil {
		slog.Error("Failed to record giveaway message", "giveaway_id", g.ID, "error", err)
	}
	g.MessageID = msg.ID

	if b.Worker != nil {
		b.Worker.Schedule(g)
	}

	respondText(s, i, fmt.Sprintf("Giveaway started in <#%s>!", channel.ID))
}

func handleGiveawayEnd(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
	if !deferResponse(s, i) {
		return
	}

	ctx := context.Background()
	active, err := b.Services.Giveaway.GetActive(ctx)
	if err != nil {
		slog.Error("Failed to load active giveaway", "error", err)
		respondFriendlyError(s, i, err.Error())
		return
	}
	if active == nil {
		respondText(s, i, "There is no running giveaway.")
		return
	}

	if b.Worker != nil {
		b.Worker.Cancel(active.ID)
	}
	b.ConcludeGiveaway(ctx, active.ID)

	respondText(s, i, fmt.Sprintf("Giveaway ended. Reroll with id `%s` if needed.", active.ID))
}

func handleGiveawayReroll(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot, options []*discordgo.ApplicationCommandInteractionDataOption) {
	if !deferResponse(s, i) {
		return
	}

	id := optionMap(options)["id"].StringValue()
	ctx := context.Background()

	g, err := b.Services.Giveaway.GetByID(ctx, id)
	if err != nil {
		respondFriendlyError(s, i, err.Error())
		return
	}

	var pool []string
	if len(g.Participants) == 0 && g.MessageID != "" {
		pool = harvestReactionUsers(s, g.ChannelID, g.MessageID)
	}

	winners, err := b.Services.Giveaway.RerollWithPool(ctx, id, pool, g.WinnerIDs)
	if err != nil {
		slog.Error("Failed to reroll giveaway", "giveaway_id", id, "error", err)
		respondFriendlyError(s, i, err.Error())
		return
	}
	metrics.GiveawayRerolls.Inc()

	announceWinners(s, g.ChannelID, fmt.Sprintf("%s Reroll! New winners: %s", EntryEmoji, mentionList(winners)))
	updateGiveawayMessage(s, g, winners)

	respondText(s, i, "Reroll complete.")
}

func handleGiveawayStatus(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
	if !deferResponse(s, i) {
		return
	}

	active, err := b.Services.Giveaway.GetActive(context.Background())
	if err != nil {
		respondFriendlyError(s, i, err.Error())
		return
	}
	if active == nil {
		respondText(s, i, "There is no running giveaway.")
		return
	}

	description := fmt.Sprintf("**Prize:** %s\n**Host:** <@%s>\n**Winners:** %d\n**Ends:** <t:%d:R>\n**Entries recorded:** %d",
		active.Prize, active.HostID, active.Winners, active.EndTime.Unix(), len(active.Participants))
	embed := createEmbed(EntryEmoji+" Giveaway Running", description, 0x341a6b, "")
	sendEmbed(s, i, embed)
}

// ConcludeGiveaway ends a giveaway, falling back to the reaction pool when
// no participants were recorded, then announces the winners. It is the
// worker's conclude callback and backs the manual end command.
func (b *Bot) ConcludeGiveaway(ctx context.Context, id string) {
	g, err := b.Services.Giveaway.GetByID(ctx, id)
	if err != nil {
		slog.Error("Failed to load giveaway for conclusion", "giveaway_id", id, "error", err)
		return
	}

	var pool []string
	if len(g.Participants) == 0 && g.MessageID != "" {
		pool = harvestReactionUsers(b.Session, g.ChannelID, g.MessageID)
	}

	winners, err := b.Services.Giveaway.EndWithPool(ctx, id, pool)
	if err != nil {
		slog.Error("Failed to end giveaway", "giveaway_id", id, "error", err)
		return
	}
	metrics.GiveawaysEnded.Inc()

	if len(winners) > 0 {
		announceWinners(b.Session, g.ChannelID,
			fmt.Sprintf("%s Giveaway ended — congratulations: %s", EntryEmoji, mentionList(winners)))
	} else {
		announceWinners(b.Session, g.ChannelID,
			fmt.Sprintf("%s Giveaway ended — not enough entrants, no winners this time.", EntryEmoji))
	}

	updateGiveawayMessage(b.Session, g, winners)
}

func giveawayStartEmbed(g *domain.Giveaway) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       EntryEmoji + " Giveaway Started! " + EntryEmoji,
		Description: fmt.Sprintf("A new giveaway has just started.\nReact with %s now to enter.", EntryEmoji),
		Color:       0x341a6b,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Prize", Value: g.Prize, Inline: false},
			{Name: "Host", Value: "<@" + g.HostID + ">", Inline: true},
			{Name: "Winners", Value: fmt.Sprintf("%d", g.Winners), Inline: true},
			{Name: "Winner(s)", Value: "TBD", Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Ends: " + g.EndTime.UTC().Format("2006-01-02 15:04 UTC"),
		},
	}
	if g.Message != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Message", Value: g.Message, Inline: false,
		})
	}
	return embed
}

// updateGiveawayMessage rewrites the Winner(s) field on the announcement.
func updateGiveawayMessage(s *discordgo.Session, g *domain.Giveaway, winners []string) {
	if g.MessageID == "" {
		return
	}

	embed := giveawayStartEmbed(g)
	embed.Title = EntryEmoji + " Giveaway Ended " + EntryEmoji
	for _, field := range embed.Fields {
		if strings.HasPrefix(strings.ToLower(field.Name), "winner(") {
			if len(winners) > 0 {
				field.Value = mentionList(winners)
			} else {
				field.Value = "No winners"
			}
		}
	}

	if _, err := s.ChannelMessageEditEmbed(g.ChannelID, g.MessageID, embed); err != nil {
		slog.Error("Failed to update giveaway announcement",
			"giveaway_id", g.ID, "error", err)
	}
}

func announceWinners(s *discordgo.Session, channelID, content string) {
	if _, err := s.ChannelMessageSend(channelID, content); err != nil {
		slog.Error("Failed to announce giveaway result", "channel_id", channelID, "error", err)
	}
}

func mentionList(ids []string) string {
	mentions := make([]string, len(ids))
	for idx, id := range ids {
		mentions[idx] = "<@" + id + ">"
	}
	return strings.Join(mentions, ", ")
}

// findTextChannel looks for a guild text channel by name.
func findTextChannel(s *discordgo.Session, guildID, name string) *discordgo.Channel {
	channels, err := s.GuildChannels(guildID)
	if err != nil {
		slog.Error("Failed to list guild channels", "guild_id", guildID, "error", err)
		return nil
	}
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildText && ch.Name == name {
			return ch
		}
	}
	return nil
}
