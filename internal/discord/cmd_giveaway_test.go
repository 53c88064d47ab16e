package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

func TestDurationChoices(t *testing.T) {
	expected := map[string]time.Duration{
		"12 hours": 12 * time.Hour,
		"1 day":    24 * time.Hour,
		"2 days":   48 * time.Hour,
		"3 days":   72 * time.Hour,
		"7 days":   168 * time.Hour,
	}
	assert.Equal(t, expected, durationChoices)
}

func TestGiveawayCommandOffersAllDurations(t *testing.T) {
	cmd, _ := GiveawayCommand()

	var durationOpt *discordgo.ApplicationCommandOption
	for _, sub := range cmd.Options {
		if sub.Name != "start" {
			continue
		}
		for _, opt := range sub.Options {
			if opt.Name == "duration" {
				durationOpt = opt
			}
		}
	}
	require.NotNil(t, durationOpt)
	require.Len(t, durationOpt.Choices, len(durationChoices))

	for _, choice := range durationOpt.Choices {
		_, ok := durationChoices[choice.Value.(string)]
		assert.True(t, ok, "choice %q has no duration mapping", choice.Name)
	}
}

func TestMentionList(t *testing.T) {
	assert.Equal(t, "<@1>", mentionList([]string{"1"}))
	assert.Equal(t, "<@1>, <@2>, <@3>", mentionList([]string{"1", "2", "3"}))
	assert.Equal(t, "", mentionList(nil))
}

func TestIsGiveawayManager(t *testing.T) {
	withRoles := func(perms int64, roles ...string) *discordgo.InteractionCreate {
		return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			Member: &discordgo.Member{Roles: roles, Permissions: perms},
		}}
	}

	t.Run("configured role grants access", func(t *testing.T) {
		assert.True(t, isGiveawayManager(withRoles(0, "111", "222"), "222"))
	})

	t.Run("manage server grants access without role", func(t *testing.T) {
		assert.True(t, isGiveawayManager(withRoles(discordgo.PermissionManageServer), "222"))
	})

	t.Run("plain member denied", func(t *testing.T) {
		assert.False(t, isGiveawayManager(withRoles(0, "111"), "222"))
	})

	t.Run("dm interaction denied", func(t *testing.T) {
		i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}}
		assert.False(t, isGiveawayManager(i, "222"))
	})
}

func TestGiveawayStartEmbed(t *testing.T) {
	ends := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	g := &domain.Giveaway{
		ID:      "abc",
		Prize:   "500 gems",
		HostID:  "42",
		Winners: 2,
		EndTime: ends,
	}

	embed := giveawayStartEmbed(g)

	require.Len(t, embed.Fields, 4)
	assert.Equal(t, "500 gems", embed.Fields[0].Value)
	assert.Equal(t, "<@42>", embed.Fields[1].Value)
	assert.Equal(t, "2", embed.Fields[2].Value)
	assert.Equal(t, "TBD", embed.Fields[3].Value)
	assert.Contains(t, embed.Footer.Text, "2025-06-02 12:00 UTC")

	g.Message = "Good luck everyone"
	withMsg := giveawayStartEmbed(g)
	require.Len(t, withMsg.Fields, 5)
	assert.Equal(t, "Good luck everyone", withMsg.Fields[4].Value)
}
