package discord

// Friendly message constants for Discord responses
const (
	// Leveling
	MsgUserNotFound  = "👤 **User Not Found**\nThey haven't earned any XP yet."
	MsgLevelNotFound = "📖 **No Data For That Level**\nCheck the level range and try again."

	// Giveaways
	MsgGiveawayNotFound  = "🎁 **Giveaway Not Found**\nThat giveaway doesn't exist anymore."
	MsgGiveawayActive    = "🎁 **Giveaway Running**\nFinish the current giveaway before starting another."
	MsgGiveawayEnded     = "🎁 **Giveaway Over**\nThat giveaway has already ended."
	MsgNotEnoughEntrants = "🎁 **Not Enough Entrants**\nThere aren't enough eligible people left to draw from."
	MsgNotManager        = "🔒 **No Permission**\nYou need the giveaway manager role for that."

	// Calculators
	MsgStageNotFound = "⚔️ **No Data For That Stage**\nBoss stages go from 1 to 200."

	MsgGenericError = "❌ Something went wrong."
)
