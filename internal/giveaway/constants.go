package giveaway

// Log messages
const (
	LogMsgGiveawayStarted   = "Giveaway started"
	LogMsgGiveawayEnded     = "Giveaway ended"
	LogMsgGiveawayRerolled  = "Giveaway rerolled"
	LogMsgSweepEndedOverdue = "Sweep ended overdue giveaway"
	LogMsgSweepDeleted      = "Sweep deleted expired giveaways"
)
