package worker

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for giveaway worker operations
const (
	LogMsgFailedToCheckActiveGiveawayOnStartup = "Failed to check active giveaway on startup"
	LogMsgSchedulingGiveawayConclusion         = "Scheduling giveaway conclusion"
	LogMsgConcludingScheduledGiveaway          = "Concluding scheduled giveaway"
	LogMsgFailedToConcludeGiveaway             = "Failed to conclude giveaway"
)
