package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Bot metric names
const (
	MetricNameCommandsHandled   = "discord_commands_handled_total"
	MetricNameMessagesProcessed = "discord_messages_processed_total"
	MetricNameXPAwarded         = "leveling_xp_awarded_total"
	MetricNameLevelUps          = "leveling_level_ups_total"
	MetricNameGiveawaysStarted  = "giveaways_started_total"
	MetricNameGiveawaysEnded    = "giveaways_ended_total"
	MetricNameGiveawayRerolls   = "giveaway_rerolls_total"
	MetricNameAwakeningPulls    = "awakening_pulls_total"
	MetricNameStorageErrors     = "storage_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Bot metric help text
const (
	HelpTextCommandsHandled   = "Total number of slash commands handled"
	HelpTextMessagesProcessed = "Total number of guild messages processed for XP"
	HelpTextXPAwarded         = "Total amount of XP awarded"
	HelpTextLevelUps          = "Total number of user level ups"
	HelpTextGiveawaysStarted  = "Total number of giveaways started"
	HelpTextGiveawaysEnded    = "Total number of giveaways concluded"
	HelpTextGiveawayRerolls   = "Total number of giveaway rerolls"
	HelpTextAwakeningPulls    = "Total number of simulated awakening pulls"
	HelpTextStorageErrors     = "Total number of storage failures"
)

// ============================================================================
// Metric Labels
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelCommand = "command"
	LabelPool    = "pool"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}
