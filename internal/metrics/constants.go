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

// Business metric names
const (
	MetricNameTradesCreated   = "trades_created_total"
	MetricNameTradesDeleted   = "trades_deleted_total"
	MetricNameOffersMade      = "offers_made_total"
	MetricNameOffersWithdrawn = "offers_withdrawn_total"
	MetricNameWinnersChosen   = "winners_chosen_total"
	MetricNameTradesCompleted = "trades_completed_total"
	MetricNameFeedbackLeft    = "feedback_left_total"
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

// Business metric help text
const (
	HelpTextTradesCreated   = "Total number of trades created"
	HelpTextTradesDeleted   = "Total number of trades deleted by their owner"
	HelpTextOffersMade      = "Total number of offers made on trades"
	HelpTextOffersWithdrawn = "Total number of offers withdrawn"
	HelpTextWinnersChosen   = "Total number of trades with a winner chosen"
	HelpTextTradesCompleted = "Total number of trades marked completed"
	HelpTextFeedbackLeft    = "Total number of feedback scores left"
)

// Label names
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelHardcore = "hardcore"
)
