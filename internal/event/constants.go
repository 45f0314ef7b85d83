package event

// EventSchemaVersion is the current version of the event payload schema
const EventSchemaVersion = "1.0"

// Log message formats
const (
	LogMsgHandlerErrorFormat = "%d handler error(s) for event %s: %v"
)
