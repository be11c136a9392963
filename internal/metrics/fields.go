package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrRoute    = "route"
	AttrMutation = "mutation"
	AttrOutcome  = "outcome"
)

// Outcome attribute values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
