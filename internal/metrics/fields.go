package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod = "method"
	AttrPath   = "path"
	AttrStatus = "status"
	AttrQuery  = "query"
	AttrBadge  = "badge"
	AttrState  = "state"
)
