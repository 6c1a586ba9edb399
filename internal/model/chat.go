package model

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const (
	ActionSummarize = "summarize"
	ActionFactCheck = "factcheck"
	ActionTrending  = "trending"
)

// ChatTurn is one message in a session transcript. Turns are append-only:
// once added they are never edited or removed, and insertion order is the
// only ordering guarantee.
type ChatTurn struct {
	Role    string
	Content string
	Actions []string
}
