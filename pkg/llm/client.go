package llm

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Sampling parameters are fixed for every backend; the assistant answers
// short chat turns, not long-form generations.
const (
	completionTemperature = 0.7
	completionMaxTokens   = 150
)

// Message is one prior turn carried into a completion request,
// role-preserved.
type Message struct {
	Role    string
	Content string
}

// Client issues exactly one completion call per Complete invocation: no
// streaming, no retries. The caller decides what to do with a failure.
type Client interface {
	Complete(system string, msgs []Message) (string, error)
}
