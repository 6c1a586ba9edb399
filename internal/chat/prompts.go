package chat

import (
	"fmt"
	"strings"
)

// fallbackReply is the fixed assistant turn appended when the completion
// call fails for any reason. The cause is logged, never shown to the user.
const fallbackReply = "I apologize, but I'm having trouble connecting right now. Please try again later."

const (
	greetingPlain    = "Hi! I'm your news assistant. Ask me anything about the current news!"
	greetingEnhanced = "Hi! I'm your news assistant. I can help you understand the news, summarize articles, fact-check claims, and more! What would you like to know?"
)

// TrendingTopics is the fixed shortlist behind the topic shortcut buttons.
var TrendingTopics = []string{"Technology", "Politics", "Environment", "Economy", "Health"}

// The enhanced widget introduced itself with a different adjective; the
// variant flag carries that through along with the greeting and tags.
func systemContext(titles []string, enhanced bool) string {
	persona := "helpful"
	if enhanced {
		persona = "knowledgeable"
	}
	return fmt.Sprintf("You are a %s news assistant. Current headlines: %s", persona, strings.Join(titles, ". "))
}

func summarizeVisible(title string) string {
	return fmt.Sprintf("Summarize this article: %s", title)
}

func summarizePrompt(title, description string) string {
	return fmt.Sprintf("Please provide a concise summary of this article: %s %s", title, description)
}

func factCheckVisible(claim string) string {
	return fmt.Sprintf("Fact check: %s", claim)
}

func factCheckPrompt(claim string) string {
	return fmt.Sprintf("Please fact check this claim and provide sources if possible: %s", claim)
}

func topicMessage(topic string) string {
	return fmt.Sprintf("Tell me about %s news", topic)
}
