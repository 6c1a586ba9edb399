package chat

import (
	"errors"
	"log/slog"
	"strings"

	"newschat/internal/model"
	"newschat/pkg/llm"
)

var (
	ErrEmptyMessage    = errors.New("empty message")
	ErrSessionBusy     = errors.New("session busy")
	ErrSessionNotFound = errors.New("session not found")
	ErrNoArticle       = errors.New("no such article")
	ErrUnknownTopic    = errors.New("unknown topic")
)

// Headlines is the read side of the headline store the assistant draws its
// context from. The list is only ever read here, never mutated.
type Headlines interface {
	Titles() []string
	Snapshot() ([]model.Article, string, bool)
}

// Service owns the chat request/response lifecycle: compose a prompt with
// the current headlines as context, issue exactly one completion call, append
// the result (or the fallback) as an assistant turn.
type Service struct {
	store     *Store
	llm       llm.Client
	headlines Headlines
	enhanced  bool
}

func NewService(store *Store, llmClient llm.Client, headlines Headlines, enhanced bool) *Service {
	return &Service{
		store:     store,
		llm:       llmClient,
		headlines: headlines,
		enhanced:  enhanced,
	}
}

// CreateSession seeds a new transcript with the assistant greeting.
func (s *Service) CreateSession() SessionView {
	greeting := model.ChatTurn{Role: model.RoleAssistant, Content: greetingPlain}
	if s.enhanced {
		greeting.Content = greetingEnhanced
		greeting.Actions = []string{model.ActionSummarize, model.ActionTrending, model.ActionFactCheck}
	}

	return s.store.create(greeting).view()
}

func (s *Service) Session(id string) (SessionView, error) {
	sess, ok := s.store.get(id)
	if !ok {
		return SessionView{}, ErrSessionNotFound
	}
	return sess.view(), nil
}

// Ask is the plain submission path. Whitespace-only input is a no-op: no
// turn is appended and no call is made. This is the only path checking the
// busy flag; the derived operations below still set it but do not check it,
// matching the advisory guard the UI had.
func (s *Service) Ask(id, text string) (model.ChatTurn, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.ChatTurn{}, ErrEmptyMessage
	}

	sess, ok := s.store.get(id)
	if !ok {
		return model.ChatTurn{}, ErrSessionNotFound
	}

	return s.exchange(sess, text, text, true)
}

// Summarize asks for a summary of the article at index in the current list.
// A synthetic user turn naming the article is appended before the call.
func (s *Service) Summarize(id string, index int) (model.ChatTurn, error) {
	sess, ok := s.store.get(id)
	if !ok {
		return model.ChatTurn{}, ErrSessionNotFound
	}

	articles, _, _ := s.headlines.Snapshot()
	if index < 0 || index >= len(articles) {
		return model.ChatTurn{}, ErrNoArticle
	}
	article := articles[index]

	return s.exchange(sess, summarizeVisible(article.Title), summarizePrompt(article.Title, article.Description), false)
}

// FactCheck asks the assistant to check a claim and cite sources.
func (s *Service) FactCheck(id, claim string) (model.ChatTurn, error) {
	claim = strings.TrimSpace(claim)
	if claim == "" {
		return model.ChatTurn{}, ErrEmptyMessage
	}

	sess, ok := s.store.get(id)
	if !ok {
		return model.ChatTurn{}, ErrSessionNotFound
	}

	return s.exchange(sess, factCheckVisible(claim), factCheckPrompt(claim), false)
}

// Topic handles the trending-topic shortcut buttons. Only topics on the
// fixed shortlist are accepted.
func (s *Service) Topic(id, topic string) (model.ChatTurn, error) {
	onList := false
	for _, t := range TrendingTopics {
		if t == topic {
			onList = true
			break
		}
	}
	if !onList {
		return model.ChatTurn{}, ErrUnknownTopic
	}

	sess, ok := s.store.get(id)
	if !ok {
		return model.ChatTurn{}, ErrSessionNotFound
	}

	text := topicMessage(topic)
	return s.exchange(sess, text, text, false)
}

// exchange runs one full turn: append the visible user turn, set busy, issue
// the completion call, append exactly one assistant turn, clear busy. Turns
// land in completion order; the busy flag is only consulted on gated paths,
// so two derived calls can overlap and interleave their replies. That is the
// known defect of the original widget, kept as-is.
func (s *Service) exchange(sess *session, visible, outbound string, gated bool) (model.ChatTurn, error) {
	sess.mu.Lock()
	if gated && sess.busy {
		sess.mu.Unlock()
		return model.ChatTurn{}, ErrSessionBusy
	}

	sess.turns = append(sess.turns, model.ChatTurn{Role: model.RoleUser, Content: visible})
	sess.busy = true

	// prior transcript only; the new user turn goes out as `outbound`,
	// which may differ from the visible text on derived paths
	msgs := make([]llm.Message, 0, len(sess.turns))
	for _, t := range sess.turns[:len(sess.turns)-1] {
		msgs = append(msgs, llm.Message{Role: t.Role, Content: t.Content})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: outbound})
	sess.mu.Unlock()

	system := systemContext(s.headlines.Titles(), s.enhanced)

	reply, err := s.llm.Complete(system, msgs)

	turn := model.ChatTurn{Role: model.RoleAssistant}
	if err != nil {
		slog.Error("error from completion backend", "session", sess.id, "error", err)
		turn.Content = fallbackReply
	} else {
		turn.Content = reply
		if s.enhanced {
			turn.Actions = []string{model.ActionSummarize, model.ActionFactCheck}
		}
	}

	sess.mu.Lock()
	sess.turns = append(sess.turns, turn)
	sess.busy = false
	sess.mu.Unlock()

	return turn, nil
}
