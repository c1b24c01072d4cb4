package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	domain "github.com/nuelxcodev/luxe/internal/entity"
)

// Persona is the conversational mode sent as context to the collaborator;
// it changes the system instruction and nothing else.
type Persona string

const (
	PersonaConcierge Persona = "concierge"
	PersonaSeller    Persona = "seller"
	PersonaFriend    Persona = "friend"
)

const (
	chatFallback   = "I'm here to help!"
	searchFallback = "I encountered an error trying to find intelligent recommendations."
	searchDefault  = "I found some great information for you."
)

// Assistant fronts the text-generation collaborator for chat and search.
// Collaborator failure never propagates: replies degrade to fixed fallbacks.
type Assistant struct {
	gen     TextGenerator
	catalog Catalog
	timeout time.Duration
	log     *slog.Logger

	// Cross-sell injection is random by design; the source is injected so
	// tests can seed it.
	mu   sync.Mutex
	rnd  *rand.Rand
	prob float64
}

func NewAssistant(gen TextGenerator, catalog Catalog, timeout time.Duration, suggestionProb float64, log *slog.Logger) *Assistant {
	return &Assistant{
		gen:     gen,
		catalog: catalog,
		timeout: timeout,
		log:     log,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
		prob:    suggestionProb,
	}
}

// WithRand substitutes the randomness source; test hook.
func (a *Assistant) WithRand(r *rand.Rand) *Assistant {
	a.rnd = r
	return a
}

// Chat sends text to the collaborator under the given persona and appends
// both sides to the per-contact thread on the session.
func (a *Assistant) Chat(ctx context.Context, s *Session, contactID string, persona Persona, text string) (domain.ChatMessage, error) {
	contact, ok := a.catalog.ContactByID(contactID)
	if !ok {
		return domain.ChatMessage{}, ErrContactNotFound
	}
	switch persona {
	case PersonaConcierge, PersonaSeller, PersonaFriend:
	default:
		persona = PersonaConcierge
	}

	userMsg := domain.ChatMessage{
		ID:        uuid.NewString(),
		Role:      domain.RoleUser,
		Text:      text,
		Timestamp: time.Now(),
	}
	s.mu.Lock()
	firstName := firstNameOf(s.User.Name)
	s.chats[contactID] = append(s.chats[contactID], userMsg)
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	sys := fmt.Sprintf(
		`You are chatting as %q using the %q persona on LUXE. If friend: be casual and enthusiastic. If seller: professional and product-focused. If concierge: elite and helpful. Current user: %s.`,
		contact.Name, persona, firstName)

	replyText := chatFallback
	res, err := a.gen.Generate(ctx, GenerateRequest{Prompt: text, SystemInstruction: sys})
	if err != nil {
		assistantRequests.WithLabelValues("chat", "fallback").Inc()
		a.log.Warn("assistant_chat_failed", "session", s.ID, "contact", contactID, "err", err)
	} else {
		assistantRequests.WithLabelValues("chat", "ok").Inc()
		if strings.TrimSpace(res.Text) != "" {
			replyText = res.Text
		}
	}

	reply := domain.ChatMessage{
		ID:         uuid.NewString(),
		Role:       domain.RoleModel,
		Text:       replyText,
		Timestamp:  time.Now(),
		Suggestion: a.maybeSuggest(),
	}

	s.mu.Lock()
	s.chats[contactID] = append(s.chats[contactID], reply)
	s.mu.Unlock()
	return reply, nil
}

// maybeSuggest rolls for the cross-sell offer, built from the first
// commission-bearing product in the catalog.
func (a *Assistant) maybeSuggest() *domain.Suggestion {
	a.mu.Lock()
	roll := a.rnd.Float64()
	a.mu.Unlock()
	if roll >= a.prob {
		return nil
	}
	for _, p := range a.catalog.Products() {
		if p.CommissionRate.IsZero() {
			continue
		}
		payout := p.Price.Mul(p.CommissionRate).Round(0)
		return &domain.Suggestion{
			Text:        fmt.Sprintf("By the way, did you know you can earn $%s by sharing the %s with your friends?", payout.String(), p.Name),
			ActionLabel: "Share & Earn",
			ProductID:   p.ID,
		}
	}
	return nil
}

type SearchResult struct {
	Text      string
	Citations []domain.Citation
}

// Search asks the collaborator for shopping advice grounded in web search,
// feeding it the catalog as context.
func (a *Assistant) Search(ctx context.Context, query string) SearchResult {
	names := make([]string, 0)
	for _, p := range a.catalog.Products() {
		names = append(names, p.Name)
	}
	prompt := fmt.Sprintf(
		`I am an expert premium shopper on LUXE. The user is looking for: %q. Provide specific advice and mention if any products from our catalog [%s] fit perfectly.`,
		query, strings.Join(names, ", "))

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	res, err := a.gen.Generate(ctx, GenerateRequest{Prompt: prompt, WithSearch: true})
	if err != nil {
		assistantRequests.WithLabelValues("search", "fallback").Inc()
		a.log.Warn("assistant_search_failed", "err", err)
		return SearchResult{Text: searchFallback}
	}
	assistantRequests.WithLabelValues("search", "ok").Inc()
	if strings.TrimSpace(res.Text) == "" {
		return SearchResult{Text: searchDefault, Citations: res.Citations}
	}
	return SearchResult{Text: res.Text, Citations: res.Citations}
}

func firstNameOf(full string) string {
	if i := strings.IndexByte(full, ' '); i > 0 {
		return full[:i]
	}
	return full
}
