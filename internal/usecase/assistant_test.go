package usecase

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domain "github.com/nuelxcodev/luxe/internal/entity"
)

func newAssistant(gen TextGenerator, prob float64) *Assistant {
	return NewAssistant(gen, newMockCatalog(), time.Second, prob, testLogger()).
		WithRand(rand.New(rand.NewSource(1)))
}

func TestAssistant_ChatAppendsBothSides(t *testing.T) {
	gen := &mockGenerator{text: "Of course, the Stealth Pro ships tomorrow."}
	a := newAssistant(gen, 0)
	s := loggedInSession()

	reply, err := a.Chat(context.Background(), s, "c2", PersonaSeller, "When does it ship?")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleModel, reply.Role)
	assert.Equal(t, "Of course, the Stealth Pro ships tomorrow.", reply.Text)

	history := s.ChatHistory("c2")
	require.Len(t, history, 2)
	assert.Equal(t, domain.RoleUser, history[0].Role)
	assert.Equal(t, "When does it ship?", history[0].Text)
	assert.Equal(t, reply.ID, history[1].ID)
}

func TestAssistant_PersonaShapesSystemInstruction(t *testing.T) {
	gen := &mockGenerator{text: "hi"}
	a := newAssistant(gen, 0)
	s := loggedInSession()

	_, err := a.Chat(context.Background(), s, "c1", PersonaFriend, "hey")
	require.NoError(t, err)

	assert.Contains(t, gen.lastReq.SystemInstruction, `"friend" persona`)
	assert.Contains(t, gen.lastReq.SystemInstruction, `"LUXE Concierge"`)
	assert.Contains(t, gen.lastReq.SystemInstruction, "Current user: Alex.")
	assert.False(t, gen.lastReq.WithSearch)
}

func TestAssistant_UnknownPersonaDefaultsToConcierge(t *testing.T) {
	gen := &mockGenerator{text: "hi"}
	a := newAssistant(gen, 0)
	s := loggedInSession()

	_, err := a.Chat(context.Background(), s, "c1", Persona("pirate"), "hey")
	require.NoError(t, err)
	assert.Contains(t, gen.lastReq.SystemInstruction, `"concierge" persona`)
}

func TestAssistant_ChatUnknownContact(t *testing.T) {
	a := newAssistant(&mockGenerator{}, 0)
	s := loggedInSession()

	_, err := a.Chat(context.Background(), s, "ghost", PersonaConcierge, "hey")
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestAssistant_ChatFallbackOnFailure(t *testing.T) {
	gen := &mockGenerator{err: errors.New("upstream timeout")}
	a := newAssistant(gen, 0)
	s := loggedInSession()

	reply, err := a.Chat(context.Background(), s, "c1", PersonaConcierge, "hello?")
	require.NoError(t, err, "collaborator failure must not surface as an error")
	assert.Equal(t, chatFallback, reply.Text)
}

func TestAssistant_ChatFallbackOnEmptyText(t *testing.T) {
	gen := &mockGenerator{text: "   "}
	a := newAssistant(gen, 0)
	s := loggedInSession()

	reply, err := a.Chat(context.Background(), s, "c1", PersonaConcierge, "hello?")
	require.NoError(t, err)
	assert.Equal(t, chatFallback, reply.Text)
}

func TestAssistant_SuggestionInjection(t *testing.T) {
	gen := &mockGenerator{text: "sure"}
	s := loggedInSession()

	// prob 1: always attach, built from the commission-bearing product
	always := newAssistant(gen, 1)
	reply, err := always.Chat(context.Background(), s, "c1", PersonaConcierge, "hi")
	require.NoError(t, err)
	require.NotNil(t, reply.Suggestion)
	assert.Equal(t, "1", reply.Suggestion.ProductID)
	assert.Equal(t, "Share & Earn", reply.Suggestion.ActionLabel)
	assert.Contains(t, reply.Suggestion.Text, "Stealth Pro")
	assert.Contains(t, reply.Suggestion.Text, "$15") // 299 * 0.05 rounded

	// prob 0: never
	never := newAssistant(gen, 0)
	reply, err = never.Chat(context.Background(), s, "c1", PersonaConcierge, "hi")
	require.NoError(t, err)
	assert.Nil(t, reply.Suggestion)
}

func TestAssistant_SearchIncludesCatalogAndGrounding(t *testing.T) {
	gen := &mockGenerator{
		text:      "Try the Marble Lamp.",
		citations: []domain.Citation{{Title: "Luxury lighting guide", URI: "https://example.com/guide"}},
	}
	a := newAssistant(gen, 0)

	res := a.Search(context.Background(), "a lamp for my study")
	assert.Equal(t, "Try the Marble Lamp.", res.Text)
	require.Len(t, res.Citations, 1)
	assert.Equal(t, "https://example.com/guide", res.Citations[0].URI)

	assert.True(t, gen.lastReq.WithSearch)
	assert.Contains(t, gen.lastReq.Prompt, "Stealth Pro, Silk Scarf, Marble Lamp")
	assert.Contains(t, gen.lastReq.Prompt, `"a lamp for my study"`)
}

func TestAssistant_SearchFallbackOnFailure(t *testing.T) {
	a := newAssistant(&mockGenerator{err: errors.New("boom")}, 0)

	res := a.Search(context.Background(), "anything")
	assert.Equal(t, searchFallback, res.Text)
	assert.Empty(t, res.Citations)
}

func TestAssistant_SearchDefaultOnEmptyText(t *testing.T) {
	a := newAssistant(&mockGenerator{text: ""}, 0)

	res := a.Search(context.Background(), "anything")
	assert.Equal(t, searchDefault, res.Text)
}
