package usecase

import (
	"context"

	domain "github.com/nuelxcodev/luxe/internal/entity"
)

// Catalog is the read-only mock data source supplied in full at startup.
// Implementations may return empty collections; callers treat that as valid.
type Catalog interface {
	Products() []domain.Product
	ProductByID(id string) (domain.Product, bool)
	SearchProducts(query, category string) []domain.Product
	Categories() []domain.Category
	VendorByID(id string) (domain.Vendor, bool)
	Creators() []domain.Creator
	CreatorByID(id string) (domain.Creator, bool)
	Feed() []domain.SocialPost
	Leaderboard() []domain.LeaderboardEntry
	Contacts() []domain.Contact
	ContactByID(id string) (domain.Contact, bool)
	Notifications() []domain.Notification
	OrderHistory() []domain.Order
	DemoUser() domain.User
}

// GenerateRequest carries a free-text prompt plus optional structured context
// for the text-generation collaborator.
type GenerateRequest struct {
	Prompt            string
	SystemInstruction string
	WithSearch        bool
}

type GenerateResult struct {
	Text      string
	Citations []domain.Citation
}

// TextGenerator is the external text-completion collaborator. Callers must
// tolerate failure: any error degrades to a fallback message, never to a
// user-visible fault.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error)
}

// Clipboard copies a string to the system clipboard. Failure is non-fatal.
type Clipboard interface {
	Copy(text string) error
}

// SessionRepo holds live app sessions. State is volatile on purpose: losing
// the process loses every cart, matching the no-persistence contract.
type SessionRepo interface {
	Put(s *Session)
	Get(id string) (*Session, bool)
	Delete(id string)
}
