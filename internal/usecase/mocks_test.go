package usecase

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
	domain "github.com/nuelxcodev/luxe/internal/entity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type mockCatalog struct {
	products []domain.Product
	vendors  []domain.Vendor
	creators []domain.Creator
	contacts []domain.Contact
}

func newMockCatalog() *mockCatalog {
	return &mockCatalog{
		products: []domain.Product{
			{ID: "1", Name: "Stealth Pro", Price: decimal.RequireFromString("299.00"),
				Category: "Electronics", VendorID: "v1", IsTrending: true,
				CommissionRate: decimal.RequireFromString("0.05")},
			{ID: "2", Name: "Silk Scarf", Price: decimal.RequireFromString("5.00"),
				Category: "Fashion", VendorID: "v1"},
			{ID: "3", Name: "Marble Lamp", Price: decimal.RequireFromString("10.00"),
				Category: "Home", VendorID: "v2"},
		},
		vendors:  []domain.Vendor{{ID: "v1", Name: "Aurora Atelier"}, {ID: "v2", Name: "Haus Nordic"}},
		creators: []domain.Creator{{ID: "cr1", Username: "@style_sofia", Name: "Sofia"}},
		contacts: []domain.Contact{
			{ID: "c1", Name: "LUXE Concierge", Type: domain.ContactConcierge},
			{ID: "c2", Name: "Aurora Atelier", Type: domain.ContactSeller},
		},
	}
}

func (m *mockCatalog) Products() []domain.Product { return m.products }

func (m *mockCatalog) ProductByID(id string) (domain.Product, bool) {
	for _, p := range m.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (m *mockCatalog) SearchProducts(query, category string) []domain.Product { return m.products }
func (m *mockCatalog) Categories() []domain.Category                          { return nil }

func (m *mockCatalog) VendorByID(id string) (domain.Vendor, bool) {
	for _, v := range m.vendors {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Vendor{}, false
}

func (m *mockCatalog) Creators() []domain.Creator { return m.creators }

func (m *mockCatalog) CreatorByID(id string) (domain.Creator, bool) {
	for _, c := range m.creators {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Creator{}, false
}

func (m *mockCatalog) Feed() []domain.SocialPost              { return nil }
func (m *mockCatalog) Leaderboard() []domain.LeaderboardEntry { return nil }
func (m *mockCatalog) Contacts() []domain.Contact             { return m.contacts }

func (m *mockCatalog) ContactByID(id string) (domain.Contact, bool) {
	for _, c := range m.contacts {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Contact{}, false
}

func (m *mockCatalog) Notifications() []domain.Notification { return nil }
func (m *mockCatalog) OrderHistory() []domain.Order         { return nil }

func (m *mockCatalog) DemoUser() domain.User {
	return domain.User{
		ID:           "user-1",
		Name:         "Alex Johnson",
		Email:        "alex.johnson@example.com",
		ReferralCode: "LUX-ALEX-2024",
		Balance:      decimal.RequireFromString("145.50"),
		Preferences:  domain.Preferences{EmailNotifications: true, PushNotifications: true},
	}
}

type mockGenerator struct {
	text      string
	citations []domain.Citation
	err       error
	lastReq   GenerateRequest
}

func (m *mockGenerator) Generate(_ context.Context, req GenerateRequest) (GenerateResult, error) {
	m.lastReq = req
	if m.err != nil {
		return GenerateResult{}, m.err
	}
	return GenerateResult{Text: m.text, Citations: m.citations}, nil
}

type mockClipboard struct {
	copied []string
	err    error
}

func (m *mockClipboard) Copy(text string) error {
	if m.err != nil {
		return m.err
	}
	m.copied = append(m.copied, text)
	return nil
}

func newTestSession() *Session {
	cat := newMockCatalog()
	return NewSession(cat.DemoUser(), cat.OrderHistory(), cat.Notifications())
}

// loggedInSession mirrors the post-login state most flows start from.
func loggedInSession() *Session {
	s := newTestSession()
	NewNavigator(newMockCatalog(), testLogger()).Login(s)
	s.DrainNotices()
	return s
}
