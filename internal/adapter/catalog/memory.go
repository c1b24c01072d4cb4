package catalog

import (
	"sort"
	"strings"

	domain "github.com/nuelxcodev/luxe/internal/entity"
	"github.com/nuelxcodev/luxe/internal/usecase"
)

// Store is the read-only in-memory catalog, supplied in full at startup.
// Collections may legitimately be empty; lookups report presence.
type Store struct {
	products      []domain.Product
	categories    []domain.Category
	vendors       map[string]domain.Vendor
	creators      []domain.Creator
	leaderboard   []domain.LeaderboardEntry
	contacts      []domain.Contact
	notifications []domain.Notification
	orders        []domain.Order
	demoUser      domain.User
}

// NewStore loads the full mock dataset.
func NewStore() *Store {
	vendors := map[string]domain.Vendor{}
	for _, v := range seedVendors() {
		vendors[v.ID] = v
	}
	return &Store{
		products:      seedProducts(),
		categories:    seedCategories(),
		vendors:       vendors,
		creators:      seedCreators(),
		leaderboard:   seedLeaderboard(),
		contacts:      seedContacts(),
		notifications: seedNotifications(),
		orders:        seedOrders(),
		demoUser:      seedDemoUser(),
	}
}

func (s *Store) Products() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) ProductByID(id string) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// SearchProducts filters by free text over name/category/description and by
// exact category; empty arguments match everything.
func (s *Store) SearchProducts(query, category string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []domain.Product
	for _, p := range s.products {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *Store) Categories() []domain.Category {
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) VendorByID(id string) (domain.Vendor, bool) {
	v, ok := s.vendors[id]
	return v, ok
}

func (s *Store) Creators() []domain.Creator {
	out := make([]domain.Creator, len(s.creators))
	copy(out, s.creators)
	return out
}

func (s *Store) CreatorByID(id string) (domain.Creator, bool) {
	for _, c := range s.creators {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Creator{}, false
}

// Feed flattens vendor social posts, newest first.
func (s *Store) Feed() []domain.SocialPost {
	var out []domain.SocialPost
	for _, v := range s.vendors {
		out = append(out, v.SocialPosts...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out
}

func (s *Store) Leaderboard() []domain.LeaderboardEntry {
	out := make([]domain.LeaderboardEntry, len(s.leaderboard))
	copy(out, s.leaderboard)
	return out
}

func (s *Store) Contacts() []domain.Contact {
	out := make([]domain.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

func (s *Store) ContactByID(id string) (domain.Contact, bool) {
	for _, c := range s.contacts {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Contact{}, false
}

func (s *Store) Notifications() []domain.Notification {
	out := make([]domain.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

func (s *Store) OrderHistory() []domain.Order {
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) DemoUser() domain.User { return s.demoUser }

var _ usecase.Catalog = (*Store)(nil)
