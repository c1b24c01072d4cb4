package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	domain "github.com/nuelxcodev/luxe/internal/entity"
)

// Page identifiers the navigation controller moves between.
type Page string

const (
	PageLanding       Page = "landing"
	PageAuth          Page = "auth"
	PageHome          Page = "home"
	PageSearch        Page = "search"
	PageCart          Page = "cart"
	PageProduct       Page = "product"
	PageProfile       Page = "profile"
	PageNotifications Page = "notifications"
	PageMessages      Page = "messages"
	PageCheckout      Page = "checkout"
	PageSuccess       Page = "success"
	PageOrders        Page = "orders"
	PageVendor        Page = "vendor"
	PageFeed          Page = "feed"
	PageAffiliate     Page = "affiliate"
	PageStorefront    Page = "storefront"
	PageLeaderboard   Page = "leaderboard"
)

var knownPages = map[Page]struct{}{
	PageLanding: {}, PageAuth: {}, PageHome: {}, PageSearch: {}, PageCart: {},
	PageProduct: {}, PageProfile: {}, PageNotifications: {}, PageMessages: {},
	PageCheckout: {}, PageSuccess: {}, PageOrders: {}, PageVendor: {},
	PageFeed: {}, PageAffiliate: {}, PageStorefront: {}, PageLeaderboard: {},
}

// NavigationState is recreated on every transition; there is no history
// stack, back targets are hardcoded per page.
type NavigationState struct {
	Current           Page
	Authenticated     bool
	SelectedProductID string
	SelectedVendorID  string
	SelectedCreatorID string
	ChatProductID     string
}

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	NoticeInfo    NoticeKind = "info"
)

// Notice is a dismissible toast queued for the client to drain.
type Notice struct {
	Message string
	Kind    NoticeKind
}

// Session is the per-login application state: one logical owner per piece of
// state, guarded by a single mutex so HTTP concurrency degenerates to the
// original one-mutation-at-a-time model.
type Session struct {
	mu sync.Mutex

	ID   string
	User domain.User
	Cart domain.Cart
	Nav  NavigationState

	Checkout    *CheckoutSession
	checkoutGen uint64

	Orders        []domain.Order
	Notifications []domain.Notification

	chats   map[string][]domain.ChatMessage
	notices []Notice
}

const conciergeGreeting = "Hello! I'm your LUXE concierge. How can I assist you today?"

// NewSession builds a fresh session seeded from the catalog's demo data.
// The concierge thread opens with its canned greeting.
func NewSession(user domain.User, orders []domain.Order, notifications []domain.Notification) *Session {
	s := &Session{
		ID:            uuid.NewString(),
		User:          user,
		Nav:           NavigationState{Current: PageLanding},
		Orders:        orders,
		Notifications: notifications,
		chats:         map[string][]domain.ChatMessage{},
	}
	s.chats["c1"] = []domain.ChatMessage{{
		ID:        uuid.NewString(),
		Role:      domain.RoleModel,
		Text:      conciergeGreeting,
		Timestamp: time.Now(),
	}}
	return s
}

func (s *Session) pushNotice(message string, kind NoticeKind) {
	s.notices = append(s.notices, Notice{Message: message, Kind: kind})
}

// DrainNotices returns queued toasts and empties the queue.
func (s *Session) DrainNotices() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.notices
	s.notices = nil
	return out
}

// ChatHistory returns a copy of the thread for one contact.
func (s *Session) ChatHistory(contactID string) []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.chats[contactID]
	out := make([]domain.ChatMessage, len(msgs))
	copy(out, msgs)
	return out
}

// ListOrders returns a copy of the order log, newest first.
func (s *Session) ListOrders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.Orders))
	copy(out, s.Orders)
	return out
}

// ListNotifications returns a copy of the notification feed.
func (s *Session) ListNotifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Notification, len(s.Notifications))
	copy(out, s.Notifications)
	return out
}

// MarkNotificationRead flips one notification; unknown ids are a no-op.
func (s *Session) MarkNotificationRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Notifications {
		if s.Notifications[i].ID == id {
			s.Notifications[i].IsRead = true
			return true
		}
	}
	return false
}
