package domain

import "time"

type NotificationType string

const (
	NotifOrder  NotificationType = "order"
	NotifPromo  NotificationType = "promo"
	NotifSystem NotificationType = "system"
)

type Notification struct {
	ID        string
	Title     string
	Message   string
	Timestamp time.Time
	IsRead    bool
	Type      NotificationType
}

type ContactType string

const (
	ContactFriend    ContactType = "friend"
	ContactSeller    ContactType = "seller"
	ContactConcierge ContactType = "concierge"
)

type Contact struct {
	ID          string
	Name        string
	Avatar      string
	Status      string // online | offline | shopping
	LastMessage string
	Time        string
	Type        ContactType
	IsVerified  bool
}

type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

type ChatMessage struct {
	ID         string
	Role       ChatRole
	Text       string
	Timestamp  time.Time
	Suggestion *Suggestion
}

// Suggestion is the cross-sell offer the assistant sometimes attaches.
type Suggestion struct {
	Text        string
	ActionLabel string
	ProductID   string
}

// Citation points at a source the assistant grounded its answer on.
type Citation struct {
	Title string
	URI   string
}
