package domain

import "github.com/shopspring/decimal"

type Badge string

const (
	BadgeTopEarner     Badge = "Top Earner"
	BadgeRisingCreator Badge = "Rising Creator"
	BadgeTrustedBuyer  Badge = "Trusted Buyer"
	BadgeVIP           Badge = "VIP"
)

type Creator struct {
	ID              string
	Username        string
	Name            string
	Avatar          string
	ReputationScore int
	TotalEarnings   decimal.Decimal
	Badges          []Badge
	FollowerCount   int
	IsFollowing     bool
}

type LeaderboardEntry struct {
	ID       string
	Name     string
	Avatar   string
	Earnings decimal.Decimal
	Rank     int
}
