package catalog

import (
	"time"

	"github.com/shopspring/decimal"
	domain "github.com/nuelxcodev/luxe/internal/entity"
)

// In-memory mock dataset (replace with a real catalog service later).

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:             "1",
			Name:           "Stealth Pro Wireless Headphones",
			Description:    "Noise-cancelling over-ear headphones with 40-hour battery life.",
			Price:          money("299.99"),
			Category:       "Electronics",
			Image:          "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?q=80&w=600",
			Rating:         4.8,
			Reviews:        124,
			IsTrending:     true,
			SellerName:     "AudioElite",
			VendorID:       "v1",
			CommissionRate: money("0.05"),
		},
		{
			ID:             "2",
			Name:           "Minimalist Leather Watch",
			Description:    "Elegant timepiece with Italian leather strap and sapphire glass.",
			Price:          money("189.00"),
			Category:       "Accessories",
			Image:          "https://images.unsplash.com/photo-1523275335684-37898b6baf30?q=80&w=600",
			Rating:         4.9,
			Reviews:        89,
			IsFlashSale:    true,
			SellerName:     "ChronoLuxe",
			VendorID:       "v2",
			CommissionRate: money("0.05"),
		},
		{
			ID:             "3",
			Name:           "Ergo-Dynamic Desk Chair",
			Description:    "Full mesh ergonomic office chair with adjustable lumbar support.",
			Price:          money("450.00"),
			Category:       "Home Office",
			Image:          "https://images.unsplash.com/photo-1505797149-43b0069ec26b?q=80&w=600",
			Rating:         4.7,
			Reviews:        210,
			IsTrending:     true,
			SellerName:     "OfficePro",
			VendorID:       "v3",
			CommissionRate: money("0.05"),
		},
	}
}

func seedCategories() []domain.Category {
	return []domain.Category{
		{ID: "cat1", Name: "Fashion"},
		{ID: "cat2", Name: "Electronics"},
		{ID: "cat3", Name: "Home"},
		{ID: "cat4", Name: "Beauty"},
		{ID: "cat5", Name: "Sports"},
		{ID: "cat6", Name: "Watches"},
		{ID: "cat7", Name: "Audio"},
	}
}

func seedVendors() []domain.Vendor {
	now := time.Now()
	return []domain.Vendor{
		{
			ID:            "v1",
			Name:          "AudioElite",
			Logo:          "https://picsum.photos/seed/audio/200/200",
			CoverImage:    "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?q=80&w=1200",
			Description:   "Pioneers in high-fidelity audio equipment.",
			Rating:        4.9,
			FollowerCount: 12400,
			IsVerified:    true,
			JoinedDate:    "Jan 2021",
			Stats:         domain.VendorStats{TotalSales: "50k+", PositiveFeedback: "99%", ResponseTime: "< 2h"},
			SocialPosts: []domain.SocialPost{
				{
					ID:        "sp1",
					Image:     "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?q=80&w=600",
					Caption:   "The Stealth Pro is back in stock. Limited run.",
					Likes:     342,
					Comments:  28,
					Timestamp: now.Add(-2 * time.Hour),
					CreatorID: "cr1",
					ProductID: "1",
				},
			},
		},
		{
			ID:            "v2",
			Name:          "ChronoLuxe",
			Logo:          "https://picsum.photos/seed/watch/200/200",
			CoverImage:    "https://images.unsplash.com/photo-1523170335258-f5ed11844a49?q=80&w=1200",
			Description:   "Timeless elegance and precision engineering.",
			Rating:        4.8,
			FollowerCount: 8900,
			IsVerified:    true,
			JoinedDate:    "Mar 2020",
			Stats:         domain.VendorStats{TotalSales: "15k+", PositiveFeedback: "98%", ResponseTime: "< 4h"},
			SocialPosts: []domain.SocialPost{
				{
					ID:        "sp2",
					Image:     "https://images.unsplash.com/photo-1523275335684-37898b6baf30?q=80&w=600",
					Caption:   "Flash sale on the Minimalist Leather Watch this weekend only.",
					Likes:     198,
					Comments:  12,
					Timestamp: now.Add(-26 * time.Hour),
					CreatorID: "cr2",
					ProductID: "2",
				},
			},
		},
	}
}

func seedCreators() []domain.Creator {
	return []domain.Creator{
		{
			ID:              "cr1",
			Username:        "@mark_stylist",
			Name:            "Marcus Chen",
			Avatar:          "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?q=80&w=200",
			ReputationScore: 980,
			TotalEarnings:   money("4500.25"),
			Badges:          []domain.Badge{domain.BadgeTopEarner, domain.BadgeVIP},
			FollowerCount:   2400,
		},
		{
			ID:              "cr2",
			Username:        "@sarah_j",
			Name:            "Sarah Jenkins",
			Avatar:          "https://images.unsplash.com/photo-1494790108377-be9c29b29330?q=80&w=200",
			ReputationScore: 850,
			TotalEarnings:   money("1200.50"),
			Badges:          []domain.Badge{domain.BadgeRisingCreator, domain.BadgeTrustedBuyer},
			FollowerCount:   1100,
		},
	}
}

func seedLeaderboard() []domain.LeaderboardEntry {
	return []domain.LeaderboardEntry{
		{ID: "1", Name: "Marcus Chen", Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?q=80&w=200", Earnings: money("4500.25"), Rank: 1},
		{ID: "2", Name: "Sarah Jenkins", Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?q=80&w=200", Earnings: money("1200.50"), Rank: 2},
		{ID: "3", Name: "Alex Johnson", Avatar: "https://picsum.photos/seed/user1/200/200", Earnings: money("1250.00"), Rank: 3},
		{ID: "4", Name: "Elena Rodriguez", Avatar: "https://picsum.photos/seed/user4/200/200", Earnings: money("890.00"), Rank: 4},
		{ID: "5", Name: "David Kim", Avatar: "https://picsum.photos/seed/user5/200/200", Earnings: money("540.00"), Rank: 5},
	}
}

func seedContacts() []domain.Contact {
	return []domain.Contact{
		{
			ID:          "c1",
			Name:        "LUXE Concierge",
			Avatar:      "https://images.unsplash.com/photo-1544725176-7c40e5a71c5e?q=80&w=200",
			Status:      "online",
			LastMessage: "How can I assist your luxury journey today?",
			Time:        "Now",
			Type:        domain.ContactConcierge,
			IsVerified:  true,
		},
		{
			ID:          "c2",
			Name:        "Sarah Jenkins",
			Avatar:      "https://images.unsplash.com/photo-1494790108377-be9c29b29330?q=80&w=200",
			Status:      "shopping",
			LastMessage: "OMG look at these headphones!",
			Time:        "2m",
			Type:        domain.ContactFriend,
		},
		{
			ID:          "c3",
			Name:        "AudioElite (Seller)",
			Avatar:      "https://picsum.photos/seed/audio/200/200",
			Status:      "online",
			LastMessage: "The Stealth Pro is back in stock.",
			Time:        "1h",
			Type:        domain.ContactSeller,
			IsVerified:  true,
		},
	}
}

func seedNotifications() []domain.Notification {
	return []domain.Notification{
		{
			ID:        "n1",
			Title:     "Order Delivered!",
			Message:   "Your order #LX-9921 has been delivered to your front door.",
			Timestamp: time.Now().Add(-time.Hour),
			IsRead:    false,
			Type:      domain.NotifOrder,
		},
	}
}

func seedOrders() []domain.Order {
	return []domain.Order{
		{ID: "LX-8812", Date: "Oct 12, 2023", Status: domain.OrderDelivered, Total: money("345.99")},
	}
}

func seedDemoUser() domain.User {
	return domain.User{
		ID:              "user-1",
		Name:            "Alex Johnson",
		Email:           "alex.johnson@example.com",
		Phone:           "+1 (555) 123-4567",
		Avatar:          "https://picsum.photos/seed/user1/256/256",
		Badges:          []domain.Badge{domain.BadgeTrustedBuyer, domain.BadgeVIP},
		ReferralCode:    "LUX-ALEX-2024",
		Balance:         money("145.50"),
		PendingEarnings: money("24.00"),
		TotalEarned:     money("1250.00"),
		AffiliateStats:  domain.AffiliateStats{Clicks: 432, Referrals: 24, ConversionRate: "5.5%"},
		Transactions: []domain.Transaction{
			{ID: "t1", Type: domain.TxReferralBonus, Amount: money("20.00"), Status: domain.TxCompleted, Date: "Oct 14, 2023", Description: "Referral bonus from @mark_stylist"},
			{ID: "t2", Type: domain.TxAffiliateCommission, Amount: money("45.50"), Status: domain.TxCompleted, Date: "Oct 10, 2023", Description: "Commission for Stealth Pro sale"},
		},
		Addresses: []domain.Address{
			{ID: "addr-1", Label: "Home", Street: "123 Luxury Ave", City: "Beverly Hills", Zip: "90210", IsDefault: true},
		},
		PaymentMethods: []domain.PaymentMethod{
			{ID: "pay-1", Type: domain.PaymentCard, Last4: "4242", Expiry: "12/25", IsDefault: true},
		},
		Preferences: domain.Preferences{EmailNotifications: true, SMSNotifications: false, PushNotifications: true},
	}
}
