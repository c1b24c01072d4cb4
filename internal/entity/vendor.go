package domain

import "time"

type Vendor struct {
	ID            string
	Name          string
	Logo          string
	CoverImage    string
	Description   string
	Rating        float64
	FollowerCount int
	IsVerified    bool
	JoinedDate    string
	Stats         VendorStats
	SocialPosts   []SocialPost
}

type VendorStats struct {
	TotalSales       string
	PositiveFeedback string
	ResponseTime     string
}

type SocialPost struct {
	ID        string
	Image     string
	Caption   string
	Likes     int
	Comments  int
	Timestamp time.Time
	CreatorID string
	ProductID string
}
