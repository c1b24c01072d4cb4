package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	domain "github.com/nuelxcodev/luxe/internal/entity"
	"github.com/nuelxcodev/luxe/internal/usecase"
)

type CatalogHandler struct {
	catalog usecase.Catalog
}

func NewCatalogHandler(catalog usecase.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	q := c.Query("q")
	category := c.Query("category")

	var products []domain.Product
	if q == "" && category == "" {
		products = h.catalog.Products()
	} else {
		products = h.catalog.SearchProducts(q, category)
	}
	c.JSON(http.StatusOK, gin.H{"products": toProductsJSON(products)})
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, ok := h.catalog.ProductByID(c.Param("id"))
	if !ok {
		respondErr(c, usecase.ErrProductNotFound)
		return
	}
	c.JSON(http.StatusOK, toProductJSON(p))
}

func (h *CatalogHandler) GetVendor(c *gin.Context) {
	v, ok := h.catalog.VendorByID(c.Param("id"))
	if !ok {
		respondErr(c, usecase.ErrVendorNotFound)
		return
	}
	c.JSON(http.StatusOK, toVendorJSON(v))
}

func (h *CatalogHandler) ListCreators(c *gin.Context) {
	creators := h.catalog.Creators()
	out := make([]creatorJSON, 0, len(creators))
	for _, cr := range creators {
		out = append(out, toCreatorJSON(cr))
	}
	c.JSON(http.StatusOK, gin.H{"creators": out})
}

func (h *CatalogHandler) Feed(c *gin.Context) {
	posts := h.catalog.Feed()
	out := make([]socialPostJSON, 0, len(posts))
	for _, p := range posts {
		out = append(out, toSocialPostJSON(p))
	}
	c.JSON(http.StatusOK, gin.H{"posts": out})
}

func (h *CatalogHandler) Leaderboard(c *gin.Context) {
	entries := h.catalog.Leaderboard()
	out := make([]leaderboardJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, leaderboardJSON{
			ID:       e.ID,
			Name:     e.Name,
			Avatar:   e.Avatar,
			Earnings: e.Earnings.StringFixed(2),
			Rank:     e.Rank,
		})
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": out})
}

func (h *CatalogHandler) Categories(c *gin.Context) {
	cats := h.catalog.Categories()
	out := make([]categoryJSON, 0, len(cats))
	for _, cat := range cats {
		out = append(out, categoryJSON(cat))
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

type vendorJSON struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Logo          string           `json:"logo"`
	CoverImage    string           `json:"coverImage"`
	Description   string           `json:"description"`
	Rating        float64          `json:"rating"`
	FollowerCount int              `json:"followerCount"`
	IsVerified    bool             `json:"isVerified"`
	JoinedDate    string           `json:"joinedDate"`
	Stats         vendorStatsJSON  `json:"stats"`
	SocialPosts   []socialPostJSON `json:"socialPosts"`
}

type vendorStatsJSON struct {
	TotalSales       string `json:"totalSales"`
	PositiveFeedback string `json:"positiveFeedback"`
	ResponseTime     string `json:"responseTime"`
}

func toVendorJSON(v domain.Vendor) vendorJSON {
	posts := make([]socialPostJSON, 0, len(v.SocialPosts))
	for _, p := range v.SocialPosts {
		posts = append(posts, toSocialPostJSON(p))
	}
	return vendorJSON{
		ID:            v.ID,
		Name:          v.Name,
		Logo:          v.Logo,
		CoverImage:    v.CoverImage,
		Description:   v.Description,
		Rating:        v.Rating,
		FollowerCount: v.FollowerCount,
		IsVerified:    v.IsVerified,
		JoinedDate:    v.JoinedDate,
		Stats:         vendorStatsJSON(v.Stats),
		SocialPosts:   posts,
	}
}

type socialPostJSON struct {
	ID        string    `json:"id"`
	Image     string    `json:"image"`
	Caption   string    `json:"caption"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	Timestamp time.Time `json:"timestamp"`
	CreatorID string    `json:"creatorId,omitempty"`
	ProductID string    `json:"productId,omitempty"`
}

func toSocialPostJSON(p domain.SocialPost) socialPostJSON {
	return socialPostJSON{
		ID:        p.ID,
		Image:     p.Image,
		Caption:   p.Caption,
		Likes:     p.Likes,
		Comments:  p.Comments,
		Timestamp: p.Timestamp,
		CreatorID: p.CreatorID,
		ProductID: p.ProductID,
	}
}

type creatorJSON struct {
	ID              string   `json:"id"`
	Username        string   `json:"username"`
	Name            string   `json:"name"`
	Avatar          string   `json:"avatar"`
	ReputationScore int      `json:"reputationScore"`
	TotalEarnings   string   `json:"totalEarnings"`
	Badges          []string `json:"badges"`
	FollowerCount   int      `json:"followerCount"`
	IsFollowing     bool     `json:"isFollowing"`
}

func toCreatorJSON(cr domain.Creator) creatorJSON {
	badges := make([]string, 0, len(cr.Badges))
	for _, b := range cr.Badges {
		badges = append(badges, string(b))
	}
	return creatorJSON{
		ID:              cr.ID,
		Username:        cr.Username,
		Name:            cr.Name,
		Avatar:          cr.Avatar,
		ReputationScore: cr.ReputationScore,
		TotalEarnings:   cr.TotalEarnings.StringFixed(2),
		Badges:          badges,
		FollowerCount:   cr.FollowerCount,
		IsFollowing:     cr.IsFollowing,
	}
}

type categoryJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type leaderboardJSON struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Earnings string `json:"earnings"`
	Rank     int    `json:"rank"`
}
