package http

import (
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/nuelxcodev/luxe/internal/entity"
	"github.com/nuelxcodev/luxe/internal/usecase"
)

// Monetary values render as strings fixed to two decimals; internal values
// are never rounded.

type productJSON struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          string  `json:"price"`
	Category       string  `json:"category"`
	Image          string  `json:"image"`
	Rating         float64 `json:"rating"`
	Reviews        int     `json:"reviews"`
	IsTrending     bool    `json:"isTrending"`
	IsFlashSale    bool    `json:"isFlashSale"`
	SellerName     string  `json:"sellerName,omitempty"`
	VendorID       string  `json:"vendorId"`
	CommissionRate string  `json:"commissionRate,omitempty"`
}

func toProductJSON(p domain.Product) productJSON {
	out := productJSON{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Category:    p.Category,
		Image:       p.Image,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		IsTrending:  p.IsTrending,
		IsFlashSale: p.IsFlashSale,
		SellerName:  p.SellerName,
		VendorID:    p.VendorID,
	}
	if !p.CommissionRate.IsZero() {
		out.CommissionRate = p.CommissionRate.String()
	}
	return out
}

func toProductsJSON(ps []domain.Product) []productJSON {
	out := make([]productJSON, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductJSON(p))
	}
	return out
}

type lineItemJSON struct {
	Product   productJSON `json:"product"`
	Quantity  int         `json:"quantity"`
	LineTotal string      `json:"lineTotal"`
}

func toLineItemsJSON(items []domain.LineItem) []lineItemJSON {
	out := make([]lineItemJSON, 0, len(items))
	for _, it := range items {
		out = append(out, lineItemJSON{
			Product:   toProductJSON(it.Product),
			Quantity:  it.Quantity,
			LineTotal: it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))).StringFixed(2),
		})
	}
	return out
}

type cartJSON struct {
	Items     []lineItemJSON `json:"items"`
	Total     string         `json:"total"`
	ItemCount int            `json:"itemCount"`
}

func toCartJSON(v usecase.CartView) cartJSON {
	return cartJSON{
		Items:     toLineItemsJSON(v.Items),
		Total:     v.Total.StringFixed(2),
		ItemCount: v.ItemCount,
	}
}

type checkoutJSON struct {
	Step     int               `json:"step"`
	Items    []lineItemJSON    `json:"items"`
	Total    string            `json:"total"`
	Shipping map[string]string `json:"shipping"`
	Payment  map[string]string `json:"payment"`
}

func toCheckoutJSON(co usecase.CheckoutSession) checkoutJSON {
	return checkoutJSON{
		Step:     int(co.Step),
		Items:    toLineItemsJSON(co.Items),
		Total:    co.Total.StringFixed(2),
		Shipping: co.Shipping,
		Payment:  co.Payment,
	}
}

type navJSON struct {
	Current           string `json:"current"`
	Authenticated     bool   `json:"authenticated"`
	SelectedProductID string `json:"selectedProductId,omitempty"`
	SelectedVendorID  string `json:"selectedVendorId,omitempty"`
	SelectedCreatorID string `json:"selectedCreatorId,omitempty"`
	ChatProductID     string `json:"chatProductId,omitempty"`
}

func toNavJSON(st usecase.NavigationState) navJSON {
	return navJSON{
		Current:           string(st.Current),
		Authenticated:     st.Authenticated,
		SelectedProductID: st.SelectedProductID,
		SelectedVendorID:  st.SelectedVendorID,
		SelectedCreatorID: st.SelectedCreatorID,
		ChatProductID:     st.ChatProductID,
	}
}

type transactionJSON struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Status      string `json:"status"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

func toTransactionsJSON(txs []domain.Transaction) []transactionJSON {
	out := make([]transactionJSON, 0, len(txs))
	for _, t := range txs {
		out = append(out, transactionJSON{
			ID:          t.ID,
			Type:        string(t.Type),
			Amount:      t.Amount.StringFixed(2),
			Status:      string(t.Status),
			Date:        t.Date,
			Description: t.Description,
		})
	}
	return out
}

type userJSON struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone,omitempty"`
	Avatar          string            `json:"avatar,omitempty"`
	Badges          []string          `json:"badges"`
	ReferralCode    string            `json:"referralCode"`
	Balance         string            `json:"balance"`
	PendingEarnings string            `json:"pendingEarnings"`
	TotalEarned     string            `json:"totalEarned"`
	AffiliateStats  affiliateJSON     `json:"affiliateStats"`
	Transactions    []transactionJSON `json:"transactions"`
	Addresses       []addressJSON     `json:"addresses"`
	PaymentMethods  []paymentJSON     `json:"paymentMethods"`
	Preferences     preferencesJSON   `json:"preferences"`
}

type affiliateJSON struct {
	Clicks         int    `json:"clicks"`
	Referrals      int    `json:"referrals"`
	ConversionRate string `json:"conversionRate"`
}

type addressJSON struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Street    string `json:"street"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	IsDefault bool   `json:"isDefault"`
}

type paymentJSON struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Last4     string `json:"last4,omitempty"`
	Expiry    string `json:"expiry,omitempty"`
	IsDefault bool   `json:"isDefault"`
}

type preferencesJSON struct {
	EmailNotifications bool `json:"emailNotifications"`
	SMSNotifications   bool `json:"smsNotifications"`
	PushNotifications  bool `json:"pushNotifications"`
}

func toUserJSON(u domain.User) userJSON {
	badges := make([]string, 0, len(u.Badges))
	for _, b := range u.Badges {
		badges = append(badges, string(b))
	}
	addrs := make([]addressJSON, 0, len(u.Addresses))
	for _, a := range u.Addresses {
		addrs = append(addrs, addressJSON(a))
	}
	pays := make([]paymentJSON, 0, len(u.PaymentMethods))
	for _, p := range u.PaymentMethods {
		pays = append(pays, paymentJSON{ID: p.ID, Type: string(p.Type), Last4: p.Last4, Expiry: p.Expiry, IsDefault: p.IsDefault})
	}
	return userJSON{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Phone:           u.Phone,
		Avatar:          u.Avatar,
		Badges:          badges,
		ReferralCode:    u.ReferralCode,
		Balance:         u.Balance.StringFixed(2),
		PendingEarnings: u.PendingEarnings.StringFixed(2),
		TotalEarned:     u.TotalEarned.StringFixed(2),
		AffiliateStats: affiliateJSON{
			Clicks:         u.AffiliateStats.Clicks,
			Referrals:      u.AffiliateStats.Referrals,
			ConversionRate: u.AffiliateStats.ConversionRate,
		},
		Transactions:   toTransactionsJSON(u.Transactions),
		Addresses:      addrs,
		PaymentMethods: pays,
		Preferences: preferencesJSON{
			EmailNotifications: u.Preferences.EmailNotifications,
			SMSNotifications:   u.Preferences.SMSNotifications,
			PushNotifications:  u.Preferences.PushNotifications,
		},
	}
}

type orderJSON struct {
	ID     string         `json:"id"`
	Date   string         `json:"date"`
	Status string         `json:"status"`
	Total  string         `json:"total"`
	Items  []lineItemJSON `json:"items"`
}

func toOrderJSON(o domain.Order) orderJSON {
	return orderJSON{
		ID:     o.ID,
		Date:   o.Date,
		Status: string(o.Status),
		Total:  o.Total.StringFixed(2),
		Items:  toLineItemsJSON(o.Items),
	}
}

func toOrdersJSON(orders []domain.Order) []orderJSON {
	out := make([]orderJSON, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderJSON(o))
	}
	return out
}

type chatMessageJSON struct {
	ID         string          `json:"id"`
	Role       string          `json:"role"`
	Text       string          `json:"text"`
	Timestamp  time.Time       `json:"timestamp"`
	Suggestion *suggestionJSON `json:"suggestion,omitempty"`
}

type suggestionJSON struct {
	Text        string `json:"text"`
	ActionLabel string `json:"actionLabel"`
	ProductID   string `json:"productId"`
}

func toChatMessageJSON(m domain.ChatMessage) chatMessageJSON {
	out := chatMessageJSON{
		ID:        m.ID,
		Role:      string(m.Role),
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
	if m.Suggestion != nil {
		out.Suggestion = &suggestionJSON{
			Text:        m.Suggestion.Text,
			ActionLabel: m.Suggestion.ActionLabel,
			ProductID:   m.Suggestion.ProductID,
		}
	}
	return out
}

func toChatMessagesJSON(msgs []domain.ChatMessage) []chatMessageJSON {
	out := make([]chatMessageJSON, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toChatMessageJSON(m))
	}
	return out
}

type citationJSON struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

func toCitationsJSON(cs []domain.Citation) []citationJSON {
	out := make([]citationJSON, 0, len(cs))
	for _, c := range cs {
		out = append(out, citationJSON(c))
	}
	return out
}

type notificationJSON struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"isRead"`
	Type      string    `json:"type"`
}

func toNotificationsJSON(ns []domain.Notification) []notificationJSON {
	out := make([]notificationJSON, 0, len(ns))
	for _, n := range ns {
		out = append(out, notificationJSON{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Timestamp: n.Timestamp,
			IsRead:    n.IsRead,
			Type:      string(n.Type),
		})
	}
	return out
}

type noticeJSON struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

func toNoticesJSON(ns []usecase.Notice) []noticeJSON {
	out := make([]noticeJSON, 0, len(ns))
	for _, n := range ns {
		out = append(out, noticeJSON{Message: n.Message, Kind: string(n.Kind)})
	}
	return out
}
