package usecase

import (
	"log/slog"

	"github.com/shopspring/decimal"
	domain "github.com/nuelxcodev/luxe/internal/entity"
)

// CartService owns every cart mutation. Totals and counts are derived on
// read, never cached on the session.
type CartService struct {
	catalog Catalog
	log     *slog.Logger
}

func NewCartService(catalog Catalog, log *slog.Logger) *CartService {
	return &CartService{catalog: catalog, log: log}
}

type CartView struct {
	Items     []domain.LineItem
	Total     decimal.Decimal
	ItemCount int
}

// Add resolves the product in the catalog and merges it into the cart.
func (svc *CartService) Add(s *Session, productID string, qty int) error {
	p, ok := svc.catalog.ProductByID(productID)
	if !ok {
		return ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Cart.Add(p, qty)
	s.pushNotice(p.Name+" added to cart!", NoticeSuccess)
	cartMutations.WithLabelValues("add").Inc()
	svc.log.Info("cart_add", "session", s.ID, "product", productID, "qty", qty)
	return nil
}

// Remove deletes the line item if present; removing an absent product is a
// silent no-op per the cart contract.
func (svc *CartService) Remove(s *Session, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Cart.Remove(productID) {
		s.pushNotice("Item removed from cart", NoticeInfo)
		cartMutations.WithLabelValues("remove").Inc()
		svc.log.Info("cart_remove", "session", s.ID, "product", productID)
	}
}

// UpdateQuantity applies delta with a floor of 1. Dropping to zero requires
// Remove; unknown ids are a no-op.
func (svc *CartService) UpdateQuantity(s *Session, productID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Cart.UpdateQuantity(productID, delta) {
		cartMutations.WithLabelValues("update_quantity").Inc()
	}
}

func (svc *CartService) View(s *Session) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CartView{
		Items:     s.Cart.Items(),
		Total:     s.Cart.Total(),
		ItemCount: s.Cart.ItemCount(),
	}
}
