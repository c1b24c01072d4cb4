package usecase

import (
	"log/slog"
)

// Navigator is the finite state machine over the page set. It owns the
// current page and every selection; pages themselves never mutate it.
type Navigator struct {
	catalog Catalog
	log     *slog.Logger
}

func NewNavigator(catalog Catalog, log *slog.Logger) *Navigator {
	return &Navigator{catalog: catalog, log: log}
}

// Back targets are hardcoded per page; there is no history stack.
var backTargets = map[Page]Page{
	PageProduct:     PageHome,
	PageVendor:      PageHome,
	PageOrders:      PageProfile,
	PageAffiliate:   PageProfile,
	PageLeaderboard: PageAffiliate,
	PageStorefront:  PageFeed,
	PageCheckout:    PageCart,
	PageSuccess:     PageHome,
}

// Login flips the session to authenticated and lands on home.
func (n *Navigator) Login(s *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Nav.Authenticated = true
	s.Nav.Current = PageHome
	s.pushNotice("Welcome back, "+firstName(s.User.Name)+"!", NoticeSuccess)
	n.log.Info("nav_login", "session", s.ID)
}

// ExploreAsGuest authenticates and drops straight into search, mirroring the
// landing page's explore path.
func (n *Navigator) ExploreAsGuest(s *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Nav.Authenticated = true
	s.Nav.Current = PageSearch
}

// Logout clears authentication and every selection and returns to landing.
// It also discards any live checkout so a stale completion cannot land.
func (n *Navigator) Logout(s *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Nav = NavigationState{Current: PageLanding}
	s.Checkout = nil
	s.checkoutGen++
	n.log.Info("nav_logout", "session", s.ID)
}

// NavigateTo is the generic transition. The active chat target is cleared
// unless the destination is messages.
func (n *Navigator) NavigateTo(s *Session, page Page) error {
	if _, ok := knownPages[page]; !ok {
		return ErrUnknownPage
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.Nav.Authenticated && page != PageLanding && page != PageAuth {
		return ErrNotAuthenticated
	}
	if page != PageMessages {
		s.Nav.ChatProductID = ""
	}
	s.Nav.Current = page
	return nil
}

// OpenProduct sets the product selection and moves to the detail page.
func (n *Navigator) OpenProduct(s *Session, productID string) error {
	if _, ok := n.catalog.ProductByID(productID); !ok {
		return ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.Nav.Authenticated {
		return ErrNotAuthenticated
	}
	s.Nav.SelectedProductID = productID
	s.Nav.ChatProductID = ""
	s.Nav.Current = PageProduct
	return nil
}

func (n *Navigator) OpenVendor(s *Session, vendorID string) error {
	if _, ok := n.catalog.VendorByID(vendorID); !ok {
		return ErrVendorNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.Nav.Authenticated {
		return ErrNotAuthenticated
	}
	s.Nav.SelectedVendorID = vendorID
	s.Nav.ChatProductID = ""
	s.Nav.Current = PageVendor
	return nil
}

// StartChat sets the chat target and moves to messages; the target survives
// because the destination is the messages page.
func (n *Navigator) StartChat(s *Session, productID string) error {
	if _, ok := n.catalog.ProductByID(productID); !ok {
		return ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.Nav.Authenticated {
		return ErrNotAuthenticated
	}
	s.Nav.ChatProductID = productID
	s.Nav.Current = PageMessages
	return nil
}

// OpenCreatorOverlay sets the creator selection only; this is an overlay,
// the current page does not change.
func (n *Navigator) OpenCreatorOverlay(s *Session, creatorID string) error {
	if _, ok := n.catalog.CreatorByID(creatorID); !ok {
		return ErrCreatorNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Nav.SelectedCreatorID = creatorID
	return nil
}

func (n *Navigator) CloseCreatorOverlay(s *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Nav.SelectedCreatorID = ""
}

// ViewStorefront promotes the creator overlay into the storefront page,
// keeping the creator selection.
func (n *Navigator) ViewStorefront(s *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Nav.SelectedCreatorID == "" {
		return ErrNoSelection
	}
	s.Nav.Current = PageStorefront
	return nil
}

// GoBack follows the hardcoded back target for the current page; pages
// without one go home.
func (n *Navigator) GoBack(s *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	target, ok := backTargets[s.Nav.Current]
	if !ok {
		target = PageHome
	}
	if target != PageMessages {
		s.Nav.ChatProductID = ""
	}
	s.Nav.Current = target
}

func (n *Navigator) State(s *Session) NavigationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Nav
}

func firstName(full string) string {
	for i := 0; i < len(full); i++ {
		if full[i] == ' ' {
			return full[:i]
		}
	}
	return full
}
