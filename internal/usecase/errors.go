package usecase

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrVendorNotFound    = errors.New("vendor not found")
	ErrCreatorNotFound   = errors.New("creator not found")
	ErrContactNotFound   = errors.New("contact not found")
	ErrUnknownPage       = errors.New("unknown page")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrNoSelection       = errors.New("no selection for this page")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNoCheckout        = errors.New("no active checkout session")
	ErrNotAtReview       = errors.New("order can only be placed from the review step")
	ErrSubmitInFlight    = errors.New("order submission already in flight")
	ErrCheckoutDiscarded = errors.New("checkout was cancelled before completion")
)
