package usecase

import (
	"context"
)

// Page bundles the session-scoped services of one storefront session.
// All of them share one namespaced store and one cart event bus.
type Page struct {
	SessionID string
	Cart      CartUsecase
	Session   SessionUsecase
	Shops     ShopUsecase
	Checkout  CheckoutUsecase
	Orders    OrderUsecase
}

// PageFactory opens the page of a session. Operations on one session are serialized until
// release is called.
type PageFactory interface {
	Open(ctx context.Context, sessionID string) (page *Page, release func(), err error)
}
