package impl

import (
	"context"
	"log/slog"
	"sync"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// sessionLock is a context-aware mutex shared by concurrent requests of one session.
type sessionLock struct {
	ch      chan struct{}
	waiters int
}

// pageFactory implements the PageFactory interface.
// Requests of one session run one at a time against a freshly hydrated page, so the cart
// behaves as if it lived on a single event loop. Two processes sharing a backend still race
// and the last writer wins.
type pageFactory struct {
	stores  repository.SessionStores
	buses   service.CartEventsRegistry
	catalog usecase.CatalogUsecase
	api     service.StorefrontAPI
	decoder service.SessionDecoder
	logger  *slog.Logger

	mu    sync.Mutex
	locks map[string]*sessionLock
}

// NewPageFactory is the constructor for pageFactory.
func NewPageFactory(
	stores repository.SessionStores,
	buses service.CartEventsRegistry,
	catalog usecase.CatalogUsecase,
	api service.StorefrontAPI,
	decoder service.SessionDecoder,
	logger *slog.Logger,
) usecase.PageFactory {
	return &pageFactory{
		stores:  stores,
		buses:   buses,
		catalog: catalog,
		api:     api,
		decoder: decoder,
		logger:  logger,
		locks:   make(map[string]*sessionLock),
	}
}

// Open waits for the session lock, then wires and hydrates the session's services.
func (f *pageFactory) Open(ctx context.Context, sessionID string) (*usecase.Page, func(), error) {
	if sessionID == "" {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails("session id is required")
	}

	unlock, err := f.lock(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	store := f.stores.ForSession(sessionID)
	events := f.buses.Events(sessionID)

	cart := NewCartService(store, events, f.logger)
	cart.Hydrate(ctx)
	session := NewSessionService(store, f.decoder, cart, f.logger)

	page := &usecase.Page{
		SessionID: sessionID,
		Cart:      cart,
		Session:   session,
		Shops:     NewShopService(store, f.catalog, cart, session, f.api, f.logger),
		Checkout:  NewCheckoutService(cart, session, f.api, f.logger),
		Orders:    NewOrderService(session, f.api, f.logger),
	}

	return page, unlock, nil
}

func (f *pageFactory) lock(ctx context.Context, sessionID string) (func(), error) {
	f.mu.Lock()
	l, ok := f.locks[sessionID]
	if !ok {
		l = &sessionLock{ch: make(chan struct{}, 1)}
		f.locks[sessionID] = l
	}
	l.waiters++
	f.mu.Unlock()

	select {
	case l.ch <- struct{}{}:
	case <-ctx.Done():
		f.forget(sessionID, l)

		return nil, ctx.Err()
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			<-l.ch
			f.forget(sessionID, l)
		})
	}, nil
}

func (f *pageFactory) forget(sessionID string, l *sessionLock) {
	f.mu.Lock()
	defer f.mu.Unlock()

	l.waiters--
	if l.waiters == 0 {
		delete(f.locks, sessionID)
	}
}
