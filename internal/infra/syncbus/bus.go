package syncbus

import (
	"storefront/internal/domain/service"
)

// Bus carries the two cart events of one session.
type Bus struct {
	cartUpdated Topic[int]
	cartToggle  Topic[struct{}]
}

var _ service.CartEvents = (*Bus)(nil)

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// PublishCartUpdated announces the post-mutation unique item count.
func (b *Bus) PublishCartUpdated(count int) {
	b.cartUpdated.Publish(count)
}

// SubscribeCartUpdated registers a handler for cartUpdated.
func (b *Bus) SubscribeCartUpdated(handler func(count int)) func() {
	return b.cartUpdated.Subscribe(handler)
}

// PublishCartToggle announces a sidebar visibility change.
func (b *Bus) PublishCartToggle() {
	b.cartToggle.Publish(struct{}{})
}

// SubscribeCartToggle registers a handler for cartToggle.
func (b *Bus) SubscribeCartToggle(handler func()) func() {
	return b.cartToggle.Subscribe(func(struct{}) { handler() })
}

// SubscriberCount returns the number of live subscriptions across both events.
func (b *Bus) SubscriberCount() int {
	return b.cartUpdated.Len() + b.cartToggle.Len()
}
