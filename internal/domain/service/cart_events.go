package service

// CartEvents is the in-process bus shared by everything that renders or mutates one session's cart.
// Delivery is synchronous and in registration order. Every Subscribe returns the capability to
// deregister; callers must invoke it on teardown.
type CartEvents interface {
	// PublishCartUpdated announces the post-mutation unique item count.
	PublishCartUpdated(count int)

	// SubscribeCartUpdated registers a handler for cartUpdated.
	SubscribeCartUpdated(handler func(count int)) (unsubscribe func())

	// PublishCartToggle announces that the sidebar visibility flag changed in storage.
	PublishCartToggle()

	// SubscribeCartToggle registers a handler for cartToggle.
	SubscribeCartToggle(handler func()) (unsubscribe func())
}

// CartEventsRegistry resolves the bus of a session.
type CartEventsRegistry interface {
	Events(sessionID string) CartEvents
}
