package syncbus

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopic_DeliversInRegistrationOrder(t *testing.T) {
	var topic Topic[int]
	var got []string

	topic.Subscribe(func(n int) { got = append(got, "first") })
	topic.Subscribe(func(n int) { got = append(got, "second") })
	topic.Subscribe(func(n int) { got = append(got, "third") })

	topic.Publish(1)

	assert.Equal(t, []string{"first", "second", "third"}, got)
}

func TestTopic_UnsubscribeStopsDelivery(t *testing.T) {
	var topic Topic[int]
	var a, b []int

	unsubA := topic.Subscribe(func(n int) { a = append(a, n) })
	topic.Subscribe(func(n int) { b = append(b, n) })

	topic.Publish(1)
	unsubA()
	unsubA()
	topic.Publish(2)

	assert.Equal(t, []int{1}, a)
	assert.Equal(t, []int{1, 2}, b)
	assert.Equal(t, 1, topic.Len())
}

func TestTopic_ChangesDuringPublishApplyToNextPublish(t *testing.T) {
	var topic Topic[int]
	var late []int
	var unsubSecond func()
	secondCalls := 0

	topic.Subscribe(func(n int) {
		unsubSecond()
		topic.Subscribe(func(n int) { late = append(late, n) })
	})
	unsubSecond = topic.Subscribe(func(n int) { secondCalls++ })

	topic.Publish(1)
	assert.Equal(t, 1, secondCalls)
	assert.Empty(t, late)

	topic.Publish(2)
	assert.Equal(t, 1, secondCalls)
	assert.Equal(t, []int{2}, late)
}

func TestTopic_PublishWithoutSubscribers(t *testing.T) {
	var topic Topic[string]

	assert.NotPanics(t, func() { topic.Publish("nobody") })
}

func TestBus_CartEvents(t *testing.T) {
	bus := NewBus()
	var counts []int
	toggles := 0

	unsubUpdated := bus.SubscribeCartUpdated(func(count int) { counts = append(counts, count) })
	unsubToggle := bus.SubscribeCartToggle(func() { toggles++ })
	assert.Equal(t, 2, bus.SubscriberCount())

	bus.PublishCartUpdated(3)
	bus.PublishCartUpdated(0)
	bus.PublishCartToggle()

	assert.Equal(t, []int{3, 0}, counts)
	assert.Equal(t, 1, toggles)

	unsubUpdated()
	unsubToggle()
	assert.Equal(t, 0, bus.SubscriberCount())

	bus.PublishCartUpdated(5)
	assert.Equal(t, []int{3, 0}, counts)
}

func TestBus_ConcurrentSubscribeAndPublish(t *testing.T) {
	bus := NewBus()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unsub := bus.SubscribeCartUpdated(func(int) {})
			unsub()
		}()
		go func(n int) {
			defer wg.Done()
			bus.PublishCartUpdated(n)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, bus.SubscriberCount())
}

func TestRegistry_AttachSharesBusPerSession(t *testing.T) {
	registry := NewRegistry()

	first, releaseFirst := registry.Attach("s1")
	second, releaseSecond := registry.Attach("s1")
	other, releaseOther := registry.Attach("s2")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Same(t, first, registry.Lookup("s1"))
	assert.Equal(t, 2, registry.Len())

	releaseFirst()
	releaseFirst()
	assert.Same(t, second, registry.Lookup("s1"))

	releaseSecond()
	releaseOther()
	assert.Equal(t, 0, registry.Len())
}

func TestRegistry_LookupWithoutAttachIsDetached(t *testing.T) {
	registry := NewRegistry()

	bus := registry.Lookup("nobody")
	require.NotNil(t, bus)
	assert.NotPanics(t, func() { bus.PublishCartUpdated(1) })
	assert.Equal(t, 0, registry.Len())

	attached, release := registry.Attach("nobody")
	defer release()
	assert.NotSame(t, bus, attached)
}
