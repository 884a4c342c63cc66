package messaging

import (
	"testing"

	"github.com/ariebrainware/dentist-api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster_FanOut(t *testing.T) {
	b := NewBroadcaster()
	first, cancelFirst := b.Subscribe()
	second, cancelSecond := b.Subscribe()
	defer cancelSecond()
	require.Equal(t, 2, b.Subscribers())

	entry := model.QueueEntry{ComplaintID: 1, Name: "Jane Doe", ChiefComplaint: "Toothache"}
	b.Publish(entry)
	assert.Equal(t, entry, <-first)
	assert.Equal(t, entry, <-second)

	cancelFirst()
	cancelFirst()
	assert.Equal(t, 1, b.Subscribers())
	_, open := <-first
	assert.False(t, open)
}

func TestBroadcaster_SlowSubscriberDropsEntries(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe()
	defer cancel()

	for i := 0; i < subscriberBuffer+5; i++ {
		b.Publish(model.QueueEntry{ComplaintID: uint(i + 1)})
	}
	assert.Len(t, ch, subscriberBuffer)
	assert.Equal(t, uint(1), (<-ch).ComplaintID)
}

func TestBroadcaster_Close(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe()
	b.Close()

	_, open := <-ch
	assert.False(t, open)
	cancel()

	late, _ := b.Subscribe()
	_, open = <-late
	assert.False(t, open)
	assert.Zero(t, b.Subscribers())
}
