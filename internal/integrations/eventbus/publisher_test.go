package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	sent   []published
	err    error
	closed bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublish(t *testing.T) {
	ch := &fakeChannel{}
	p := NewPublisher(ch, "seat-booking.events")

	booking := &domain.Booking{
		ID: 5, UserID: 7, SeatID: 3,
		Date:   time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		Status: domain.StatusBlocked,
	}
	event := NewSeatEvent(booking, 3, time.Date(2026, 1, 9, 15, 1, 0, 0, time.UTC))

	require.NoError(t, p.Publish(context.Background(), RoutingKey(booking.Status), event))
	require.Len(t, ch.sent, 1)

	sent := ch.sent[0]
	assert.Equal(t, "seat-booking.events", sent.exchange)
	assert.Equal(t, RoutingSeatBlocked, sent.key)
	assert.Equal(t, amqp.Persistent, sent.msg.DeliveryMode)

	var decoded SeatEvent
	require.NoError(t, json.Unmarshal(sent.msg.Body, &decoded))
	assert.Equal(t, "2026-01-12", decoded.Date)
	assert.Equal(t, "BLOCKED", decoded.Status)
	assert.Equal(t, "2026-01-09T15:01:00Z", decoded.OccurredAt)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestPublish_Error(t *testing.T) {
	p := NewPublisher(&fakeChannel{err: errors.New("channel closed")}, "x")
	err := p.Publish(context.Background(), RoutingSeatBooked, SeatEvent{})
	assert.Error(t, err)
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, RoutingSeatBooked, RoutingKey(domain.StatusBooked))
	assert.Equal(t, RoutingSeatBlocked, RoutingKey(domain.StatusBlocked))
	assert.Equal(t, RoutingSeatVacated, RoutingKey(domain.StatusVacated))
}
