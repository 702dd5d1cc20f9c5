package mykafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("no deadline on publish context")
	}
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestNewProducer_NoBrokers(t *testing.T) {
	_, err := NewProducer(nil)
	require.Error(t, err)
}

func TestProducer_PublishEvent(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{writer: w}

	event := map[string]any{"type": "item_added", "user_id": 1}
	require.NoError(t, p.PublishEvent(context.Background(), "cart_events", "1", event))

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, "cart_events", msg.Topic)
	assert.Equal(t, "1", string(msg.Key))

	var got map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, "item_added", got["type"])
	assert.EqualValues(t, 1, got["user_id"])

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestProducer_PublishEvent_WriteError(t *testing.T) {
	p := &Producer{writer: &fakeWriter{err: errors.New("broker down")}}

	err := p.PublishEvent(context.Background(), "cart_events", "1", map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}

func TestProducer_PublishEvent_MarshalError(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{writer: w}

	err := p.PublishEvent(context.Background(), "cart_events", "1", make(chan int))
	require.Error(t, err)
	assert.Empty(t, w.msgs)
}

func TestNop(t *testing.T) {
	var n Nop
	assert.NoError(t, n.PublishEvent(context.Background(), "t", "k", nil))
	assert.NoError(t, n.Close())
}
