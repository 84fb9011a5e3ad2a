package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducer(t *testing.T) {
	p := NewProducer(Config{
		Brokers:       []string{"localhost:9092", "localhost:9093"},
		ConsumerGroup: "screening",
	})

	require.NotNil(t, p)
	assert.Equal(t, []string{"localhost:9092", "localhost:9093"}, p.brokers)
	assert.Empty(t, p.writers)
}

func TestProducerWriterReuse(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})

	w1 := p.writerFor("screening.events")
	w2 := p.writerFor("screening.events")
	assert.Same(t, w1, w2, "one topic should map to one writer")

	w3 := p.writerFor("screening.audit")
	assert.NotSame(t, w1, w3)
	assert.Len(t, p.writers, 2)
}

func TestProducerClose(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})
	_ = p.writerFor("screening.events")
	_ = p.writerFor("screening.audit")

	require.NoError(t, p.Close())
	assert.Empty(t, p.writers, "close should drop all writers")
}
