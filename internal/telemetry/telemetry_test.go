package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	p, err := Setup(context.Background(), "", "")
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NotNil(t, p.Tracer())

	_, span := p.Tracer().Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestSetup_Enabled(t *testing.T) {
	p, err := Setup(context.Background(), "localhost:4318", "photoboard-test")
	require.NoError(t, err)
	assert.True(t, p.Enabled())

	_, span := p.Tracer().Start(context.Background(), "get_boards")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	// Shutdown may fail to flush to an absent collector; it must not hang.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = p.Shutdown(ctx)
}

func TestNilProvider(t *testing.T) {
	var p *Provider
	assert.NotNil(t, p.Tracer())
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}
