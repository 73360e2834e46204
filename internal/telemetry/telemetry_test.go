package telemetry

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"postboard/internal/config"
)

func TestSetup_Disabled(t *testing.T) {
	var buf bytes.Buffer

	shutdown, err := Setup(config.Telemetry{Enabled: false}, &buf)
	require.NoError(t, err)

	assert.NoError(t, shutdown(context.Background()))
	assert.Zero(t, buf.Len())
}

func TestSetup_ExportsSpansAndMetrics(t *testing.T) {
	var buf bytes.Buffer

	shutdown, err := Setup(config.Telemetry{
		Enabled:        true,
		ServiceName:    "postboard-test",
		MetricInterval: time.Hour,
	}, &buf)
	require.NoError(t, err)

	_, span := otel.Tracer("telemetry-test").Start(context.Background(), "create-post")
	span.End()

	counter, err := otel.Meter("telemetry-test").Int64Counter("posts.created")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)

	require.NoError(t, shutdown(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "create-post")
	assert.Contains(t, out, "posts.created")
	assert.Contains(t, out, "postboard-test")
}
