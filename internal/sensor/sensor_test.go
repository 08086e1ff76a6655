package sensor

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBAC(t *testing.T) {
	assert.Equal(t, 0.0, ToBAC(0))
	assert.InDelta(t, 0.3, ToBAC(4095), 1e-12)
	assert.InDelta(t, 0.15, ToBAC(2047.5), 1e-12)
}

func TestSample_TakesPeak(t *testing.T) {
	reader, err := New(&Config{
		Source:   strings.NewReader("100\n2047.5\n\n300\n"),
		Samples:  10,
		Interval: time.Millisecond,
	})
	require.NoError(t, err)

	bac, err := reader.Sample(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0.15, bac, 1e-12)
}

func TestSample_StopsAtSampleCount(t *testing.T) {
	reader, err := New(&Config{
		Source:   strings.NewReader("10\n20\n4095\n"),
		Samples:  2,
		Interval: -1,
	})
	require.NoError(t, err)

	bac, err := reader.Sample(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, ToBAC(20), bac, 1e-12)

	// the remaining line is picked up by the next run
	bac, err = reader.Sample(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0.3, bac, 1e-12)
}

func TestSample_Errors(t *testing.T) {
	reader, err := New(&Config{Source: strings.NewReader("")})
	require.NoError(t, err)
	_, err = reader.Sample(context.Background())
	assert.ErrorIs(t, err, ErrNoSamples)

	reader, err = New(&Config{Source: strings.NewReader("12\nabc\n")})
	require.NoError(t, err)
	_, err = reader.Sample(context.Background())
	assert.ErrorIs(t, err, ErrInvalidSample)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	reader, err = New(&Config{Source: strings.NewReader("12\n")})
	require.NoError(t, err)
	_, err = reader.Sample(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&Config{})
	assert.Error(t, err)
}
