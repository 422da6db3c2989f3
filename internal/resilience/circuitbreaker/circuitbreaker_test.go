package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StartsClosed(t *testing.T) {
	cb := New(GitHubAPIConfig())

	assert.Equal(t, "github-api", cb.Name())
	assert.Equal(t, gobreaker.StateClosed, cb.State())
	assert.False(t, cb.IsOpen())
}

func TestExecute_Success(t *testing.T) {
	cb := New(DefaultConfig("test"))

	result, err := cb.Execute(func() (interface{}, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestExecute_TripsAfterFailures(t *testing.T) {
	cfg := Config{
		Name:             "test-trip",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 0.5,
		MinRequests:      3,
	}
	cb := New(cfg)
	boom := errors.New("upstream down")

	// Below MinRequests the circuit must stay closed regardless of failures.
	for i := 0; i < 2; i++ {
		_, err := cb.Execute(func() (interface{}, error) { return nil, boom })
		assert.ErrorIs(t, err, boom)
		assert.False(t, cb.IsOpen())
	}

	// Third failure crosses MinRequests with 100% failure rate.
	_, err := cb.Execute(func() (interface{}, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	assert.True(t, cb.IsOpen())

	// Open circuit rejects without invoking the function.
	invoked := false
	_, err = cb.Execute(func() (interface{}, error) {
		invoked = true
		return nil, nil
	})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.False(t, invoked)
}
