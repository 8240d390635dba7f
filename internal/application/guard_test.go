package application

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codevet/codevet/internal/domain"
)

func TestFlightGuard_BeginEnd(t *testing.T) {
	g := NewFlightGuard()
	assert.False(t, g.InFlight())

	require.NoError(t, g.Begin())
	assert.True(t, g.InFlight())

	err := g.Begin()
	require.ErrorIs(t, err, domain.ErrValidationInProgress)

	g.End()
	assert.False(t, g.InFlight())
	require.NoError(t, g.Begin())
	g.End()
}

func TestFlightGuard_EndWithoutBeginIsSafe(t *testing.T) {
	g := NewFlightGuard()
	g.End()
	require.NoError(t, g.Begin())
	g.End()
}

func TestFlightGuard_ConcurrentBeginAdmitsOne(t *testing.T) {
	g := NewFlightGuard()

	const n = 32
	var wg sync.WaitGroup
	admitted := make(chan struct{}, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.Begin() == nil {
				admitted <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(admitted)

	count := 0
	for range admitted {
		count++
	}
	assert.Equal(t, 1, count)
}
