package speedtest

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStateLastStartsEmpty(t *testing.T) {
	state := NewState()

	assert.Nil(t, state.Last())
	assert.False(t, state.Running())
}

func TestStateSingleRun(t *testing.T) {
	state := NewState()

	assert.True(t, state.begin())
	assert.True(t, state.Running())
	assert.False(t, state.begin())

	result := &Result{Timestamp: time.Now(), DownloadMbps: 100}
	state.finish(result)

	assert.False(t, state.Running())
	assert.Equal(t, result, state.Last())
}

func TestStateFailedRunKeepsLast(t *testing.T) {
	state := NewState()

	first := &Result{DownloadMbps: 50}

	state.begin()
	state.finish(first)

	state.begin()
	state.finish(nil)

	assert.Equal(t, first, state.Last())
}

func TestStateConcurrentBegin(t *testing.T) {
	state := NewState()

	var wins int
	var lock sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if state.begin() {
				lock.Lock()
				wins++
				lock.Unlock()
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, wins)
}
