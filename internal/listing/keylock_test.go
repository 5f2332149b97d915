package listing

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyLock_SerializesPerKey(t *testing.T) {
	locks := NewKeyLock()

	var mu sync.Mutex
	counters := map[string]int{}
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		for _, key := range []string{"+911111111111", "+912222222222"} {
			wg.Add(1)
			go func(key string) {
				defer wg.Done()
				locks.Lock(key)
				defer locks.Unlock(key)
				mu.Lock()
				counters[key]++
				mu.Unlock()
			}(key)
		}
	}
	wg.Wait()

	assert.Equal(t, 50, counters["+911111111111"])
	assert.Equal(t, 50, counters["+912222222222"])
}

func TestKeyLock_IndependentKeys(t *testing.T) {
	locks := NewKeyLock()

	locks.Lock("a")
	done := make(chan struct{})
	go func() {
		locks.Lock("b")
		locks.Unlock("b")
		close(done)
	}()
	<-done
	locks.Unlock("a")
}
