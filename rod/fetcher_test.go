package rod

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFetcherOptions(t *testing.T) {
	t.Parallel()

	f := &Fetcher{
		readySelector: DefaultReadySelector,
		settleDelay:   DefaultSettleDelay,
		timeout:       DefaultRenderTimeout,
	}

	WithReadySelector("article")(f)
	WithSettleDelay(500 * time.Millisecond)(f)
	WithRenderTimeout(3 * time.Second)(f)

	assert.Equal(t, "article", f.readySelector)
	assert.Equal(t, 500*time.Millisecond, f.settleDelay)
	assert.Equal(t, 3*time.Second, f.timeout)
}

func TestFetcherDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "main", DefaultReadySelector)
	assert.Equal(t, 2*time.Second, DefaultSettleDelay)
	assert.Equal(t, 10*time.Second, DefaultRenderTimeout)
}
