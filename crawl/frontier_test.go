package crawl_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/jswierad/guidecrawl"
	"github.com/jswierad/guidecrawl/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier_FIFOOrder(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	f.Push(guidecrawl.PageTask{URL: "https://example.com/guide/a"})
	f.Push(guidecrawl.PageTask{URL: "https://example.com/guide/b"})
	f.Push(guidecrawl.PageTask{URL: "https://example.com/guide/c"})

	first, ok := f.Pop()
	require.True(t, ok)
	assert.Equal(t, "https://example.com/guide/a", first.URL)

	second, ok := f.Pop()
	require.True(t, ok)
	assert.Equal(t, "https://example.com/guide/b", second.URL)

	third, ok := f.Pop()
	require.True(t, ok)
	assert.Equal(t, "https://example.com/guide/c", third.URL)

	_, ok = f.Pop()
	assert.False(t, ok)
}

func TestFrontier_PushRejectsDuplicates(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	assert.True(t, f.Push(guidecrawl.PageTask{URL: "https://example.com/guide/a"}))
	assert.False(t, f.Push(guidecrawl.PageTask{URL: "https://example.com/guide/a"}))
	assert.Equal(t, 1, f.Len())
}

func TestFrontier_StripsFragments(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	assert.True(t, f.Push(guidecrawl.PageTask{URL: "https://example.com/guide/a#intro"}))

	// URLs differing only by fragment are duplicates
	assert.False(t, f.Push(guidecrawl.PageTask{URL: "https://example.com/guide/a#details"}))
	assert.False(t, f.Push(guidecrawl.PageTask{URL: "https://example.com/guide/a"}))

	task, ok := f.Pop()
	require.True(t, ok)
	assert.Equal(t, "https://example.com/guide/a", task.URL, "stored URL should have fragment stripped")
}

func TestFrontier_Seen(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	assert.False(t, f.Seen("https://example.com/guide/a"))

	f.Push(guidecrawl.PageTask{URL: "https://example.com/guide/a"})

	assert.True(t, f.Seen("https://example.com/guide/a"))
	assert.True(t, f.Seen("https://example.com/guide/a#section"))

	// Popping does not forget the URL
	f.Pop()
	assert.True(t, f.Seen("https://example.com/guide/a"))
}

func TestFrontier_ConcurrentPushAdmitsOnce(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	const goroutines = 32
	const urls = 10

	var admitted sync.Map
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < urls; i++ {
				url := fmt.Sprintf("https://example.com/guide/%d", i)
				if f.Push(guidecrawl.PageTask{URL: url}) {
					if _, loaded := admitted.LoadOrStore(url, true); loaded {
						t.Errorf("URL %s admitted more than once", url)
					}
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, urls, f.Len())
}
