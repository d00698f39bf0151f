package mock

import (
	"context"

	"github.com/jswierad/guidecrawl"
)

var _ guidecrawl.Frontier = (*Frontier)(nil)

// Frontier is a mock implementation of guidecrawl.Frontier.
type Frontier struct {
	PushFn func(task guidecrawl.PageTask) bool
	PopFn  func() (guidecrawl.PageTask, bool)
	LenFn  func() int
	SeenFn func(url string) bool
}

func (f *Frontier) Push(task guidecrawl.PageTask) bool {
	return f.PushFn(task)
}

func (f *Frontier) Pop() (guidecrawl.PageTask, bool) {
	return f.PopFn()
}

func (f *Frontier) Len() int {
	return f.LenFn()
}

func (f *Frontier) Seen(url string) bool {
	return f.SeenFn(url)
}

var _ guidecrawl.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of guidecrawl.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx)
}
