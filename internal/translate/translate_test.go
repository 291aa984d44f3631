package translate

import (
	"context"
	"sync"
	"sync/atomic"
)

// fakeTranslator returns scripted results in order; the last one repeats.
type fakeTranslator struct {
	provider Provider
	mu       sync.Mutex
	results  []fakeResult
	calls    atomic.Int32
	texts    []string
	block    chan struct{}
}

type fakeResult struct {
	out string
	err error
}

func newFake(p Provider, results ...fakeResult) *fakeTranslator {
	return &fakeTranslator{provider: p, results: results}
}

func (f *fakeTranslator) Translate(ctx context.Context, text, _ string) (string, error) {
	n := int(f.calls.Add(1))
	f.mu.Lock()
	f.texts = append(f.texts, text)
	f.mu.Unlock()

	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	idx := n - 1
	if idx >= len(f.results) {
		idx = len(f.results) - 1
	}
	r := f.results[idx]
	return r.out, r.err
}

func (f *fakeTranslator) Provider() Provider { return f.provider }

func (f *fakeTranslator) Close() error { return nil }

func (f *fakeTranslator) callCount() int { return int(f.calls.Load()) }

func (f *fakeTranslator) lastText() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.texts) == 0 {
		return ""
	}
	return f.texts[len(f.texts)-1]
}

func ok(s string) fakeResult { return fakeResult{out: s} }

func fail(err error) fakeResult { return fakeResult{err: err} }
