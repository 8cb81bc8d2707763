package services

import (
	"sync"
	"time"
)

const (
	DefaultAbuseWindow    = time.Hour
	DefaultAbuseThreshold = 50
	DefaultAbuseRepeat    = 10
)

type abuseKey struct {
	identity string
	endpoint string
}

type abuseWindow struct {
	start time.Time
	count int
}

// AbuseTracker tallies rate-limit rejections per identity and endpoint in
// fixed windows. It lives in process memory only; losing it loses nothing
// but pending warnings. Elapsed windows are swept at most once per window
// length, so the map holds roughly two windows of identities.
type AbuseTracker struct {
	mu        sync.Mutex
	window    time.Duration
	threshold int
	repeat    int
	entries   map[abuseKey]*abuseWindow
	lastSweep time.Time
}

func NewAbuseTracker(window time.Duration, threshold, repeat int) *AbuseTracker {
	if window <= 0 {
		window = DefaultAbuseWindow
	}
	if threshold <= 0 {
		threshold = DefaultAbuseThreshold
	}
	if repeat <= 0 {
		repeat = DefaultAbuseRepeat
	}
	return &AbuseTracker{
		window:    window,
		threshold: threshold,
		repeat:    repeat,
		entries:   make(map[abuseKey]*abuseWindow),
	}
}

// RecordRejection counts one rejection at now and reports the window's
// count and whether a warning is due: at the threshold, then every repeat
// rejections after it.
func (t *AbuseTracker) RecordRejection(identity, endpoint string, now time.Time) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if now.Sub(t.lastSweep) >= t.window {
		t.purge(now)
		t.lastSweep = now
	}

	k := abuseKey{identity: identity, endpoint: endpoint}
	w := t.entries[k]
	if w == nil || now.Sub(w.start) >= t.window {
		w = &abuseWindow{start: now}
		t.entries[k] = w
	}
	w.count++

	over := w.count - t.threshold
	return w.count, over == 0 || (over > 0 && over%t.repeat == 0)
}

// Clear forgets one tally so the next rejection opens a fresh window.
func (t *AbuseTracker) Clear(identity, endpoint string) {
	t.mu.Lock()
	delete(t.entries, abuseKey{identity: identity, endpoint: endpoint})
	t.mu.Unlock()
}

// Purge drops every window that has elapsed at now and returns how many.
func (t *AbuseTracker) Purge(now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.purge(now)
}

func (t *AbuseTracker) purge(now time.Time) int {
	n := 0
	for k, w := range t.entries {
		if now.Sub(w.start) >= t.window {
			delete(t.entries, k)
			n++
		}
	}
	return n
}

func (t *AbuseTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
