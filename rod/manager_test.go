package rod

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrowserManager_RecyclesOnlyWhenIdle(t *testing.T) {
	t.Parallel()

	bm := &BrowserManager{maxPages: 1}
	bm.Browser()
	bm.Browser()

	bm.mu.Lock()
	defer bm.mu.Unlock()

	// The page budget is spent, but another attempt still holds the browser.
	assert.False(t, bm.releaseLocked())
	// The last release triggers the recycle.
	assert.True(t, bm.releaseLocked())
}

func TestBrowserManager_NoRecycleBeforeBudget(t *testing.T) {
	t.Parallel()

	bm := &BrowserManager{maxPages: 3}
	bm.Browser()

	bm.mu.Lock()
	defer bm.mu.Unlock()

	assert.False(t, bm.releaseLocked())
}

func TestBrowserManager_NoRecycleAfterClose(t *testing.T) {
	t.Parallel()

	bm := &BrowserManager{maxPages: 1}
	bm.Browser()
	bm.closed.Store(true)

	bm.mu.Lock()
	defer bm.mu.Unlock()

	assert.False(t, bm.releaseLocked())
}
