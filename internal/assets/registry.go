package assets

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Timing constants for overlay visibility
const (
	// MinVisibleDuration is the floor on how long the overlay stays up once
	// shown, so fast loads do not flicker it
	MinVisibleDuration = 300 * time.Millisecond

	// SettleDelay is the extra pause after the minimum duration before the
	// overlay is dismissed
	SettleDelay = 200 * time.Millisecond

	// WatchdogInterval is how long a session may go without a completion
	// before a stuck-progress diagnostic is logged
	WatchdogInterval = 3 * time.Second
)

// CompletionFunc marks one registered asset as loaded. Safe to call at most
// once; repeated calls are ignored. Handles returned for duplicate keys are
// inert.
type CompletionFunc func()

// ProgressFunc reports loading progress to the UI overlay.
// Called on every registration and completion: (2, 5), (3, 5), ...
type ProgressFunc func(loaded, total int)

// Registry tracks outstanding load operations across one loading session.
// A session opens implicitly on the first registration after the previous
// session closed, and completes when every registered asset has reported in.
type Registry struct {
	mu sync.Mutex

	sessionID string
	total     int
	loaded    int
	keys      map[string]struct{}

	overlayVisible bool
	shownAt        time.Time

	onProgress ProgressFunc
	onShow     func()
	onHide     func()

	watchdog *time.Timer
}

// NewRegistry creates an empty asset registry
func NewRegistry() *Registry {
	return &Registry{}
}

// SetProgressCallback sets the callback invoked on every counter change
func (r *Registry) SetProgressCallback(callback ProgressFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onProgress = callback
}

// SetOverlayCallbacks sets the callbacks invoked when the overlay should
// appear and disappear
func (r *Registry) SetOverlayCallbacks(onShow, onHide func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onShow = onShow
	r.onHide = onHide
}

// Register adds one asset to the current loading session, opening a new
// session if none is in flight. key deduplicates repeated registration of the
// same logical resource; pass an empty key to skip deduplication. The
// returned handle reports the asset as loaded.
//
// Registration cannot fail.
func (r *Registry) Register(key string) CompletionFunc {
	r.mu.Lock()

	if r.sessionID == "" {
		r.sessionID = uuid.NewString()
		r.total = 0
		r.loaded = 0
		r.keys = make(map[string]struct{})
	}

	if key != "" {
		if _, seen := r.keys[key]; seen {
			// Duplicate registration: keep the overlay up but do not count
			// the asset twice.
			r.showOverlayLocked()
			r.mu.Unlock()
			return func() {}
		}
		r.keys[key] = struct{}{}
	}

	r.total++
	r.showOverlayLocked()
	r.notifyLocked()
	r.resetWatchdogLocked()
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(r.complete)
	}
}

// Progress returns the current session's loaded and total counters
func (r *Registry) Progress() (loaded, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loaded, r.total
}

// Percent returns loading progress 0-100, or 0 when nothing is registered
func (r *Registry) Percent() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return percent(r.loaded, r.total)
}

// complete records one finished asset and closes the session when the last
// one lands.
func (r *Registry) complete() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sessionID == "" {
		return
	}

	r.loaded++
	r.notifyLocked()

	if r.loaded >= r.total && r.total > 0 {
		r.stopWatchdogLocked()
		r.scheduleHideLocked()
	} else {
		r.resetWatchdogLocked()
	}
}

// showOverlayLocked makes the overlay visible, recording the show time the
// first time in a session. Caller holds r.mu.
func (r *Registry) showOverlayLocked() {
	if r.overlayVisible {
		return
	}
	r.overlayVisible = true
	r.shownAt = time.Now()
	if r.onShow != nil {
		r.onShow()
	}
}

// scheduleHideLocked arranges overlay dismissal after the minimum-visible
// floor plus the settle delay. The delayed callback re-checks session
// identity: a new session may have opened in the meantime and now owns the
// overlay. Caller holds r.mu.
func (r *Registry) scheduleHideLocked() {
	sessionID := r.sessionID

	elapsed := time.Since(r.shownAt)
	delay := SettleDelay
	if elapsed < MinVisibleDuration {
		delay += MinVisibleDuration - elapsed
	}

	time.AfterFunc(delay, func() {
		r.mu.Lock()
		if r.sessionID != sessionID || r.loaded < r.total {
			r.mu.Unlock()
			return
		}
		r.sessionID = ""
		r.overlayVisible = false
		onHide := r.onHide
		r.mu.Unlock()

		if onHide != nil {
			onHide()
		}
	})
}

// resetWatchdogLocked re-arms the stuck-progress diagnostic. Caller holds r.mu.
func (r *Registry) resetWatchdogLocked() {
	r.stopWatchdogLocked()
	sessionID := r.sessionID
	r.watchdog = time.AfterFunc(WatchdogInterval, func() {
		r.mu.Lock()
		loaded, total := r.loaded, r.total
		stuck := r.sessionID == sessionID && loaded < total
		r.mu.Unlock()

		if stuck {
			log.Printf("assets: loading stalled at %d/%d for %v", loaded, total, WatchdogInterval)
		}
	})
}

// stopWatchdogLocked cancels any armed watchdog. Caller holds r.mu.
func (r *Registry) stopWatchdogLocked() {
	if r.watchdog != nil {
		r.watchdog.Stop()
		r.watchdog = nil
	}
}

// notifyLocked pushes the current counters to the observer. Caller holds r.mu.
func (r *Registry) notifyLocked() {
	if r.onProgress != nil {
		r.onProgress(r.loaded, r.total)
	}
}

// percent computes round(100 * loaded / total), 0 when total is 0
func percent(loaded, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(loaded) / float64(total)))
}
