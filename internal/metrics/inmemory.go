package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	LoginSuccesses     uint64
	LoginFailures      uint64
	AppsCreated        uint64
	AppsUpdated        uint64
	AppsDeleted        uint64
	AppListCacheHits   uint64
	AppListCacheMisses uint64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	loginSuccesses     uint64
	loginFailures      uint64
	appsCreated        uint64
	appsUpdated        uint64
	appsDeleted        uint64
	appListCacheHits   uint64
	appListCacheMisses uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		LoginSuccesses:     atomic.LoadUint64(&m.loginSuccesses),
		LoginFailures:      atomic.LoadUint64(&m.loginFailures),
		AppsCreated:        atomic.LoadUint64(&m.appsCreated),
		AppsUpdated:        atomic.LoadUint64(&m.appsUpdated),
		AppsDeleted:        atomic.LoadUint64(&m.appsDeleted),
		AppListCacheHits:   atomic.LoadUint64(&m.appListCacheHits),
		AppListCacheMisses: atomic.LoadUint64(&m.appListCacheMisses),
	}
}

// IncLoginSuccess increments the successful login counter.
func (m *InMemoryRecorder) IncLoginSuccess() {
	atomic.AddUint64(&m.loginSuccesses, 1)
}

// IncLoginFailure increments the failed login counter.
func (m *InMemoryRecorder) IncLoginFailure() {
	atomic.AddUint64(&m.loginFailures, 1)
}

// IncAppCreated increments the application created counter.
func (m *InMemoryRecorder) IncAppCreated() {
	atomic.AddUint64(&m.appsCreated, 1)
}

// IncAppUpdated increments the application updated counter.
func (m *InMemoryRecorder) IncAppUpdated() {
	atomic.AddUint64(&m.appsUpdated, 1)
}

// IncAppDeleted increments the application deleted counter.
func (m *InMemoryRecorder) IncAppDeleted() {
	atomic.AddUint64(&m.appsDeleted, 1)
}

// IncAppListCacheHit increments the catalog cache hit counter.
func (m *InMemoryRecorder) IncAppListCacheHit() {
	atomic.AddUint64(&m.appListCacheHits, 1)
}

// IncAppListCacheMiss increments the catalog cache miss counter.
func (m *InMemoryRecorder) IncAppListCacheMiss() {
	atomic.AddUint64(&m.appListCacheMisses, 1)
}
