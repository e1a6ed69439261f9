package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncLoginSuccess is a no-op.
func (n *NoopRecorder) IncLoginSuccess() {}

// IncLoginFailure is a no-op.
func (n *NoopRecorder) IncLoginFailure() {}

// IncAppCreated is a no-op.
func (n *NoopRecorder) IncAppCreated() {}

// IncAppUpdated is a no-op.
func (n *NoopRecorder) IncAppUpdated() {}

// IncAppDeleted is a no-op.
func (n *NoopRecorder) IncAppDeleted() {}

// IncAppListCacheHit is a no-op.
func (n *NoopRecorder) IncAppListCacheHit() {}

// IncAppListCacheMiss is a no-op.
func (n *NoopRecorder) IncAppListCacheMiss() {}
