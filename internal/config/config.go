package config

import "sync"

// RuntimeSettings holds values that may change while the loop is running.
type RuntimeSettings struct {
	mu            sync.RWMutex
	fpsLimit      int
	showProfiling bool
}

const (
	DefaultFPSLimit = 60
	MinFPSLimit     = 10
	MaxFPSLimit     = 240
)

var globalRuntimeSettings = &RuntimeSettings{
	fpsLimit: DefaultFPSLimit,
}

// GetFPSLimit returns the frame rate the loop paces itself to
func GetFPSLimit() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap. Smoothing rates are per frame, so this
// also changes how fast everything moves.
func SetFPSLimit(limit int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	if limit < MinFPSLimit {
		limit = MinFPSLimit
	}
	if limit > MaxFPSLimit {
		limit = MaxFPSLimit
	}

	globalRuntimeSettings.fpsLimit = limit
}

// GetShowProfiling returns whether the profiling overlay is visible
func GetShowProfiling() bool {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.showProfiling
}

// ToggleProfiling flips the profiling overlay
func ToggleProfiling() {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.showProfiling = !globalRuntimeSettings.showProfiling
}
