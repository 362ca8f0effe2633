package speedtest

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Service runs network speed measurements through the external speedtest
// library. The measurement methodology is the library's concern; this
// service owns scheduling and the last-result state.
type Service struct {
	state *State
	log   *zap.Logger
}

// Result is one finished measurement.
type Result struct {
	Timestamp    time.Time `json:"timestamp"`
	ServerName   string    `json:"server_name"`
	ServerHost   string    `json:"server_host"`
	LatencyMs    float64   `json:"latency_ms"`
	DownloadMbps float64   `json:"download_mbps"`
	UploadMbps   float64   `json:"upload_mbps"`
}

// State is the explicitly owned mutable state of the service: the last
// result plus a running flag, guarded for concurrent handlers. It is
// constructed once and passed by reference; there is no package-level
// singleton.
type State struct {
	lock    sync.RWMutex
	last    *Result
	running bool
}

func NewState() *State {
	return &State{}
}

func (s *State) Last() *Result {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.last
}

func (s *State) Running() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.running
}

// begin flips the running flag, refusing a second concurrent run.
func (s *State) begin() bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.running {
		return false
	}

	s.running = true
	return true
}

func (s *State) finish(result *Result) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.running = false

	if result != nil {
		s.last = result
	}
}
