package speedtest

import (
	"context"
	"time"

	"github.com/deskpilot/deskpilot/pkg/logger"
	"github.com/deskpilot/deskpilot/pkg/metrics"
	"github.com/pkg/errors"
	"github.com/showwin/speedtest-go/speedtest"
	"go.uber.org/zap"
)

func New(state *State) *Service {
	return &Service{
		state: state,
		log:   logger.Named("speedtest"),
	}
}

func (s *Service) Last() *Result {
	return s.state.Last()
}

func (s *Service) Running() bool {
	return s.state.Running()
}

// Run performs one full measurement (ping, download, upload) against the
// nearest server and stores it as the last result. Only one run may be in
// flight at a time.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	if !s.state.begin() {
		return nil, errors.New("a speed test is already running")
	}

	result, err := s.measure(ctx)
	s.state.finish(result)

	metrics.SpeedtestRuns.Increment(metrics.Outcome(err == nil))

	if err != nil {
		s.log.Warn("speed test failed", zap.Error(err))
		return nil, err
	}

	s.log.Info("speed test finished",
		zap.String("server", result.ServerName),
		zap.Float64("download_mbps", result.DownloadMbps),
		zap.Float64("upload_mbps", result.UploadMbps),
	)

	return result, nil
}

func (s *Service) measure(ctx context.Context) (*Result, error) {
	client := speedtest.New()

	servers, err := client.FetchServerListContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch server list")
	}

	targets, err := servers.FindServer([]int{})
	if err != nil {
		return nil, errors.Wrap(err, "no speed test server available")
	}

	if len(targets) == 0 {
		return nil, errors.New("no speed test server available")
	}

	server := targets[0]

	if err = server.PingTestContext(ctx, func(latency time.Duration) {}); err != nil {
		return nil, errors.Wrap(err, "ping test failed")
	}

	if err = server.DownloadTestContext(ctx); err != nil {
		return nil, errors.Wrap(err, "download test failed")
	}

	if err = server.UploadTestContext(ctx); err != nil {
		return nil, errors.Wrap(err, "upload test failed")
	}

	return &Result{
		Timestamp:    time.Now().UTC(),
		ServerName:   server.Name,
		ServerHost:   server.Host,
		LatencyMs:    float64(server.Latency.Milliseconds()),
		DownloadMbps: server.DLSpeed.Mbps(),
		UploadMbps:   server.ULSpeed.Mbps(),
	}, nil
}
