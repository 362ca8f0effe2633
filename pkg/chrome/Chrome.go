package chrome

import (
	"context"
	"fmt"
	"strings"

	"github.com/deskpilot/deskpilot/pkg/logger"
	"github.com/deskpilot/deskpilot/pkg/metrics"
	"github.com/deskpilot/deskpilot/pkg/shell"
	"github.com/deskpilot/deskpilot/pkg/static"
	"go.uber.org/zap"
)

func New(runner *shell.Runner, binary string, userDataDir string) *Service {
	if binary == "" {
		binary = static.DEFAULT_CHROME_BIN
	}

	return &Service{
		runner:      runner,
		binary:      binary,
		userDataDir: userDataDir,
		log:         logger.Named("chrome"),
	}
}

// Open launches url in the given profile (empty means the browser default).
// Only http and https URLs are accepted; anything else comes back as a
// failed result without spawning a process.
func (s *Service) Open(ctx context.Context, url string, profile string) LaunchResult {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return LaunchResult{
			raw: shell.ExecutionResult{
				Success:    false,
				ReturnCode: static.SPAWN_FAILURE_CODE,
				Stderr:     fmt.Sprintf("refusing to open non-http url %q", url),
			},
			URL:     url,
			Profile: profile,
		}
	}

	args := []string{s.binary}

	if profile != "" {
		args = append(args, fmt.Sprintf("--profile-directory=%s", profile))
	}

	args = append(args, url)

	raw := s.runner.Start(args)
	metrics.ChromeLaunches.Increment(metrics.Outcome(raw.Success))

	if !raw.Success {
		s.log.Warn("browser launch failed",
			zap.String("url", url),
			zap.String("profile", profile),
			zap.String("stderr", raw.Stderr),
		)
	}

	return LaunchResult{raw: raw, URL: url, Profile: profile}
}
