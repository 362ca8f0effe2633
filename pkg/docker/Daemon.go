package docker

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// WaitDaemon probes the docker daemon until it answers or the backoff window
// closes. Used at startup so the first request does not pay the cold-start
// penalty; the server still comes up when the daemon stays away.
func (g *Gateway) WaitDaemon(ctx context.Context) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxElapsedTime = 30 * time.Second

	probe := func() error {
		result := g.runner.Run(ctx, []string{g.binary, "version", "--format", "json"}, 10*time.Second)

		if !result.Success {
			return fmt.Errorf("docker daemon not reachable: %s", result.Stderr)
		}

		return nil
	}

	return backoff.Retry(probe, backoff.WithContext(policy, ctx))
}
