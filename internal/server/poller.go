package server

import (
	"context"

	"github.com/preston-bernstein/league-stats-service/internal/poller"
)

// Poller defines the award sweeper behavior the server needs.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}
