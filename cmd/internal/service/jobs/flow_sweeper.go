package jobs

import (
	"context"
	"time"

	"github.com/labstack/gommon/log"
)

const SweepInterval = 10 * time.Minute

type FlowStore interface {
	SweepStaleFlows() int
}

// FlowSweeper discards onboarding wizard flows that were started but never
// completed, so abandoned sessions do not accumulate in memory.
type FlowSweeper struct {
	flows FlowStore
}

func NewFlowSweeper(flows FlowStore) *FlowSweeper {
	return &FlowSweeper{flows: flows}
}

func (f *FlowSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(SweepInterval)
	defer ticker.Stop()

	log.Info("Onboarding flow sweeper cron started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping onboarding flow sweeper...")
			return
		case <-ticker.C:
			f.sweep()
		}
	}
}

func (f *FlowSweeper) sweep() {
	swept := f.flows.SweepStaleFlows()
	if swept > 0 {
		log.Debugf("Sweeper: discarded %d stale onboarding flows", swept)
	}
}
