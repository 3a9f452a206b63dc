package interestoperator

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler runs the interest operator over all accounts on a cron
// schedule. The per-account per-period guard in the operator makes an
// overlapping or early run harmless.
type Scheduler struct {
	cron     *cron.Cron
	operator *Operator
	logger   zerolog.Logger
}

// NewScheduler returns a Scheduler accruing interest per the cron spec.
func NewScheduler(operator *Operator, spec string, logger zerolog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(),
		operator: operator,
		logger:   logger,
	}

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, err
	}

	return s, nil
}

// Start launches the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the cron loop and waits for a running accrual to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) run() {
	ctx := s.logger.WithContext(context.Background())

	accounts, err := s.operator.repo.ListAccounts(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("interest run: listing accounts failed")
		return
	}

	for _, account := range accounts {
		if err := s.operator.CreditInterest(ctx, account.ID); err != nil {
			s.logger.Error().Err(err).Int32("account_id", account.ID).Msg("interest accrual failed")
		}
	}
}
