package client

import (
	"context"
	"fmt"
	"time"

	"github.com/shaiso/pollination-go/internal/domain"
	"github.com/shaiso/pollination-go/internal/telemetry"
)

const (
	defaultPollInterval = 60 * time.Second
	defaultMaxPolls     = 5
)

// PollOptions — параметры ожидания завершения job.
type PollOptions struct {
	// Interval — пауза между опросами. Default: 60s.
	Interval time.Duration

	// MaxPolls — бюджет опросов. Default: 5.
	MaxPolls int
}

// WaitForJob опрашивает статус job с фиксированным бюджетом попыток
// до первого финального статуса.
//
// Возвращает job в последнем известном состоянии и:
//   - nil, если job завершился со статусом Completed
//   - ErrJobCancelled / ErrJobFailed для остальных финальных статусов
//   - ErrPollBudget, если бюджет исчерпан, а job ещё выполняется
//
// Пауза между опросами прерывается отменой контекста.
func (c *Client) WaitForJob(ctx context.Context, project, jobID string, opts PollOptions) (*domain.Job, error) {
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	maxPolls := opts.MaxPolls
	if maxPolls <= 0 {
		maxPolls = defaultMaxPolls
	}

	logger := telemetry.WithJobID(telemetry.WithProjectID(c.logger, c.org+"/"+project), jobID)
	logger.Info("waiting for job",
		"max_polls", maxPolls,
		"interval", interval,
		"budget", time.Duration(maxPolls)*interval,
	)

	var job *domain.Job
	for remaining := maxPolls; remaining > 0; remaining-- {
		var err error
		job, err = c.GetJob(ctx, project, jobID)
		if err != nil {
			return nil, err
		}

		status := job.CurrentStatus()
		switch status {
		case domain.JobStatusCompleted:
			logger.Info("job finished")
			return job, nil
		case domain.JobStatusCancelled:
			return job, fmt.Errorf("%w: %s", ErrJobCancelled, jobID)
		case domain.JobStatusFailed:
			return job, fmt.Errorf("%w: %s", ErrJobFailed, jobID)
		}

		logger.Info("job not finished yet", "status", status, "polls_remaining", remaining-1)

		if remaining == 1 {
			break
		}
		if err := sleep(ctx, interval); err != nil {
			return job, err
		}
	}

	return job, fmt.Errorf("%w: job %s still %s after %d polls",
		ErrPollBudget, jobID, job.CurrentStatus(), maxPolls)
}

// sleep ждёт d или отмену контекста.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
