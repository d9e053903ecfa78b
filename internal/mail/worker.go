package mail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
)

// Start starts the retry worker
func (m *Mailer) Start(ctx context.Context) error {
	if m.ctx != nil && m.cancel != nil {
		return fmt.Errorf("mailer already started")
	}

	m.ctx, m.cancel = context.WithCancel(ctx)
	go m.worker(m.ctx)
	return nil
}

// Stop stops the worker gracefully
func (m *Mailer) Stop() error {
	if m.cancel == nil {
		return fmt.Errorf("mailer already stopped or not started")
	}

	m.cancel()
	m.cancel = nil
	m.ctx = nil
	return nil
}

func (m *Mailer) worker(ctx context.Context) {
	ticker := time.NewTicker(m.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := m.handleUnsent(ctx); err != nil {
				slog.Default().ErrorContext(ctx, "can't handle unsent mails",
					slog.String("err", err.Error()),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}

// unsentBatch bounds one retry pass.
const unsentBatch = 100

// handleUnsent resends queued mail, oldest first, until the relay reports
// its rate limit. Rows that failed MaxAttempts times are left alone.
func (m *Mailer) handleUnsent(ctx context.Context) error {
	unsentEmails, err := m.mailRepository.ListUnsent(ctx, m.c.MaxAttempts, unsentBatch)
	if err != nil {
		return fmt.Errorf("can't get unsent mails: %w", err)
	}

	for _, email := range unsentEmails {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := m.send(ctx, &email); err != nil {
			slog.Default().ErrorContext(ctx, "can't send mail",
				slog.String("err", err.Error()),
				slog.Int("id", email.ID),
				slog.String("to", email.To),
			)

			if errors.Is(err, gerr.MailApiLimitReached) {
				return nil
			}

			if err := m.mailRepository.MarkFailed(ctx, email.ID, err.Error()); err != nil {
				return fmt.Errorf("can't log error for email %v: %w", email.ID, err)
			}
			continue
		}

		if err := m.mailRepository.MarkSent(ctx, email.ID); err != nil {
			return fmt.Errorf("can't update sent status for email %v: %w", email.ID, err)
		}
	}

	return nil
}
