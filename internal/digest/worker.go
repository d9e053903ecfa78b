package digest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jekabolt/wholesale-portal/internal/analytics"
	"github.com/jekabolt/wholesale-portal/internal/dto"
	"github.com/jekabolt/wholesale-portal/internal/entity"
	"golang.org/x/sync/errgroup"
)

func (w *Worker) worker(ctx context.Context) {
	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n, err := w.SendAtRisk(ctx)
			if err != nil {
				slog.Default().ErrorContext(ctx, "can't send at-risk digest",
					slog.String("err", err.Error()),
				)
				continue
			}
			slog.Default().InfoContext(ctx, "at-risk digest done",
				slog.Int("retailers", n),
			)
		case <-ctx.Done():
			return
		}
	}
}

// SendAtRisk mails the current at-risk list and returns its length. Nothing
// is sent when the list is empty.
func (w *Worker) SendAtRisk(ctx context.Context) (int, error) {
	var (
		orders    []entity.OrderFull
		retailers []entity.Retailer
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = w.repo.Order().ListOrdersFull(gctx, entity.OrderFilter{})
		if err != nil {
			return fmt.Errorf("can't list orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		retailers, err = w.repo.Retailers().ListRetailers(gctx)
		if err != nil {
			return fmt.Errorf("can't list retailers: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	atRisk := analytics.Cohorts(orders, retailers, w.repo.Now()).AtRisk
	if len(atRisk) == 0 {
		return 0, nil
	}
	if err := w.mailer.SendAtRiskDigest(ctx, w.repo, dto.AtRiskToDigest(atRisk)); err != nil {
		return 0, fmt.Errorf("can't send digest: %w", err)
	}
	return len(atRisk), nil
}
