package reconciler

import (
	"fmt"
	"sync"
	"time"

	bCtx "github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/base/goroutine"
	"github.com/x-xyz/listingsync/base/log"
	"github.com/x-xyz/listingsync/domain/reconcile"
)

const (
	MinInterval     = time.Second
	DefaultInterval = 5 * time.Second
)

type WorkerCfg struct {
	Reconcile reconcile.UseCase
	// Interval between passes, clamped to MinInterval
	Interval time.Duration
	// ErrorCh receives recovered panics, it must be buffered or drained
	ErrorCh chan<- error
}

// Worker reconciles every active listing on a fixed interval until its
// context is done. A failed pass is logged and retried on the next tick.
type Worker struct {
	reconcile reconcile.UseCase
	interval  time.Duration
	errorCh   chan<- error
	stoppedCh chan interface{}

	mu       sync.RWMutex
	last     *reconcile.Report
	lastAt   time.Time
	lastErr  error
	passDone func()
}

func NewWorker(cfg *WorkerCfg) *Worker {
	interval := cfg.Interval
	if interval == 0 {
		interval = DefaultInterval
	} else if interval < MinInterval {
		interval = MinInterval
	}
	return &Worker{
		reconcile: cfg.Reconcile,
		interval:  interval,
		errorCh:   cfg.ErrorCh,
		stoppedCh: make(chan interface{}),
	}
}

func (w *Worker) Interval() time.Duration {
	return w.interval
}

func (w *Worker) Start(ctx bCtx.Ctx) {
	go w.loop(ctx)
}

func (w *Worker) Wait() {
	<-w.stoppedCh
}

// LastPass returns the report and error of the latest finished pass
func (w *Worker) LastPass() (*reconcile.Report, time.Time, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.last, w.lastAt, w.lastErr
}

func (w *Worker) loop(ctx bCtx.Ctx) {
	defer close(w.stoppedCh)

	nextTick := time.Second * 0
	for {
		select {
		case <-ctx.Done():
			ctx.Info("reconciler stopped")
			return
		case <-time.After(nextTick):
			if p := goroutine.Run(func() { w.pass(ctx) }, goroutine.WithName("reconciler")); p != nil {
				w.sendErr(fmt.Errorf("reconcile pass panic: %v", p.Panic))
			}
			if w.passDone != nil {
				w.passDone()
			}
			nextTick = w.interval
		}
	}
}

func (w *Worker) pass(ctx bCtx.Ctx) {
	report, err := w.reconcile.ReconcileActive(ctx)

	w.mu.Lock()
	w.last, w.lastAt, w.lastErr = report, time.Now(), err
	w.mu.Unlock()

	if err != nil {
		ctx.WithField("err", err).Warn("reconcile.ReconcileActive failed, retry next tick")
		return
	}
	ctx.WithFields(log.Fields{
		"checked":      len(report.Checked),
		"markedSold":   len(report.MarkedSold),
		"failed":       len(report.Failed),
		"missing":      len(report.Missing),
		"unverifiable": len(report.Unverifiable),
	}).Info("reconcile pass done")
}

func (w *Worker) sendErr(err error) {
	if w.errorCh == nil {
		return
	}
	select {
	case w.errorCh <- err:
	default:
	}
}
