package usecase

import (
	"errors"
	"math/big"
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/listingsync/base/ctx"
	"github.com/x-xyz/listingsync/base/log"
	"github.com/x-xyz/listingsync/base/metrics"
	"github.com/x-xyz/listingsync/domain"
	"github.com/x-xyz/listingsync/domain/listing"
	"github.com/x-xyz/listingsync/domain/marketplace"
	"github.com/x-xyz/listingsync/domain/reconcile"
)

const (
	defaultReadTimeout = 3 * time.Second
	defaultConcurrency = 8
)

type outcome int

const (
	outcomeChecked outcome = iota
	outcomeSold
	outcomeFailed
	outcomeMissing
)

type result struct {
	id      string
	outcome outcome
}

type ReconcileUseCaseCfg struct {
	Listing     listing.UseCase
	Oracle      marketplace.Oracle
	ReadTimeout time.Duration
	Concurrency int
}

type impl struct {
	listing     listing.UseCase
	oracle      marketplace.Oracle
	readTimeout time.Duration
	concurrency int
	met         metrics.Service
}

func New(cfg *ReconcileUseCaseCfg) reconcile.UseCase {
	im := &impl{
		listing:     cfg.Listing,
		oracle:      cfg.Oracle,
		readTimeout: cfg.ReadTimeout,
		concurrency: cfg.Concurrency,
		met:         metrics.New("reconcile"),
	}
	if im.readTimeout <= 0 {
		im.readTimeout = defaultReadTimeout
	}
	if im.concurrency <= 0 {
		im.concurrency = defaultConcurrency
	}
	return im
}

func (im *impl) ReconcileActive(c ctx.Ctx) (*reconcile.Report, error) {
	listings, err := im.listing.ListActive(c)
	if err != nil {
		c.WithField("err", err).Error("listing.ListActive failed")
		return nil, err
	}
	return im.Reconcile(c, listings)
}

func (im *impl) Reconcile(c ctx.Ctx, listings []*listing.Listing) (*reconcile.Report, error) {
	defer im.met.BumpTime("pass.time").End()

	report := &reconcile.Report{
		Checked:      []string{},
		MarkedSold:   []string{},
		Failed:       []string{},
		Missing:      []string{},
		Unverifiable: []string{},
	}

	pending := []*listing.Listing{}
	for _, l := range listings {
		if !l.IsActive() {
			continue
		}
		if !l.Verifiable() {
			report.Unverifiable = append(report.Unverifiable, l.Id)
			continue
		}
		pending = append(pending, l)
	}
	if len(pending) == 0 {
		return report, nil
	}

	b := goroutines.NewBatch(im.concurrency, goroutines.WithBatchSize(len(pending)))
	defer b.Close()
	for i := 0; i < len(pending); i++ {
		l := pending[i]
		b.Queue(func() (interface{}, error) {
			return &result{l.Id, im.check(c, l)}, nil
		})
	}
	b.QueueComplete()

	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("reconcile task failed")
			continue
		}
		r := ret.Value().(*result)
		switch r.outcome {
		case outcomeSold:
			report.Checked = append(report.Checked, r.id)
			report.MarkedSold = append(report.MarkedSold, r.id)
		case outcomeChecked:
			report.Checked = append(report.Checked, r.id)
		case outcomeMissing:
			report.Missing = append(report.Missing, r.id)
		default:
			report.Failed = append(report.Failed, r.id)
		}
	}

	im.met.BumpSum("checked", float64(len(report.Checked)))
	im.met.BumpSum("marked_sold", float64(len(report.MarkedSold)))
	im.met.BumpSum("read.err", float64(len(report.Failed)))
	return report, nil
}

// check runs in the batch, it only writes the status of l.
func (im *impl) check(c ctx.Ctx, l *listing.Listing) outcome {
	c = ctx.WithFields(c, log.Fields{"listingId": l.Id, "onChainListingId": *l.OnChainListingId})

	rc, cancel := ctx.WithTimeout(c, im.readTimeout)
	onChain, err := im.oracle.GetListing(rc, big.NewInt(*l.OnChainListingId))
	cancel()
	if errors.Is(err, domain.ErrListingNotFound) {
		c.Warn("listing not found on chain")
		return outcomeMissing
	} else if err != nil {
		c.WithField("err", err).Warn("oracle.GetListing failed, retry next pass")
		return outcomeFailed
	}

	if onChain.Active {
		return outcomeChecked
	}

	if err := im.listing.UpdateStatus(c, l.Id, listing.StatusSold); errors.Is(err, domain.ErrInvalidStatusTransition) {
		// settled as cancelled by another writer meanwhile
		c.Info("listing already settled")
		return outcomeChecked
	} else if err != nil {
		c.WithField("err", err).Error("listing.UpdateStatus failed")
		return outcomeFailed
	}
	l.Status = listing.StatusSold
	c.Info("listing inactive on chain, marked sold")
	return outcomeSold
}
