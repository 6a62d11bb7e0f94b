package newrelic

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromContext extracts the New Relic transaction from ctx, nil when absent
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// StartSegment creates a new segment for the given transaction
// Returns nil if transaction is not available
func StartSegment(txn *newrelic.Transaction, name string) *newrelic.Segment {
	if txn == nil {
		return nil
	}
	return txn.StartSegment(name)
}

// NoticeError reports err on the transaction carried by ctx
func NoticeError(ctx context.Context, err error) {
	if txn := FromContext(ctx); txn != nil && err != nil {
		txn.NoticeError(err)
	}
}

// WithSegment executes fn within a segment of the transaction carried by ctx
func WithSegment(ctx context.Context, segmentName string, fn func() error) error {
	if segment := StartSegment(FromContext(ctx), segmentName); segment != nil {
		defer segment.End()
	}
	return fn()
}

// WithSegmentAndReturn is WithSegment for functions returning a value
func WithSegmentAndReturn[T any](ctx context.Context, segmentName string, fn func() (T, error)) (T, error) {
	if segment := StartSegment(FromContext(ctx), segmentName); segment != nil {
		defer segment.End()
	}
	return fn()
}

// StartBackground starts a non-web transaction for broker consumers.
// The returned end func must be called; it is a no-op without an agent.
func StartBackground(ctx context.Context, app *newrelic.Application, name string) (context.Context, func()) {
	if app == nil {
		return ctx, func() {}
	}
	txn := app.StartTransaction(name)
	return newrelic.NewContext(ctx, txn), txn.End
}
