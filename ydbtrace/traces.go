// Package ydbtrace times ydb-go-sdk calls into a stopwatch registry.
//
// WithTraces installs the table, scripting and discovery traces. Retry
// loops of the retry package are traced separately with
// retry.WithTrace(ydbtrace.Retry(timers)).
//
//	sw := stopwatch.New(stopwatch.WithMode(stopwatch.ModeRealTime))
//	timers := registry.New(sw)
//	db, err := ydb.Open(ctx, dsn, ydbtrace.WithTraces(timers))
//	// ...
//	_ = timers.ReportAll(os.Stdout)
package ydbtrace

import (
	"github.com/ydb-platform/ydb-go-sdk/v3"

	"github.com/ydb-platform/ydb-go-sdk-stopwatch/registry"
)

func WithTraces(c registry.Config) ydb.Option {
	return ydb.MergeOptions(
		ydb.WithTraceTable(Table(c)),
		ydb.WithTraceScripting(Scripting(c)),
		ydb.WithTraceDiscovery(Discovery(c)),
	)
}
