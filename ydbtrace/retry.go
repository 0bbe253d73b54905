package ydbtrace

import (
	"github.com/ydb-platform/ydb-go-sdk/v3/trace"

	"github.com/ydb-platform/ydb-go-sdk-stopwatch/internal/labels"
	"github.com/ydb-platform/ydb-go-sdk-stopwatch/internal/scope"
	"github.com/ydb-platform/ydb-go-sdk-stopwatch/internal/scope/config"
	"github.com/ydb-platform/ydb-go-sdk-stopwatch/internal/str"
	"github.com/ydb-platform/ydb-go-sdk-stopwatch/registry"
)

// Retry makes trace.Retry that times retry loops, split by stage.
// Every attempt that failed and got retried is one "intermediate" interval
// measured from the loop start. Install it per call with
// retry.WithTrace(Retry(c)).
func Retry(c registry.Config) (t trace.Retry) {
	if c.Details()&trace.RetryEvents != 0 {
		retry := scope.New(c, "retry", config.New(), labels.TagIdempotent, labels.TagStage, labels.TagID)
		t.OnRetry = func(info trace.RetryLoopStartInfo) func(trace.RetryLoopIntermediateInfo) func(trace.RetryLoopDoneInfo) {
			idempotent := labels.Label{
				Tag:   labels.TagIdempotent,
				Value: str.If(info.Idempotent, "true", "false"),
			}
			id := labels.Label{
				Tag:   labels.TagID,
				Value: info.ID,
			}
			start := retry.Start()
			return func(
				info trace.RetryLoopIntermediateInfo,
			) func(
				trace.RetryLoopDoneInfo,
			) {
				start.Sync(info.Error, idempotent, id, labels.Label{
					Tag:   labels.TagStage,
					Value: "intermediate",
				})
				return func(info trace.RetryLoopDoneInfo) {
					start.Sync(info.Error, idempotent, id, labels.Label{
						Tag:   labels.TagStage,
						Value: "finish",
					})
				}
			}
		}
	}
	return t
}
