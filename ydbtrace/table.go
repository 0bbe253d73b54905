package ydbtrace

import (
	"github.com/ydb-platform/ydb-go-sdk/v3/trace"

	"github.com/ydb-platform/ydb-go-sdk-stopwatch/internal/labels"
	"github.com/ydb-platform/ydb-go-sdk-stopwatch/internal/scope"
	"github.com/ydb-platform/ydb-go-sdk-stopwatch/internal/scope/config"
	"github.com/ydb-platform/ydb-go-sdk-stopwatch/internal/str"
	"github.com/ydb-platform/ydb-go-sdk-stopwatch/registry"
)

// Table makes trace.Table that times table client calls: retried Do loops,
// session creation, data query prepare/execute and session pool Get.
func Table(c registry.Config) (t trace.Table) {
	if c.Details()&trace.TableEvents == 0 {
		return t
	}
	c = c.WithSystem("table")
	do := scope.New(c, "do", config.New(), labels.TagIdempotent, labels.TagStage)
	t.OnDo = func(info trace.TableDoStartInfo) func(trace.TableDoIntermediateInfo) func(trace.TableDoDoneInfo) {
		idempotent := labels.Label{
			Tag:   labels.TagIdempotent,
			Value: str.If(info.Idempotent, "true", "false"),
		}
		start := do.Start()
		return func(info trace.TableDoIntermediateInfo) func(trace.TableDoDoneInfo) {
			start.Sync(info.Error, idempotent, labels.Label{
				Tag:   labels.TagStage,
				Value: "intermediate",
			})
			return func(info trace.TableDoDoneInfo) {
				start.Sync(info.Error, idempotent, labels.Label{
					Tag:   labels.TagStage,
					Value: "finish",
				})
			}
		}
	}
	{
		c := c.WithSystem("session")
		newSession := scope.New(c, "new", config.New())
		t.OnSessionNew = func(info trace.TableSessionNewStartInfo) func(trace.TableSessionNewDoneInfo) {
			start := newSession.Start()
			return func(info trace.TableSessionNewDoneInfo) {
				start.Sync(info.Error)
			}
		}
		c = c.WithSystem("query")
		prepare := scope.New(c, "prepare", config.New())
		execute := scope.New(c, "execute", config.New())
		t.OnSessionQueryPrepare = func(info trace.TablePrepareDataQueryStartInfo) func(trace.TablePrepareDataQueryDoneInfo) {
			start := prepare.Start()
			return func(info trace.TablePrepareDataQueryDoneInfo) {
				start.Sync(info.Error)
			}
		}
		t.OnSessionQueryExecute = func(info trace.TableExecuteDataQueryStartInfo) func(trace.TableExecuteDataQueryDoneInfo) {
			start := execute.Start()
			return func(info trace.TableExecuteDataQueryDoneInfo) {
				start.Sync(info.Error)
			}
		}
	}
	{
		c := c.WithSystem("pool")
		get := scope.New(c, "get", config.New())
		t.OnPoolGet = func(info trace.TablePoolGetStartInfo) func(trace.TablePoolGetDoneInfo) {
			start := get.Start()
			return func(info trace.TablePoolGetDoneInfo) {
				start.Sync(info.Error)
			}
		}
	}
	return t
}
