package ydbtrace

import (
	"github.com/ydb-platform/ydb-go-sdk/v3/trace"

	"github.com/ydb-platform/ydb-go-sdk-stopwatch/internal/scope"
	"github.com/ydb-platform/ydb-go-sdk-stopwatch/internal/scope/config"
	"github.com/ydb-platform/ydb-go-sdk-stopwatch/registry"
)

// Discovery makes trace.Discovery that times endpoint discovery rounds
func Discovery(c registry.Config) (t trace.Discovery) {
	if c.Details()&trace.DiscoveryEvents != 0 {
		discovery := scope.New(c, "discovery", config.New())
		t.OnDiscover = func(info trace.DiscoveryDiscoverStartInfo) func(trace.DiscoveryDiscoverDoneInfo) {
			start := discovery.Start()
			return func(info trace.DiscoveryDiscoverDoneInfo) {
				start.Sync(info.Error)
			}
		}
	}
	return t
}
