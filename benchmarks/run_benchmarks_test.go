package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOutput = `goos: linux
goarch: amd64
pkg: github.com/getmockd/idgen/pkg/id
BenchmarkUUID-8              	 2000000	       500.0 ns/op	      64 B/op	       2 allocs/op
BenchmarkShortUUID-8         	 2000000	       250.0 ns/op	      72 B/op	       3 allocs/op
BenchmarkHash-8              	10000000	       100.0 ns/op	      16 B/op	       1 allocs/op
BenchmarkSomethingElse-8     	 1000000	      1000 ns/op	       0 B/op	       0 allocs/op
PASS
`

func TestParseBenchmarkOutput(t *testing.T) {
	benches := parseBenchmarkOutput(sampleOutput)
	require.Len(t, benches, 4)

	assert.Equal(t, "BenchmarkUUID", benches[0].Name)
	assert.Equal(t, 500.0, benches[0].NsPerOp)
	assert.Equal(t, 2e6, benches[0].OpsPerSec)
	assert.Equal(t, int64(64), benches[0].BytesPerOp)
	assert.Equal(t, int64(2), benches[0].AllocsPerOp)
}

func TestGroupByMethod(t *testing.T) {
	methods := groupByMethod(parseBenchmarkOutput(sampleOutput))

	require.Contains(t, methods, "uuid")
	require.Contains(t, methods, "short-uuid")
	assert.Len(t, methods["uuid"].Benchmarks, 1, "ShortUUID must not be filed under uuid")
	assert.Len(t, methods["hash"].Benchmarks, 1)
	assert.Len(t, methods["other"].Benchmarks, 1)
}

func TestCalculateSummary(t *testing.T) {
	summary := calculateSummary(groupByMethod(parseBenchmarkOutput(sampleOutput)))
	assert.Equal(t, "BenchmarkHash", summary.Fastest)
	assert.Equal(t, "BenchmarkSomethingElse", summary.Slowest)
}

func TestRenderMarkdown(t *testing.T) {
	results := BenchmarkResults{
		Timestamp: "2026-10-19T00:00:00Z",
		Methods:   groupByMethod(parseBenchmarkOutput(sampleOutput)),
	}
	md := renderMarkdown(results)

	assert.True(t, strings.HasPrefix(md, "# idgen Benchmark Results"))
	assert.Contains(t, md, "## Short-Uuid\n")
	assert.Contains(t, md, "| BenchmarkHash | 10000000 | 100 | 16 | 1 |")
	assert.Less(t, strings.Index(md, "## Hash"), strings.Index(md, "## Uuid"))
}
