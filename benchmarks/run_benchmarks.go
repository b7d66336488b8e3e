// Package main runs the identifier generator benchmarks and outputs results to JSON/Markdown.
// Run with: go run ./benchmarks
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BenchmarkResults holds all benchmark data
type BenchmarkResults struct {
	Timestamp   string            `json:"timestamp"`
	Environment Environment       `json:"environment"`
	Methods     map[string]Method `json:"methods"`
	Summary     Summary           `json:"summary"`
}

type Environment struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	CPU       string `json:"cpu"`
	NumCPU    int    `json:"num_cpu"`
	GoVersion string `json:"go_version"`
}

// Method groups the benchmarks of one generation method.
type Method struct {
	Benchmarks []Benchmark `json:"benchmarks"`
}

type Benchmark struct {
	Name        string  `json:"name"`
	NsPerOp     float64 `json:"ns_per_op"`
	OpsPerSec   float64 `json:"ops_per_sec"`
	BytesPerOp  int64   `json:"bytes_per_op"`
	AllocsPerOp int64   `json:"allocs_per_op"`
}

type Summary struct {
	Fastest    string  `json:"fastest"`
	FastestOps float64 `json:"fastest_ops_per_sec"`
	Slowest    string  `json:"slowest"`
	SlowestOps float64 `json:"slowest_ops_per_sec"`
}

// benchmarkPrefixes maps benchmark name prefixes to generation methods.
var benchmarkPrefixes = []struct {
	prefix string
	method string
}{
	{"BenchmarkShortUUID", "short-uuid"},
	{"BenchmarkUUID", "uuid"},
	{"BenchmarkTimestamp", "timestamp"},
	{"BenchmarkAlphanumeric", "alphanumeric"},
	{"BenchmarkStructured", "structured"},
	{"BenchmarkHash", "hash"},
	{"BenchmarkComposite", "composite"},
	{"BenchmarkURLSafe", "url-safe"},
	{"BenchmarkULID", "ulid"},
}

func main() {
	fmt.Println("==========================================")
	fmt.Println("   IDGEN BENCHMARK SUITE")
	fmt.Println("==========================================")
	fmt.Println()

	results := BenchmarkResults{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Environment: Environment{
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			CPU:       getCPUInfo(),
			NumCPU:    runtime.NumCPU(),
			GoVersion: runtime.Version(),
		},
	}

	fmt.Println("Running generator benchmarks...")
	output, err := runBenchmarks(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "benchmarks failed: %v\n%s", err, output)
		os.Exit(1)
	}
	results.Methods = groupByMethod(parseBenchmarkOutput(output))
	results.Summary = calculateSummary(results.Methods)

	if err := os.MkdirAll(filepath.Join("benchmarks", "results"), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "creating results dir: %v\n", err)
		os.Exit(1)
	}

	jsonPath := "benchmarks/results/latest.json"
	if err := writeJSON(results, jsonPath); err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %v\n", jsonPath, err)
		os.Exit(1)
	}
	fmt.Printf("\nJSON results: %s\n", jsonPath)

	mdPath := "benchmarks/results/LATEST.md"
	if err := os.WriteFile(mdPath, []byte(renderMarkdown(results)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %v\n", mdPath, err)
		os.Exit(1)
	}
	fmt.Printf("Markdown results: %s\n", mdPath)

	printSummary(results)
}

func getCPUInfo() string {
	if runtime.GOOS == "linux" {
		data, err := os.ReadFile("/proc/cpuinfo")
		if err == nil {
			for _, line := range strings.Split(string(data), "\n") {
				if strings.HasPrefix(line, "model name") {
					if _, v, ok := strings.Cut(line, ":"); ok {
						return strings.TrimSpace(v)
					}
				}
			}
		}
	}
	return "unknown"
}

func runBenchmarks(pattern string) (string, error) {
	cmd := exec.Command("go", "test", "-run=^$", "-bench="+pattern, "-benchtime=1s", "-benchmem", "./pkg/id/")
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// Pattern: BenchmarkName-N    iterations    ns/op    bytes/op    allocs/op
var benchLine = regexp.MustCompile(`(Benchmark[\w/]+)-\d+\s+(\d+)\s+([\d.]+)\s+ns/op\s+(\d+)\s+B/op\s+(\d+)\s+allocs/op`)

func parseBenchmarkOutput(output string) []Benchmark {
	var benchmarks []Benchmark
	for _, match := range benchLine.FindAllStringSubmatch(output, -1) {
		nsPerOp, _ := strconv.ParseFloat(match[3], 64)
		bytesPerOp, _ := strconv.ParseInt(match[4], 10, 64)
		allocsPerOp, _ := strconv.ParseInt(match[5], 10, 64)

		opsPerSec := 0.0
		if nsPerOp > 0 {
			opsPerSec = 1e9 / nsPerOp
		}

		benchmarks = append(benchmarks, Benchmark{
			Name:        match[1],
			NsPerOp:     nsPerOp,
			OpsPerSec:   opsPerSec,
			BytesPerOp:  bytesPerOp,
			AllocsPerOp: allocsPerOp,
		})
	}
	return benchmarks
}

// groupByMethod files each benchmark under its generation method. Benchmarks
// that match no method are grouped under "other".
func groupByMethod(benchmarks []Benchmark) map[string]Method {
	methods := make(map[string]Method)
	for _, b := range benchmarks {
		name := "other"
		for _, p := range benchmarkPrefixes {
			if strings.HasPrefix(b.Name, p.prefix) {
				name = p.method
				break
			}
		}
		m := methods[name]
		m.Benchmarks = append(m.Benchmarks, b)
		methods[name] = m
	}
	return methods
}

func calculateSummary(methods map[string]Method) Summary {
	var summary Summary
	for _, m := range methods {
		for _, b := range m.Benchmarks {
			if summary.Fastest == "" || b.OpsPerSec > summary.FastestOps {
				summary.Fastest, summary.FastestOps = b.Name, b.OpsPerSec
			}
			if summary.Slowest == "" || b.OpsPerSec < summary.SlowestOps {
				summary.Slowest, summary.SlowestOps = b.Name, b.OpsPerSec
			}
		}
	}
	return summary
}

func writeJSON(results BenchmarkResults, path string) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func sortedMethodNames(methods map[string]Method) []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func renderMarkdown(results BenchmarkResults) string {
	var sb strings.Builder

	sb.WriteString("# idgen Benchmark Results\n\n")
	fmt.Fprintf(&sb, "**Generated**: %s\n\n", results.Timestamp)
	sb.WriteString("## Environment\n\n")
	fmt.Fprintf(&sb, "- **OS**: %s/%s\n", results.Environment.OS, results.Environment.Arch)
	fmt.Fprintf(&sb, "- **CPU**: %s (%d cores)\n", results.Environment.CPU, results.Environment.NumCPU)
	fmt.Fprintf(&sb, "- **Go**: %s\n\n", results.Environment.GoVersion)

	sb.WriteString("## Summary\n\n")
	fmt.Fprintf(&sb, "- **Fastest**: %s (%.0f ops/s)\n", results.Summary.Fastest, results.Summary.FastestOps)
	fmt.Fprintf(&sb, "- **Slowest**: %s (%.0f ops/s)\n\n", results.Summary.Slowest, results.Summary.SlowestOps)

	title := cases.Title(language.English)
	for _, name := range sortedMethodNames(results.Methods) {
		fmt.Fprintf(&sb, "## %s\n\n", title.String(name))
		sb.WriteString("| Benchmark | ops/sec | ns/op | B/op | allocs/op |\n")
		sb.WriteString("|-----------|---------|-------|------|----------|\n")
		for _, b := range results.Methods[name].Benchmarks {
			fmt.Fprintf(&sb, "| %s | %.0f | %.0f | %d | %d |\n",
				b.Name, b.OpsPerSec, b.NsPerOp, b.BytesPerOp, b.AllocsPerOp)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Reproducing\n\n")
	sb.WriteString("```bash\n")
	sb.WriteString("go run ./benchmarks\n")
	sb.WriteString("# Or directly:\n")
	sb.WriteString("go test -run='^$' -bench=. -benchmem ./pkg/id/\n")
	sb.WriteString("```\n")

	return sb.String()
}

func printSummary(results BenchmarkResults) {
	fmt.Println()
	fmt.Println("==========================================")
	fmt.Println("              SUMMARY")
	fmt.Println("==========================================")
	for _, name := range sortedMethodNames(results.Methods) {
		for _, b := range results.Methods[name].Benchmarks {
			fmt.Printf("%-14s %-28s %12.0f ops/s\n", name, b.Name, b.OpsPerSec)
		}
	}
	fmt.Println("==========================================")
}
