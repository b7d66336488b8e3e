package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/getmockd/idgen/pkg/cli/internal/output"
	"github.com/getmockd/idgen/pkg/id"
	"github.com/spf13/cobra"
)

const (
	// DefaultDemoCount is the number of samples shown per method.
	DefaultDemoCount = 3

	demoPrefix  = "user"
	demoContent = "Hello, World!"
)

// DemoSample holds the samples generated with one method.
type DemoSample struct {
	Method id.Method `json:"method"`
	IDs    []string  `json:"ids"`
	Length int       `json:"length"`
}

// DemoFilePath is an example storage path built from generated identifiers.
type DemoFilePath struct {
	Kind string `json:"kind"`
	Path string `json:"path"`
}

// DemoReport is the result of a demonstration run.
type DemoReport struct {
	Samples   []DemoSample   `json:"samples"`
	FilePaths []DemoFilePath `json:"filePaths"`
}

// demoMethods are the methods sampled by the demonstration, in print order.
var demoMethods = []id.Method{
	id.MethodUUID,
	id.MethodTimestamp,
	id.MethodAlphanumeric,
	id.MethodStructured,
	id.MethodHash,
	id.MethodShortUUID,
	id.MethodComposite,
	id.MethodURLSafe,
}

// BuildDemo generates count samples for each demonstrated method and derives
// example upload paths. Hash samples hash "Hello, World!" suffixed with the
// generator's current unix milliseconds.
func BuildDemo(g *id.Generator, count int) (*DemoReport, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: count %d must be positive", id.ErrInvalidArgument, count)
	}

	report := &DemoReport{}
	for _, m := range demoMethods {
		sample := DemoSample{Method: m, IDs: make([]string, 0, count)}
		for i := 0; i < count; i++ {
			params := id.Params{Prefix: demoPrefix}
			if m == id.MethodHash {
				params.Content = demoContent + strconv.FormatInt(g.Now().UnixMilli(), 10)
			}
			s, err := g.Generate(m, params)
			if err != nil {
				return nil, fmt.Errorf("generating %s: %w", m, err)
			}
			sample.IDs = append(sample.IDs, s)
		}
		sample.Length = len(sample.IDs[0])
		report.Samples = append(report.Samples, sample)
	}

	paths, err := demoFilePaths(g)
	if err != nil {
		return nil, err
	}
	report.FilePaths = paths
	return report, nil
}

func demoFilePaths(g *id.Generator) ([]DemoFilePath, error) {
	uuid, err := g.UUID()
	if err != nil {
		return nil, err
	}
	short, err := g.ShortUUID()
	if err != nil {
		return nil, err
	}
	urlSafe, err := g.URLSafe(8)
	if err != nil {
		return nil, err
	}
	nano, err := g.Alphanumeric(id.DefaultAlphanumericLength)
	if err != nil {
		return nil, err
	}
	now := g.Now()

	return []DemoFilePath{
		{Kind: "basic", Path: "uploads/" + uuid + "-image.jpg"},
		{Kind: "structured", Path: fmt.Sprintf("uploads/%04d/%02d/user-123/%s-profile.jpg", now.Year(), int(now.Month()), short)},
		{Kind: "timestampBased", Path: fmt.Sprintf("uploads/%d-%s-document.pdf", now.UnixMilli(), urlSafe)},
		{Kind: "categoryBased", Path: "uploads/images/profile/" + nano + "-avatar.png"},
	}, nil
}

// WriteDemo renders a report as human readable text.
func WriteDemo(w io.Writer, report *DemoReport) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	printf("ID Generation Examples:\n\n")
	for _, s := range report.Samples {
		printf("%s:\n", s.Method)
		for i, v := range s.IDs {
			printf("  Example %d: %s\n", i+1, v)
		}
		printf("  Length: %d\n\n", s.Length)
	}

	printf("File Naming Examples:\n\n")
	for _, p := range report.FilePaths {
		printf("%s:\n  %s\n\n", p.Kind, p.Path)
	}
	return err
}

// RunDemo builds a demonstration report with g and writes it to w.
func RunDemo(w io.Writer, g *id.Generator, count int) error {
	report, err := BuildDemo(g, count)
	if err != nil {
		return err
	}
	return WriteDemo(w, report)
}

func newDemoCommand(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print sample identifiers for every method",
		Long: `Generate samples with each of the eight core methods, then show
example upload paths built from generated identifiers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := BuildDemo(a.gen, count)
			if err != nil {
				return err
			}
			a.logger.Debug("demo generated", "methods", len(report.Samples), "count", count)

			w := a.out(cmd)
			if a.jsonOutput {
				return output.JSON(w, report)
			}
			return WriteDemo(w, report)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", DefaultDemoCount, "Samples per method")
	return cmd
}
