package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/aretw0/weft"
	"github.com/aretw0/weft/internal/dto"
)

// RenderOptions configures a batch render run.
type RenderOptions struct {
	Documents   []string // template document paths
	ContextPath string   // optional YAML context file
	OutDir      string   // write <name>.out files here instead of stdout
	Pretty      bool     // glamour-render markdown output (stdout only)
	Concurrency int      // parallel document limit, 0 = unbounded
	Debug       bool
}

// RunRender renders every document against the shared context file and
// writes the results. Documents render concurrently, but stdout output is
// emitted in argument order so runs are reproducible.
func RunRender(ctx context.Context, opts RenderOptions) error {
	logger := CreateLogger(opts.Debug)
	engine := weft.New(weft.WithLogger(logger))

	data, err := LoadContextFile(opts.ContextPath)
	if err != nil {
		return err
	}

	outputs := make([][]byte, len(opts.Documents))

	g, gctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for i, path := range opts.Documents {
		i, path := i, path // per-iteration copies: go directive is below 1.22
		g.Go(func() error {
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			_, nodes, err := dto.ParseYAML(raw)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			// Each document gets its own context copy, so a set tag in
			// one document cannot leak into another.
			out, err := engine.Render(gctx, nodes, cloneData(data))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return writeOutputs(opts, outputs)
}

func writeOutputs(opts RenderOptions, outputs [][]byte) error {
	if opts.OutDir != "" {
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		for i, out := range outputs {
			name := strings.TrimSuffix(filepath.Base(opts.Documents[i]), filepath.Ext(opts.Documents[i]))
			target := filepath.Join(opts.OutDir, name+".out")
			if err := os.WriteFile(target, out, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", target, err)
			}
		}
		return nil
	}

	pretty := opts.Pretty && StdoutIsTerminal()
	var render func(string) (string, error)
	if pretty {
		render = NewPrettyRenderer()
	}

	for _, out := range outputs {
		if pretty {
			text, err := render(string(out))
			if err == nil {
				fmt.Print(text)
				continue
			}
		}
		os.Stdout.Write(out)
	}
	return nil
}

// cloneData shallow-copies the shared context map. Lifting into domain
// values happens per render, so a top-level copy is enough isolation
// between documents.
func cloneData(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
