package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/dshills/vimops/internal/config"
	"github.com/dshills/vimops/internal/dispatcher"
	editorhandler "github.com/dshills/vimops/internal/dispatcher/handlers/editor"
	"github.com/dshills/vimops/internal/engine/buffer"
	"github.com/dshills/vimops/internal/engine/caret"
	"github.com/dshills/vimops/internal/logging"
	"github.com/dshills/vimops/internal/ops"
	"github.com/dshills/vimops/internal/register"
	"github.com/dshills/vimops/internal/script"
)

// execute runs the script once, then once per config change with -watch.
func execute(ctx context.Context, opts options, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Resolve(opts.ConfigPath, config.DefaultEnvPrefix)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, opts, stderr)
	if err != nil {
		return err
	}

	buf, err := readBuffer(opts.File, stdin, cfg)
	if err != nil {
		return err
	}
	text := buf.Text()

	out, err := edit(ctx, cfg, opts, buf, log)
	if err != nil {
		return err
	}
	if err := write(stdout, opts, text, out); err != nil {
		return err
	}
	if !opts.Watch {
		return nil
	}

	// Reloads run on the watcher goroutine, one at a time.
	w, err := config.Watch(ctx, opts.ConfigPath,
		func(cfg *config.Config) {
			buf := buffer.NewBufferFromString(text, cfg.BufferOption())
			out, err := edit(ctx, cfg, opts, buf, log)
			if err == nil {
				err = write(stdout, opts, text, out)
			}
			if err != nil {
				log.Error("%v", err)
			}
		},
		func(err error) {
			log.Error("%v", err)
		},
		config.WithWatchLogger(log),
	)
	if err != nil {
		return err
	}
	defer w.Close()

	log.Info("watching %s", w.Path())
	<-ctx.Done()
	return nil
}

// write emits the edited text, or its diff against the original with -diff.
func write(w io.Writer, opts options, original, edited string) error {
	if !opts.Diff {
		_, err := io.WriteString(w, edited)
		return err
	}

	name := opts.File
	if name == "" || name == "-" {
		name = "stdin"
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(edited),
		FromFile: name,
		ToFile:   name + " (edited)",
		Context:  3,
	})
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}
	_, err = io.WriteString(w, diff)
	return err
}

func newLogger(cfg *config.Config, opts options, stderr io.Writer) (*logging.Logger, error) {
	level := cfg.LogLevel()
	if opts.LogLevel != "" {
		var err error
		if level, err = logging.ParseLevel(opts.LogLevel); err != nil {
			return nil, fmt.Errorf("%w: %w", errUsage, err)
		}
	}
	return logging.New(logging.Config{
		Level:  level,
		Output: stderr,
		Prefix: "vimops",
	}), nil
}

// readBuffer reads the input file, or stdin for "" and "-", into a buffer
// with the configured line ending.
func readBuffer(path string, stdin io.Reader, cfg *config.Config) (*buffer.Buffer, error) {
	r, name := stdin, "stdin"
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r, name = f, path
	}

	buf, err := buffer.NewBufferFromReader(r, cfg.BufferOption())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return buf, nil
}

// edit runs the script against buf and returns the resulting text.
func edit(ctx context.Context, cfg *config.Config, opts options, buf *buffer.Buffer, log *logging.Logger) (string, error) {
	c := caret.New(buf)
	if err := c.SetPoint(caret.Point{Line: opts.Line - 1, Column: opts.Col}); err != nil {
		return "", fmt.Errorf("caret %d:%d: %w", opts.Line, opts.Col, err)
	}

	regs := newRegisters(cfg, log)
	engine := ops.New(buf, c, regs, ops.WithLogger(log))

	dcfg := dispatcher.DefaultConfig().WithDefaultRegister(cfg.DefaultRegister())
	if opts.Metrics {
		dcfg = dcfg.WithMetrics()
	}
	d := dispatcher.New(engine, regs, dcfg, dispatcher.WithLogger(log))
	d.RegisterNamespace(editorhandler.Namespace, editorhandler.NewCombinedHandler())
	log.Debug("routes: namespaces %v, handlers %v", d.Router().Namespaces(), d.Router().Handlers())

	runner := script.NewRunner(d, buf, c, regs, script.WithLogger(log))

	var err error
	switch {
	case opts.ScriptPath != "":
		err = runner.RunFile(ctx, opts.ScriptPath)
	case opts.Expr != "":
		err = runner.Run(ctx, opts.Expr)
	}
	if err != nil {
		return "", err
	}

	if m := d.Metrics(); m != nil {
		logMetrics(log, m)
	}
	return buf.Text(), nil
}

func newRegisters(cfg *config.Config, log *logging.Logger) *register.MemoryStore {
	if !cfg.Registers.Clipboard {
		return register.NewMemoryStore()
	}

	clip := register.SystemClipboard{}
	if !clip.Available() {
		log.Warn("system clipboard unavailable; registers %q stay local", cfg.Registers.ClipboardKeys)
		return register.NewMemoryStore()
	}
	return register.NewMemoryStore(register.WithClipboard(clip, cfg.Registers.ClipboardKeys))
}

func logMetrics(log *logging.Logger, m *dispatcher.Metrics) {
	snap := m.Snapshot()
	log.Info("%d dispatches, %d no-ops, %d errors, avg %v",
		snap.TotalDispatches, snap.TotalNoOps, snap.TotalErrors, snap.AverageDuration)
	for _, am := range m.TopActions(5) {
		log.Info("  %-24s %4d (avg %v)", am.Name, am.DispatchCount, am.AverageDuration())
	}
}
