package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/term"
	"pkt.systems/mdpaint"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	httpTimeout      = 30 * time.Second
)

func init() {
	version.SetDefaultModule("pkt.systems/mdpaint")
}

type options struct {
	themeName     string
	configPath    string
	listThemes    bool
	colorMode     string
	codeWidth     int
	codeTheme     string
	softBreak     string
	strictGrammar bool
	outPath       string
	watch         bool
	verbose       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("mdpaint", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML style configuration applied on top of the theme")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.StringVar(&opts.colorMode, "color", "auto", "Escape sequences: auto|on|off")
	flags.IntVar(&opts.codeWidth, "code-width", 0, "Column code block lines are padded to (0 keeps the theme value)")
	flags.StringVar(&opts.codeTheme, "code-theme", "", "Chroma style for code blocks")
	flags.StringVar(&opts.softBreak, "soft-break", "space", "Soft line breaks: space|newline")
	flags.BoolVar(&opts.strictGrammar, "strict-grammar", false, "Fail on code blocks with an unknown language")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "Render again whenever an input file changes")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log diagnostics to stderr")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: mdpaint [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	if opts.listThemes {
		printThemes(stdout)
		return 0
	}

	log := newLogger(stderr, opts.verbose)
	defer func() { _ = log.Sync() }()

	writer, closeOut, err := resolveOutput(opts.outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	styles, err := buildStyles(opts, writer)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}
	renderOpts, err := buildRenderOptions(opts, writer, log)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}

	sources, err := openInputs(flags.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "open input: %v\n", err)
		return 1
	}

	r := &renderer{
		styles:  styles,
		options: renderOpts,
		log:     log,
		client:  &http.Client{Timeout: httpTimeout},
	}
	if opts.watch {
		paths, err := watchPaths(flags.Args())
		if err != nil {
			fmt.Fprintf(stderr, "watch: %v\n", err)
			return 2
		}
		if err := watch(ctx, paths, log, r.renderPass(ctx, sources, writer, closeOut != nil)); err != nil {
			fmt.Fprintf(stderr, "watch: %v\n", err)
			return 1
		}
		return 0
	}

	if err := r.renderAll(ctx, sources, writer); err != nil {
		fmt.Fprintf(stderr, "render: %v\n", err)
		return 1
	}
	return 0
}

type renderer struct {
	styles  *mdpaint.StyleSet
	options []mdpaint.RenderOption
	log     *zap.Logger
	client  *http.Client
}

// renderPass returns the callback of one watch pass. When output goes to a
// file, the file is emptied first so it holds only the latest render.
func (r *renderer) renderPass(ctx context.Context, sources []inputSource, w io.Writer, rewindOut bool) func() error {
	return func() error {
		if rewindOut {
			if err := rewind(w); err != nil {
				return fmt.Errorf("rewind output: %w", err)
			}
		}
		return r.renderAll(ctx, sources, w)
	}
}

type truncateSeeker interface {
	Truncate(size int64) error
	Seek(offset int64, whence int) (int64, error)
}

func rewind(w io.Writer) error {
	f, ok := w.(truncateSeeker)
	if !ok {
		return nil
	}
	if err := f.Truncate(0); err != nil {
		return err
	}
	_, err := f.Seek(0, io.SeekStart)
	return err
}

// renderAll renders every input as its own document. Failing inputs do not
// stop the remaining ones; their errors are combined.
func (r *renderer) renderAll(ctx context.Context, sources []inputSource, w io.Writer) error {
	var errs error
	for _, src := range sources {
		errs = multierr.Append(errs, r.renderOne(ctx, src, w))
	}
	return errs
}

func (r *renderer) renderOne(ctx context.Context, src inputSource, w io.Writer) (err error) {
	if src.url != "" {
		r.log.Debug("fetching", zap.String("url", src.url))
		if err := mdpaint.HTTPRender(ctx, mdpaint.HTTPRenderRequest{
			URL:     src.url,
			Client:  r.client,
			Writer:  w,
			Styles:  r.styles,
			Options: r.options,
		}); err != nil {
			return fmt.Errorf("%s: %w", src.name, err)
		}
		return nil
	}
	reader, closer, err := src.open()
	if err != nil {
		return fmt.Errorf("%s: %w", src.name, err)
	}
	if closer != nil {
		defer func() { err = multierr.Append(err, closer.Close()) }()
	}
	r.log.Debug("rendering", zap.String("input", src.name))
	if err := mdpaint.Render(mdpaint.RenderRequest{
		Reader:  reader,
		Writer:  w,
		Styles:  r.styles,
		Options: r.options,
	}); err != nil {
		return fmt.Errorf("%s: %w", src.name, err)
	}
	return nil
}

func buildStyles(opts options, w io.Writer) (*mdpaint.StyleSet, error) {
	theme, ok := mdpaint.ThemeByName(opts.themeName)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (available: %s)", opts.themeName, strings.Join(mdpaint.AvailableThemes(), ", "))
	}
	cfg := theme.Config()
	if opts.configPath != "" {
		file, err := mdpaint.LoadStyleConfig(normalizePath(opts.configPath))
		if err != nil {
			return nil, err
		}
		cfg = cfg.Merge(file)
	}
	var flagCfg mdpaint.StyleConfig
	if opts.codeWidth > 0 {
		flagCfg.CodeBlock.Width = &opts.codeWidth
	}
	if opts.codeTheme != "" {
		flagCfg.CodeBlock.Theme = &opts.codeTheme
	}
	if cfg.Rule.Width == nil {
		if width, ok := terminalWidth(w); ok && width-2 < mdpaint.DefaultRuleWidth {
			ruleWidth := max(width-2, 1)
			flagCfg.Rule.Width = &ruleWidth
		}
	}
	styles, err := mdpaint.NewStyleSet(cfg.Merge(flagCfg))
	if err != nil {
		return nil, fmt.Errorf("styles: %w", err)
	}
	return styles, nil
}

func buildRenderOptions(opts options, w io.Writer, log *zap.Logger) ([]mdpaint.RenderOption, error) {
	color, err := resolveColor(opts.colorMode, w)
	if err != nil {
		return nil, fmt.Errorf("invalid --color %q: %w", opts.colorMode, err)
	}
	softBreak, err := mdpaint.ParseSoftBreakMode(opts.softBreak)
	if err != nil {
		return nil, fmt.Errorf("invalid --soft-break: %w", err)
	}
	return []mdpaint.RenderOption{
		mdpaint.WithLogger(log),
		mdpaint.WithColor(color),
		mdpaint.WithSoftBreak(softBreak),
		mdpaint.WithStrictGrammar(opts.strictGrammar),
		mdpaint.WithMarkdown(goldmark.New(goldmark.WithExtensions(extension.Strikethrough))),
	}, nil
}

func resolveColor(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		return isTerminal(w), nil
	case "on", "true", "1", "yes", "always":
		return true, nil
	case "off", "false", "0", "no", "never":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func printThemes(w io.Writer) {
	for _, name := range mdpaint.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}
