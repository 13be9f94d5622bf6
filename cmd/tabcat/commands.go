package tabcat

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/wolfe-services/tabcat/internal/version"
	"github.com/wolfe-services/tabcat/pkg/config"
	"github.com/wolfe-services/tabcat/pkg/errors"
	"github.com/wolfe-services/tabcat/pkg/input"
	"github.com/wolfe-services/tabcat/pkg/logging"
	"github.com/wolfe-services/tabcat/pkg/prompt"
	"github.com/wolfe-services/tabcat/pkg/styles"
	"github.com/wolfe-services/tabcat/pkg/table"
	"github.com/wolfe-services/tabcat/pkg/terminal"
	"github.com/wolfe-services/tabcat/pkg/ui"
)

type renderOptions struct {
	style       string
	format      string
	inputFormat string
	delimiter   string
	align       string
	output      string
	maxWidth    int
	maxColWidth int
	noHeader    bool
	color       bool
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:     "render [file]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, root, opts)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&opts.style, "style", "s", "", MsgFlagStyle)
	fl.StringVarP(&opts.format, "format", "f", "", MsgFlagFormat)
	fl.StringVar(&opts.inputFormat, "input", "auto", MsgFlagInput)
	fl.StringVarP(&opts.delimiter, "delimiter", "d", "", MsgFlagDelimiter)
	fl.StringVar(&opts.align, "align", "", MsgFlagAlign)
	fl.StringVarP(&opts.output, "output", "o", "", MsgFlagOutput)
	fl.IntVarP(&opts.maxWidth, "max-width", "w", 0, MsgFlagMaxWidth)
	fl.IntVar(&opts.maxColWidth, "max-col-width", 0, MsgFlagMaxColWidth)
	fl.BoolVar(&opts.noHeader, "no-header", false, MsgFlagNoHeader)
	fl.BoolVar(&opts.color, "color", false, MsgFlagColor)

	return cmd
}

func runRender(cmd *cobra.Command, args []string, root *rootOptions, opts *renderOptions) error {
	logger := logging.GetLogger("cmd.render")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Output.Theme != "" {
		if err := styles.LoadFile(cfg.Output.Theme); err != nil {
			return errors.Wrapf(err, errors.ErrThemeLoad, "failed to load theme %s", cfg.Output.Theme)
		}
	}

	styleName := opts.style
	if styleName == "" {
		styleName = cfg.Output.Style
	}
	style, err := table.ParseStyle(styleName)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid --style")
	}

	align, err := table.ParseAlignment(opts.align)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid --align")
	}

	formatName := opts.format
	if formatName == "" {
		formatName = cfg.Output.Format
	}
	format, err := ui.ParseFormat(formatName)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
	}

	delimiter := opts.delimiter
	if delimiter == "" {
		delimiter = cfg.Input.Delimiter
	}

	hasHeader := cfg.Input.Header
	if cmd.Flags().Changed("no-header") {
		hasHeader = !opts.noHeader
	}

	in, name, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	tbl, err := input.Read(in, name, input.Options{
		Format:      opts.inputFormat,
		Delimiter:   firstRune(delimiter),
		HasHeader:   hasHeader,
		MaxColWidth: opts.maxColWidth,
		Align:       align,
	})
	if err != nil {
		return err
	}
	logger.Debug().
		Str("input", name).
		Int("rows", tbl.RowCount()).
		Str("style", style.String()).
		Msg("Input parsed")

	out, sink, err := openOutput(cmd, opts.output)
	if err != nil {
		return err
	}
	if out != nil {
		defer func() { _ = out.Close() }()
	}

	// The probe target for width and color: the output file when one
	// was opened, otherwise the command's stdout if it is a real file.
	probe := out
	if probe == nil {
		if f, ok := cmd.OutOrStdout().(*os.File); ok {
			probe = f
		}
	}

	maxWidth := opts.maxWidth
	if maxWidth <= 0 {
		maxWidth = cfg.Output.MaxWidth
	}
	if maxWidth <= 0 {
		maxWidth = terminal.Width(probe)
	}

	renderer, err := ui.NewRenderer(format, sink, ui.Options{
		Style:    style,
		MaxWidth: maxWidth,
		Color:    resolveColor(root, opts, cmd.Flags().Changed("color"), cfg, probe),
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to create renderer")
	}

	return renderer.RenderTable(tbl)
}

// openInput returns the data source: the named file, or stdin.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "-", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", errors.Wrapf(err, errors.ErrInputOpen, "cannot open %s", args[0])
	}
	return f, args[0], nil
}

// openOutput returns the render sink. The *os.File return is non-nil
// only when a file was opened for --output and must be closed by the
// caller.
func openOutput(cmd *cobra.Command, path string) (*os.File, io.Writer, error) {
	if path == "" {
		return nil, cmd.OutOrStdout(), nil
	}

	if _, err := os.Stat(path); err == nil {
		ok, err := prompt.Confirm(fmt.Sprintf(MsgOverwritePrompt, path), false)
		if err != nil {
			return nil, nil, errors.Wrap(err, errors.ErrInternal, "prompt failed")
		}
		if !ok {
			return nil, nil, errors.Newf(errors.ErrAborted, MsgAborted, path)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrOutputCreate, "cannot create %s", path)
	}
	return f, f, nil
}

// resolveColor applies the precedence --no-color > --color > config >
// probe. colorSet distinguishes an explicit --color=false from the
// flag being absent. probe is nil when the sink is neither a file nor
// a terminal.
func resolveColor(root *rootOptions, opts *renderOptions, colorSet bool, cfg *config.Config, probe *os.File) bool {
	if root.noColor {
		return false
	}
	if colorSet {
		return opts.color
	}
	switch strings.ToLower(cfg.Output.Color) {
	case "always":
		return true
	case "never":
		return false
	}
	return terminal.ColorEnabled(probe)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func newStylesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "styles",
		Short:   MsgStylesShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sample := table.New(
				table.Column{Header: "Name"},
				table.Column{Header: "Value"},
			)
			sample.AddRow("foo", "123")
			sample.AddRow("bar", "456")

			out := cmd.OutOrStdout()
			cfg := table.RenderConfig{MaxWidth: 40}
			for _, s := range table.Styles() {
				if _, err := fmt.Fprintf(out, "%s:\n", formatBold(s.String())); err != nil {
					return err
				}
				if err := sample.WriteTo(out, s, cfg); err != nil {
					return err
				}
				if _, err := fmt.Fprintln(out); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tabcat version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				if err := cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true); err != nil {
					log.Error().Err(err).Msg("Failed to generate bash completion")
				}
			case "zsh":
				if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate zsh completion")
				}
			case "fish":
				if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
					log.Error().Err(err).Msg("Failed to generate fish completion")
				}
			case "powershell":
				if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate powershell completion")
				}
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "TABCAT",
				Section: "1",
				Source:  "tabcat " + version.Version,
				Manual:  "tabcat manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
