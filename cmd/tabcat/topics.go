package tabcat

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/wolfe-services/tabcat/pkg/errors"
	"github.com/wolfe-services/tabcat/pkg/terminal"
)

//go:embed topics/*.md
var topicsFS embed.FS

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "topics [topic]",
		Short:     MsgTopicsShort,
		Long:      MsgTopicsLong,
		GroupID:   "misc",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: topicNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listTopics(cmd)
			}
			return showTopic(cmd, args[0])
		},
	}
}

func topicNames() []string {
	entries, err := topicsFS.ReadDir("topics")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

func listTopics(cmd *cobra.Command) error {
	names := topicNames()
	if len(names) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), MsgNoTopics)
		return err
	}
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, MsgAvailableTopics); err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintf(out, "  %s\n", name); err != nil {
			return err
		}
	}
	return nil
}

func showTopic(cmd *cobra.Command, name string) error {
	content, err := topicsFS.ReadFile("topics/" + name + ".md")
	if err != nil {
		return errors.Newf(errors.ErrNotFound, "unknown topic: %s", name)
	}

	// Rich rendering only on a capable terminal; pipes get the raw
	// markdown.
	if terminal.ColorEnabled(os.Stdout) {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(terminal.Width(os.Stdout)),
		)
		if err == nil {
			if rendered, err := renderer.Render(string(content)); err == nil {
				_, werr := fmt.Fprint(cmd.OutOrStdout(), rendered)
				return werr
			}
		}
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), string(content))
	return err
}
