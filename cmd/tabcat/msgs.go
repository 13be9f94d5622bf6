package tabcat

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Pretty-print delimited and JSON data as tables"
	MsgRenderShort     = "Render input data as a formatted table"
	MsgStylesShort     = "List the available table styles"
	MsgTopicsShort     = "Display available documentation topics"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoColor     = "Disable colored output"
	MsgFlagStyle       = "Table style (plain, bordered, markdown, compact)"
	MsgFlagFormat      = "Output format (auto, table, text, json)"
	MsgFlagInput       = "Input format (auto, csv, tsv, json)"
	MsgFlagDelimiter   = "Field delimiter for delimited input"
	MsgFlagNoHeader    = "Treat the first record as data, not headers"
	MsgFlagMaxWidth    = "Total width budget (default: terminal width)"
	MsgFlagMaxColWidth = "Cap every column at this width"
	MsgFlagAlign       = "Cell alignment (left, right, center)"
	MsgFlagColor       = "Force colored output"
	MsgFlagOutput      = "Write output to a file instead of stdout"

	// Status messages
	MsgOverwritePrompt = "File %s exists. Overwrite?"
	MsgAborted         = "aborted, %s left untouched"
	MsgNoTopics        = "No help topics available."
	MsgAvailableTopics = "Available topics:"
)

// Long messages
const (
	MsgRootLong = `tabcat reads delimited (CSV/TSV) or JSON record data and renders it
as a formatted table. Four table styles are supported, output can be
redirected to plain text or JSON for scripting, and color is applied
only when writing to a capable terminal.`

	MsgRenderLong = `Render reads data from the given file, or from stdin when no file is
supplied, and prints it as a table.

The input format is sniffed from the file extension and the data
itself; use --input to force it. The output style, format, and width
can each be set by flag, config file, or TABCAT_* environment
variable, in that order of precedence.`

	MsgRenderExample = `  # Render a CSV file as a bordered table
  tabcat render --style bordered data.csv

  # Pipe JSON records through, markdown out
  curl -s https://api.example.com/items | tabcat render --style markdown

  # Script-friendly: no header, single-space columns
  tabcat render --style compact --no-header data.tsv`

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(tabcat completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ tabcat completion bash > /etc/bash_completion.d/tabcat
  # macOS:
  $ tabcat completion bash > /usr/local/etc/bash_completion.d/tabcat

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ tabcat completion zsh > "${fpath[1]}/_tabcat"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ tabcat completion fish | source
  # To load completions for each session, execute once:
  $ tabcat completion fish > ~/.config/fish/completions/tabcat.fish

PowerShell:
  PS> tabcat completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> tabcat completion powershell > tabcat.ps1
  # and source this file from your PowerShell profile.`

	MsgTopicsLong = `Display a list of all available help topics that provide additional
documentation beyond command help. Pass a topic name to read it.`
)

// MsgUsageTemplate is cobra's default usage template with bold section
// headers when stdout is a terminal.
const MsgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "Available Commands:"}}{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold $group.Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

{{boldUpper "Additional Commands:"}}{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

{{boldUpper "Additional help topics:"}}{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
