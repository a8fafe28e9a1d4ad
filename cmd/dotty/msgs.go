package dotty

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Reconcile dotfile symlinks with a declarative app list"
	MsgListShort       = "List the configured apps"
	MsgInitShort       = "Write a starter dotty.toml"
	MsgVersionShort    = "Print version information"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigCreated = "Created %s"
	MsgVersionFormat = "dotty %s (commit %s, built %s)\n"

	// Error messages
	MsgErrLinksFailed = "%d link(s) failed"
	MsgErrNoHelp      = "help command not found"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagCheckOnly  = "Report link status without creating anything"
	MsgFlagConfigFile = "Read apps from this file instead of <base_dir>/dotty.toml"
	MsgFlagInclude    = "Only process these apps (repeatable, comma separated)"
	MsgFlagExclude    = "Skip these apps (repeatable, comma separated)"
	MsgFlagFormat     = "Output format: auto, term, text or json"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
