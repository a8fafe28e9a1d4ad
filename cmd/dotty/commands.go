package dotty

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotty/internal/version"
	"github.com/arthur-debert/dotty/pkg/config"
	"github.com/arthur-debert/dotty/pkg/errors"
	"github.com/arthur-debert/dotty/pkg/filesystem"
	"github.com/arthur-debert/dotty/pkg/logging"
	"github.com/arthur-debert/dotty/pkg/paths"
	"github.com/arthur-debert/dotty/pkg/reconcile"
	"github.com/arthur-debert/dotty/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// Flag names
const (
	flagCheckOnly  = "check-only"
	flagConfigFile = "config-file"
	flagInclude    = "include-app"
	flagExclude    = "exclude-app"
	flagFormat     = "format"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "dotty [base_dir]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE:              runReconcile,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringP(flagConfigFile, "c", "", MsgFlagConfigFile)
	pf.StringSliceP(flagInclude, "a", nil, MsgFlagInclude)
	pf.StringSliceP(flagExclude, "A", nil, MsgFlagExclude)
	pf.String(flagFormat, "auto", MsgFlagFormat)

	rootCmd.Flags().BoolP(flagCheckOnly, "C", false, MsgFlagCheckOnly)

	_ = rootCmd.RegisterFlagCompletionFunc(flagFormat, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc(flagInclude, appNamesCompletion)
	_ = rootCmd.RegisterFlagCompletionFunc(flagExclude, appNamesCompletion)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Initialize topic-based help system
	initTopics(rootCmd)

	return rootCmd
}

// settingsFlags collects the flags the user set explicitly, keyed for
// config.LoadSettings, so unset flags do not mask environment values.
func settingsFlags(cmd *cobra.Command, args []string) map[string]interface{} {
	flags := make(map[string]interface{})
	fs := cmd.Flags()

	if len(args) > 0 {
		flags[config.KeyBaseDir] = args[0]
	}
	if fs.Changed(flagCheckOnly) {
		v, _ := fs.GetBool(flagCheckOnly)
		flags[config.KeyCheckOnly] = v
	}
	if fs.Changed(flagConfigFile) {
		v, _ := fs.GetString(flagConfigFile)
		flags[config.KeyConfigFile] = v
	}
	if fs.Changed(flagInclude) {
		v, _ := fs.GetStringSlice(flagInclude)
		flags[config.KeyInclude] = v
	}
	if fs.Changed(flagExclude) {
		v, _ := fs.GetStringSlice(flagExclude)
		flags[config.KeyExclude] = v
	}
	if fs.Changed(flagFormat) {
		v, _ := fs.GetString(flagFormat)
		flags[config.KeyFormat] = v
	}
	return flags
}

// newRenderer builds the renderer for the configured format, writing to w.
func newRenderer(format string, w io.Writer) (ui.Renderer, error) {
	f, err := ui.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(f, w)
}

// loadConfig loads settings and apps and prepares the output renderer
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, ui.Renderer, error) {
	cfg, err := config.Load(settingsFlags(cmd, args))
	if err != nil {
		return nil, nil, err
	}

	renderer, err := newRenderer(cfg.Settings.Format, cmd.OutOrStdout())
	if err != nil {
		return nil, nil, err
	}

	log.Info().
		Str("base_dir", cfg.BaseDir).
		Str("config_file", cfg.ConfigFile).
		Int("apps", len(cfg.Apps)).
		Msg("Configuration loaded")
	return cfg, renderer, nil
}

func runReconcile(cmd *cobra.Command, args []string) error {
	cfg, renderer, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	report := reconcile.Reconcile(cfg.Selected(), reconcile.Options{
		FS:        filesystem.NewOS(),
		Lookup:    cfg.Apps,
		CheckOnly: cfg.Settings.CheckOnly,
	})

	if err := renderer.RenderReport(report); err != nil {
		return err
	}

	if report.HasErrors() {
		return errors.Newf(errors.ErrLinkFailed, MsgErrLinksFailed, report.Summary().Failed)
	}
	return nil
}

// appNamesCompletion completes app names from the config file
func appNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := config.Load(settingsFlags(cmd, args))
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return cfg.Apps.Names(), cobra.ShellCompDirectiveNoFileComp
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list [base_dir]",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, renderer, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			return renderer.RenderApps(cfg.Selected().Sorted())
		},
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "init [base_dir]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(settingsFlags(cmd, args))
			if err != nil {
				return err
			}

			target := paths.ExpandHome(settings.ConfigFile)
			if target == "" {
				target = paths.ConfigFile(paths.ExpandHome(settings.BaseDir))
			}

			renderer, err := newRenderer(settings.Format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if err := config.WriteStarter(target); err != nil {
				return err
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgConfigCreated, target))
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Name() == "help" {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf(MsgErrNoHelp)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// WriteManPage renders the man page for root to w.
func WriteManPage(root *cobra.Command, w io.Writer) error {
	header := &doc.GenManHeader{
		Title:   "DOTTY",
		Section: "1",
		Source:  "dotty " + version.Version,
		Manual:  "dotty manual",
	}
	return doc.GenMan(root, header, w)
}

// ReportError writes err to the command's error stream in the configured
// output format. Link failures are already part of the rendered report and
// produce no extra output. Usage errors are followed by the usage text.
func ReportError(root *cobra.Command, err error) {
	if err == nil || errors.IsErrorCode(err, errors.ErrLinkFailed) {
		return
	}

	flags := make(map[string]interface{})
	if f := root.PersistentFlags().Lookup(flagFormat); f != nil && f.Changed {
		flags[config.KeyFormat] = f.Value.String()
	}
	format := "auto"
	if settings, serr := config.LoadSettings(flags); serr == nil {
		format = settings.Format
	}

	w := root.ErrOrStderr()
	renderer, rerr := newRenderer(format, w)
	if rerr != nil {
		renderer, _ = ui.NewRenderer(ui.FormatText, w)
	}
	_ = renderer.RenderError(err)

	if errors.GetErrorCode(err) == errors.ErrUnknown {
		_, _ = fmt.Fprintln(w)
		_ = root.Usage()
	}
}
