package cli

import (
	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0"
	commit  = ""
	date    = ""
)

type rootOptions struct {
	configPath   string
	bookmarkFile string
	logFile      string
	trace        bool
	list         bool
	save         bool
}

func Execute() int {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "ds [filter...]",
		Short: "Jump between bookmarked directories",
		Long: `ds prints a shell command that changes to a bookmarked directory.
Wrap it in your shell, e.g. ds() { eval "$(command ds "$@")"; }

With no arguments an interactive picker is shown. Words of the filter must
appear in the nickname or path in the given order.`,
		SilenceErrors: false,
		SilenceUsage:  true,
		Version:       buildVersion(),
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Override config file path (default: OS user config dir)")
	cmd.PersistentFlags().StringVar(&opts.bookmarkFile, "file", "", "Override bookmark file (default: $DS_BOOKMARKS or ~/.dir-short.bookmarks)")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Write trace output to this file")
	cmd.PersistentFlags().BoolVar(&opts.trace, "trace", false, "Enable JSON trace logging")

	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "List bookmarked directories")
	cmd.Flags().BoolVarP(&opts.save, "save", "s", false, "Bookmark the current directory with an optional nickname")
	cmd.MarkFlagsMutuallyExclusive("list", "save")

	return cmd
}

func runRoot(cmd *cobra.Command, opts *rootOptions, args []string) error {
	env, err := loadEnv(cmd, opts)
	if err != nil {
		return err
	}

	switch {
	case opts.list:
		if len(args) > 0 {
			return errListArgs
		}
		return runList(cmd, env)
	case opts.save:
		if len(args) > 1 {
			return errSaveArgs
		}
		nickname := ""
		if len(args) == 1 {
			nickname = args[0]
		}
		return runSave(cmd, env, nickname)
	case len(args) > 0:
		return runFind(cmd, env, args)
	default:
		return runInteractive(cmd, env)
	}
}

func buildVersion() string {
	v := version
	if commit != "" {
		v += " (" + commit + ")"
	}
	if date != "" {
		v += " " + date
	}
	return v
}
