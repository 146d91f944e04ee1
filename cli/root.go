package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/cmdx"
	"github.com/spf13/cobra"
)

func New(cfg *Config) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:           "gossip <command> <subcommand> [flags]",
		Short:         "Social feed & search service",
		Long:          "Search and feed service for notes and actors of a social network.",
		SilenceErrors: true,
		SilenceUsage:  false,
		Example: heredoc.Doc(`
		$ gossip search "actor-types:bot hello"
		$ gossip server start
		$ gossip server migrate
		`),
		Annotations: map[string]string{
			"group": "core",
			"help:learn": heredoc.Doc(`
				Use 'gossip <command> --help' for info about a command.
			`),
			"help:feedback": heredoc.Doc(`
				Open an issue here https://github.com/goto/gossip/issues
			`),
		},
	}

	rootCmd.AddCommand(
		serverCmd(cfg),
		configCommand(cfg),
		searchCommand(cfg),
		versionCmd(),
	)

	// Help topics
	rootCmd.AddCommand(cmdx.SetCompletionCmd("gossip"))
	rootCmd.AddCommand(cmdx.SetRefCmd(rootCmd))
	rootCmd.AddCommand(cmdx.SetHelpTopicCmd("environment", envHelp))
	rootCmd.AddCommand(cmdx.SetHelpTopicCmd("filters", filtersHelp))
	cmdx.SetHelp(rootCmd)

	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "Override config file")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cfgFile, _ := cmd.Flags().GetString(configFlag)
		if cfgFile == "" {
			return nil
		}
		return LoadConfigFromFlag(cfgFile, cfg)
	}

	return rootCmd
}
