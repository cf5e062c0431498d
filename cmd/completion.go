package cmd

import (
	"fmt"

	"github.com/philipparndt/sghelper/pkg/length"
	"github.com/spf13/cobra"
)

func newCompletionCmd(rootCmd *cobra.Command) *cobra.Command {
	completionCmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for sghelper.

To load completions:

Bash:

  $ source <(sghelper completion bash)

Zsh:

  $ sghelper completion zsh > "${fpath[1]}/_sghelper"

  You will need to start a new shell for this setup to take effect.

Fish:

  $ sghelper completion fish | source
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletionV2(out, true)
			case "zsh":
				return rootCmd.GenZshCompletion(out)
			case "fish":
				return rootCmd.GenFishCompletion(out, true)
			}
			return fmt.Errorf("unsupported shell %q", args[0])
		},
	}

	// The root usage template describes the length parameters only
	completionCmd.SetUsageTemplate(new(cobra.Command).UsageTemplate())
	return completionCmd
}

// completeLength suggests unit spellings for the length being typed
func completeLength(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) >= len(parameters) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return length.Complete(toComplete), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
