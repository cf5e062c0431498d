package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/sghelper/pkg/analysis"
	"github.com/philipparndt/sghelper/pkg/geometry"
	"github.com/philipparndt/sghelper/pkg/length"
	"github.com/philipparndt/sghelper/version"
	"github.com/spf13/cobra"
)

// ErrArgumentCount is returned when the command is not given exactly one
// argument per parameter
var ErrArgumentCount = errors.New("wrong number of arguments")

// parameters lists the positional arguments in the order they are expected
var parameters = []string{
	"face_distance",
	"image_width",
	"image_height",
	"min_separation",
	"max_separation",
}

const usageTemplate = `Usage: {{.CommandPath}} <face_distance> <image_width> <image_height> <min_separation> <max_separation>

All parameters are lengths and must include units.  Accepted units are meters,
centimeters, millimeters, and inches.  These can be abbreviated as m, cm, mm,
and in, respectively.
{{if .HasAvailableSubCommands}}
Commands:{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}
{{end}}{{if .HasAvailableLocalFlags}}
Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}`

func exactParameters(cmd *cobra.Command, args []string) error {
	if len(args) != len(parameters) {
		return fmt.Errorf("%w: expected %d, received %d", ErrArgumentCount, len(parameters), len(args))
	}
	return nil
}

func newRootCmd() *cobra.Command {
	eyeSeparation := geometry.EyeSeparation()

	runParameters := func(cmd *cobra.Command, args []string) error {
		setup, err := parseSetup(args)
		if err != nil {
			return err
		}
		setup.EyeSeparation = eyeSeparation

		result := analysis.AnalyzeSetup(setup)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Camera FOV: %s\n", analysis.FormatDegrees(result.FieldOfView))
		fmt.Fprintf(out, "Min distance: %s\n", analysis.FormatCentimeters(result.MinDistance))
		fmt.Fprintf(out, "Max distance: %s\n", analysis.FormatCentimeters(result.MaxDistance))
		return nil
	}

	rootCmd := &cobra.Command{
		Use:   "sghelper <face_distance> <image_width> <image_height> <min_separation> <max_separation>",
		Short: "Stereoscopic camera geometry helper",
		Long: `sghelper computes the camera field of view and the minimum and maximum
capture distances for a stereoscopic image, given how far the viewer sits from
the screen, the image size, and the desired range of on-screen separation.`,
		Args:              exactParameters,
		ValidArgsFunction: completeLength,
		Version:           version.GetFullVersion(),
		SilenceErrors:     true,
		SilenceUsage:      true,
		RunE:              runParameters,
	}

	// Lengths like "-5cm" after the first positional argument must reach the
	// length parser instead of being read as flags.
	rootCmd.Flags().SetInterspersed(false)

	// "help" is not a length: it counts as a positional argument like any
	// other word. Help stays available through --help.
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:                "help",
		Hidden:             true,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			args = append([]string{cmd.Name()}, args...)
			if err := exactParameters(rootCmd, args); err != nil {
				return err
			}
			return runParameters(rootCmd, args)
		},
	})

	rootCmd.Flags().Var(newLengthValue(&eyeSeparation), "eye-separation", "interocular distance of the viewer")
	_ = rootCmd.RegisterFlagCompletionFunc("eye-separation", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return length.Complete(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.AddCommand(newCompletionCmd(rootCmd))
	rootCmd.SetUsageTemplate(usageTemplate)

	return rootCmd
}

// parseSetup parses the positional arguments in order, stopping at the first
// one that is not a valid length
func parseSetup(args []string) (analysis.Setup, error) {
	values := make([]length.Length, len(parameters))
	for i, arg := range args {
		l, err := length.Parse(arg)
		if err != nil {
			return analysis.Setup{}, fmt.Errorf("%s: %w", parameters[i], err)
		}
		values[i] = l
	}

	return analysis.NewSetup(values[0], values[1], values[2], values[3], values[4]), nil
}

// Run executes the command with the given arguments and returns the process
// exit code
func Run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if c, err := rootCmd.ExecuteC(); err != nil {
		if c.Hidden {
			c = rootCmd
		}
		if !errors.Is(err, ErrArgumentCount) {
			fmt.Fprintln(stderr, err)
			fmt.Fprintln(stderr)
		}
		fmt.Fprint(stderr, c.UsageString())
		return 1
	}
	return 0
}

// Execute runs the root command
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}
