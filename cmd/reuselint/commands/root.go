package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/reuselint/reuselint/internal/scan"
	"github.com/reuselint/reuselint/pkg/version"
)

var (
	cfgFile string
	noColor bool
	config  scan.Config
)

var rootCmd = &cobra.Command{
	Use:   "reuselint",
	Short: "REUSE compliance linter",
	Long: `reuselint checks a project tree for compliance with version ` + version.SpecVersion + ` of the
REUSE Specification <https://reuse.software/spec/>.

Every covered file must carry copyright and licensing information, and
every referenced license must live in the LICENSES/ directory.`,
	Version: version.Current,
	// Run: nil (forces help output).
	Run: nil,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.reuselint.yaml)")
	rootCmd.PersistentFlags().StringVar(&config.Root, "root", ".", "Project root to scan")
	rootCmd.PersistentFlags().IntVarP(&config.Jobs, "jobs", "j", 0, "Workers for file scans (0 = one per CPU, 1 = serial)")
	rootCmd.PersistentFlags().BoolVar(&config.IncludeSubmodules, "include-submodules", false, "Do not skip over Git submodules")
	rootCmd.PersistentFlags().BoolVar(&config.IncludeMesonSubprojects, "include-meson-subprojects", false, "Do not skip over Meson subprojects")
	rootCmd.PersistentFlags().BoolVar(&config.SuppressDeprecation, "suppress-deprecation", false, "Hide deprecation warnings")
	rootCmd.PersistentFlags().BoolVar(&config.Verbose, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Hidden operator knobs.
	rootCmd.PersistentFlags().BoolVar(&config.JSONLogs, "log-json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().StringVar(&config.OtelEndpoint, "otel-endpoint", "", "OTLP trace endpoint override")
	rootCmd.PersistentFlags().MarkHidden("log-json")
	rootCmd.PersistentFlags().MarkHidden("otel-endpoint")

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		renderHelp(cmd)
	})

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		bindFlags(cmd)
		if noColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	}
}

// bindFlags backfills flags the user did not set from the config file
// and REUSELINT_* environment, so `REUSELINT_ROOT=/src reuselint lint`
// and a root entry in ~/.reuselint.yaml behave like --root.
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) {
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", viper.Get(f.Name)))
		}
	})
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.SetConfigFile(filepath.Join(home, ".reuselint.yaml"))
			viper.SetConfigType("yaml")
		}
	}
	viper.SetEnvPrefix("REUSELINT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.ReadInConfig()
}

func renderHelp(cmd *cobra.Command) {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#874BFD")).
		MarginBottom(1)

	flagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	fmt.Println(titleStyle.Render(fmt.Sprintf("REUSELINT %s", version.Current)))
	fmt.Println("Copyright and licensing linter for the REUSE Specification.")

	fmt.Println(titleStyle.Render("USAGE"))
	fmt.Printf("  %s\n\n", cmd.UseLine())

	if cmd.HasAvailableSubCommands() {
		fmt.Println(titleStyle.Render("COMMANDS"))
		for _, c := range cmd.Commands() {
			if c.IsAvailableCommand() {
				fmt.Printf("  %-20s %s\n", c.Name(), c.Short)
			}
		}
		fmt.Println("")

		fmt.Println(titleStyle.Render("EXAMPLES"))
		fmt.Println("  reuselint lint                      # Full project report")
		fmt.Println("  reuselint lint --format json        # Machine-readable report")
		fmt.Println("  reuselint lint --interactive        # Browse findings in the terminal")
		fmt.Println("  reuselint spdx -o project.spdx      # SPDX bill of materials")
		fmt.Println("")
	}

	fmt.Println(titleStyle.Render("FLAGS"))
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		output := fmt.Sprintf("  --%-28s %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			output += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		fmt.Println(flagStyle.Render(output))
	})
	fmt.Println("")
}
