package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/rgehrsitz/pensionleg/internal/batch"
	"github.com/rgehrsitz/pensionleg/internal/config"
	"github.com/rgehrsitz/pensionleg/internal/domain"
	"github.com/rgehrsitz/pensionleg/internal/legislation"
	"github.com/rgehrsitz/pensionleg/internal/output"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements legislation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const defaultTablesFile = "data/legislation.yaml"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pensionleg %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "pensionleg",
	Short: "Pension legislation parameter resolver",
	Long:  "Resolves the legislative parameters governing pension rights for individuals, ages and legislation years",
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [profiles-file]",
	Short: "Resolve the legislative parameters of one profile",
	Long: `Resolve the legislative parameters of one profile at one age under one legislation year.

Examples:
  pensionleg resolve profiles.yaml --year 2015
  pensionleg resolve profiles.yaml --id alice --year 2015 --age 60 --format json
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, _ := cmd.Flags().GetInt("year")
		id, _ := cmd.Flags().GetString("id")

		resolver, err := newResolver(cmd)
		if err != nil {
			return err
		}
		profiles, err := config.NewInputParser().LoadProfilesFromFile(args[0])
		if err != nil {
			return err
		}
		profile, err := selectProfile(profiles, id)
		if err != nil {
			return err
		}

		age := profile.EvaluationAge(year)
		if cmd.Flags().Changed("age") {
			age, _ = cmd.Flags().GetInt("age")
		}

		params, err := resolver.Resolve(profile, age, year)
		return write(cmd, []batch.Result{{ProfileID: profile.ID, Age: age, Params: params, Err: err}}, err)
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch [profiles-file]",
	Short: "Resolve the legislative parameters of every profile in a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, _ := cmd.Flags().GetInt("year")
		workers, _ := cmd.Flags().GetInt("workers")

		resolver, err := newResolver(cmd)
		if err != nil {
			return err
		}
		profiles, err := config.NewInputParser().LoadProfilesFromFile(args[0])
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		results := batch.Run(ctx, resolver, batch.JobsForYear(profiles, year), year, workers)
		var runErr error
		if s := batch.Summarize(results); s.Failed > 0 {
			runErr = fmt.Errorf("%d of %d profiles failed to resolve", s.Failed, len(results))
		}
		return write(cmd, results, runErr)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a legislative tables file and optionally a profiles file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tablesFile, _ := cmd.Flags().GetString("tables")
		profilesFile, _ := cmd.Flags().GetString("profiles")

		parser := config.NewInputParser()
		tables, err := parser.LoadTablesFromFile(tablesFile)
		if err != nil {
			return err
		}
		earliest, _ := tables.EarliestVintage()
		fmt.Fprintf(cmd.OutOrStdout(), "Tables file %s is valid (earliest vintage %d)\n", tablesFile, earliest)

		if profilesFile != "" {
			profiles, err := parser.LoadProfilesFromFile(profilesFile)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profiles file %s is valid (%d profiles)\n", profilesFile, len(profiles))
		}
		return nil
	},
}

func newResolver(cmd *cobra.Command) (*legislation.Resolver, error) {
	tablesFile, _ := cmd.Flags().GetString("tables")
	tables, err := config.NewInputParser().LoadTablesFromFile(tablesFile)
	if err != nil {
		return nil, err
	}
	resolver := legislation.NewResolver(tables)
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		resolver.SetLogger(simpleCLILogger{})
	}
	return resolver, nil
}

func selectProfile(profiles []domain.Profile, id string) (domain.Profile, error) {
	if id == "" {
		return profiles[0], nil
	}
	for _, p := range profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Profile{}, fmt.Errorf("profile %q not found", id)
}

// write renders results in the requested format, then reports runErr
func write(cmd *cobra.Command, results []batch.Result, runErr error) error {
	format, _ := cmd.Flags().GetString("format")
	f := output.GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unknown output format: %s (valid: %v)", format, output.AvailableFormats())
	}
	data, err := f.Format(results)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}
	return runErr
}

func init() {
	for _, cmd := range []*cobra.Command{resolveCmd, batchCmd, validateCmd} {
		cmd.Flags().StringP("tables", "t", defaultTablesFile, "Path to the legislative tables file")
	}
	for _, cmd := range []*cobra.Command{resolveCmd, batchCmd} {
		cmd.Flags().IntP("year", "y", 0, "Legislation year (required)")
		cmd.Flags().StringP("format", "f", "table", "Output format (table, json, json-pretty)")
		cmd.Flags().Bool("debug", false, "Enable debug output")
		_ = cmd.MarkFlagRequired("year")
	}

	resolveCmd.Flags().String("id", "", "Profile id (default: first profile in the file)")
	resolveCmd.Flags().IntP("age", "a", 0, "Evaluation age (default: derived from the profile and year)")

	batchCmd.Flags().IntP("workers", "w", 0, "Number of concurrent workers (default: GOMAXPROCS)")

	validateCmd.Flags().String("profiles", "", "Path to a profiles file to validate as well")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
