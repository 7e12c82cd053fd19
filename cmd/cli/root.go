package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamed0406/footprint/internal/app"
	"github.com/hamed0406/footprint/internal/config"
	"github.com/hamed0406/footprint/internal/domain"
	"github.com/hamed0406/footprint/internal/logging"
	"github.com/hamed0406/footprint/internal/report"
)

// newSearcher is swapped in tests.
var newSearcher = func(cmd *cobra.Command, cfg cliConfig) (searcher, error) {
	if local, _ := cmd.Flags().GetBool("local"); !local {
		return newAPIClient(cfg.APIBase), nil
	}
	envCfg := config.FromEnv()
	logger := zap.NewNop()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		l, err := logging.NewLogger(envCfg.LogDir, "debug")
		if err != nil {
			return nil, err
		}
		logger = l
	}
	return app.NewSearchService(envCfg, logger, nil)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "footprint",
		Short: "Collect the public digital footprint of a username, email or name",
		Long: `footprint probes well-known platforms for public profiles and gathers
domain registration data for email addresses.

Settings are read from $XDG_CONFIG_HOME/footprint/config.yaml:
  api_base: http://localhost:8080
  format: markdown`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Configuration file path (default: "+defaultConfigPath()+")")
	cmd.PersistentFlags().String("api", "", "API base URL (overrides api_base)")
	cmd.PersistentFlags().StringP("format", "f", "", "Output format: markdown, json or yaml")
	cmd.PersistentFlags().Bool("local", false, "Run the search in-process instead of calling the API")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log probe details when running with --local")

	cmd.AddCommand(newUsernameCmd(), newEmailCmd(), newNameCmd())
	return cmd
}

func newUsernameCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "username <username>",
		Short:   "Check which platforms have a profile for a username",
		Example: "  footprint username octocat",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, domain.SearchRequest{Type: domain.SearchUsername, Query: args[0]})
		},
	}
}

func newEmailCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "email <address>",
		Short:   "Look up an email domain and probe accounts for its local part",
		Example: "  footprint email someone@example.com",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, domain.SearchRequest{Type: domain.SearchEmail, Query: args[0]})
		},
	}
}

func newNameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name [first last]",
		Short: "Derive usernames from a person's name and probe them",
		Example: `  footprint name Jane Doe
  footprint name --first Jane --last Doe`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, _ := cmd.Flags().GetString("first")
			last, _ := cmd.Flags().GetString("last")
			switch len(args) {
			case 2:
				first, last = args[0], args[1]
			case 1:
				return errors.New("name needs both a first and a last name")
			}
			return runSearch(cmd, domain.SearchRequest{Type: domain.SearchName, FirstName: first, LastName: last})
		},
	}
	cmd.Flags().String("first", "", "First name")
	cmd.Flags().String("last", "", "Last name")
	return cmd
}

func runSearch(cmd *cobra.Command, req domain.SearchRequest) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		cfgPath = defaultConfigPath()
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("load config %s: %w", cfgPath, err)
	}
	if v, _ := cmd.Flags().GetString("api"); v != "" {
		cfg.APIBase = v
	}
	if v, _ := cmd.Flags().GetString("format"); v != "" {
		cfg.Format = v
	}
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	s, err := newSearcher(cmd, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	resp, err := s.Search(ctx, req)
	if err != nil {
		return err
	}
	return report.Write(cmd.OutOrStdout(), format, resp)
}
