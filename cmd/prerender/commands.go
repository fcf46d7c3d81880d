package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pkordes/firm-site/internal/catalog"
	"github.com/pkordes/firm-site/internal/domain"
	"github.com/pkordes/firm-site/internal/service"
)

// app carries the flags shared by every subcommand.
type app struct {
	catalogPath string
	stdout      io.Writer
	stderr      io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "prerender",
		Short:         "Print the location pages to generate at build time",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "priority catalog YAML file (default: built-in catalog)")

	root.AddCommand(
		a.locationsCmd(),
		a.statesCmd(),
		a.stateCmd(),
		a.servicesCmd(),
		a.shouldGenerateCmd(),
		a.displayNameCmd(),
	)
	return root
}

// optionFlags binds the StaticParamsOptions flags onto cmd.
func optionFlags(cmd *cobra.Command, opts *domain.StaticParamsOptions) {
	f := cmd.Flags()
	f.BoolVar(&opts.IncludeCounties, "counties", false, "include priority counties")
	f.BoolVar(&opts.IncludeRegions, "regions", false, "include priority regions")
	f.BoolVar(&opts.IncludeNeighborhoods, "neighborhoods", false, "include priority neighborhoods")
	f.StringSliceVar(&opts.CustomLocations, "custom", nil, "extra location slugs (comma-separated or repeated)")
	f.IntVar(&opts.Limit, "limit", 0, "maximum number of locations; 0 means no limit")
}

func (a *app) locationsCmd() *cobra.Command {
	var opts domain.StaticParamsOptions
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "City slugs to prerender, in priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			locations, err := svc.LocationParams(opts)
			if err != nil {
				return err
			}
			return a.print(locations)
		},
	}
	optionFlags(cmd, &opts)
	return cmd
}

func (a *app) statesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "State codes that have priority cities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			return a.print(svc.States())
		},
	}
}

func (a *app) stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state <code>",
		Short: "State/city pairs for one state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			return a.print(svc.StateParams(args[0]))
		},
	}
}

func (a *app) servicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "services <service>...",
		Short: "Primary-state city × service pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			params, err := svc.ServiceParams(args)
			if err != nil {
				return err
			}
			return a.print(params)
		},
	}
}

func (a *app) shouldGenerateCmd() *cobra.Command {
	var opts domain.StaticParamsOptions
	cmd := &cobra.Command{
		Use:   "should-generate <location>",
		Short: "Report whether a location is prerendered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			generate, err := svc.ShouldGenerate(args[0], opts)
			if err != nil {
				return err
			}
			return a.print(map[string]any{"location": args[0], "generate": generate})
		},
	}
	optionFlags(cmd, &opts)
	return cmd
}

func (a *app) displayNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "display-name <slug>",
		Short: "Human-readable name for a location or service slug",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			return a.print(map[string]string{"slug": args[0], "display_name": svc.DisplayName(args[0])})
		},
	}
}

// service loads the catalog and builds the generator. Warnings go to stderr
// so stdout stays machine-readable.
func (a *app) service() (*service.StaticParamsService, error) {
	var (
		cat *catalog.Catalog
		err error
	)
	if a.catalogPath == "" {
		cat, err = catalog.Default()
	} else {
		cat, err = catalog.LoadFile(a.catalogPath)
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	log := slog.New(slog.NewTextHandler(a.stderr, nil))
	return service.NewStaticParamsService(cat, log), nil
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
