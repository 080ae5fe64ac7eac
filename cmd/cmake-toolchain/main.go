package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tmaxmax/cmake-toolchain/pkg/toolchain"
)

type options struct {
	format     string
	configPath string
	sysroot    string
	cc         string
	cxx        string
	ar         string
	ranlib     string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "cmake-toolchain [target...]",
		Short: "Resolve the native build toolchain for target triples",
		Long: `cmake-toolchain resolves the C/C++ compiler, archiver and ranlib for
one or more target triples, honoring CC/CXX/AR environment overrides,
CROSS_COMPILE and the usual cross toolchain naming conventions. With no
arguments it resolves the host toolchain.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", `output format: "text", "cmake" or "env" (default "text")`)
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML file with a default format and per-target overrides")
	cmd.Flags().StringVar(&opts.sysroot, "sysroot", "", "sysroot override")
	cmd.Flags().StringVar(&opts.cc, "cc", "", "C compiler override")
	cmd.Flags().StringVar(&opts.cxx, "cxx", "", "C++ compiler override")
	cmd.Flags().StringVar(&opts.ar, "ar", "", "archiver override")
	cmd.Flags().StringVar(&opts.ranlib, "ranlib", "", "ranlib override")

	return cmd
}

func run(cmd *cobra.Command, opts *options, targets []string) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	if len(targets) == 0 {
		host, err := toolchain.HostTriple()
		if err != nil {
			return err
		}
		targets = []string{host}
	}

	format := cfg.Format
	if opts.format != "" {
		format = opts.format
	}

	// Each resolution is independent, so targets resolve in parallel;
	// output stays in argument order.
	resolved := make([]*toolchain.Toolchain, len(targets))
	var g errgroup.Group
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			tc, err := toolchain.New(target)
			if err != nil {
				return err
			}
			applyOverrides(tc, cfg.Targets[target], opts)
			resolved[i] = tc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, tc := range resolved {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if err := writeToolchain(out, tc, format); err != nil {
			return err
		}
	}
	return nil
}

// applyOverrides layers config file overrides under command line ones, so
// a flag always wins over the config for the same field.
func applyOverrides(tc *toolchain.Toolchain, cfg targetOverride, opts *options) {
	for _, o := range []struct {
		value string
		set   func(string) *toolchain.Toolchain
	}{
		{cfg.Sysroot, tc.SetSysroot},
		{cfg.CC, tc.SetCC},
		{cfg.CXX, tc.SetCXX},
		{cfg.AR, tc.SetAR},
		{cfg.Ranlib, tc.SetRanlib},
		{opts.sysroot, tc.SetSysroot},
		{opts.cc, tc.SetCC},
		{opts.cxx, tc.SetCXX},
		{opts.ar, tc.SetAR},
		{opts.ranlib, tc.SetRanlib},
	} {
		if o.value != "" {
			o.set(o.value)
		}
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
