package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"easyinit/internal/analyze"
	"easyinit/internal/config"
	"easyinit/internal/diagnostic"
	"easyinit/internal/gen"
	"easyinit/internal/plugin"
)

type genOptions struct {
	style  string
	suffix string
	verify bool
	dump   bool
}

func newGenCommand(global *globalOptions) *cobra.Command {
	opts := &genOptions{}

	cmd := &cobra.Command{
		Use:   "gen [packages...]",
		Short: "Generate initializers for the annotated structs of packages",
		Long: `gen loads the given packages (default: the packages listed in the config
file, or ".") and writes one <file>_easyinit.go next to every source file
holding a struct marked with //easyinit:generate.

With --verify nothing is written; gen fails if any generated file is
missing or out of date.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, global, opts, args)
		},
	}

	addGenFlags(cmd.Flags(), opts)

	return cmd
}

func addGenFlags(flags *pflag.FlagSet, opts *genOptions) {
	flags.StringVar(&opts.style, "style", "", "initializers to emit: extension (copy-with-overrides only) or member (both)")
	flags.StringVar(&opts.suffix, "suffix", "", "output file suffix replacing .go (default _easyinit.go)")
	flags.BoolVar(&opts.verify, "verify", false, "check that generated files are up to date instead of writing them")
	flags.BoolVar(&opts.dump, "dump", false, "print the extracted fields of every declaration")
}

func runGen(cmd *cobra.Command, global *globalOptions, opts *genOptions, args []string) error {
	cfg, err := global.loadConfig(cmd, &config.Config{
		Style:    opts.style,
		Suffix:   opts.suffix,
		Packages: args,
	})
	if err != nil {
		return err
	}

	log := setupLogger(cmd, cfg)
	ctx := cmd.Context()

	descCfg := gen.DescriptorConfig{Style: cfg.GeneratorStyle()}
	if opts.dump {
		descCfg.Dump = cmd.OutOrStdout()
	}

	registry, err := plugin.New(gen.Descriptor(descCfg))
	if err != nil {
		return err
	}

	loader := analyze.NewLoader(registry.Markers()...)

	files, err := loader.LoadPackages(global.dir, cfg.Packages...)
	if err != nil {
		return err
	}

	log.Debug("loaded packages", "patterns", cfg.Packages, "files", len(files), "style", cfg.Style)

	genCfg := gen.DefaultGeneratorConfig()
	genCfg.Suffix = cfg.Suffix

	out, diags := gen.NewGenerator(genCfg, registry).Generate(ctx, files)
	printDiagnostics(cmd.ErrOrStderr(), diags)

	if diags.HasErrors() {
		return fmt.Errorf("%d declaration(s) could not be expanded", len(diags.Errors))
	}

	if opts.verify {
		return verify(cmd.ErrOrStderr(), out)
	}

	if err := gen.WriteFiles(out); err != nil {
		return err
	}

	for _, f := range out {
		log.Info("wrote", "file", f.Path)
	}

	return nil
}

func verify(w io.Writer, files []gen.GeneratedFile) error {
	stale, err := gen.Verify(files)

	for _, s := range stale {
		if s.Missing {
			fmt.Fprintf(w, "%s: missing\n", s.Path)
			continue
		}

		fmt.Fprint(w, s.Diff)
	}

	if errors.Is(err, gen.ErrStale) {
		return fmt.Errorf("%w; run easyinit gen", err)
	}

	return err
}

func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, group := range [][]diagnostic.Diagnostic{diags.Errors, diags.Warnings} {
		for _, d := range group {
			fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
		}
	}
}
