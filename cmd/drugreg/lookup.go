// CLI subcommands that query one regulatory API and print the assembled
// records as JSON on stdout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hazyhaar/drugreg/pkg/convert"
	"github.com/hazyhaar/drugreg/pkg/drugsfda"
	"github.com/hazyhaar/drugreg/pkg/rxclass"
	"github.com/hazyhaar/drugreg/pkg/trials"
)

type lookupFlags struct {
	fs       *flag.FlagSet
	raw      *bool
	strict   *bool
	logLevel *string
}

func newLookupFlags(name string) *lookupFlags {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return &lookupFlags{
		fs:       fs,
		raw:      fs.Bool("raw", false, "echo original field spellings instead of normalizing"),
		strict:   fs.Bool("strict", false, "fail on unrecognized vocabulary values instead of echoing them"),
		logLevel: fs.String("log-level", "info", "log level (debug, info, warn, error)"),
	}
}

func (f *lookupFlags) policy() convert.Policy {
	if *f.strict {
		return convert.Strict
	}
	return convert.Lenient
}

func (f *lookupFlags) arg(what string) (string, *slog.Logger) {
	if f.fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: drugreg %s [flags] <%s>\n", f.fs.Name(), what)
		os.Exit(1)
	}
	return f.fs.Arg(0), newLogger(*f.logLevel)
}

func cmdANDA(args []string) {
	f := newLookupFlags("anda")
	f.fs.Parse(args)
	number, logger := f.arg("anda-number")

	ctx, cancel := lookupContext()
	defer cancel()
	client := drugsfda.NewClient(drugsfda.WithLogger(logger), drugsfda.WithPolicy(f.policy()))
	results, err := client.SearchANDA(ctx, number, !*f.raw)
	exitOnError(logger, err)
	printJSON(logger, results)
}

func cmdNDA(args []string) {
	f := newLookupFlags("nda")
	f.fs.Parse(args)
	number, logger := f.arg("nda-number")

	ctx, cancel := lookupContext()
	defer cancel()
	client := drugsfda.NewClient(drugsfda.WithLogger(logger), drugsfda.WithPolicy(f.policy()))
	results, err := client.SearchNDA(ctx, number, !*f.raw)
	exitOnError(logger, err)
	printJSON(logger, results)
}

func cmdTrials(args []string) {
	f := newLookupFlags("trials")
	f.fs.Parse(args)
	drug, logger := f.arg("drug-name")

	ctx, cancel := lookupContext()
	defer cancel()
	client := trials.NewClient(trials.WithLogger(logger), trials.WithPolicy(f.policy()))
	studies, err := client.SearchIntervention(ctx, drug, !*f.raw)
	exitOnError(logger, err)
	printJSON(logger, studies)
}

func cmdClasses(args []string) {
	f := newLookupFlags("classes")
	snomedct := f.fs.Bool("snomedct", false, "include SNOMEDCT-sourced class claims")
	f.fs.Parse(args)
	drug, logger := f.arg("drug-name")

	opts := []rxclass.Option{rxclass.WithLogger(logger), rxclass.WithPolicy(f.policy())}
	if *snomedct {
		opts = append(opts, rxclass.WithSNOMEDCT())
	}
	ctx, cancel := lookupContext()
	defer cancel()
	client := rxclass.NewClient(opts...)
	entries, err := client.SearchDrugName(ctx, drug, !*f.raw)
	exitOnError(logger, err)
	printJSON(logger, entries)
}

func lookupContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Minute)
}

func exitOnError(logger *slog.Logger, err error) {
	if err != nil {
		logger.Error("lookup failed", "error", err)
		os.Exit(1)
	}
}

func printJSON(logger *slog.Logger, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Error("marshal results", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
