// ftatool builds the airport automata and lints, inspects or exports them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/goforj/godump"

	"github.com/comalice/airportfta"
	"github.com/comalice/airportfta/internal/log"
	"github.com/comalice/airportfta/internal/primitives"
	"github.com/comalice/airportfta/internal/production"
	"github.com/comalice/airportfta/internal/util"
)

var (
	logLevel    = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir      = flag.String("logdir", "", "log file directory")
	lint        = flag.Bool("lint", false, "check the validity of all airport layouts")
	airport     = flag.String("airport", "", "airport type to inspect (e.g., international)")
	dot         = flag.Bool("dot", false, "print the automaton of -airport as Graphviz DOT")
	dump        = flag.Bool("dump", false, "dump the states of -airport")
	exportDir   = flag.String("export", "", "directory to write every airport layout to")
	format      = flag.String("format", "yaml", "layout file format for -export: yaml or json")
	bundleFile  = flag.String("bundle", "", "write every airport layout to a zstd-compressed bundle file")
	layoutsFile = flag.String("layouts", "", "file with replacement layouts (.yaml, .json or .zst bundle)")
	year        = flag.Int("year", 0, "list the airport types available in the given year")
	neverExpire = flag.Bool("neverexpire", false, "airports never expire once introduced")
)

func main() {
	flag.Parse()

	// Initialize the logging system first and foremost.
	lg := log.New(*logLevel, *logDir)

	if err := run(lg); err != nil {
		lg.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(lg *log.Logger) error {
	opts := []airportfta.Option{
		airportfta.WithLogger(lg),
		airportfta.WithNeverExpire(*neverExpire),
	}
	if *layoutsFile != "" {
		overrides, err := production.LoadOverrides(*layoutsFile)
		if err != nil {
			return err
		}
		for _, l := range overrides {
			t, err := airportfta.ParseAirportType(l.Name)
			if err != nil {
				return fmt.Errorf("%s: %w", *layoutsFile, err)
			}
			opts = append(opts, airportfta.WithLayout(t, l))
		}
		lg.Infof("%s: %d replacement layouts", *layoutsFile, len(overrides))
	}

	reg := airportfta.NewRegistry(opts...)

	if *lint {
		var e util.ErrorLogger
		reg.Lint(&e)
		if e.HaveErrors() {
			e.PrintErrors(lg)
			return fmt.Errorf("lint: %d airport types checked, errors found", airportfta.NumAirportTypes)
		}
		fmt.Printf("%d airport types OK\n", airportfta.NumAirportTypes)
		return nil
	}

	if err := reg.Initialize(); err != nil {
		return err
	}
	defer reg.Teardown()

	if *year != 0 {
		for _, t := range reg.Available(*year) {
			spec, _ := reg.Spec(t)
			fmt.Printf("%-18s %dx%d noise %d, %d-%d\n", t, spec.Width, spec.Height, spec.NoiseLevel, spec.MinYear, spec.MaxYear)
		}
	}

	if *airport != "" {
		if err := inspect(reg, *airport); err != nil {
			return err
		}
	}

	if *exportDir != "" {
		if err := export(reg, lg); err != nil {
			return err
		}
	}

	if *bundleFile != "" {
		if err := writeBundle(reg); err != nil {
			return err
		}
	}
	return nil
}

func inspect(reg *airportfta.Registry, name string) error {
	t, err := airportfta.ParseAirportType(name)
	if err != nil {
		return err
	}
	a := reg.Lookup(t)

	switch {
	case *dot:
		eps := a.EntryPoints()
		fmt.Print((&production.DefaultVisualizer{}).ExportDOT(a, eps[:]...))
	case *dump:
		godump.Dump(a.States())
	default:
		eps := a.EntryPoints()
		var entries []string
		for dir, p := range eps {
			entries = append(entries, fmt.Sprintf("%s=%d", primitives.DiagDirection(dir), p))
		}
		fmt.Printf("%s: %d states, %d transitions, %d terminals (%d groups), %d helipads (%d groups)\n",
			a.Name(), a.NumStates(), a.NumTransitions(), a.NumTerminals(), a.NumTerminalGroups(),
			a.NumHelipads(), a.NumHelipadGroups())
		fmt.Printf("  flags %s, entries %s\n", a.Flags(), strings.Join(entries, " "))
	}
	return nil
}

func layouts(reg *airportfta.Registry) ([]primitives.Layout, error) {
	var ls []primitives.Layout
	for _, t := range airportfta.AllAirportTypes {
		l, err := reg.Layout(t)
		if err != nil {
			return nil, err
		}
		ls = append(ls, l)
	}
	return ls, nil
}

func export(reg *airportfta.Registry, lg *log.Logger) error {
	store, err := production.NewStore(*format, *exportDir)
	if err != nil {
		return err
	}
	ls, err := layouts(reg)
	if err != nil {
		return err
	}

	ch := make(chan production.ExportEvent, len(ls))
	pub := production.NewChannelPublisher(ch)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range ch {
			if ev.Err != nil {
				lg.Warnf("%s: %v", ev.Layout, ev.Err)
			} else {
				lg.Debugf("exported %s", ev.Layout)
			}
		}
	}()

	err = production.ExportAll(context.Background(), store, ls, runtime.NumCPU(), pub)
	pub.Close()
	<-done
	if err != nil {
		return err
	}
	fmt.Printf("%d layouts written to %s\n", len(ls), *exportDir)
	return nil
}

func writeBundle(reg *airportfta.Registry) error {
	ls, err := layouts(reg)
	if err != nil {
		return err
	}
	f, err := os.Create(*bundleFile)
	if err != nil {
		return err
	}
	if err := production.WriteBundle(f, ls); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
