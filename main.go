package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"

	"github.com/kestalella/zonesort/core"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(fs *flag.FlagSet, stderr io.Writer) {
	fmt.Fprintf(stderr, "usage: %s [flags] <array-size> <zones>\n", fs.Name())
	fs.PrintDefaults()
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("zonesort", flag.ContinueOnError)
	fs.SetOutput(stderr)

	impl := fs.String("impl", "zone", "Implementation: zone or seq")
	seed := fs.Int64("seed", 0, "Seed for the random fill (0 uses the current time)")
	maxVal := fs.Int("max", core.MaxValue, "Largest generated element")
	in := fs.String("in", "", "Array to sort, as |a|b|c|; replaces the random fill")
	maxWorkers := fs.Int("max-workers", 0, "Maximum number of zone workers (0 for no limit)")
	verbose := fs.Bool("v", false, "Enable debug logging on stderr")

	fs.Usage = func() { usage(fs, stderr) }
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 2 {
		usage(fs, stderr)
		return 1
	}

	size, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "invalid array size %q\n", fs.Arg(0))
		usage(fs, stderr)
		return 1
	}
	zones, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		fmt.Fprintf(stderr, "invalid zone count %q\n", fs.Arg(1))
		usage(fs, stderr)
		return 1
	}
	if *impl != "zone" && *impl != "seq" {
		fmt.Fprintf(stderr, "unknown implementation %q\n", *impl)
		usage(fs, stderr)
		return 1
	}
	if *maxVal < 0 || *maxVal == math.MaxInt {
		fmt.Fprintf(stderr, "-max must be between 0 and %d, got %d\n", math.MaxInt-1, *maxVal)
		return 1
	}

	level := logiface.LevelWarning
	if *verbose {
		level = logiface.LevelDebug
	}
	logger := stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(stderr)),
		stumpy.L.WithLevel(level),
	).Logger()

	var tab []int
	if *in != "" {
		if tab, err = core.ParseArray(*in); err != nil {
			fmt.Fprintf(stderr, "invalid -in array: %v\n", err)
			return 1
		}
		if len(tab) != size {
			fmt.Fprintf(stderr, "-in holds %d elements, expected %d\n", len(tab), size)
			return 1
		}
	}

	// Reject bad combinations before anything is generated or printed.
	if _, err := core.PlanZones(size, zones); err != nil {
		logger.Err().Err(err).Int("size", size).Int("zones", zones).Log("rejected configuration")
		fmt.Fprintln(stderr, err)
		usage(fs, stderr)
		return 1
	}

	if tab == nil {
		tab = make([]int, size)
		core.Fill(tab, *maxVal, core.NewRand(*seed))
	}
	original := append([]int(nil), tab...)

	if *impl == "seq" {
		fmt.Fprintf(stdout, "sequential bubble sort of %d elements\n\n", size)
	} else {
		fmt.Fprintf(stdout, "bubble sort split across %d zone workers\n\n", zones)
	}
	fmt.Fprintln(stdout, "unsorted array:")
	if err := core.WriteArray(stdout, tab); err != nil {
		fmt.Fprintf(stderr, "write unsorted array: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout)

	var stats *core.Stats
	switch *impl {
	case "zone":
		stats, err = core.ZoneSort(tab, zones, &core.Config{
			MaxWorkers: *maxWorkers,
			Logger:     logger,
			OnSpawn: func(z core.Zone) {
				fmt.Fprintf(stdout, "zone %d worker started.\n", z.Index)
			},
		})
	case "seq":
		stats = core.SequentialSort(tab, logger)
	}
	if err != nil {
		logger.Err().Err(err).Log("sort aborted")
		if errors.Is(err, core.ErrResourceExhaustion) {
			fmt.Fprintf(stderr, "sort aborted: %v\n", err)
		} else {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}

	fmt.Fprintln(stdout, "\nsorted array:")
	if err := core.WriteArray(stdout, tab); err != nil {
		fmt.Fprintf(stderr, "write sorted array: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "sort time: %f\n", stats.Elapsed.Seconds())

	if core.IsSorted(tab) && core.SameElements(original, tab) {
		fmt.Fprintln(stdout, "the array was sorted correctly!")
		return 0
	}
	fmt.Fprintln(stdout, "the array was not sorted correctly...")
	return 1
}
