// Command wptinfo prints filter properties of the wavelet catalog.
//
// Usage:
//
//	wptinfo [flags] [wavelet-name ...]
//
// Without arguments it prints info for all known wavelet families.
//
// Examples:
//
//	wptinfo haar
//	wptinfo db4 sym4
//	wptinfo -n 4096 db8
//	wptinfo -all
//	wptinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-wavelet/wavelet"
	"github.com/cwbudde/algo-wavelet/wpt"
)

type waveletEntry struct {
	name string
	typ  wavelet.Type
}

var registry = []waveletEntry{
	{"haar", wavelet.TypeHaar},
	{"db2", wavelet.TypeDB2},
	{"db3", wavelet.TypeDB3},
	{"db4", wavelet.TypeDB4},
	{"db5", wavelet.TypeDB5},
	{"db6", wavelet.TypeDB6},
	{"db7", wavelet.TypeDB7},
	{"db8", wavelet.TypeDB8},
	{"sym4", wavelet.TypeSym4},
	{"coif1", wavelet.TypeCoif1},
}

func main() {
	n := flag.Int("n", 1024, "signal length for the max-depth column")
	all := flag.Bool("all", false, "show all wavelet families")
	list := flag.Bool("list", false, "list available wavelet names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wptinfo [flags] [wavelet-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints filter properties of the wavelet catalog.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all families.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wptinfo db4 sym4\n")
		fmt.Fprintf(os.Stderr, "  wptinfo -n 4096 db8\n")
		fmt.Fprintf(os.Stderr, "  wptinfo -all\n")
		fmt.Fprintf(os.Stderr, "  wptinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching wavelet families\n")
		os.Exit(1)
	}

	printAnalysis(entries, *n)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Println(name)
	}
}

func resolveEntries(names []string) []waveletEntry {
	byName := make(map[string]waveletEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []waveletEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown wavelet %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}

	return result
}

func printAnalysis(entries []waveletEntry, n int) {
	maxDepth := wpt.MaxDepth(n)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Wavelet\tTaps\tMoments\tTap Sum\tEnergy\tQMF Err\tOrth Err\tMax Depth (n=%d)\n", n); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "-------\t----\t-------\t-------\t------\t-------\t--------\t---------\n"); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, e := range entries {
		f, err := wavelet.New(e.typ)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			continue
		}

		info := wavelet.Info(e.typ)
		a := wavelet.Analyze(f)

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%.6f\t%.6f\t%.2e\t%.2e\t%d\n",
			e.name,
			info.Length,
			info.VanishingMoments,
			a.Sum,
			a.Energy,
			a.QMFErrorMax,
			a.OrthogonalityErrorMax,
			maxDepth,
		); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
