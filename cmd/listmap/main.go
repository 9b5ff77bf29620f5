// Command listmap reads whitespace-separated tokens from standard input,
// stores each token with its zero-based position in the stream, and prints
// the resulting table in ascending key order as one "<key> <value>" pair per
// line. Repeated tokens keep their last position.
//
//	$ echo "S E A R C H E X A M P L E" | listmap
//	A 8
//	C 4
//	E 12
//	...
//
// With -summary it also renders table statistics, including the average
// locate scan depth of the run.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/metailurini/listmap"
)

func main() {
	summary := flag.Bool("summary", false, "print table statistics after the key/value pairs")
	flag.Parse()

	st := listmap.NewOrdered[string, int]()

	total := 0
	sc := bufio.NewScanner(os.Stdin)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		st.Put(sc.Text(), total)
		total++
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "listmap: read stdin:", err)
		os.Exit(1)
	}

	out := bufio.NewWriter(os.Stdout)
	for key, value := range st.All() {
		fmt.Fprintf(out, "%s %d\n", key, value)
	}
	if err := out.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, "listmap: write stdout:", err)
		os.Exit(1)
	}

	if *summary {
		printSummary(st, total)
	}
}

func printSummary(st *listmap.Map[string, int], total int) {
	minKey, maxKey := "N/A", "N/A"
	if !st.IsEmpty() {
		minKey = st.Min()
		maxKey = st.Max()
	}

	avgSteps := "N/A"
	if calls, steps := st.TraversalStats(); calls > 0 {
		avgSteps = fmt.Sprintf("%.3f", float64(steps)/float64(calls))
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Tokens", "Distinct", "Min", "Max", "AvgSteps"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.Append([]string{
		fmt.Sprintf("%d", total),
		fmt.Sprintf("%d", st.Len()),
		minKey,
		maxKey,
		avgSteps,
	})
	table.Render()
}
