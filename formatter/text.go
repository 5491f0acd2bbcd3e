package formatter

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/theoremus-urban-solutions/gpx-align/align"
)

// WriteText prints the human-readable alignment report: aggregate counts,
// the reference time, and one block per input file in name order.
func WriteText(w io.Writer, res *align.BatchResult) {
	header := color.New(color.Bold)
	success := color.New(color.FgGreen)
	failure := color.New(color.FgRed)

	_, _ = header.Fprintln(w, "ALIGNMENT RESULTS")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Files processed: %d\n", res.Processed)
	fmt.Fprintf(w, "Successfully aligned: %d\n", res.Successful)
	fmt.Fprintf(w, "Failed: %d\n", res.Failed)
	fmt.Fprintf(w, "Reference time: %s\n", res.ReferenceTime.UTC().Format(time.RFC3339))

	names := make([]string, 0, len(res.Files))
	for name := range res.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fr := res.Files[name]
		fmt.Fprintf(w, "\n%s:\n", name)
		if fr.Status == align.StatusSuccess {
			_, _ = success.Fprintf(w, "  Status: %s\n", fr.Status)
			fmt.Fprintf(w, "  Time offset: %s\n", fr.OffsetText)
			if fr.MatchedTime != nil {
				fmt.Fprintf(w, "  Original alignment time: %s\n", fr.MatchedTime.UTC().Format(time.RFC3339))
			}
			fmt.Fprintf(w, "  Output: %s\n", fr.OutputPath)
			continue
		}
		_, _ = failure.Fprintf(w, "  Status: %s\n", fr.Status)
		fmt.Fprintf(w, "  Message: %s\n", fr.Message)
	}
}
