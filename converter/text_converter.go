package converter

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/notaneet/roomstats/model"
)

// TextConverter tab aligned tables, on stdout when out is empty or "-"
type TextConverter struct{}

func (t TextConverter) Write(set model.ReportSet, out string) error {
	if out == "" || out == "-" {
		return WriteText(os.Stdout, set)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := WriteText(f, set); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func WriteText(w io.Writer, set model.ReportSet) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, r := range set.Reports {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintln(tw, r.Name)
		for _, row := range r.Table {
			for j, cell := range row {
				if j > 0 {
					fmt.Fprint(tw, "\t")
				}
				fmt.Fprint(tw, cell)
			}
			fmt.Fprintln(tw)
		}
	}
	return tw.Flush()
}
