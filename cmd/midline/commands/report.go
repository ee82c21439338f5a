package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mosaicnetworks/midline/src/stats"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	reportFrom string
	reportAll  bool
)

//NewReportCmd returns the command that prints series summaries
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [series]",
		Short: "Print the summary of a series from a running node",
		RunE:  report,
	}

	AddReportFlags(cmd)

	return cmd
}

//AddReportFlags adds flags to the report command
func AddReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&reportFrom, "from", "http://127.0.0.1:8000", "Base URL of the node's HTTP service")
	cmd.Flags().BoolVar(&reportAll, "all", false, "Report every series the node knows about")
}

func report(cmd *cobra.Command, args []string) error {
	var names []string

	if reportAll {
		if err := fetchJSON(reportFrom+"/series", &names); err != nil {
			return errors.Wrap(err, "fetching series names")
		}
	} else {
		if len(args) != 1 {
			return fmt.Errorf("specify one series, or --all")
		}
		names = args
	}

	tw := table.NewWriter()
	tw.SetTitle("Series Summary")
	tw.AppendHeader(table.Row{
		"Series", "Count", "Min", "Max", "Mean", "Median",
		"Even Median", "Q1", "Q3", "P95", "P99", "MAD", "Outliers",
	})

	for _, name := range names {
		var summary stats.Summary
		if err := fetchJSON(fmt.Sprintf("%s/series/%s", reportFrom, name), &summary); err != nil {
			return errors.Wrapf(err, "fetching summary of %s", name)
		}

		tw.AppendRow(table.Row{
			name,
			summary.Count,
			summary.Min,
			summary.Max,
			summary.Mean,
			summary.Median,
			summary.EvenMedian,
			summary.Q1,
			summary.Q3,
			summary.P95,
			summary.P99,
			summary.MAD,
			summary.Outliers,
		})
	}

	fmt.Fprint(os.Stdout, tw.Render())
	fmt.Fprint(os.Stdout, "\n")

	return nil
}

func fetchJSON(url string, out interface{}) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned %s", url, resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
