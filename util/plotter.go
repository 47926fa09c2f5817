package util

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"usage-map-server/mapview"
)

// RenderSpaceUsageChart writes an HTML bar chart of booking counts per space
// for one date. Spaces are ordered by name so the chart is stable across
// refreshes.
func RenderSpaceUsageChart(w io.Writer, date string, agg mapview.Aggregation) error {
	spaces := make([]string, 0, len(agg.BySpace))
	for space := range agg.BySpace {
		spaces = append(spaces, space)
	}
	sort.Strings(spaces)

	bars := make([]opts.BarData, 0, len(spaces))
	for _, space := range spaces {
		count := len(agg.BySpace[space])
		bars = append(bars, opts.BarData{
			Value: count,
			ItemStyle: &opts.ItemStyle{
				Color: mapview.ColorForCount(count),
			},
		})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Space Usage Report",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Bookings per space",
			Subtitle: fmt.Sprintf("Date: %s", date),
		}),
	)
	bar.SetXAxis(spaces).AddSeries("Bookings", bars)

	return bar.Render(w)
}
