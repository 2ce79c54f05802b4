package charts

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/regtech-tools/y9c-dashboard/internal/analytics"
)

const (
	chartWidth  = 720
	chartHeight = 400
)

// AssetHistogramPNG renders the asset-size distribution as a bar chart.
// A view with no classifiable institutions renders the empty-state image.
func AssetHistogramPNG(w io.Writer, counts []analytics.BucketCount) error {
	total := 0
	bars := make([]chart.Value, 0, len(counts))
	values := make([]float64, 0, len(counts))
	for _, c := range counts {
		total += c.Count
		bars = append(bars, chart.Value{Value: float64(c.Count), Label: c.Bucket})
		values = append(values, float64(c.Count))
	}
	if total == 0 {
		return EmptyStatePNG(w, "No institutions match the current filters")
	}

	bc := chart.BarChart{
		Title:      "Institutions by total-asset bucket",
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   80,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 12}},
		XAxis:      chart.Style{},
		YAxis: chart.YAxis{
			ValueFormatter: chart.IntValueFormatter,
			Range:          yRange(values),
		},
		Bars: bars,
	}
	return bc.Render(chart.PNG, w)
}

// PeriodComparisonPNG renders the per-period aggregate as a time series.
// An empty series renders the empty-state image.
func PeriodComparisonPNG(w io.Writer, points []analytics.PeriodPoint, yAxisName string) error {
	if len(points) == 0 {
		return EmptyStatePNG(w, "No reporting periods match the current filters")
	}

	times := make([]time.Time, 0, len(points))
	values := make([]float64, 0, len(points))
	for _, p := range points {
		times = append(times, p.Date)
		values = append(values, p.Value)
	}

	// go-chart needs two points to draw a series.
	if len(times) == 1 {
		times = append(times, times[0].AddDate(0, 0, 1))
		values = append(values, values[0])
	}

	series := chart.TimeSeries{
		Name:    yAxisName,
		XValues: times,
		YValues: values,
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			DotColor:    chart.ColorBlue,
			DotWidth:    3,
		},
	}

	ch := chart.Chart{
		Title:      "Period-over-period comparison",
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 24}},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:  yAxisName,
			Range: yRange(values),
		},
		Series: []chart.Series{series},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.PNG, w)
}

// yRange pads a flat series so the axis still has a drawable span. Both
// charts need this: uniform bucket counts flatten the histogram the same way
// an unchanged metric flattens the time series.
func yRange(values []float64) chart.Range {
	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		return &chart.ContinuousRange{Min: min - 1, Max: max + 1}
	}
	return nil
}

// EmptyStatePNG renders a placeholder image carrying the message, so chart
// panes degrade to a readable notice instead of a broken image.
func EmptyStatePNG(w io.Writer, msg string) error {
	img := image.NewRGBA(image.Rect(0, 0, chartWidth, chartHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 0xF5, G: 0xF5, B: 0xF5, A: 0xFF}), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}),
		Face: basicfont.Face7x13,
	}
	width := d.MeasureString(msg)
	d.Dot = fixed.P(chartWidth/2-width.Ceil()/2, chartHeight/2)
	d.DrawString(msg)

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode empty-state image: %w", err)
	}
	return nil
}
