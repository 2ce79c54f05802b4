package charts

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/regtech-tools/y9c-dashboard/internal/analytics"
)

func decodePNG(t *testing.T, buf *bytes.Buffer) {
	t.Helper()
	if _, err := png.Decode(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("output is not a decodable PNG: %v", err)
	}
}

func TestAssetHistogramPNG(t *testing.T) {
	counts := []analytics.BucketCount{
		{Bucket: "<100 billion", Count: 12},
		{Bucket: "100-250 billion", Count: 4},
		{Bucket: ">=750 billion", Count: 2},
	}

	var buf bytes.Buffer
	if err := AssetHistogramPNG(&buf, counts); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	decodePNG(t, &buf)
}

func TestAssetHistogramPNG_UniformCountsRendersChart(t *testing.T) {
	// One institution per bucket flattens the value range; the axis must be
	// padded, not rejected.
	var counts []analytics.BucketCount
	for _, b := range analytics.AssetBuckets {
		counts = append(counts, analytics.BucketCount{Bucket: b, Count: 2})
	}

	var buf bytes.Buffer
	if err := AssetHistogramPNG(&buf, counts); err != nil {
		t.Fatalf("render failed for uniform counts: %v", err)
	}
	decodePNG(t, &buf)
}

func TestAssetHistogramPNG_AllZeroRendersEmptyState(t *testing.T) {
	counts := []analytics.BucketCount{{Bucket: "<100 billion", Count: 0}}

	var buf bytes.Buffer
	if err := AssetHistogramPNG(&buf, counts); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	decodePNG(t, &buf)
}

func TestPeriodComparisonPNG(t *testing.T) {
	day := func(s string) time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return d
	}

	tests := []struct {
		name   string
		points []analytics.PeriodPoint
	}{
		{"multiple periods", []analytics.PeriodPoint{
			{Period: "2023-03-31", Date: day("2023-03-31"), Value: 100},
			{Period: "2023-06-30", Date: day("2023-06-30"), Value: 120},
		}},
		{"single period", []analytics.PeriodPoint{
			{Period: "2023-03-31", Date: day("2023-03-31"), Value: 100},
		}},
		{"flat series", []analytics.PeriodPoint{
			{Period: "2023-03-31", Date: day("2023-03-31"), Value: 50},
			{Period: "2023-06-30", Date: day("2023-06-30"), Value: 50},
		}},
		{"empty view", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := PeriodComparisonPNG(&buf, tt.points, "Total reported value"); err != nil {
				t.Fatalf("render failed: %v", err)
			}
			decodePNG(t, &buf)
		})
	}
}

func TestEmptyStatePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := EmptyStatePNG(&buf, "No data available for selected filters"); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	decodePNG(t, &buf)
}
