package analytics

import (
	"github.com/regtech-tools/y9c-dashboard/internal/models"
)

// Asset-size buckets for FR Y-9C filers. Total assets are reported in
// $thousands, so 750_000_000 is $750 billion.
const (
	bucket100B = 100_000_000
	bucket250B = 250_000_000
	bucket500B = 500_000_000
	bucket750B = 750_000_000
)

// AssetBuckets lists the bucket labels in ascending size order.
var AssetBuckets = []string{
	"<100 billion",
	"100-250 billion",
	"250-500 billion",
	"500-750 billion",
	">=750 billion",
}

// AssetBucket classifies a total-assets figure. Zero or negative values are
// unclassifiable and return "".
func AssetBucket(totalAssets float64) string {
	if totalAssets <= 0 {
		return ""
	}
	switch {
	case totalAssets >= bucket750B:
		return ">=750 billion"
	case totalAssets >= bucket500B:
		return "500-750 billion"
	case totalAssets >= bucket250B:
		return "250-500 billion"
	case totalAssets >= bucket100B:
		return "100-250 billion"
	default:
		return "<100 billion"
	}
}

// BucketCount is one histogram bar: institutions whose total assets fall in
// the bucket.
type BucketCount struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

// AssetHistogram counts distinct institutions per asset bucket. Every bucket
// appears in the result, zero counts included, in ascending size order.
func AssetHistogram(rows []models.Filing) []BucketCount {
	seen := map[string]map[string]bool{}
	for _, b := range AssetBuckets {
		seen[b] = map[string]bool{}
	}

	for _, fl := range rows {
		b := AssetBucket(fl.TotalAssets)
		if b == "" {
			continue
		}
		seen[b][fl.RSSDID] = true
	}

	counts := make([]BucketCount, 0, len(AssetBuckets))
	for _, b := range AssetBuckets {
		counts = append(counts, BucketCount{Bucket: b, Count: len(seen[b])})
	}
	return counts
}

// TotalInstitutions counts distinct institutions in the view.
func TotalInstitutions(rows []models.Filing) int {
	seen := map[string]bool{}
	for _, fl := range rows {
		seen[fl.RSSDID] = true
	}
	return len(seen)
}
