package model

// VendorScore is one row of the average-score-by-vendor report.
type VendorScore struct {
	VendorID     string  `json:"vendor_id"`
	AverageScore float64 `json:"average_score"`
}

// CategoryScore is one row of the average-score-by-category report.
type CategoryScore struct {
	Category     string  `json:"category"`
	AverageScore float64 `json:"average_score"`
}

// PotionRatio is one row of the strength/flavor ratio report. Ratio is nil
// when the flavor rating is zero, so the report never fails on one potion.
type PotionRatio struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Ratio *float64 `json:"ratio"`
}

// VendorPriceStat is one row of the per-vendor price report.
type VendorPriceStat struct {
	VendorID     string  `json:"vendor_id"`
	AveragePrice float64 `json:"average_price"`
	PotionCount  int64   `json:"potion_count"`
}

// GroupMetric is one row of the generic grouped report.
type GroupMetric struct {
	GroupKey string  `json:"group_key"`
	Value    float64 `json:"value"`
}
