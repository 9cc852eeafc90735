package report

import (
	"time"

	"github.com/creatorscope/creatorscope/internal/model"
)

// Data quality grades recorded in report metadata.
const (
	QualityHigh    = "high"
	QualityPartial = "partial"
)

// composeMetadata builds the report bookkeeping block. Quality drops to
// partial when a secondary fetch was recovered with an empty section.
func composeMetadata(r *model.Report, raw Raw, now time.Time) model.Metadata {
	quality := QualityHigh
	if len(raw.Degraded) > 0 {
		quality = QualityPartial
	}
	return model.Metadata{
		DataQuality:     quality,
		DataFreshness:   now,
		DataSources:     []string{"lunarcrush_api_v4"},
		TotalDataPoints: DataPoints(r),
		ReportVersion:   model.ReportVersion,
	}
}

// DataPoints counts the report's data points: creator fields, community
// size, topic count, category count, post count, metric fields, insights
// and recommendations. A simple additive census with no deduplication.
func DataPoints(r *model.Report) int {
	return r.Creator.FieldCount() +
		len(r.Network.TopCommunity) +
		len(r.TopicInfluence) +
		len(r.CategoryInfluence) +
		len(r.TopPosts) +
		model.MetricsFieldCount +
		len(r.Insights) +
		len(r.Recommendations)
}
