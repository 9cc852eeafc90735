package report

import (
	"fmt"
	"strings"

	"github.com/creatorscope/creatorscope/internal/model"
)

// Narrative tiers on the investment score.
const (
	exceptionalTierMin = 70
	promisingTierMin   = 50
	exponentialMin     = 60
)

// Narrative renders the fixed-template human-readable summary for the
// report. Consumers string-match this text, so the templates are exact.
func Narrative(r *model.Report, score int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "@%s presents an ", r.Handle)
	switch {
	case score >= exceptionalTierMin:
		fmt.Fprintf(&b, "exceptional investment opportunity with a score of %d/100. ", score)
	case score >= promisingTierMin:
		fmt.Fprintf(&b, "promising investment profile with a score of %d/100. ", score)
	default:
		fmt.Fprintf(&b, "emerging profile with a score of %d/100. ", score)
	}

	fmt.Fprintf(&b, "With %s followers and connections to %d top accounts, ",
		model.Comma(r.Creator.Followers), r.Network.TotalConnections)
	fmt.Fprintf(&b, "this individual demonstrates influence across %d key topics. ",
		len(r.TopicInfluence))

	if len(r.TopicInfluence) > 0 {
		top := r.TopicInfluence[0]
		topic := top.Topic
		if topic == "" {
			topic = "N/A"
		}
		rank := "N/A"
		if top.Rank != nil {
			rank = fmt.Sprintf("%d", *top.Rank)
		}
		fmt.Fprintf(&b, "Primary focus: %s (rank #%s). ", topic, rank)
	}

	potential := "growth potential"
	if score >= exponentialMin {
		potential = "strong exponential potential"
	}
	fmt.Fprintf(&b, "The network quality and engagement patterns suggest %s.", potential)

	return b.String()
}
