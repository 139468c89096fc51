// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assess

import (
	"strings"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// biasCategory pairs a bias family with the indicator words that suggest it.
type biasCategory struct {
	name       string
	indicators []string
}

// biasTable is fixed-order so assessments list categories deterministically.
var biasTable = []biasCategory{
	{"selection", []string{"consecutive", "convenience", "volunteer", "referral"}},
	{"detection", []string{"observer", "measurement", "assessment", "blinded"}},
	{"performance", []string{"control group", "placebo", "standard care"}},
	{"attrition", []string{"dropout", "withdrawal", "loss to follow-up"}},
}

// AssessBias scans title and abstract for bias indicator words and returns
// one flag per category. Score is hits normalized by 3 and capped at 1.0;
// two or more hits grade high risk, one grades medium.
func AssessBias(title, abstract string) []types.BiasFlag {
	text := strings.ToLower(title + " " + abstract)

	flags := make([]types.BiasFlag, 0, len(biasTable))
	for _, cat := range biasTable {
		var hits []string
		for _, ind := range cat.indicators {
			if strings.Contains(text, ind) {
				hits = append(hits, ind)
			}
		}

		score := float64(len(hits)) / 3.0
		if score > 1.0 {
			score = 1.0
		}
		risk := types.RiskLow
		switch {
		case len(hits) >= 2:
			risk = types.RiskHigh
		case len(hits) == 1:
			risk = types.RiskMedium
		}

		flags = append(flags, types.BiasFlag{
			Category:   cat.name,
			Score:      score,
			Risk:       risk,
			Indicators: hits,
		})
	}
	return flags
}
