// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assess

import (
	"strings"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// designRule maps keyword cues to a study type. Rules are checked in order;
// the first hit wins, so the table encodes the tie-break precedence:
// meta-analysis > systematic review > randomized trial > cohort >
// case-control > cross-sectional > case report.
type designRule struct {
	design   types.StudyType
	patterns []string
}

var designTable = []designRule{
	{types.StudyMetaAnalysis, []string{"meta-analysis", "meta analysis", "pooled analysis"}},
	{types.StudySystematicReview, []string{"systematic review"}},
	{types.StudyRandomizedTrial, []string{"randomized controlled trial", "randomised controlled trial", "randomized", "randomised", "controlled trial", "double-blind", "double blind"}},
	{types.StudyCohort, []string{"cohort", "longitudinal", "follow-up study", "prospective study"}},
	{types.StudyCaseControl, []string{"case-control", "case control"}},
	{types.StudyCrossSectional, []string{"cross-sectional", "cross sectional", "survey"}},
	{types.StudyCaseReport, []string{"case report", "case series"}},
}

// ClassifyDesign assigns a study-type label from title and abstract text.
// Returns StudyUnclassified when no rule matches.
func ClassifyDesign(title, abstract string) types.StudyType {
	text := strings.ToLower(title + " " + abstract)
	for _, rule := range designTable {
		for _, p := range rule.patterns {
			if strings.Contains(text, p) {
				return rule.design
			}
		}
	}
	return types.StudyUnclassified
}

// designBonus is the quality-score adjustment per study type.
var designBonus = map[types.StudyType]float64{
	types.StudyMetaAnalysis:     20,
	types.StudySystematicReview: 20,
	types.StudyRandomizedTrial:  25,
	types.StudyCohort:           15,
	types.StudyCaseControl:      10,
	types.StudyCrossSectional:   5,
	types.StudyCaseReport:       -5,
	types.StudyUnclassified:     0,
}

// EvidenceLevel maps a study type onto the evidence hierarchy:
// 1 (meta-analysis, systematic review) down to 4 (case report, unclassified).
func EvidenceLevel(design types.StudyType) int {
	switch design {
	case types.StudyMetaAnalysis, types.StudySystematicReview:
		return 1
	case types.StudyRandomizedTrial:
		return 2
	case types.StudyCohort, types.StudyCaseControl:
		return 3
	default:
		return 4
	}
}
