// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assess

import (
	"regexp"
	"strings"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// PICO keyword lists. Sentence-level presence of any keyword assigns the
// sentence to that element.
var (
	populationKeywords = []string{
		"patients", "participants", "subjects", "population", "elderly",
		"children", "adults", "women", "men", "adolescents", "infants",
	}
	interventionKeywords = []string{
		"treatment", "therapy", "intervention", "drug", "medication",
		"surgery", "exercise", "diet", "behavioral", "cognitive",
		"educational", "preventive", "diagnostic",
	}
	comparisonKeywords = []string{
		"compared with", "compared to", "versus", " vs ", "placebo",
		"control group", "usual care", "sham",
	}
	outcomeKeywords = []string{
		"outcome", "effect", "result", "mortality", "morbidity",
		"quality of life", "efficacy", "effectiveness", "side effect",
		"adverse event", "survival",
	}
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// ExtractPICO pulls Population, Intervention, Comparison, and Outcome
// summaries out of free text by keyword-matching sentences. Each field keeps
// at most its first three matching sentences; confidence grows with the
// total match count and is capped at 0.95.
func ExtractPICO(text string) types.PICOSummary {
	sentences := splitSentences(text)
	return types.PICOSummary{
		Population:   matchField(sentences, populationKeywords),
		Intervention: matchField(sentences, interventionKeywords),
		Comparison:   matchField(sentences, comparisonKeywords),
		Outcome:      matchField(sentences, outcomeKeywords),
	}
}

func splitSentences(text string) []string {
	var out []string
	for _, s := range sentenceSplit.Split(text, -1) {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func matchField(sentences, keywords []string) types.PICOField {
	var matches []string
	for _, s := range sentences {
		lower := strings.ToLower(s)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matches = append(matches, s)
				break
			}
		}
	}

	if len(matches) == 0 {
		return types.PICOField{}
	}

	kept := matches
	if len(kept) > 3 {
		kept = kept[:3]
	}
	confidence := 0.4 + 0.3*float64(len(matches))
	if confidence > 0.95 {
		confidence = 0.95
	}
	return types.PICOField{
		Text:       strings.Join(kept, ". "),
		Confidence: confidence,
	}
}
