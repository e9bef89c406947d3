package chunk

import (
	"regexp"
	"strings"

	kertas "github.com/prasetya/kertas"
)

// Shared content-signal patterns. The scorer and the enricher use the same
// compiled regexes so the quality score and the citation-support flags can
// never disagree. Both are RE2-linear and compiled once at init.
var (
	currencyRe = regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?`)
	dateRe     = regexp.MustCompile(`(?i)\b(?:\d{1,2}/\d{1,2}/\d{2,4}|\d{4}-\d{2}-\d{2}|(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},?\s+\d{4})\b`)
)

// genericVocabulary holds insurance and financial terms shared by every
// document class. Order matters: keywords are reported in table order.
var genericVocabulary = []string{
	"insurance", "premium", "policy", "claim", "liability",
	"risk", "indemnity", "underwriting", "reinsurance", "beneficiary",
}

// classVocabulary holds the class-specific terms checked before the
// generic ones.
var classVocabulary = map[kertas.DocumentClass][]string{
	kertas.ClassPolicy: {
		"coverage", "deductible", "exclusion", "premium", "limit",
		"endorsement", "insured", "declarations", "peril", "rider",
	},
	kertas.ClassClaim: {
		"claimant", "adjuster", "settlement", "loss", "damage",
		"payment", "estimate", "subrogation", "appraisal", "reserve",
	},
	kertas.ClassFiling: {
		"revenue", "assets", "liabilities", "equity", "disclosure",
		"audit", "fiscal", "securities", "shareholders", "solvency",
	},
	kertas.ClassGeneric: {
		"agreement", "contract", "party", "obligation", "termination",
		"notice", "amendment", "governing", "jurisdiction", "severability",
	},
}

const maxKeywords = 10

// scoreChunk assigns a deterministic 0..1 quality score and a bounded
// keyword list to finished chunk content. The score is a weighted sum of
// simple signals: length inside the target band, a currency amount, a
// recognized date, at least two complete sentences, and per-class
// vocabulary hits. Keywords are the first terms found by substring match
// in table order, not frequency-ranked, so re-runs are byte-identical.
func scoreChunk(content string, class kertas.DocumentClass, cfg Config) (float64, []string) {
	w := cfg.Weights
	lower := strings.ToLower(content)
	score := 0.0

	n := len(content)
	switch {
	case n >= cfg.TargetSize-200 && n <= cfg.TargetSize+200:
		score += w.LengthInBand
	case n >= cfg.MinSize && n <= cfg.MaxSize:
		score += w.LengthInBounds
	default:
		score += w.LengthOutside
	}

	if currencyRe.MatchString(content) {
		score += w.Currency
	}
	if dateRe.MatchString(content) {
		score += w.Date
	}
	if countSentenceTerminators(content) >= 2 {
		score += w.Sentences
	}

	keywords := matchKeywords(lower, class)
	if len(keywords) > 0 {
		perTerm := w.VocabularyMax / float64(maxKeywords)
		vocab := perTerm * float64(len(keywords))
		if vocab > w.VocabularyMax {
			vocab = w.VocabularyMax
		}
		score += vocab
	}

	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score, keywords
}

// matchKeywords returns up to maxKeywords vocabulary terms present in the
// lowercased content: class-specific terms first, then generic ones, each
// in table order.
func matchKeywords(lower string, class kertas.DocumentClass) []string {
	var keywords []string
	seen := map[string]bool{}

	collect := func(terms []string) {
		for _, term := range terms {
			if len(keywords) >= maxKeywords {
				return
			}
			if seen[term] {
				continue
			}
			if strings.Contains(lower, term) {
				keywords = append(keywords, term)
				seen[term] = true
			}
		}
	}

	collect(classVocabulary[class])
	collect(genericVocabulary)
	return keywords
}
