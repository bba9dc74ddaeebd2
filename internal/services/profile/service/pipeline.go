package service

import (
	"sailormouth/internal/core/matcher"
	"sailormouth/internal/core/normalize"
	"sailormouth/internal/core/report"
	"sailormouth/internal/core/tally"
	"sailormouth/internal/services/profile/domain"
)

// Pipeline scans records against a target word list
type Pipeline struct {
	norm *normalize.Normalizer
}

// NewPipeline returns a pipeline that prepares bodies with norm
func NewPipeline(norm *normalize.Normalizer) *Pipeline {
	if norm == nil {
		norm = normalize.New(normalize.ModeLower)
	}
	return &Pipeline{norm: norm}
}

// Scan counts every whole-word occurrence of words in records, one group per record Group.
// words must already be normalized. At most limit records are read when limit > 0.
//
// Words are consumed in list order, each until it no longer matches. A word that
// never occurs as a substring is skipped without a scan; the substring index is refreshed
// after every removal since cutting text can create new substrings
func (p *Pipeline) Scan(records []domain.Record, words []string, limit int) (*tally.Aggregator, report.Summary) {
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	agg := tally.New()
	pf := matcher.NewPrefilter(words)
	scanned, withMatch := 0, 0

	for _, rec := range records {
		text := p.norm.Normalize(rec.Body)
		present := pf.Present(text)
		matched := false

		for i, w := range words {
			if !present[i] {
				continue
			}
			rest := matcher.Each(text, w, func() {
				agg.Record(rec.Group, w)
				matched = true
			})
			if len(rest) != len(text) {
				text = rest
				present = pf.Present(text)
			}
		}

		scanned++
		if matched {
			withMatch++
		}
	}
	return agg, report.NewSummary(scanned, withMatch)
}
