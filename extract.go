package main

import (
	"regexp"
	"strings"
)

// Heuristic KPI patterns, most specific family first. Families are applied
// in order and a later family overwrites an earlier one on label collision.
var kpiPatterns = []*regexp.Regexp{
	// Fixed business vocabulary, separator optional: 架電50件, アポ数: 5
	regexp.MustCompile(`(売上|契約|アポ|架電|面談|成約)[数件率]?\s*[:\s：]*(\d+(?:\.\d+)?(?:%|件|円|人|回)?)`),
	// Bracketed label: 【新規顧客】12件
	regexp.MustCompile(`【([^】]+)】\s*(\d+(?:\.\d+)?(?:%|件|円|人|回)?)`),
	// Generic labeled value: 訪問数: 8 or 訪問数：8
	regexp.MustCompile(`([^\s:：]+)[:\s：]+(\d+(?:\.\d+)?(?:%|件|円|人|回)?)`),
}

// ExtractKPIValues pulls (label, value) pairs out of free-form report text.
// Best-effort and lossy: values are kept verbatim (digits plus optional
// unit suffix), with no numeric coercion. Total over arbitrary strings.
func ExtractKPIValues(text string) map[string]string {
	values := make(map[string]string)
	for _, re := range kpiPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			label := strings.TrimSpace(m[1])
			value := strings.TrimSpace(m[2])
			if label == "" || value == "" {
				continue
			}
			values[label] = value
		}
	}
	return values
}
