package main

import "regexp"

// Individual KPI channels follow the 個人_<name> naming convention. The
// prefix anchors at the start and the remainder must be non-empty.
var individualChannelRe = regexp.MustCompile(`^個人_(.+)$`)

func IsIndividualChannel(name string) bool {
	return individualChannelRe.MatchString(name)
}

// ExtractPersonName returns the person name embedded in an individual
// channel name, or ok=false when the name does not follow the convention.
func ExtractPersonName(name string) (string, bool) {
	m := individualChannelRe.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}
