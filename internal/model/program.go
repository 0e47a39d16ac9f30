package model

import (
	"fmt"
	"strings"
)

// Program field labels, in the order they appear in a program description.
const (
	LabelChannel     = "Chaîne"
	LabelPublishedAt = "Diffusée ou publiée le"
	LabelDuration    = "Durée"
	LabelSummary     = "Résumé"
)

// programDelimiter separates the segments of a program description.
const programDelimiter = "; "

// Program is a catch-up program parsed from its descriptive string.
// Optional fields are nil when their labeled segment is absent.
type Program struct {
	Name        string  `yaml:"name"                   json:"name"`
	Channel     *string `yaml:"channel,omitempty"      json:"channel,omitempty"`
	PublishedAt *string `yaml:"published_at,omitempty" json:"published_at,omitempty"`
	Duration    *string `yaml:"duration,omitempty"     json:"duration,omitempty"`
	Summary     *string `yaml:"summary,omitempty"      json:"summary,omitempty"`
}

// ParseProgram parses a description of the form
//
//	<name>; Chaîne: <channel>; Diffusée ou publiée le: <date>; Durée: <duration>; Résumé: <summary>
//
// Every labeled segment is optional but must appear in that order. Parsing
// stops at the first segment that does not carry the label expected at its
// position; all later fields are then absent, even if present further on.
func ParseProgram(s string) Program {
	segments := strings.Split(s, programDelimiter)
	p := Program{Name: strings.TrimSpace(segments[0])}
	rest := segments[1:]

	fields := []struct {
		label string
		dst   **string
	}{
		{LabelChannel, &p.Channel},
		{LabelPublishedAt, &p.PublishedAt},
		{LabelDuration, &p.Duration},
		{LabelSummary, &p.Summary},
	}
	for _, f := range fields {
		if len(rest) == 0 || !strings.Contains(rest[0], f.label) {
			break
		}
		v := segmentValue(rest[0])
		*f.dst = &v
		rest = rest[1:]
	}
	return p
}

// segmentValue returns the text after the first colon, trimmed.
func segmentValue(segment string) string {
	_, after, found := strings.Cut(segment, ":")
	if !found {
		return ""
	}
	return strings.TrimSpace(after)
}

func (p Program) String() string {
	return fmt.Sprintf("Program: %s, Channel: %s, Published At: %s, Duration: %s, Summary: %s",
		p.Name, optString(p.Channel), optString(p.PublishedAt), optString(p.Duration), optString(p.Summary))
}

func optString(s *string) string {
	if s == nil {
		return "<none>"
	}
	return *s
}
