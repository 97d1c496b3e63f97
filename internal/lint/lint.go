// Package lint flags fragment content that will not behave on the test page:
// server-side includes that nothing here executes, whole documents nested
// into the page and a missing overlay element.
package lint

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	SeverityWarn = "warn"
	SeverityInfo = "info"
)

type Finding struct {
	Rule     string `json:"rule"`
	Line     int    `json:"line,omitempty"` // 0 for whole-fragment rules
	Snippet  string `json:"snippet,omitempty"`
	Severity string `json:"severity"`
}

type rule struct {
	name     string
	re       *regexp.Regexp
	severity string
}

var rules = []rule{
	{name: "PHP block", re: regexp.MustCompile(`<\?(?:php\b|=)`), severity: SeverityWarn},
	{name: "Server-side include", re: regexp.MustCompile(`<!--\s*#include\b`), severity: SeverityWarn},
	{name: "Doctype in fragment", re: regexp.MustCompile(`(?i)<!doctype\b`), severity: SeverityWarn},
	{name: "Document element in fragment", re: regexp.MustCompile(`(?i)<(?:html|head|body)[\s>]`), severity: SeverityWarn},
	{name: "Root-relative asset", re: regexp.MustCompile(`(?i)\b(?:src|href)\s*=\s*["']/[^/"']`), severity: SeverityInfo},
}

// OverlayID is the element the test page's status check looks for.
const OverlayID = "videoCube"

var overlayRe = regexp.MustCompile(`\bid\s*=\s*["']` + regexp.QuoteMeta(OverlayID) + `["']`)

// Scan returns all findings in source order, whole-fragment rules last.
func Scan(text string) []Finding {
	var out []Finding
	for li, line := range strings.Split(text, "\n") {
		for _, rl := range rules {
			if rl.re.MatchString(line) {
				out = append(out, Finding{
					Rule: rl.name, Line: li + 1, Snippet: truncate(strings.TrimSpace(line), 120), Severity: rl.severity,
				})
			}
		}
	}
	if !overlayRe.MatchString(text) {
		out = append(out, Finding{
			Rule:     fmt.Sprintf("No element with id %q", OverlayID),
			Severity: SeverityWarn,
		})
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "…"
}

// Brief formats findings as a short list for logs and pages.
func Brief(fs []Finding, max int) string {
	if len(fs) == 0 {
		return ""
	}
	if max <= 0 {
		max = 5
	}
	var b strings.Builder
	for i, f := range fs {
		if i >= max {
			fmt.Fprintf(&b, "…and %d more\n", len(fs)-max)
			break
		}
		if f.Line > 0 {
			fmt.Fprintf(&b, "- %s (line %d)\n", f.Rule, f.Line)
		} else {
			fmt.Fprintf(&b, "- %s\n", f.Rule)
		}
	}
	return b.String()
}
