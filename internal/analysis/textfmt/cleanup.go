// Package textfmt normalizes raw model output into display-ready Markdown.
package textfmt

import (
	"regexp"
	"strings"
)

// The whole pass must be idempotent: running Cleanup on already-clean text
// returns it unchanged. Every rule therefore only fires where the required
// spacing is missing (single-newline guards instead of blanket rewrites).
var (
	roleTags        = regexp.MustCompile(`<s>|</s>|\[INST\]|\[/INST\]`)
	excessNewlines  = regexp.MustCompile(`\n{3,}`)
	sentenceBreak   = regexp.MustCompile(`([.!?])\s+([A-Z])`)
	bulletSpacing   = regexp.MustCompile(`([^\n])\n([•\-*] )`)
	numberedSpacing = regexp.MustCompile(`([^\n])\n(\d+\. )`)
	headingBefore   = regexp.MustCompile(`([^\n])\n(#{1,3} )`)
	headingAfter    = regexp.MustCompile(`(?m)^(#{1,3} [^\n]*)\n([^\n])`)
	boldSpacing     = regexp.MustCompile(`(\*\*[^*\n]+\*\*)([A-Za-z0-9])`)
	sectionHeading  = regexp.MustCompile(`(?i)^#{1,3} .*(diet|exercise|health|workout|nutrition|training)`)
)

// Cleanup strips leaked role-delimiter tokens and re-flows the text so
// paragraphs, lists and headings are separated by blank lines.
func Cleanup(text string) string {
	processed := strings.TrimSpace(roleTags.ReplaceAllString(text, ""))

	processed = excessNewlines.ReplaceAllString(processed, "\n\n")
	processed = sentenceBreak.ReplaceAllString(processed, "${1}\n\n${2}")
	processed = bulletSpacing.ReplaceAllString(processed, "${1}\n\n${2}")
	processed = numberedSpacing.ReplaceAllString(processed, "${1}\n\n${2}")
	processed = headingBefore.ReplaceAllString(processed, "${1}\n\n${2}")
	processed = headingAfter.ReplaceAllString(processed, "${1}\n\n${2}")

	// Fallback re-flow for responses that came back as one long paragraph.
	if !strings.Contains(processed, "\n\n") && len(processed) > 100 {
		processed = strings.ReplaceAll(processed, ". ", ".\n\n")
	}

	processed = boldSpacing.ReplaceAllString(processed, "${1} ${2}")
	processed = insertSectionRules(processed)

	return strings.TrimSpace(processed)
}

// insertSectionRules puts a horizontal rule ahead of headings that open a
// recognized content section, skipping headings that already have one.
func insertSectionRules(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if sectionHeading.MatchString(line) && lastNonBlank(out) != "---" {
			if len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}
			out = append(out, "---", "")
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

func lastNonBlank(lines []string) string {
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			return lines[i]
		}
	}
	return ""
}
