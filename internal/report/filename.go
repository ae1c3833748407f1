package report

import (
	"regexp"
	"strings"
	"time"
)

// Anything that is not a letter, digit, underscore or whitespace is
// stripped from the title before it is embedded in the filename.
var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)

var spaceRe = regexp.MustCompile(`\s+`)

// Filename builds the export artifact name:
// تقرير_{sanitized title}_{YYYY-MM-DD}.pdf
func Filename(title string, now time.Time) string {
	clean := nonWordRe.ReplaceAllString(title, "")
	clean = spaceRe.ReplaceAllString(strings.TrimSpace(clean), "_")
	if clean == "" {
		clean = "survey"
	}
	return "تقرير_" + clean + "_" + now.Format("2006-01-02") + ".pdf"
}
