package post

import "github.com/microcosm-cc/bluemonday"

var (
	bodyPolicy = bluemonday.UGCPolicy()
	textPolicy = bluemonday.StrictPolicy()
)

// sanitizeBody keeps user-generated markup (headings, links, lists) and
// strips everything that can execute.
func sanitizeBody(html string) string {
	if html == "" {
		return ""
	}
	return bodyPolicy.Sanitize(html)
}

// sanitizeText strips all markup. Used for excerpts and other plain fields.
func sanitizeText(s string) string {
	if s == "" {
		return ""
	}
	return textPolicy.Sanitize(s)
}
