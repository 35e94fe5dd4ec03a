package schema

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	markdownPolicyOnce sync.Once
	markdownPolicy     *bluemonday.Policy
)

// sanitizeMarkdown strips dangerous inline HTML from author-provided markdown
// bodies and descriptions. Markdown text flows verbatim into terminals and
// downstream HTML sinks, so script/style markup is removed at parse time.
func sanitizeMarkdown(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(markdownSanitizer().Sanitize(trimmed))
}

func markdownSanitizer() *bluemonday.Policy {
	markdownPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowElements("details", "summary")
		markdownPolicy = policy
	})
	return markdownPolicy
}
