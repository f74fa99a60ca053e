package presenter

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	messagePolicyOnce sync.Once
	messagePolicy     *bluemonday.Policy
)

// sanitizeMessage strips markup from error text before it reaches the
// document. Message overrides come from user-supplied form definitions, so
// they are not trusted as HTML.
func sanitizeMessage(raw string) string {
	messagePolicyOnce.Do(func() {
		messagePolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(messagePolicy.Sanitize(raw))
}
