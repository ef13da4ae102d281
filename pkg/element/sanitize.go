package element

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicyOnce sync.Once
	ugcPolicy     *bluemonday.Policy
)

func sanitizePolicy() *bluemonday.Policy {
	ugcPolicyOnce.Do(func() {
		ugcPolicy = bluemonday.UGCPolicy()
	})
	return ugcPolicy
}

// SanitizeHTML strips markup that is unsafe in user generated content.
func SanitizeHTML(markup string) string {
	return sanitizePolicy().Sanitize(markup)
}
