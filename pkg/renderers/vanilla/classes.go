package vanilla

// ChromeClass is a typed identifier for the CSS classes the vanilla template
// wraps around built fields.
type ChromeClass string

const (
	ClassTheme        ChromeClass = "formbuilder-theme"
	ClassErrors       ChromeClass = "formbuilder-errors"
	ClassGroup        ChromeClass = "formbuilder-group"
	ClassGroupInvalid ChromeClass = "formbuilder-group--invalid"
	ClassGroupCheck   ChromeClass = "formbuilder-group--check"
	ClassError        ChromeClass = "formbuilder-error"
	ClassActions      ChromeClass = "formbuilder-actions"
)

func classMap() map[string]any {
	return map[string]any{
		"theme":         string(ClassTheme),
		"errors":        string(ClassErrors),
		"group":         string(ClassGroup),
		"group_invalid": string(ClassGroupInvalid),
		"group_check":   string(ClassGroupCheck),
		"error":         string(ClassError),
		"actions":       string(ClassActions),
	}
}
