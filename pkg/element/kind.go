package element

// Field kinds reported by GetType.
const (
	KindText          = "text"
	KindEmail         = "email"
	KindDate          = "date"
	KindDateTimeLocal = "datetime-local"
	KindHidden        = "hidden"
	KindPassword      = "password"
	KindFile          = "file"
	KindTextArea      = "textarea"
	KindMarkDown      = "markdown"
	KindCheckbox      = "checkbox"
	KindRadio         = "radio"
	KindSelect        = "select"
	KindButton        = "button"
	KindSubmit        = "submit"
	KindReset         = "reset"
	KindHTML          = "html"
	KindLabel         = "label"
	KindFormOpen      = "form"
)

// Kinds lists every field kind that can be registered in a form.
func Kinds() []string {
	return []string{
		KindText, KindEmail, KindDate, KindDateTimeLocal, KindHidden, KindPassword, KindFile,
		KindTextArea, KindMarkDown, KindCheckbox, KindRadio, KindSelect,
		KindButton, KindSubmit, KindReset, KindHTML,
	}
}
