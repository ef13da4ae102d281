package definition

// FormSpec declares a single form.
type FormSpec struct {
	Open     OpenSpec       `json:"open" yaml:"open"`
	Fields   []FieldSpec    `json:"fields" yaml:"fields"`
	Actions  []FieldSpec    `json:"actions" yaml:"actions"`
	Settings map[string]any `json:"settings" yaml:"settings"`
}

// OpenSpec configures the form open tag.
type OpenSpec struct {
	Action     string            `json:"action" yaml:"action"`
	Method     string            `json:"method" yaml:"method"`
	Multipart  bool              `json:"multipart" yaml:"multipart"`
	Encoding   string            `json:"encoding" yaml:"encoding"`
	Attributes map[string]string `json:"attributes" yaml:"attributes"`
	Hidden     map[string]string `json:"hidden" yaml:"hidden"`
}

// FieldSpec declares a field. Value is the default display value for inputs,
// textareas and selects, and the control value for checkboxes and radios.
// For buttons the label is the body text.
type FieldSpec struct {
	Kind        string            `json:"kind" yaml:"kind"`
	Name        string            `json:"name" yaml:"name"`
	ID          string            `json:"id" yaml:"id"`
	Label       string            `json:"label" yaml:"label"`
	Rules       any               `json:"rules" yaml:"rules"`
	Required    bool              `json:"required" yaml:"required"`
	Disabled    bool              `json:"disabled" yaml:"disabled"`
	Readonly    bool              `json:"readonly" yaml:"readonly"`
	Autofocus   bool              `json:"autofocus" yaml:"autofocus"`
	Placeholder string            `json:"placeholder" yaml:"placeholder"`
	Value       any               `json:"value" yaml:"value"`
	Checked     bool              `json:"checked" yaml:"checked"`
	Class       string            `json:"class" yaml:"class"`
	Attributes  map[string]string `json:"attributes" yaml:"attributes"`
	Data        map[string]string `json:"data" yaml:"data"`
	Options     []OptionSpec      `json:"options" yaml:"options"`
	Groups      []GroupSpec       `json:"groups" yaml:"groups"`
	OptionsFrom string            `json:"options_from" yaml:"options_from"` // "months" or "timezones"
	Multiple    bool              `json:"multiple" yaml:"multiple"`
	Rows        int               `json:"rows" yaml:"rows"`
	Cols        int               `json:"cols" yaml:"cols"`
	Content     string            `json:"content" yaml:"content"`
	Sanitize    bool              `json:"sanitize" yaml:"sanitize"`
	Preview     bool              `json:"preview" yaml:"preview"`
	Accept      string            `json:"accept" yaml:"accept"`
}

type OptionSpec struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

type GroupSpec struct {
	Label   string       `json:"label" yaml:"label"`
	Options []OptionSpec `json:"options" yaml:"options"`
}
