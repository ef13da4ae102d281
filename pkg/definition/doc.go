// Package definition loads declarative form definitions from JSON or YAML
// files. Each loaded form implements form.Definition.
//
// A definition file looks like:
//
//	forms:
//	  contact:
//	    open: {action: /contact, method: POST}
//	    fields:
//	      - {kind: email, name: email, label: E-mail, rules: [required, email], required: true}
//	      - {kind: textarea, name: message, rows: 5}
//	    actions:
//	      - {kind: submit, label: Send}
package definition
