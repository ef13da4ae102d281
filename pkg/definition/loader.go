package definition

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/element"
)

// ErrFormNotFound is returned when a store has no form with the given name.
var ErrFormNotFound = errors.New("definition: form not found")

// Built-in option sources for select fields.
const (
	OptionsMonths    = "months"
	OptionsTimezones = "timezones"
)

// Store holds the forms loaded from a filesystem.
type Store struct {
	forms map[string]*Definition
}

// LoadFS walks fsys and parses every JSON/YAML definition file. When fsys is
// nil or holds no definition files the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{forms: make(map[string]*Definition)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("definition: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawName, spec := range doc.Forms {
			name := strings.TrimSpace(rawName)
			if name == "" {
				return fmt.Errorf("definition: file %s defines a form with an empty name", path)
			}
			if existing, exists := store.forms[name]; exists {
				return fmt.Errorf("definition: duplicate form %q (files %s and %s)", name, existing.Source, path)
			}
			def, err := normaliseForm(name, path, spec)
			if err != nil {
				return err
			}
			store.forms[name] = def
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Definition returns the named form.
func (s *Store) Definition(name string) (*Definition, error) {
	if s != nil {
		if def, ok := s.forms[name]; ok {
			return def, nil
		}
	}
	return nil, fmt.Errorf("definition: %q: %w", name, ErrFormNotFound)
}

// Names lists the loaded form names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.forms))
	for name := range s.forms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any forms.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

type documentFile struct {
	Forms map[string]FormSpec `json:"forms" yaml:"forms"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("definition: file %s is empty", source)
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("definition: parse %s: %w", source, err)
	}
	return doc, nil
}

func normaliseForm(name, source string, spec FormSpec) (*Definition, error) {
	knownKinds := make(map[string]struct{})
	for _, kind := range element.Kinds() {
		knownKinds[kind] = struct{}{}
	}

	check := func(section string, specs []FieldSpec) ([]FieldSpec, error) {
		out := make([]FieldSpec, 0, len(specs))
		for idx, field := range specs {
			field.Kind = strings.ToLower(strings.TrimSpace(field.Kind))
			field.Name = strings.TrimSpace(field.Name)
			if field.Kind == "" {
				field.Kind = element.KindText
			}
			if _, ok := knownKinds[field.Kind]; !ok {
				return nil, fmt.Errorf("definition: form %q (file %s) %s[%d]: unknown kind %q", name, source, section, idx, field.Kind)
			}
			if field.Name == "" && needsName(field.Kind) {
				return nil, fmt.Errorf("definition: form %q (file %s) %s[%d]: %s field requires a name", name, source, section, idx, field.Kind)
			}
			field.OptionsFrom = strings.ToLower(strings.TrimSpace(field.OptionsFrom))
			switch field.OptionsFrom {
			case "", OptionsMonths, OptionsTimezones:
			default:
				return nil, fmt.Errorf("definition: form %q (file %s) %s[%d]: unknown options source %q", name, source, section, idx, field.OptionsFrom)
			}
			field.Rules = normaliseRules(field.Rules)
			out = append(out, field)
		}
		return out, nil
	}

	fields, err := check("fields", spec.Fields)
	if err != nil {
		return nil, err
	}
	actions, err := check("actions", spec.Actions)
	if err != nil {
		return nil, err
	}
	spec.Fields = fields
	spec.Actions = actions
	return &Definition{Name: name, Source: source, Spec: spec}, nil
}

func needsName(kind string) bool {
	switch kind {
	case element.KindHTML, element.KindButton, element.KindSubmit, element.KindReset:
		return false
	default:
		return true
	}
}

// normaliseRules turns decoded rule lists of strings into []string and
// leaves every other shape untouched.
func normaliseRules(rules any) any {
	list, ok := rules.([]any)
	if !ok {
		return rules
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		text, ok := item.(string)
		if !ok {
			return rules
		}
		out = append(out, text)
	}
	return out
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
