package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/definition"
	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
)

var errNoSource = errors.New("either --definitions with --form or --openapi with --operation is required")

// sourceFlags selects where a form definition comes from.
type sourceFlags struct {
	definitions string
	form        string
	openapi     string
	operation   string
	validate    bool
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.definitions, "definitions", "d", "", "Directory of YAML/JSON form definitions")
	cmd.Flags().StringVarP(&s.form, "form", "f", "", "Form name inside --definitions")
	cmd.Flags().StringVar(&s.openapi, "openapi", "", "OpenAPI document (YAML or JSON)")
	cmd.Flags().StringVar(&s.operation, "operation", "", "Operation ID inside --openapi")
	cmd.Flags().BoolVar(&s.validate, "validate", false, "Validate the OpenAPI document before use")
}

// load returns the selected definition, the form kind it registers under
// and any settings it declares.
func (s *sourceFlags) load(ctx context.Context, logger *slog.Logger) (form.Definition, string, map[string]any, error) {
	switch {
	case s.definitions != "":
		if strings.TrimSpace(s.form) == "" {
			return nil, "", nil, fmt.Errorf("--form is required with --definitions")
		}
		store, err := definition.LoadFS(os.DirFS(s.definitions))
		if err != nil {
			return nil, "", nil, err
		}
		def, err := store.Definition(s.form)
		if err != nil {
			return nil, "", nil, err
		}
		logger.Debug("definition loaded", "form", def.Name, "source", def.Source)
		return def, def.Name, def.Settings(), nil

	case s.openapi != "":
		if strings.TrimSpace(s.operation) == "" {
			return nil, "", nil, fmt.Errorf("--operation is required with --openapi")
		}
		doc, err := s.loadDocument(ctx, logger)
		if err != nil {
			return nil, "", nil, err
		}
		def, err := doc.Definition(s.operation)
		if err != nil {
			return nil, "", nil, err
		}
		logger.Debug("operation loaded", "operation", s.operation, "title", doc.Title())
		return def, s.operation, nil, nil
	}
	return nil, "", nil, errNoSource
}

func (s *sourceFlags) loadDocument(ctx context.Context, logger *slog.Logger) (*openapi.Document, error) {
	data, err := os.ReadFile(s.openapi)
	if err != nil {
		return nil, fmt.Errorf("read openapi document: %w", err)
	}
	opts := []openapi.Option{openapi.WithLogger(logger)}
	if s.validate {
		opts = append(opts, openapi.WithValidation())
	}
	return openapi.Load(ctx, data, opts...)
}

// parsePairs splits repeated name=value flags. A bare name maps to "".
func parsePairs(flag string, raw []string) (map[string][]string, error) {
	out := make(map[string][]string, len(raw))
	for _, entry := range raw {
		name, value, _ := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("--%s %q: missing field name", flag, entry)
		}
		out[name] = append(out[name], value)
	}
	return out, nil
}
