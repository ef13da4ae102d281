package openapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrOperationNotFound is returned when a document has no operation with the
// requested id.
var ErrOperationNotFound = errors.New("openapi: operation not found")

// OrderExtension lists property names in display order on a request schema.
const OrderExtension = "x-formbuilder-order"

type Option func(*config)

type config struct {
	validate bool
	resolver *Resolver
	logger   *slog.Logger
}

// WithValidation validates the document after loading.
func WithValidation() Option {
	return func(cfg *config) {
		cfg.validate = true
	}
}

// WithResolver replaces the kind resolver.
func WithResolver(resolver *Resolver) Option {
	return func(cfg *config) {
		if resolver != nil {
			cfg.resolver = resolver
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Operation is an OpenAPI operation with a request body.
type Operation struct {
	ID        string
	Method    string
	Path      string
	Summary   string
	MediaType string
	Schema    *openapi3.Schema
}

// Document is a parsed OpenAPI document.
type Document struct {
	spec       *openapi3.T
	operations map[string]Operation
	resolver   *Resolver
	logger     *slog.Logger
}

// Load parses an OpenAPI 3 document from data.
func Load(ctx context.Context, data []byte, opts ...Option) (*Document, error) {
	cfg := config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.resolver == nil {
		cfg.resolver = NewResolver()
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if cfg.validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	doc := &Document{
		spec:       spec,
		operations: make(map[string]Operation),
		resolver:   cfg.resolver,
		logger:     cfg.logger,
	}
	if spec.Paths != nil {
		for path, item := range spec.Paths.Map() {
			if item == nil {
				continue
			}
			for method, op := range item.Operations() {
				doc.collect(strings.ToUpper(method), path, op)
			}
		}
	}
	doc.logger.Debug("openapi document loaded", "operations", len(doc.operations))
	return doc, nil
}

func (d *Document) collect(method, path string, op *openapi3.Operation) {
	if op == nil || op.RequestBody == nil || op.RequestBody.Value == nil {
		return
	}
	mediaType, schema := requestSchema(op.RequestBody.Value.Content)
	if schema == nil {
		return
	}
	id := op.OperationID
	if id == "" {
		id = strings.ToLower(method) + ":" + path
	}
	d.operations[id] = Operation{
		ID:        id,
		Method:    method,
		Path:      path,
		Summary:   op.Summary,
		MediaType: mediaType,
		Schema:    schema,
	}
}

func requestSchema(content openapi3.Content) (string, *openapi3.Schema) {
	for _, mediaType := range []string{"application/x-www-form-urlencoded", "multipart/form-data", "application/json"} {
		if mt, ok := content[mediaType]; ok && mt != nil && mt.Schema != nil && mt.Schema.Value != nil {
			return mediaType, mt.Schema.Value
		}
	}
	types := make([]string, 0, len(content))
	for mediaType := range content {
		types = append(types, mediaType)
	}
	sort.Strings(types)
	for _, mediaType := range types {
		if mt := content[mediaType]; mt != nil && mt.Schema != nil && mt.Schema.Value != nil {
			return mediaType, mt.Schema.Value
		}
	}
	return "", nil
}

// Operations lists the ids of operations that accept a request body.
func (d *Document) Operations() []string {
	ids := make([]string, 0, len(d.operations))
	for id := range d.operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Operation returns the operation with the given id.
func (d *Document) Operation(id string) (Operation, bool) {
	op, ok := d.operations[id]
	return op, ok
}

// Definition derives a form definition from the operation's request body.
func (d *Document) Definition(operationID string) (*Definition, error) {
	op, ok := d.operations[operationID]
	if !ok {
		return nil, fmt.Errorf("openapi: %q: %w", operationID, ErrOperationNotFound)
	}
	def := newDefinition(op, d.resolver)
	d.logger.Debug("openapi definition derived", "operation", operationID, "fields", len(def.plans))
	return def, nil
}

// Title returns the document title.
func (d *Document) Title() string {
	if d.spec == nil || d.spec.Info == nil {
		return ""
	}
	return d.spec.Info.Title
}
