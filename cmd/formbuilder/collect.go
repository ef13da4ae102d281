package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/goliatone/go-formbuilder/pkg/element"
	"github.com/goliatone/go-formbuilder/pkg/prompt"
)

func collect(ctx context.Context, a *app, fields []element.Field) (url.Values, error) {
	if a.driver == nil {
		return nil, errors.New("interactive mode needs a terminal")
	}
	values, err := prompt.Collect(ctx, a.driver, fields)
	if errors.Is(err, prompt.ErrAborted) {
		return nil, fmt.Errorf("cancelled: %w", err)
	}
	return values, err
}
