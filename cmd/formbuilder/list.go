package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/definition"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
)

func listCmd(a *app) *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List forms in a definition directory or operations in an OpenAPI document",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := listNames(cmd.Context(), a, &src)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(a.stdout, name)
			}
			return nil
		},
	}

	src.register(cmd)
	return cmd
}

func listNames(ctx context.Context, a *app, src *sourceFlags) ([]string, error) {
	switch {
	case src.definitions != "":
		store, err := definition.LoadFS(os.DirFS(src.definitions))
		if err != nil {
			return nil, err
		}
		return store.Names(), nil
	case src.openapi != "":
		doc, err := src.loadDocument(ctx, a.log())
		if err != nil {
			return nil, err
		}
		return listOperations(doc), nil
	}
	return nil, errNoSource
}

func listOperations(doc *openapi.Document) []string {
	ids := doc.Operations()
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		op, _ := doc.Operation(id)
		out = append(out, fmt.Sprintf("%s\t%s %s", id, op.Method, op.Path))
	}
	return out
}
