package main

import (
	"fmt"
	"net/url"
	"os"

	theme "github.com/goliatone/go-theme"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/input"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formbuilder/pkg/renderers/markup"
	"github.com/goliatone/go-formbuilder/pkg/renderers/vanilla"
)

func renderCmd(a *app) *cobra.Command {
	var (
		src          sourceFlags
		old          []string
		fieldErrors  []string
		formErrors   []string
		interactive  bool
		rendererName string
		themeName    string
		themeVariant string
		engine       string
		output       string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a form as HTML",
		Long: `Render a form from a definition directory or an OpenAPI operation.

Error paths given with --error may be field names, dotted paths or JSON
pointers such as /body/email. Paths that match no field are shown as
form-level errors.`,
		Example: `  formbuilder render -d ./forms -f contact --old email=a@b.com --error email="Invalid email."
  formbuilder render --openapi api.yaml --operation createUser --renderer markup`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := a.log()

			def, kind, settings, err := src.load(ctx, logger)
			if err != nil {
				return err
			}
			submitted, err := parsePairs("old", old)
			if err != nil {
				return err
			}
			payload, err := parsePairs("error", fieldErrors)
			if err != nil {
				return err
			}

			values := url.Values(submitted)
			if interactive {
				preview, err := form.New(kind, def,
					form.WithOldInput(input.OldInputFromValues(values)),
					form.WithLogger(logger),
				).Build()
				if err != nil {
					return err
				}
				collected, err := collect(ctx, a, preview.Fields)
				if err != nil {
					return err
				}
				for name, answers := range collected {
					values[name] = answers
				}
			}

			f := form.New(kind, def,
				form.WithOldInput(input.OldInputFromValues(values)),
				form.WithSettings(settings),
				form.WithLogger(logger),
			)
			if _, err := f.Rules(); err != nil {
				return err
			}
			mapping := f.ErrorsFromPayload(payload)
			f.SetErrorLookup(mapping.Fields)

			result, err := f.Build()
			if err != nil {
				return err
			}

			registry := render.NewRegistry()
			var themeCfg *theme.RendererConfig
			if themeName != "" {
				themeCfg = &theme.RendererConfig{Theme: themeName, Variant: themeVariant}
			}
			vanillaRenderer, err := vanilla.New(vanilla.WithTheme(themeCfg), vanilla.WithEngine(engine))
			if err != nil {
				return err
			}
			registry.MustRegister(vanillaRenderer)
			registry.MustRegister(markup.New())

			renderer, err := registry.Get(rendererName)
			if err != nil {
				return fmt.Errorf("%w (available: %v)", err, registry.List())
			}
			out, err := renderer.Render(ctx, result, render.RenderOptions{
				Theme:      themeCfg,
				FormErrors: input.MergeFormErrors(mapping.Form, formErrors...),
			})
			if err != nil {
				return err
			}
			logger.Debug("form rendered", "renderer", renderer.Name(), "bytes", len(out))

			if output == "" {
				_, err = fmt.Fprintln(a.stdout, string(out))
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(a.stderr, "Form written to %s\n", output)
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringArrayVar(&old, "old", nil, "Previous submission as name=value (repeatable)")
	cmd.Flags().StringArrayVar(&fieldErrors, "error", nil, "Validation error as path=message (repeatable)")
	cmd.Flags().StringArrayVar(&formErrors, "form-error", nil, "Form-level error message (repeatable)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for field values before rendering")
	cmd.Flags().StringVarP(&rendererName, "renderer", "r", vanilla.Name, "Renderer to use (vanilla, markup)")
	cmd.Flags().StringVar(&themeName, "theme", "", "Theme name exposed to the vanilla template")
	cmd.Flags().StringVar(&themeVariant, "theme-variant", "", "Theme variant")
	cmd.Flags().StringVar(&engine, "engine", gotemplate.EnginePongo2, "Template engine for the vanilla renderer (pongo2, go-template)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout if empty)")

	return cmd
}
