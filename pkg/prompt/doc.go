// Package prompt fills a built form from a terminal. Collect walks the
// fields, asks a Driver for each answer and returns url.Values that can be
// fed back into a form as old input:
//
//	values, err := prompt.Collect(ctx, prompt.NewSurveyDriver(), result.Fields)
//	if errors.Is(err, prompt.ErrAborted) {
//		return nil
//	}
//	f := form.New("contact", def, form.WithOldInput(input.OldInputFromValues(values)))
package prompt
