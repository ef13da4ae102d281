package element

import "errors"

// ErrDetachedField is returned by error queries on a field that has not been
// attached to a form.
var ErrDetachedField = errors.New("element: field is not attached to a form")
