// Package form assembles fields into an ordered registry and runs the build
// cycle: declare fields, apply registered extensions, then attach error state
// and previously submitted input.
package form
