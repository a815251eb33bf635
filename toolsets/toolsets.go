// Package toolsets declares the curated toolset definitions and registers
// them with the default selection registry at init time. Import it for the
// side effect:
//
//	import _ "gcoremcp/toolsets"
//
// Member order is deliberate: it fixes the order tools appear in when a
// toolset is expanded.
package toolsets

import "gcoremcp/internal/selection"

func register(name string, members []string) {
	selection.MustRegister(name, members)
}
