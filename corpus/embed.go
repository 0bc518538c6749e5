// Package corpus embeds the default guidance document.
//
// The embedded corpus is used when no source paths are configured, so the
// binary is useful without any setup. Processes that maintain their own
// guidance documents point the configuration at those files instead.
package corpus

import _ "embed"

//go:embed guidelines.md
var guidelines []byte

// Filename is the name the embedded corpus is loaded under.
const Filename = "guidelines.md"

// Default returns the embedded default guidance document.
func Default() []byte {
	out := make([]byte, len(guidelines))
	copy(out, guidelines)
	return out
}
