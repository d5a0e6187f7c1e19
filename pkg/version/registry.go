package version

import (
	"log"
	"maps"
	"slices"
)

const projectLink = "https://github.com/go-mclib/anvilgui"

var adapters = map[string]Adapter{
	"1.20.2":  v1_20_2{},
	"1.21.6":  release{v1_21_8{}, "1.21.6", 771},
	"1.21.7":  release{v1_21_8{}, "1.21.7", 772},
	"1.21.8":  v1_21_8{},
	"1.21.9":  release{v1_21_10{}, "1.21.9", 773},
	"1.21.10": v1_21_10{},
	"1.21.11": v1_21_11{},
}

// release serves a sibling of the release an adapter was written for. The
// window layout is shared; only the reported name and protocol differ.
type release struct {
	Adapter
	name     string
	protocol int32
}

func (r release) Name() string { return r.name }
func (r release) Protocol() int32 { return r.protocol }

// Of returns the adapter registered for release, if any.
func Of(release string) (Adapter, bool) {
	a, ok := adapters[release]
	return a, ok
}

// Fallback returns the best-effort adapter used for unknown releases.
func Fallback() Adapter { return fallback{} }

// Resolve returns the adapter for release, or the fallback after logging a
// warning that names the unsupported release. It never fails.
func Resolve(release string, logger *log.Logger) Adapter {
	if a, ok := Of(release); ok {
		return a
	}
	if logger != nil {
		logger.Printf("[AnvilGUI] using fallback adapter, please ask the developers to implement %q too (%s)", release, projectLink)
	}
	return Fallback()
}

// Versions returns the registered releases in lexical order.
func Versions() []string {
	return slices.Sorted(maps.Keys(adapters))
}
