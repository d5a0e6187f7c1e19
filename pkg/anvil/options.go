package anvil

import "github.com/go-mclib/anvilgui/pkg/server"

// DefaultTitle is the vanilla anvil window title.
const DefaultTitle = "Repair & Name"

type options struct {
	title    string
	material server.Material
	onClose  func(*server.Player)
}

func defaultOptions() options {
	return options{
		title:    DefaultTitle,
		material: server.MaterialPaper,
	}
}

// Option customises a dialog at Open.
type Option func(*options)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithMaterial sets the item placed in the left input. Air is ignored.
func WithMaterial(m server.Material) Option {
	return func(o *options) {
		if m != server.MaterialAir {
			o.material = m
		}
	}
}

// OnClose registers cb to run once after the dialog closes, whichever way it
// was closed.
func OnClose(cb func(*server.Player)) Option {
	return func(o *options) { o.onClose = cb }
}
