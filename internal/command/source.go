package command

// Blocking tells the collector whether components queried after a source
// may still contribute commands.
type Blocking int

const (
	PassOn Blocking = iota
	Block
)

// Source is implemented by every component that offers keyboard commands.
// Commands appends the currently offered commands to out and returns the
// extended slice. A source may also truncate out to hide what earlier
// sources reported. forceAll asks for the unfiltered set, regardless of
// modality.
type Source interface {
	Commands(out []Info, forceAll bool) ([]Info, Blocking)
}

// Visibility maps a component's visibility to its blocking behaviour.
func Visibility(visible bool) Blocking {
	if visible {
		return Block
	}
	return PassOn
}

// Collect queries sources in order. Unless forceAll is set, collection stops
// after the first source that reports Blocking.
func Collect(forceAll bool, sources ...Source) []Info {
	var out []Info
	for _, src := range sources {
		if src == nil {
			continue
		}
		var blocking Blocking
		out, blocking = src.Commands(out, forceAll)
		if blocking == Block && !forceAll {
			break
		}
	}
	return out
}
