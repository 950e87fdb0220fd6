package gohjson

// EncodeOpt bundles encoding options.
type EncodeOpt struct {
	Pretty bool   // Indented Hjson instead of compact JSON.
	Indent string // Indent unit for Pretty (default two spaces).
	// SortMapKeys orders Go map entries by their key text. Without it the
	// order follows map iteration and is not stable between runs.
	SortMapKeys bool
}

// DefaultEncodeOpt returns the options used by Encode and Marshal.
func DefaultEncodeOpt() EncodeOpt {
	return EncodeOpt{Indent: "  ", SortMapKeys: true}
}

func (o EncodeOpt) formatter() Formatter {
	if !o.Pretty {
		return CompactFormatter{}
	}
	if o.Indent == "" {
		return NewPrettyFormatter()
	}
	return NewPrettyFormatterIndent(o.Indent)
}
