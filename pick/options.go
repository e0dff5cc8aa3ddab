package pick

// Options carries the settings used by every read and write call.
type Options struct {
	// Encoding is an IANA or WHATWG charset name for the text files.
	Encoding string

	// JPEGQuality is passed to the JPEG encoder, 1..100.
	JPEGQuality int

	// Namer derives the on-disk base name from Document.FileName.
	Namer Namer
}

const (
	DefaultEncoding    = "utf-8"
	DefaultJPEGQuality = 75
)

func DefaultOptions() Options {
	return Options{
		Encoding:    DefaultEncoding,
		JPEGQuality: DefaultJPEGQuality,
		Namer:       StripDots,
	}
}

// withDefaults fills the zero fields of o.
func (o Options) withDefaults() Options {
	if o.Encoding == "" {
		o.Encoding = DefaultEncoding
	}
	if o.JPEGQuality <= 0 || o.JPEGQuality > 100 {
		o.JPEGQuality = DefaultJPEGQuality
	}
	if o.Namer == nil {
		o.Namer = StripDots
	}
	return o
}
