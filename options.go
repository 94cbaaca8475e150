package lemis

import "github.com/lemma-is/lemis/artifact"

type options struct {
	version     uint32
	workers     int
	compression Compression
	logger      *Logger
}

// Option configures Compile and Open behavior.
type Option func(*options)

// WithVersion selects the artifact format version. Version 2 is the
// default; version 1 drops the grammatical feature fields.
func WithVersion(version uint32) Option {
	return func(o *options) {
		o.version = version
	}
}

// WithWorkers sets the number of parallel lexicon-parsing workers.
// Values below 2 keep parsing single-threaded.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithCompression selects the on-blob artifact encoding. Open detects
// the encoding from the bytes, so readers need no matching option.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithLogger configures structured logging. Pass nil to disable.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		version:     artifact.Version2,
		workers:     1,
		compression: CompressionNone,
		logger:      NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
