package namegen

// Option configures Compile.
type Option func(*options)

type options struct {
	collapse bool
	maxDepth int
	source   Source
}

func defaultOptions() *options {
	return &options{collapse: true}
}

// WithoutCollapse leaves the compiled tree without the root Collapse node, so
// repeated letters produced by concatenation are kept.
func WithoutCollapse() Option {
	return func(o *options) { o.collapse = false }
}

// WithMaxDepth limits bracket nesting. Zero or a negative n means no limit.
// Compiling and sampling recurse once per nesting level, so untrusted
// patterns should be compiled with a limit.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// WithSource binds src to the compiled tree; Generator.Sample draws from it.
// Nil is ignored.
func WithSource(src Source) Option {
	return func(o *options) {
		if src != nil {
			o.source = src
		}
	}
}
