package tree

// DefaultSep is the path separator used unless WithSep is given.
const DefaultSep = "/"

type nodeOpts struct {
	key        any
	sep        string
	lazy       bool
	locking    bool
	normalizer Normalizer
}

type Option func(*nodeOpts)

func WithSep(sep string) Option {
	return func(o *nodeOpts) { o.sep = sep }
}

func WithLazyCreate(v bool) Option {
	return func(o *nodeOpts) { o.lazy = v }
}

// WithLocking allocates a shared lock for the constructed hierarchy.
func WithLocking(v bool) Option {
	return func(o *nodeOpts) { o.locking = v }
}

func WithKey(key any) Option {
	return func(o *nodeOpts) { o.key = key }
}

func WithNormalizer(n Normalizer) Option {
	return func(o *nodeOpts) { o.normalizer = n }
}

func makeOpts(opts ...Option) *nodeOpts {
	o := &nodeOpts{key: "", sep: DefaultSep}
	for _, opt := range opts {
		opt(o)
	}
	if o.sep == "" {
		o.sep = DefaultSep
	}
	return o
}
