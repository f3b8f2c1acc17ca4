package bintree

// Options configures a Tree.
//
// ParentLinks – nodes keep a back-reference to their parent (Node.Parent).
type Options struct {
	ParentLinks bool
}

// Option represents a functional option for configuring a Tree.
type Option func(*Options)

// WithParentLinks makes every node of the tree track its parent.
func WithParentLinks() Option {
	return func(o *Options) {
		o.ParentLinks = true
	}
}

// DefaultOptions returns the configuration of a plain tree: no parent links.
func DefaultOptions() Options {
	return Options{
		ParentLinks: false,
	}
}
