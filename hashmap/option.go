package hashmap

type option struct {
	fold        KeyFold
	maxCapacity int
	onResize    func(from, to int)
}

func defaultOption() option {
	return option{fold: Polynomial31, maxCapacity: MaxCapacity}
}

// Option configures a HashMap created by New.
type Option func(o *option)

// WithKeyFold replaces the default Polynomial31 key fold.
func WithKeyFold(fold KeyFold) Option {
	return func(o *option) {
		if fold != nil {
			o.fold = fold
		}
	}
}

// WithMaxCapacity bounds growth. A map holding capacity buckets stops growing
// and its chains get longer instead. Values outside [1, MaxCapacity] are
// ignored.
func WithMaxCapacity(capacity int) Option {
	return func(o *option) {
		if capacity >= 1 && capacity <= MaxCapacity {
			o.maxCapacity = capacity
		}
	}
}

// WithResizeHook registers fn to be called after every rehash with the old
// and new capacity.
func WithResizeHook(fn func(from, to int)) Option {
	return func(o *option) {
		o.onResize = fn
	}
}
