package sequence

import (
	"github.com/amp-labs/amp-extensions/assert"
)

// Options controls how the indexed walks number their elements.
type Options struct {
	// Start is the first index handed out. Defaults to 0.
	Start int

	// Step computes the next index from the current one. Defaults to Increment.
	Step func(int) int
}

// Option is a functional option for the indexed walks.
type Option func(*Options)

// WithStart sets the first index.
func WithStart(start int) Option {
	return func(o *Options) {
		o.Start = start
	}
}

// WithStep sets the function that advances the index after each element.
// Passing nil makes the walk fail with errors.ErrInvalidArgument.
func WithStep(step func(int) int) Option {
	return func(o *Options) {
		o.Step = step
	}
}

// Increment is the default step: it adds one.
func Increment(index int) int {
	return index + 1
}

// StepBy returns a step function that adds n.
func StepBy(n int) func(int) int {
	return func(index int) int {
		return index + n
	}
}

func resolve(opts []Option) (Options, error) {
	options := Options{
		Start: 0,
		Step:  Increment,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	if err := assert.Argument("step", options.Step); err != nil {
		return Options{}, err
	}

	return options, nil
}
