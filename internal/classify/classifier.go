package classify

import (
	"context"
	"errors"
)

// ErrEmptyOutput is returned when a backend produced no description.
var ErrEmptyOutput = errors.New("classifier returned no output")

// Classifier describes the content of the file at path.
type Classifier interface {
	Describe(ctx context.Context, path string) (string, error)
}

// Func adapts a plain function to the Classifier interface.
type Func func(ctx context.Context, path string) (string, error)

// Describe calls f.
func (f Func) Describe(ctx context.Context, path string) (string, error) {
	return f(ctx, path)
}
