// Package content turns the HTML plant descriptions into Markdown the
// terminal renderer understands.
package content

// Transformer modifies content, returning modified content or an error.
type Transformer interface {
	Transform(input []byte) ([]byte, error)
}

// TransformerFunc is a [Transformer] backed by a plain function.
type TransformerFunc func(input []byte) ([]byte, error)

// Transform satisfies [Transformer].
func (fn TransformerFunc) Transform(input []byte) ([]byte, error) { return fn(input) }

// Chain runs transformers in order, failing fast on the first error.
func Chain(transformers ...Transformer) TransformerFunc {
	return func(input []byte) ([]byte, error) {
		var err error
		for _, transformer := range transformers {
			input, err = transformer.Transform(input)
			if err != nil {
				return nil, err
			}
		}
		return input, nil
	}
}
