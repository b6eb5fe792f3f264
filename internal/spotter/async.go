package spotter

import "context"

// Result carries the outcome of an operation run with Go.
type Result[T any] struct {
	Value T
	Err   error
}

// Go runs fn on its own goroutine. The returned channel receives exactly one Result,
// after fn has returned, and is then closed.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		v, err := fn(ctx)
		ch <- Result[T]{Value: v, Err: err}
	}()
	return ch
}

func (c *Client) ListAnimalNamesAsync(ctx context.Context) <-chan Result[[]string] {
	return Go(ctx, c.ListAnimalNames)
}

func (c *Client) FetchAnimalDetailAsync(ctx context.Context, name string) <-chan Result[*Animal] {
	return Go(ctx, func(ctx context.Context) (*Animal, error) {
		return c.FetchAnimalDetail(ctx, name)
	})
}

func (c *Client) FetchBytesAsync(ctx context.Context, rawURL string) <-chan Result[[]byte] {
	return Go(ctx, func(ctx context.Context) ([]byte, error) {
		return c.FetchBytes(ctx, rawURL)
	})
}
