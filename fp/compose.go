package fp

// Compose chains fns right to left: Compose(f, g)(x) == f(g(x)).
//
// With no functions it is the identity.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(x T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			x = fns[i](x)
		}
		return x
	}
}

// Chain chains fns left to right: Chain(f, g)(x) == g(f(x)).
func Chain[T any](fns ...func(T) T) func(T) T {
	return func(x T) T {
		for _, f := range fns {
			x = f(x)
		}
		return x
	}
}

// Pipe passes x through fns left to right: Pipe(x, f, g) == g(f(x)).
func Pipe[T any](x T, fns ...func(T) T) T { return Chain(fns...)(x) }

// Then composes two functions of different types: Then(f, g)(x) == g(f(x)).
func Then[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}
