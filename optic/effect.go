package optic

// Identity is the effect-free combiner. Traversing with it maps both elements.
type Identity[A, S any] struct{}

// Combine joins the two elements.
func (Identity[A, S]) Combine(first, second A, join func(A, A) S) S {
	return join(first, second)
}

// Collect is a constant effect over a monoid M. The rebuilt whole is never
// produced; traversing with Collect folds the elements with Append.
type Collect[A, S, M any] struct {
	Append func(earlier, later M) M
}

// Combine appends the two effects.
func (c Collect[A, S, M]) Combine(first, second M, _ func(A, A) S) M {
	return c.Append(first, second)
}

// Result is a value or the error that prevented producing it.
type Result[A any] struct {
	Value A
	Err   error
}

// Ok wraps a successful value.
func Ok[A any](a A) Result[A] {
	return Result[A]{Value: a}
}

// Failure wraps an error.
func Failure[A any](err error) Result[A] {
	return Result[A]{Err: err}
}

// ResultCombiner fails with the error of the first failing element in
// visiting order.
type ResultCombiner[A, S any] struct{}

// Combine joins two successes or propagates the earliest failure.
func (ResultCombiner[A, S]) Combine(
	first, second Result[A],
	join func(A, A) S,
) Result[S] {
	if first.Err != nil {
		return Failure[S](first.Err)
	}

	if second.Err != nil {
		return Failure[S](second.Err)
	}

	return Ok(join(first.Value, second.Value))
}

// ListCombiner treats each element effect as a list of alternatives and
// produces every combination, ordered by the first element's alternatives.
type ListCombiner[A, S any] struct{}

// Combine builds the cartesian product of the alternatives.
func (ListCombiner[A, S]) Combine(first, second []A, join func(A, A) S) []S {
	out := make([]S, 0, len(first)*len(second))

	for _, a := range first {
		for _, b := range second {
			out = append(out, join(a, b))
		}
	}

	return out
}
