package combinator

// Parser consumes a prefix of the cursor's remaining input. On failure it
// returns false and the returned value and cursor are meaningless; callers
// continue from the cursor they passed in.
type Parser[T any] func(Cursor) (T, Cursor, bool)

type Pair[A, B any] struct {
	First  A
	Second B
}

type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Pure succeeds with v without consuming input.
func Pure[T any](v T) Parser[T] {
	return func(c Cursor) (T, Cursor, bool) {
		return v, c, true
	}
}

// Fail never matches.
func Fail[T any]() Parser[T] {
	return func(c Cursor) (T, Cursor, bool) {
		var zero T
		return zero, c, false
	}
}

// Seq runs every parser in order and collects their values.
func Seq[T any](ps ...Parser[T]) Parser[[]T] {
	return func(c Cursor) ([]T, Cursor, bool) {
		out := make([]T, 0, len(ps))
		cur := c
		for _, p := range ps {
			v, next, ok := p(cur)
			if !ok {
				return nil, c, false
			}
			out = append(out, v)
			cur = next
		}
		return out, cur, true
	}
}

func Seq2[A, B any](pa Parser[A], pb Parser[B]) Parser[Pair[A, B]] {
	return func(c Cursor) (Pair[A, B], Cursor, bool) {
		a, c1, ok := pa(c)
		if !ok {
			return Pair[A, B]{}, c, false
		}
		b, c2, ok := pb(c1)
		if !ok {
			return Pair[A, B]{}, c, false
		}
		return Pair[A, B]{a, b}, c2, true
	}
}

func Seq3[A, B, C any](pa Parser[A], pb Parser[B], pc Parser[C]) Parser[Triple[A, B, C]] {
	return func(c Cursor) (Triple[A, B, C], Cursor, bool) {
		a, c1, ok := pa(c)
		if !ok {
			return Triple[A, B, C]{}, c, false
		}
		b, c2, ok := pb(c1)
		if !ok {
			return Triple[A, B, C]{}, c, false
		}
		v, c3, ok := pc(c2)
		if !ok {
			return Triple[A, B, C]{}, c, false
		}
		return Triple[A, B, C]{a, b, v}, c3, true
	}
}

// Choice tries each parser at the original cursor and returns the first
// success. Order matters: this is not longest match.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	return func(c Cursor) (T, Cursor, bool) {
		for _, p := range ps {
			if v, next, ok := p(c); ok {
				return v, next, true
			}
		}
		var zero T
		return zero, c, false
	}
}

// Bind runs p and then the parser chosen by f from p's value.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(c Cursor) (B, Cursor, bool) {
		a, next, ok := p(c)
		if !ok {
			var zero B
			return zero, c, false
		}
		b, last, ok := f(a)(next)
		if !ok {
			var zero B
			return zero, c, false
		}
		return b, last, true
	}
}

func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(c Cursor) (B, Cursor, bool) {
		a, next, ok := p(c)
		if !ok {
			var zero B
			return zero, c, false
		}
		return f(a), next, true
	}
}

// Then runs first and second, keeping second's value.
func Then[A, B any](first Parser[A], second Parser[B]) Parser[B] {
	return Map(Seq2(first, second), func(p Pair[A, B]) B { return p.Second })
}

// Skip runs first and second, keeping first's value.
func Skip[A, B any](first Parser[A], second Parser[B]) Parser[A] {
	return Map(Seq2(first, second), func(p Pair[A, B]) A { return p.First })
}

// Between keeps the value of p surrounded by open and close.
func Between[O, T, C any](open Parser[O], p Parser[T], close Parser[C]) Parser[T] {
	return Skip(Then(open, p), close)
}

// Optional always succeeds; ok reports whether p matched.
func Optional[T any](p Parser[T]) Parser[Maybe[T]] {
	return func(c Cursor) (Maybe[T], Cursor, bool) {
		if v, next, ok := p(c); ok {
			return Maybe[T]{Value: v, OK: true}, next, true
		}
		return Maybe[T]{}, c, true
	}
}

type Maybe[T any] struct {
	Value T
	OK    bool
}

// Many applies p until it fails or stops consuming input.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(c Cursor) ([]T, Cursor, bool) {
		var out []T
		cur := c
		for {
			v, next, ok := p(cur)
			if !ok || next.Offset() == cur.Offset() {
				return out, cur, true
			}
			out = append(out, v)
			cur = next
		}
	}
}

func Many1[T any](p Parser[T]) Parser[[]T] {
	return Where(Many(p), "", func(vs []T) bool { return len(vs) > 0 })
}

// SepBy1 parses one or more p separated by sep.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return func(c Cursor) ([]T, Cursor, bool) {
		first, cur, ok := p(c)
		if !ok {
			return nil, c, false
		}
		out := []T{first}
		for {
			_, afterSep, ok := sep(cur)
			if !ok {
				return out, cur, true
			}
			v, next, ok := p(afterSep)
			if !ok {
				return out, cur, true
			}
			out = append(out, v)
			cur = next
		}
	}
}

func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Choice(SepBy1(p, sep), Pure[[]T](nil))
}

// Lazy defers construction of p until it is first run, for recursive
// grammars.
func Lazy[T any](f func() Parser[T]) Parser[T] {
	var p Parser[T]
	return func(c Cursor) (T, Cursor, bool) {
		if p == nil {
			p = f()
		}
		return p(c)
	}
}

// Where rejects matches of p for which keep returns false. A rejection is
// recorded under name at the starting cursor, exactly like a leaf failure.
func Where[T any](p Parser[T], name string, keep func(T) bool) Parser[T] {
	return func(c Cursor) (T, Cursor, bool) {
		v, next, ok := p(c)
		if !ok {
			return v, c, false
		}
		if !keep(v) {
			c.Diagnostics().Fail(c, name)
			var zero T
			return zero, c, false
		}
		return v, next, true
	}
}

// NotFollowedBy matches p only when q does not match right after it.
func NotFollowedBy[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return func(c Cursor) (T, Cursor, bool) {
		v, next, ok := p(c)
		if !ok {
			return v, c, false
		}
		if _, _, bad := q(next); bad {
			var zero T
			return zero, c, false
		}
		return v, next, true
	}
}

// Lookahead runs p without consuming input.
func Lookahead[T any](p Parser[T]) Parser[T] {
	return func(c Cursor) (T, Cursor, bool) {
		v, _, ok := p(c)
		return v, c, ok
	}
}

// Run parses input with a fresh Diagnostics and reports it alongside the
// result.
func Run[T any](p Parser[T], input string, line, column int) (T, Cursor, bool, *Diagnostics) {
	diag := NewDiagnostics()
	v, c, ok := p(NewCursor(input, line, column, diag))
	return v, c, ok, diag
}

// Expect always fails, recording name at the cursor. It documents what
// would have been accepted at a dead end.
func Expect[T any](name string) Parser[T] {
	return func(c Cursor) (T, Cursor, bool) {
		c.Diagnostics().Fail(c, name)
		var zero T
		return zero, c, false
	}
}

// Indented matches p only when it ends on a new line whose indentation
// satisfies ok. Ending at end of input never matches.
func Indented[T any](p Parser[T], name string, ok func(indent int) bool) Parser[T] {
	return func(c Cursor) (T, Cursor, bool) {
		v, next, matched := p(c)
		if !matched {
			return v, c, false
		}
		if next.AtEOF() || !ok(next.Indent()) {
			next.Diagnostics().Fail(next, name)
			var zero T
			return zero, c, false
		}
		return v, next, true
	}
}
