package rawvec

import "errors"

var errInjected = errors.New("injected failure")

// item is the element type used by lifetime-tracking tests.
type item struct {
	id int
}

// tracker counts element lifetime events and can inject failures into
// any hook. A fail*After value of n makes the nth invocation (1-based)
// and every later one fail; 0 disables injection.
type tracker struct {
	ctors    int
	copies   int
	moves    int
	destroys int

	failCtorAfter int
	failCopyAfter int
	failMoveAfter int
}

func (tr *tracker) reset() {
	tr.ctors, tr.copies, tr.moves, tr.destroys = 0, 0, 0, 0
	tr.failCtorAfter, tr.failCopyAfter, tr.failMoveAfter = 0, 0, 0
}

func (tr *tracker) constructor() func() (item, error) {
	return func() (item, error) {
		tr.ctors++
		if tr.failCtorAfter > 0 && tr.ctors >= tr.failCtorAfter {
			return item{}, errInjected
		}
		return item{id: tr.ctors}, nil
	}
}

// trackedOptions wires tr into every lifetime hook. moveMayFail
// selects a fallible mover, which flips the relocation rule to
// copying as long as the type stays copyable.
func trackedOptions(tr *tracker, moveMayFail bool) []Option[item] {
	opts := []Option[item]{
		WithConstructor[item](tr.constructor()),
		WithCopier[item](func(v item) (item, error) {
			tr.copies++
			if tr.failCopyAfter > 0 && tr.copies >= tr.failCopyAfter {
				return item{}, errInjected
			}
			return v, nil
		}),
		WithDestructor[item](func(p *item) {
			tr.destroys++
		}),
	}

	if moveMayFail {
		opts = append(opts, WithMover[item](func(src *item) (item, error) {
			tr.moves++
			if tr.failMoveAfter > 0 && tr.moves >= tr.failMoveAfter {
				return item{}, errInjected
			}
			out := *src
			*src = item{}
			return out, nil
		}))
	} else {
		opts = append(opts, WithNothrowMover[item](func(src *item) item {
			tr.moves++
			out := *src
			*src = item{}
			return out
		}))
	}

	return opts
}

// ids collects the element ids of a tracked vector.
func ids(v *Vector[item]) []int {
	out := make([]int, 0, v.Len())
	for _, it := range v.Slice() {
		out = append(out, it.id)
	}
	return out
}

// pushItems appends items with the given ids, panicking on error to
// keep setup code short.
func pushItems(v *Vector[item], idList ...int) {
	for _, id := range idList {
		if _, err := v.PushBack(item{id: id}); err != nil {
			panic(err)
		}
	}
}

// pushInts appends plain ints, panicking on error (setup helper).
func pushInts(v *Vector[int], values ...int) {
	for _, x := range values {
		if _, err := v.PushBack(x); err != nil {
			panic(err)
		}
	}
}
