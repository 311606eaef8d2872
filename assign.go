package rawvec

import (
	"github.com/hupe1980/rawvec/rawmem"
)

// Clone returns a deep copy of the vector with capacity equal to its
// length, copy-constructing every element. If copying element k fails,
// the k elements already constructed are destroyed and the new block
// is released before the error is returned; the source is never
// touched. Fails with ErrNotCopyable for WithNoCopy types.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return v.cloneWith(v.cfg)
}

// cloneWith copies v's elements into a fresh vector configured with
// cfg. CloneFrom uses it to build the replacement with the receiver's
// configuration rather than the source's.
func (v *Vector[T]) cloneWith(cfg config[T]) (*Vector[T], error) {
	if !cfg.copyable() {
		return nil, ErrNotCopyable
	}

	out := &Vector[T]{cfg: cfg}
	if v.size == 0 {
		return out, nil
	}

	nb, err := rawmem.New[T](v.size, cfg.blockOpts...)
	if err != nil {
		return nil, err
	}

	for i := 0; i < v.size; i++ {
		copied, err := cfg.copyElem(*v.data.At(i))
		if err != nil {
			out.destroyIn(&nb, 0, i)
			_ = nb.Release()
			return nil, elementError("copy", i, err)
		}
		*nb.At(i) = copied
	}

	out.data = nb.Transfer()
	out.size = v.size
	return out, nil
}

// CloneFrom copy-assigns src's contents into v.
//
// When src's length exceeds v's capacity, a temporary copy is built
// and swapped in, so a failure leaves v untouched (strong guarantee).
// Otherwise storage is reused element-wise: each element of the
// overlapping prefix is destroyed and replaced by a copy, src's excess
// tail is copy-constructed, or v's excess tail is destroyed; a failure
// mid-way leaves v valid with partially updated values (basic
// guarantee).
//
// Fails with ErrNotCopyable for WithNoCopy types.
func (v *Vector[T]) CloneFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if !v.cfg.copyable() {
		return ErrNotCopyable
	}

	if src.size > v.data.Cap() {
		tmp, err := src.cloneWith(v.cfg)
		if err != nil {
			return err
		}
		v.Swap(tmp)
		v.logReleaseError(tmp.Close()) // tmp now holds v's previous contents
		return nil
	}

	overlap := min(v.size, src.size)
	for i := 0; i < overlap; i++ {
		copied, err := v.cfg.copyElem(*src.data.At(i))
		if err != nil {
			return elementError("copy", i, err)
		}
		// The copy is taken first, so a failing copier leaves the
		// destination element live; only then is it destroyed and
		// replaced.
		v.cfg.destroyElem(v.data.At(i))
		*v.data.At(i) = copied
	}

	switch {
	case src.size > v.size:
		for i := v.size; i < src.size; i++ {
			copied, err := v.cfg.copyElem(*src.data.At(i))
			if err != nil {
				v.destroyRange(v.size, i)
				return elementError("copy", i, err)
			}
			*v.data.At(i) = copied
		}
	case src.size < v.size:
		v.destroyRange(src.size, v.size)
	}

	v.size = src.size
	return nil
}

// Detach transfers the vector's storage and length into a new vector
// in constant time, leaving the receiver empty (length 0, capacity 0).
// It never fails.
func (v *Vector[T]) Detach() *Vector[T] {
	out := &Vector[T]{
		cfg:   v.cfg,
		stats: v.stats,
		size:  v.size,
	}
	out.data = v.data.Transfer()
	v.size = 0
	v.stats = Stats{}
	return out
}

// TakeFrom move-assigns src's contents into v by swapping, leaving src
// holding v's previous contents in a valid state. It never fails.
func (v *Vector[T]) TakeFrom(src *Vector[T]) {
	v.Swap(src)
}
