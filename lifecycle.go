package rawvec

// newElem value-constructs an element.
func (c *config[T]) newElem() (T, error) {
	if c.construct != nil {
		return c.construct()
	}
	var zero T
	return zero, nil
}

// copyElem copy-constructs an element from v.
func (c *config[T]) copyElem(v T) (T, error) {
	if c.noCopy {
		var zero T
		return zero, ErrNotCopyable
	}
	if c.copyFn != nil {
		return c.copyFn(v)
	}
	return v, nil
}

// moveElem move-constructs an element out of *src. The default move
// takes the value and zeroes the source.
func (c *config[T]) moveElem(src *T) (T, error) {
	if c.moveFn != nil {
		return c.moveFn(src)
	}
	out := *src
	var zero T
	*src = zero
	return out, nil
}

// destroyElem destroys the element in *p and zeroes the slot, so that
// slots beyond the live range hold no element references.
func (c *config[T]) destroyElem(p *T) {
	if c.destroyFn != nil {
		c.destroyFn(p)
	}
	var zero T
	*p = zero
}

func (c *config[T]) moveCannotFail() bool {
	return c.moveFn == nil || c.moveNothrow
}

func (c *config[T]) copyable() bool {
	return !c.noCopy
}

// relocateByMove implements the relocation rule: move when moving
// cannot fail, or when the type cannot be copied at all; otherwise
// copy, so a failed move never leaves the vector without a usable
// element set.
func (c *config[T]) relocateByMove() bool {
	return c.moveCannotFail() || !c.copyable()
}
