package mcg

// Geometry is an element of a GeometrySet.
type Geometry[T any] interface {
	Valid() bool
	Bounds() (Vector, Vector)
	ForEachPointPair(func(Vector, Vector))
	Rotate(float64) T
	Clone() T
}

// GeometrySet is an unordered collection of valid geometries sharing one context, with a bounding
// box over all elements.
type GeometrySet[T Geometry[T]] struct {
	ctx      *Context
	elements []T
	min, max Vector
}

func newGeometrySet[T Geometry[T]](ctx *Context) GeometrySet[T] {
	return GeometrySet[T]{
		ctx: ctx,
		min: emptyMin,
		max: emptyMax,
	}
}

// Context returns the set's context.
func (s *GeometrySet[T]) Context() *Context {
	return s.ctx
}

// Add appends e if it is valid and extends the bounds.
func (s *GeometrySet[T]) Add(e T) {
	if !e.Valid() {
		return
	}
	s.elements = append(s.elements, e)
	s.extend(e)
}

func (s *GeometrySet[T]) extend(e T) {
	emin, emax := e.Bounds()
	s.min = s.min.Min(emin)
	s.max = s.max.Max(emax)
}

func (s *GeometrySet[T]) recalculateBounds() {
	s.min, s.max = emptyMin, emptyMax
	for _, e := range s.elements {
		s.extend(e)
	}
}

func (s *GeometrySet[T]) Count() int {
	return len(s.elements)
}

// Elements returns the elements. The slice must not be modified.
func (s *GeometrySet[T]) Elements() []T {
	return s.elements
}

// Bounds returns the bounding box over all elements. It is inverted (min > max) when empty.
func (s *GeometrySet[T]) Bounds() (Vector, Vector) {
	return s.min, s.max
}

func (s *GeometrySet[T]) ForEach(f func(T)) {
	for _, e := range s.elements {
		f(e)
	}
}

// ForEachPointPair calls f for every edge of every element.
func (s *GeometrySet[T]) ForEachPointPair(f func(Vector, Vector)) {
	for _, e := range s.elements {
		e.ForEachPointPair(f)
	}
}

// Filter keeps only the elements for which keep returns true.
func (s *GeometrySet[T]) Filter(keep func(T) bool) {
	elements := s.elements[:0]
	for _, e := range s.elements {
		if keep(e) {
			elements = append(elements, e)
		}
	}
	clear(s.elements[len(elements):])
	s.elements = elements
	s.recalculateBounds()
}

// Rotate rotates all elements counter clockwise around the origin and recomputes the bounds.
func (s *GeometrySet[T]) Rotate(angle float64) {
	for i, e := range s.elements {
		s.elements[i] = e.Rotate(angle)
	}
	s.recalculateBounds()
}

func (s *GeometrySet[T]) clone() GeometrySet[T] {
	c := *s
	c.elements = make([]T, len(s.elements))
	for i, e := range s.elements {
		c.elements[i] = e.Clone()
	}
	return c
}

// Merge appends all elements of other.
func (s *GeometrySet[T]) Merge(other *GeometrySet[T]) {
	for _, e := range other.elements {
		s.elements = append(s.elements, e)
		s.extend(e)
	}
}

// SetContext replaces the set's context, for example to move it to another depth.
func (s *GeometrySet[T]) SetContext(ctx *Context) {
	s.ctx = ctx
}
