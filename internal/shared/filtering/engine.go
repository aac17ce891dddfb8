package filtering

// Filter returns the records matching criteria, preserving input order.
func Filter[T any, C any](source []T, criteria C, match func(T, C) bool) []T {
	result := make([]T, 0, len(source))
	for _, item := range source {
		if match(item, criteria) {
			result = append(result, item)
		}
	}
	return result
}

// Definition wires a record type to its criteria, patch and stats types.
type Definition[T any, C any, P any, S any] struct {
	Defaults func() C
	Match    func(T, C) bool
	Merge    func(C, P) C
	Stats    func([]T) S
}

// Engine holds a source collection and the active criteria, and derives the
// filtered view and its stats on demand. Derived values are memoized until
// the source or the criteria change. An Engine is not safe for concurrent use.
type Engine[T any, C any, P any, S any] struct {
	def      Definition[T, C, P, S]
	source   []T
	criteria C

	result     []T
	resultOK   bool
	stats      S
	statsReady bool
}

func NewEngine[T any, C any, P any, S any](def Definition[T, C, P, S], source []T) *Engine[T, C, P, S] {
	return &Engine[T, C, P, S]{
		def:      def,
		source:   source,
		criteria: def.Defaults(),
	}
}

// SetSource replaces the collection being filtered.
func (e *Engine[T, C, P, S]) SetSource(source []T) {
	e.source = source
	e.invalidate()
}

// Criteria returns the active criteria.
func (e *Engine[T, C, P, S]) Criteria() C {
	return e.criteria
}

// UpdateCriteria merges patch into the active criteria, key by key.
func (e *Engine[T, C, P, S]) UpdateCriteria(patch P) {
	e.criteria = e.def.Merge(e.criteria, patch)
	e.invalidate()
}

// ReplaceCriteria swaps the active criteria wholesale.
func (e *Engine[T, C, P, S]) ReplaceCriteria(criteria C) {
	e.criteria = criteria
	e.invalidate()
}

// ClearCriteria resets the criteria to their defaults.
func (e *Engine[T, C, P, S]) ClearCriteria() {
	e.criteria = e.def.Defaults()
	e.invalidate()
}

// Result returns the filtered view.
func (e *Engine[T, C, P, S]) Result() []T {
	if !e.resultOK {
		e.result = Filter(e.source, e.criteria, e.def.Match)
		e.resultOK = true
	}
	return e.result
}

// Stats aggregates the filtered view.
func (e *Engine[T, C, P, S]) Stats() S {
	if !e.statsReady {
		e.stats = e.def.Stats(e.Result())
		e.statsReady = true
	}
	return e.stats
}

// Export renders the filtered view as delimited text.
func (e *Engine[T, C, P, S]) Export(columns []Column[T]) (string, bool) {
	return ExportDelimited(e.Result(), columns)
}

func (e *Engine[T, C, P, S]) invalidate() {
	e.result = nil
	e.resultOK = false
	var zero S
	e.stats = zero
	e.statsReady = false
}
