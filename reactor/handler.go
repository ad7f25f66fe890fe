package reactor

// ChangeHandler is the shape every façade's OnChange callback takes:
// the value before and after the change that triggered it.
type ChangeHandler[T any] func(old, new T)
