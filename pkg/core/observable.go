package core

import "sync"

// Listenable is anything that can notify listeners of changes.
// AddListener returns an unsubscribe function.
type Listenable interface {
	AddListener(listener func()) func()
}

// Disposable is anything that must be released when its owner goes away.
type Disposable interface {
	Dispose()
}

// Notifier broadcasts parameterless change notifications.
// Unlike Observable, it does not hold a value. Safe for concurrent use.
type Notifier struct {
	mu        sync.Mutex
	listeners map[int]func()
	nextID    int
}

// NewNotifier creates an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{listeners: make(map[int]func())}
}

// AddListener registers a listener and returns an unsubscribe function.
func (n *Notifier) AddListener(listener func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.nextID
	n.nextID++
	n.listeners[id] = listener
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

// Notify invokes all registered listeners.
func (n *Notifier) Notify() {
	n.mu.Lock()
	listeners := make([]func(), 0, len(n.listeners))
	for _, l := range n.listeners {
		listeners = append(listeners, l)
	}
	n.mu.Unlock()
	for _, l := range listeners {
		l()
	}
}

// Observable holds a value and notifies listeners when it changes.
// Safe for concurrent use.
type Observable[T any] struct {
	mu        sync.Mutex
	value     T
	equals    func(a, b T) bool
	listeners map[int]func(T)
	nextID    int
}

// NewObservable creates an observable with an initial value. Every Set
// notifies listeners, even if the value is unchanged.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{
		value:     initial,
		listeners: make(map[int]func(T)),
	}
}

// NewObservableWithEquality creates an observable that skips notification
// when equals reports the new value as equal to the old one.
func NewObservableWithEquality[T any](initial T, equals func(a, b T) bool) *Observable[T] {
	obs := NewObservable(initial)
	obs.equals = equals
	return obs
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set updates the value and notifies listeners.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	if o.equals != nil && o.equals(o.value, value) {
		o.value = value
		o.mu.Unlock()
		return
	}
	o.value = value
	listeners := make([]func(T), 0, len(o.listeners))
	for _, l := range o.listeners {
		listeners = append(listeners, l)
	}
	o.mu.Unlock()
	for _, l := range listeners {
		l(value)
	}
}

// AddListener registers a listener and returns an unsubscribe function.
func (o *Observable[T]) AddListener(listener func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := o.nextID
	o.nextID++
	o.listeners[id] = listener
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.listeners, id)
	}
}

// UseListenable subscribes to a listenable and triggers rebuilds. The
// subscription is automatically cleaned up when the state is disposed.
func UseListenable(s stateBase, listenable Listenable) {
	base := s.state()
	unsub := listenable.AddListener(func() {
		base.SetState(nil)
	})
	base.OnDispose(unsub)
}

// UseObservable subscribes to an observable and triggers rebuilds when it
// changes. Call this once in InitState(), not in Build(). The subscription is
// automatically cleaned up when the state is disposed.
func UseObservable[T any](s stateBase, obs *Observable[T]) {
	base := s.state()
	unsub := obs.AddListener(func(T) {
		base.SetState(nil)
	})
	base.OnDispose(unsub)
}
