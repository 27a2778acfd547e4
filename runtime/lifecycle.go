package runtime

// Initializer is implemented by components that need setup before their
// first render. OnInit runs exactly once per mounted instance.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that react to their
// properties. OnParametersSet runs before every render, including the first.
type ParameterReceiver interface {
	OnParametersSet()
}

// Cleaner is implemented by components that hold resources (subscriptions,
// timers). OnDestroy runs once when the instance leaves the tree.
type Cleaner interface {
	OnDestroy()
}

// PropUpdater copies new properties from a freshly constructed instance into
// a preserved one, so state survives re-renders of the parent.
type PropUpdater interface {
	ApplyProps(from Component)
}
