package route

// Address is the externally observable navigation address, the equivalent
// of a browser location. Listeners are told about every change; setting the
// current value again is not a change.
type Address struct {
	current   string
	history   []string
	listeners []func(string)
}

func NewAddress(initial string) *Address {
	return &Address{current: initial}
}

func (a *Address) Current() string { return a.current }

// OnChange registers fn to run after every change.
func (a *Address) OnChange(fn func(string)) {
	if fn == nil {
		return
	}
	a.listeners = append(a.listeners, fn)
}

// Set moves to v. It reports false, and notifies nobody, when v is already
// the current address; "#/admin" and "/admin" are the same address.
func (a *Address) Set(v string) bool {
	if Normalize(v) == Normalize(a.current) {
		return false
	}
	a.history = append(a.history, a.current)
	a.current = v
	a.notify()
	return true
}

// Back returns to the previous address. It reports false when there is no
// history.
func (a *Address) Back() bool {
	if len(a.history) == 0 {
		return false
	}
	prev := a.history[len(a.history)-1]
	a.history = a.history[:len(a.history)-1]
	a.current = prev
	a.notify()
	return true
}

// Depth is the number of entries Back can still return to.
func (a *Address) Depth() int { return len(a.history) }

func (a *Address) notify() {
	for _, fn := range a.listeners {
		fn(a.current)
	}
}
