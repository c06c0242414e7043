package lox

import "time"

/////////////////// built in functions

// -------- clock ----------------------------------------------------------------------

func NewClock(now func() (int64, error)) *Clock {
	return &Clock{now: now}
}

// Clock is the single native: zero arity, whole seconds since the Unix
// epoch. The time source is injected so embedders and tests can replace it.
type Clock struct {
	now func() (int64, error)
}

func (this *Clock) Arity() int {
	return 0
}

func (this *Clock) Call(interpreter *Interpreter, arguments []any) (any, error) {
	secs, err := this.now()
	if err != nil {
		return nil, &RuntimeError{Message: "Could not read the clock: " + err.Error()}
	}
	return float64(secs), nil
}

func (this Clock) String() string {
	return "<native fn>"
}

func systemClock() (int64, error) {
	return time.Now().Unix(), nil
}
