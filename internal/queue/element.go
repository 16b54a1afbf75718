package queue

// Element is a single queue entry. It owns a private copy of the
// payload handed to InsertHead or InsertTail and is threaded into at
// most one ring at a time through its unexported link fields.
type Element struct {
	next  *Element
	prev  *Element
	queue *Queue

	value []byte
}

// Value returns the stored payload.
func (e *Element) Value() string {
	if e == nil {
		return ""
	}
	return string(e.value)
}

// Release drops the payload of an element whose ownership was
// transferred out by RemoveHead or RemoveTail. Callers must release
// each removed element exactly once. An element still linked into a
// queue is left untouched.
func (e *Element) Release() {
	if e == nil || e.queue != nil {
		return
	}
	e.value = nil
}

func newElement(s string) *Element {
	value := make([]byte, len(s))
	copy(value, s)
	return &Element{value: value}
}
