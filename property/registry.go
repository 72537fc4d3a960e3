package property

import (
	"reflect"
	"sync"
)

// Bindable is implemented by types that publish their own descriptor list.
// The generator emits a BindingFields method for every configured type.
type Bindable interface {
	BindingFields() []Field
}

var (
	registryMu sync.RWMutex
	registry   = make(map[reflect.Type][]Field)
)

// Register records the descriptor list of *T for types that cannot carry a
// BindingFields method, such as types owned by another package. A later
// call for the same type replaces the earlier list.
func Register[T any](fields ...Field) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry[reflect.TypeFor[*T]()] = fields
}

// Properties returns the descriptor list of obj in declaration order.
// obj is normally a pointer to a bindable struct. It returns nil when no
// list is known for obj's type.
func Properties(obj any) []Field {
	if b, ok := obj.(Bindable); ok {
		return b.BindingFields()
	}

	registryMu.RLock()
	defer registryMu.RUnlock()

	return registry[reflect.TypeOf(obj)]
}
