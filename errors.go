package granary

import (
	"fmt"
	"reflect"
)

// The error types below are never returned: every one of them marks caller
// misuse of the API contract, so they are raised with panic (see doc.go).

type CapacityError struct {
	Limit int
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("capacity exceeded (limit %d)", e.Limit)
}

type RangeError struct {
	ID    EntityID
	Limit int
}

func (e RangeError) Error() string {
	return fmt.Sprintf("entity id %d out of range [0, %d)", e.ID, e.Limit)
}

type DoubleRegistrationError struct {
	Type reflect.Type
}

func (e DoubleRegistrationError) Error() string {
	return fmt.Sprintf("component type already registered: %v", e.Type)
}

type UnregisteredTypeError struct {
	Type reflect.Type
}

func (e UnregisteredTypeError) Error() string {
	return fmt.Sprintf("component type not registered: %v", e.Type)
}

type ComponentExistsError struct {
	Type reflect.Type
	ID   EntityID
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component already exists on entity %d: %v", e.ID, e.Type)
}

type ComponentNotFoundError struct {
	Type reflect.Type
	ID   EntityID
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on entity %d: %v", e.ID, e.Type)
}
