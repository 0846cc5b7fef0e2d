package logging

import (
	"reflect"

	"github.com/google/uuid"
)

// enricher enriches a log record with further meaningful attributes that aren't
// readily available to the caller.
type enricher struct {
	updaters []ArgsUpdater
}

func (e *enricher) AddArgsUpdater(updater ArgsUpdater) {
	e.updaters = append(e.updaters, updater)
}

func (e *enricher) enrich(args ...any) []any {
	for _, en := range e.updaters {
		args = en.UpdateArgs(args...)
	}
	return args
}

// ArgsUpdater updates a log message's arguments.
type ArgsUpdater interface {
	UpdateArgs(args ...any) []any
}

// ReferenceUpdater checks log arguments for references to T via its ID, either
// directly or via a struct field, and adds T to the log arguments accordingly.
type ReferenceUpdater[T any] struct {
	Getter[T]

	Name  string
	Field string
}

type Getter[T any] interface {
	Get(uuid.UUID) (T, bool)
}

func (e *ReferenceUpdater[T]) UpdateArgs(args ...any) []any {
	for _, arg := range args {
		// An argument of type uuid.UUID that refers to a T is followed by T.
		if id, ok := arg.(uuid.UUID); ok {
			if t, ok := e.Get(id); ok {
				return append(args, e.Name, t)
			}
			continue
		}
		// Where an argument is a struct (or a pointer to a struct), check if it
		// has a field matching the expected field name, with a corresponding
		// value of type uuid.UUID, and if so, try and retrieve T with that ID
		// and add it as a log argument preceded with e.Name.
		v := reflect.Indirect(reflect.ValueOf(arg))
		if v.Kind() != reflect.Struct {
			continue
		}
		f := reflect.Indirect(v.FieldByName(e.Field))
		if !f.IsValid() {
			continue
		}
		id, ok := f.Interface().(uuid.UUID)
		if !ok {
			continue
		}
		if t, ok := e.Get(id); ok {
			return append(args, e.Name, t)
		}
	}
	return args
}
