package cerr

import (
	"errors"
	"fmt"
)

var _ error = ContextualError{}
var _ interface{ Unwrap() error } = ContextualError{}

type F = map[string]interface{}

type Context struct {
	ContextFields F
}

// ContextualError is an error that carries structured fields for logging.
// Fields of a wrapped ContextualError are merged into the outer one.
type ContextualError struct {
	// these are deliberately left public
	// so that embedders can inspect
	Context Context
	Message string
	Cause   error
}

func (c ContextualError) Unwrap() error {
	return c.Cause
}

func (c ContextualError) Error() string {
	if c.Cause == nil {
		return c.Message
	}

	return fmt.Sprintf("%s: %s", c.Message, c.Cause.Error())
}

type Wrapper struct {
	context Context
	cause   error
}

func (w Wrapper) Error(message string) error {
	fields := F{}

	var inner ContextualError
	if errors.As(w.cause, &inner) {
		for k, v := range inner.Context.ContextFields {
			fields[k] = v
		}
	}

	for k, v := range w.context.ContextFields {
		fields[k] = v
	}

	return ContextualError{
		Context: Context{ContextFields: fields},
		Message: message,
		Cause:   w.cause,
	}
}

func (c Context) Field(key string, value interface{}) Context {
	return c.Fields(F{key: value})
}

func (c Context) Fields(fields F) Context {
	merged := F{}
	for k, v := range c.ContextFields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	return Context{ContextFields: merged}
}

func (c Context) Wrap(err error) Wrapper {
	return Wrapper{
		context: c,
		cause:   err,
	}
}

func (c Context) Error(message string) error {
	return c.Wrap(nil).Error(message)
}

func Field(key string, value interface{}) Context {
	return Context{}.Field(key, value)
}

func Fields(fields F) Context {
	return Context{}.Fields(fields)
}

func Wrap(err error) Wrapper {
	return Context{}.Wrap(err)
}

func Error(message string) error {
	return Context{}.Error(message)
}
