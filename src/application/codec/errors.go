package codec

import "fmt"

var _ error = CodecError{}

const (
	DecodeOp = "decode"
	EncodeOp = "encode"
)

type CodecError struct {
	Op    string
	Path  string
	Cause error
}

func (c CodecError) Unwrap() error {
	return c.Cause
}

func (c CodecError) Error() string {
	if c.Cause == nil {
		return fmt.Sprintf("Failed to %s audio %s", c.Op, c.Path)
	}

	return fmt.Sprintf("Failed to %s audio %s: %s", c.Op, c.Path, c.Cause.Error())
}
