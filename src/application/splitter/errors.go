package splitter

var _ error = InvalidInputError{}
var _ error = InvalidArgumentError{}

// InvalidInputError is returned when the decoded source can't be split,
// such as audio with no duration.
type InvalidInputError struct {
	Path   string
	Reason string
}

func (i InvalidInputError) Error() string {
	if i.Path == "" {
		return "Invalid audio input: " + i.Reason
	}

	return "Invalid audio input " + i.Path + ": " + i.Reason
}

// InvalidArgumentError is returned for an unusable size budget.
type InvalidArgumentError struct {
	Reason string
}

func (i InvalidArgumentError) Error() string {
	return "Invalid split argument: " + i.Reason
}
