package fetch

import "fmt"

var _ error = NotFoundError{}
var _ error = ForbiddenError{}
var _ error = DownloadError{}

type NotFoundError struct {
	Path  string
	Cause error
}

func (n NotFoundError) Unwrap() error {
	return n.Cause
}

func (n NotFoundError) Error() string {
	return fmt.Sprintf("Input file not found: %s", n.Path)
}

// ForbiddenError is an HTTP 403, usually a host that needs authentication
// or refuses direct downloads.
type ForbiddenError struct {
	URL string
}

func (f ForbiddenError) Error() string {
	return fmt.Sprintf("Access forbidden for %s: the URL might require authentication or doesn't allow direct downloads", f.URL)
}

type DownloadError struct {
	URL        string
	StatusCode int
	Cause      error
}

func (d DownloadError) Unwrap() error {
	return d.Cause
}

func (d DownloadError) Error() string {
	if d.Cause == nil {
		return fmt.Sprintf("Failed to download file %s: status %d", d.URL, d.StatusCode)
	}

	return fmt.Sprintf("Failed to download file %s: %s", d.URL, d.Cause.Error())
}
