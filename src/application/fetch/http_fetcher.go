package fetch

import (
	"context"
	"fmt"
	"freecast-workers/src/lib/working_dir"
	"io"
	"net/http"

	"github.com/apex/log"
)

var _ Fetcher = HTTPFetcher{}

// Downloads are decoded as MP3 and chunks are always encoded as MP3, so the
// URL's own extension is never trusted.
const audioExt = ".mp3"

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPFetcher downloads into workingDir's temp dir. The client has no
// timeout of its own; callers bound a download through the context.
func NewHTTPFetcher(client HTTPClient, userAgent string, workingDir working_dir.WorkingDir) HTTPFetcher {
	return HTTPFetcher{
		client:     client,
		userAgent:  userAgent,
		workingDir: workingDir,
	}
}

type HTTPFetcher struct {
	client     HTTPClient
	userAgent  string
	workingDir working_dir.WorkingDir
}

func (h HTTPFetcher) Fetch(ctx context.Context, sourceURL string) (LocalAudio, error) {
	logger := log.WithField("sourceURL", sourceURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return LocalAudio{}, DownloadError{URL: sourceURL, Cause: err}
	}
	req.Header.Set("User-Agent", h.userAgent)

	logger.Info("Downloading source audio")
	resp, err := h.client.Do(req)
	if err != nil {
		return LocalAudio{}, DownloadError{URL: sourceURL, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return LocalAudio{}, ForbiddenError{URL: sourceURL}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return LocalAudio{}, DownloadError{
			URL:        sourceURL,
			StatusCode: resp.StatusCode,
			Cause:      fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	tempFile, removeTempFile, err := h.workingDir.CreateTempFile("freecast-*" + audioExt)
	if err != nil {
		return LocalAudio{}, DownloadError{URL: sourceURL, Cause: err}
	}

	written, err := io.Copy(tempFile, resp.Body)
	closeErr := tempFile.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		removeTempFile()
		return LocalAudio{}, DownloadError{URL: sourceURL, StatusCode: resp.StatusCode, Cause: err}
	}

	logger.WithFields(log.Fields{
		"tempFile": tempFile.Name(),
		"bytes":    written,
	}).Info("Downloaded source audio")

	return newTemporaryLocalAudio(tempFile.Name(), removeTempFile), nil
}
