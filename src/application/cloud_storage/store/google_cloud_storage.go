package store

import (
	"context"
	"fmt"
	"freecast-workers/src/application/cloud_storage/entity"
	"freecast-workers/src/lib/cerr"
	"mime"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

var _ entity.FileStore = GoogleFileStore{}

const GoogleStorageHost = "https://storage.googleapis.com"

// FileURL is the public URL of objectPath inside bucket.
func FileURL(bucket string, objectPath string) string {
	return fmt.Sprintf("%s/%s/%s", GoogleStorageHost, bucket, strings.TrimPrefix(objectPath, "/"))
}

type GoogleFileStore struct {
	storageClient *storage.Client
}

func NewGoogleFileStore(jsonKey string) (GoogleFileStore, error) {
	googleStorageClient, err := storage.NewClient(context.Background(), option.WithCredentialsJSON([]byte(jsonKey)))
	if err != nil {
		return GoogleFileStore{}, cerr.Wrap(err).Error("Failed to create Google Cloud Storage client")
	}

	return GoogleFileStore{
		storageClient: googleStorageClient,
	}, nil
}

func (g GoogleFileStore) WriteFile(ctx context.Context, fileURL string, fileContent []byte) (err error) {
	errctx := cerr.Field("file_url", fileURL)

	bucket, filePath, err := BucketAndPathFromURL(fileURL)
	if err != nil {
		return errctx.Wrap(err).Error("Couldn't extract file path from URL")
	}

	writer := g.objectHandle(bucket, filePath).NewWriter(ctx)
	writer.ContentType = ContentType(filePath)

	defer func() {
		closeErr := writer.Close()
		if err == nil && closeErr != nil {
			err = errctx.Wrap(closeErr).Error("Error occurred when closing the upload stream")
		}
	}()

	if _, err = writer.Write(fileContent); err != nil {
		return errctx.Wrap(err).Error("Error occurred when uploading file")
	}

	return nil
}

// ContentType guesses the object's content type from its extension.
func ContentType(filePath string) string {
	ext := strings.ToLower(path.Ext(filePath))
	if ext == ".mp3" {
		return "audio/mpeg"
	}

	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType
	}

	return "application/octet-stream"
}

func BucketAndPathFromURL(fileURL string) (string, string, error) {
	if !strings.HasPrefix(fileURL, GoogleStorageHost+"/") {
		return "", "", cerr.Field("file_url", fileURL).Error("File path given not in the Google cloud storage format")
	}

	bucketAndPath := strings.TrimPrefix(fileURL, GoogleStorageHost+"/")

	chunks := strings.SplitN(bucketAndPath, "/", 2)
	if len(chunks) != 2 || chunks[0] == "" || chunks[1] == "" {
		return "", "", cerr.Field("file_url", fileURL).Error("File path given not in the Google cloud storage format")
	}

	return chunks[0], chunks[1], nil
}

func (g GoogleFileStore) objectHandle(bucket string, filePath string) *storage.ObjectHandle {
	return g.storageClient.Bucket(bucket).Object(filePath)
}
