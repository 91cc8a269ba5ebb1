package bucket

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/storage/v1"

	"github.com/anselboero/cloud-functions/internal/credentials"
)

// GCS is a Store backed by the Cloud Storage JSON API. A new service is created for every
// call.
type GCS struct {
	Credentials string
}

func (g GCS) Put(ctx context.Context, bucket, object, contentType string, data []byte) error {
	google, err := g.service(ctx)
	if err != nil {
		return err
	}

	obj := storage.Object{
		Name:        object,
		ContentType: contentType,
	}

	call := google.Objects.Insert(bucket, &obj).Media(bytes.NewReader(data), googleapi.ContentType(contentType))
	if _, err := call.Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to write gs://%s/%s (%w)", bucket, object, notFound(err))
	}

	return nil
}

func (g GCS) Get(ctx context.Context, bucket, object string) ([]byte, error) {
	google, err := g.service(ctx)
	if err != nil {
		return nil, err
	}

	response, err := google.Objects.Get(bucket, object).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("unable to read gs://%s/%s (%w)", bucket, object, notFound(err))
	}

	defer response.Body.Close()

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read gs://%s/%s (%w)", bucket, object, err)
	}

	return b, nil
}

func (g GCS) service(ctx context.Context) (*storage.Service, error) {
	opts, err := credentials.Options(ctx, g.Credentials, storage.DevstorageReadWriteScope)
	if err != nil {
		return nil, err
	}

	google, err := storage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Storage client (%w)", err)
	}

	return google, nil
}

func notFound(err error) error {
	var apierr *googleapi.Error
	if errors.As(err, &apierr) && apierr.Code == http.StatusNotFound {
		return fmt.Errorf("%w: %v", ErrNotFound, apierr.Message)
	}

	return err
}
