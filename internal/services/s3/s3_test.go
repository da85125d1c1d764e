package s3service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visa-eligibility-engine/internal/catalog"
	s3service "visa-eligibility-engine/internal/services/s3"
)

var errNoSuchKey = errors.New("no such key")

// memoryStore is an in-memory stand-in for the S3 object API.
type memoryStore struct {
	objects      map[string][]byte
	contentTypes map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: map[string][]byte{}, contentTypes: map[string]string{}}
}

func (m *memoryStore) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := m.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, errNoSuchKey
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (m *memoryStore) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	key := aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)
	m.objects[key] = data
	m.contentTypes[key] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func TestService_UploadAndDownload(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	svc := s3service.NewServiceWithClient(store, "bucket")

	require.NoError(t, svc.UploadFile(ctx, "intakes/a.csv", []byte("hello"), "text/csv"))
	assert.Equal(t, "text/csv", store.contentTypes["bucket/intakes/a.csv"])

	data, err := svc.DownloadFile(ctx, "intakes/a.csv")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = svc.DownloadFile(ctx, "missing.csv")
	assert.ErrorIs(t, err, errNoSuchKey)
}

func TestCatalogSource_PublishThenLoad(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	svc := s3service.NewServiceWithClient(store, "visa-catalog")

	require.NoError(t, svc.PublishCatalog(ctx, "catalog/visa-catalog.json", catalog.Default(), "2024-06"))
	assert.Equal(t, "application/json", store.contentTypes["visa-catalog/catalog/visa-catalog.json"])

	src := s3service.CatalogSource{Service: svc, Key: "catalog/visa-catalog.json"}
	assert.Equal(t, "s3://visa-catalog/catalog/visa-catalog.json", src.Name())

	loaded, err := src.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Entries(), loaded.Entries())
}

func TestCatalogSource_InvalidDocument(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	store.objects["visa-catalog/catalog.json"] = []byte(`{"version": "1"}`)

	src := s3service.CatalogSource{
		Service: s3service.NewServiceWithClient(store, "visa-catalog"),
		Key:     "catalog.json",
	}

	_, err := src.Load(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
}
