package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"visa-eligibility-engine/internal/catalog"
	"visa-eligibility-engine/internal/handlers"
	"visa-eligibility-engine/internal/metrics"
	"visa-eligibility-engine/internal/services/eligibility"
)

const scenarioA = `{
	"age_band": "50+",
	"purpose": "retirement",
	"income_type": "Pension",
	"savings_band": "800k_3M",
	"location": "Outside Thailand",
	"duration": "365_5y"
}`

func newTestAPI(m *metrics.Metrics) *handlers.API {
	engine := eligibility.NewEngine(catalog.Default(), eligibility.DefaultConfig())
	return handlers.NewAPI(engine, m, handlers.ServiceInfo{Source: "embedded", Version: "test", Stage: "test"})
}

var errNoSuchKey = errors.New("no such key")

type memoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: map[string][]byte{}}
}

func (m *memoryStore) put(bucket, key, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[bucket+"/"+key] = []byte(content)
}

func (m *memoryStore) get(bucket, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[bucket+"/"+key]
	return data, ok
}

func (m *memoryStore) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := m.get(aws.ToString(in.Bucket), aws.ToString(in.Key))
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
	m.put(aws.ToString(in.Bucket), aws.ToString(in.Key), string(data))
	return &s3.PutObjectOutput{}, nil
}
