package bucket

import (
	"context"
	"fmt"
	"sync"
)

// Object is a stored object as held by Memory.
type Object struct {
	Data        []byte
	ContentType string
}

// Memory is an in-process Store, used by the tests and by dry runs. It is safe for
// concurrent use.
type Memory struct {
	mu      sync.Mutex
	objects map[string]Object
	puts    int
}

func NewMemory() *Memory {
	return &Memory{
		objects: map[string]Object{},
	}
}

func (m *Memory) Put(ctx context.Context, bucket, object, contentType string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.objects[key(bucket, object)] = Object{
		Data:        append([]byte(nil), data...),
		ContentType: contentType,
	}
	m.puts++

	return nil
}

func (m *Memory) Get(ctx context.Context, bucket, object string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if obj, ok := m.objects[key(bucket, object)]; ok {
		return append([]byte(nil), obj.Data...), nil
	}

	return nil, fmt.Errorf("unable to read gs://%s/%s (%w)", bucket, object, ErrNotFound)
}

// Object returns a copy of the stored object.
func (m *Memory) Object(bucket, object string) (Object, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	obj, ok := m.objects[key(bucket, object)]
	if !ok {
		return Object{}, false
	}

	return Object{
		Data:        append([]byte(nil), obj.Data...),
		ContentType: obj.ContentType,
	}, true
}

// Puts returns the number of writes since the store was created.
func (m *Memory) Puts() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.puts
}

func key(bucket, object string) string {
	return bucket + "/" + object
}
