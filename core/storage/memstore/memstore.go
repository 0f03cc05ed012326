// Package memstore is an in-memory storage.Client used by tests and local tooling.
package memstore

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
)

// Object is a stored blob with the metadata the pipeline cares about.
type Object struct {
	Data         []byte
	ContentType  string
	CacheControl string
}

// Store is a single-process bucket map. It is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	buckets map[string]map[string]Object

	// GetErr, when set, is returned by GetObject for the keys it names.
	GetErr map[string]error
	// StatErr, when set, is returned by StatObject for the keys it names.
	StatErr map[string]error
	// PutErr, when set, is returned by PutObject for the keys it names.
	PutErr map[string]error

	puts  []string
	stats int
}

// New returns an empty store with the given buckets created.
func New(buckets ...string) *Store {
	s := &Store{buckets: make(map[string]map[string]Object)}
	for _, b := range buckets {
		s.buckets[b] = make(map[string]Object)
	}
	return s
}

// Add stores data under key, creating the bucket if needed.
func (s *Store) Add(bucket, key string, data []byte, contentType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buckets[bucket] == nil {
		s.buckets[bucket] = make(map[string]Object)
	}
	s.buckets[bucket][key] = Object{Data: data, ContentType: contentType}
}

// Get returns the stored object and whether it exists.
func (s *Store) Get(bucket, key string) (Object, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.buckets[bucket][key]
	return obj, ok
}

// Puts returns the keys written through PutObject, in call order.
func (s *Store) Puts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.puts...)
}

// Stats returns the number of StatObject calls.
func (s *Store) Stats() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func notFound(bucket, key string) error {
	return minio.ErrorResponse{
		Code:       "NoSuchKey",
		Message:    "The specified key does not exist.",
		BucketName: bucket,
		Key:        key,
		StatusCode: http.StatusNotFound,
	}
}

func (s *Store) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.buckets[bucketName]
	return ok, nil
}

func (s *Store) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if err := s.PutErr[objectName]; err != nil {
		return minio.UploadInfo{}, err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buckets[bucketName] == nil {
		return minio.UploadInfo{}, minio.ErrorResponse{Code: "NoSuchBucket", BucketName: bucketName, StatusCode: http.StatusNotFound}
	}
	s.buckets[bucketName][objectName] = Object{Data: data, ContentType: opts.ContentType, CacheControl: opts.CacheControl}
	s.puts = append(s.puts, objectName)
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: int64(len(data))}, nil
}

func (s *Store) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	if err := s.GetErr[objectName]; err != nil {
		return nil, err
	}
	obj, ok := s.Get(bucketName, objectName)
	if !ok {
		return nil, notFound(bucketName, objectName)
	}
	return &reader{Reader: bytes.NewReader(obj.Data), info: s.info(objectName, obj)}, nil
}

func (s *Store) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	s.mu.Lock()
	s.stats++
	s.mu.Unlock()

	if err := s.StatErr[objectName]; err != nil {
		return minio.ObjectInfo{}, err
	}
	obj, ok := s.Get(bucketName, objectName)
	if !ok {
		return minio.ObjectInfo{}, notFound(bucketName, objectName)
	}
	return s.info(objectName, obj), nil
}

func (s *Store) ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	s.mu.Lock()
	var keys []string
	for k := range s.buckets[bucketName] {
		if strings.HasPrefix(k, opts.Prefix) {
			keys = append(keys, k)
		}
	}
	objects := make([]minio.ObjectInfo, 0, len(keys))
	sort.Strings(keys)
	for _, k := range keys {
		objects = append(objects, s.info(k, s.buckets[bucketName][k]))
	}
	s.mu.Unlock()

	ch := make(chan minio.ObjectInfo)
	go func() {
		defer close(ch)
		for _, obj := range objects {
			select {
			case ch <- obj:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

func (s *Store) info(key string, obj Object) minio.ObjectInfo {
	return minio.ObjectInfo{
		Key:          key,
		Size:         int64(len(obj.Data)),
		ContentType:  obj.ContentType,
		LastModified: time.Unix(0, 0).UTC(),
	}
}

type reader struct {
	*bytes.Reader
	info minio.ObjectInfo
}

func (r *reader) Close() error { return nil }

func (r *reader) Stat() (minio.ObjectInfo, error) { return r.info, nil }
