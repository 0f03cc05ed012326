// Package mocks holds testify mocks for core/storage.
package mocks

import (
	"context"
	"io"

	"thumbnail-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
)

var _ storage.Client = (*Client)(nil)

// Client mocks storage.Client. Unset return values fall back to zero values
// so tests only stub what they assert on.
type Client struct {
	mock.Mock
}

// Listing returns a closed, pre-filled channel suitable for ListObjects stubs.
func Listing(objs ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objs))
	for _, o := range objs {
		ch <- o
	}
	close(ch)
	return ch
}

func (m *Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	ret := m.Called(ctx, bucketName)
	return ret.Bool(0), ret.Error(1)
}

func (m *Client) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	ret := m.Called(ctx, bucketName, objectName, reader, objectSize, opts)
	info, _ := ret.Get(0).(minio.UploadInfo)
	return info, ret.Error(1)
}

func (m *Client) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	ret := m.Called(ctx, bucketName, objectName, opts)
	body, _ := ret.Get(0).(io.ReadCloser)
	return body, ret.Error(1)
}

func (m *Client) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	ret := m.Called(ctx, bucketName, objectName, opts)
	info, _ := ret.Get(0).(minio.ObjectInfo)
	return info, ret.Error(1)
}

func (m *Client) ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	ret := m.Called(ctx, bucketName, opts)
	if ch, ok := ret.Get(0).(<-chan minio.ObjectInfo); ok {
		return ch
	}
	return Listing()
}
