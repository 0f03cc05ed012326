package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// ErrTooLarge is returned by ReadObject when the object exceeds the read limit.
var ErrTooLarge = errors.New("object exceeds size limit")

type statter interface {
	Stat() (minio.ObjectInfo, error)
}

// ReadObject downloads an object fully and returns its bytes and declared
// content type. When limit is positive, at most limit+1 bytes are read and
// ErrTooLarge is returned alongside the truncated size so callers can report it.
func ReadObject(ctx context.Context, client Client, bucket, key string, limit int64) ([]byte, string, error) {
	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get %q: %w", key, err)
	}
	defer obj.Close()

	var contentType string
	if st, ok := obj.(statter); ok {
		info, err := st.Stat()
		if err != nil {
			return nil, "", fmt.Errorf("failed to stat %q: %w", key, err)
		}
		contentType = info.ContentType
		if limit > 0 && info.Size > limit {
			return nil, contentType, fmt.Errorf("%q is %d bytes: %w", key, info.Size, ErrTooLarge)
		}
	}

	var r io.Reader = obj
	if limit > 0 {
		r = io.LimitReader(obj, limit+1)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, "", fmt.Errorf("failed to read body for %q: %w", key, err)
	}
	if limit > 0 && int64(buf.Len()) > limit {
		return nil, contentType, fmt.Errorf("%q is over %d bytes: %w", key, limit, ErrTooLarge)
	}

	return buf.Bytes(), contentType, nil
}

// Exists reports whether an object is present, using a HEAD request.
// A missing object is not an error; any other failure is returned.
func Exists(ctx context.Context, client Client, bucket, key string) (bool, error) {
	_, err := client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if IsNotFound(err) {
		return false, nil
	}
	return false, err
}

// IsNotFound reports whether err wraps a missing-object or missing-bucket response.
func IsNotFound(err error) bool {
	var resp minio.ErrorResponse
	if !errors.As(err, &resp) {
		return false
	}
	switch resp.Code {
	case "NoSuchKey", "NoSuchBucket", "NotFound":
		return true
	}
	return false
}

// PutBytes uploads an in-memory payload with the given content type and
// Cache-Control directive.
func PutBytes(ctx context.Context, client Client, bucket, key string, data []byte, contentType, cacheControl string) error {
	_, err := client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: cacheControl,
	})
	if err != nil {
		return fmt.Errorf("failed to put %q: %w", key, err)
	}
	return nil
}
