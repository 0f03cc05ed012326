package thumbnail

import (
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// Notification is a batch of "object created" records, in the S3 event shape
// that both AWS and MinIO bucket notifications emit.
type Notification = events.S3Event

// EncodeKey URL-encodes an object key the way storage notifications carry it.
func EncodeKey(key string) string {
	return strings.ReplaceAll(url.QueryEscape(key), "%2F", "/")
}

// DecodeKey reverses EncodeKey; "+" decodes to a space.
func DecodeKey(encoded string) (string, error) {
	return url.QueryUnescape(encoded)
}

// NewNotification builds a single-record notification for bucket/key.
func NewNotification(bucket, key string) Notification {
	return Notification{
		Records: []events.S3EventRecord{{
			EventSource: "aws:s3",
			EventName:   "ObjectCreated:Put",
			S3: events.S3Entity{
				Bucket: events.S3Bucket{Name: bucket},
				Object: events.S3Object{Key: EncodeKey(key)},
			},
		}},
	}
}
