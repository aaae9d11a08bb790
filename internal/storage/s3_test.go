package storage

import (
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/stretchr/testify/assert"
)

// A 404 from HeadObject means "not uploaded"; anything else is a storage
// failure and must surface as an error, not as a missing object.
func TestIsObjectNotFound(t *testing.T) {
	notFound := awserr.NewRequestFailure(
		awserr.New("NotFound", "Not Found", nil), http.StatusNotFound, "req-1")
	assert.True(t, isObjectNotFound(notFound))

	assert.True(t, isObjectNotFound(awserr.New(s3.ErrCodeNoSuchKey, "no such key", nil)))

	serviceDown := awserr.NewRequestFailure(
		awserr.New("ServiceUnavailable", "Service Unavailable", nil), http.StatusServiceUnavailable, "req-2")
	assert.False(t, isObjectNotFound(serviceDown))

	assert.False(t, isObjectNotFound(awserr.New("RequestTimeout", "timed out", nil)))
	assert.False(t, isObjectNotFound(errors.New("connection refused")))
}
