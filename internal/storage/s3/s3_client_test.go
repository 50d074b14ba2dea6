package s3

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartcarbon/internal/config"
	"smartcarbon/internal/port"
)

func TestEndpointOptions(t *testing.T) {
	assert.Nil(t, endpointOptions(""))
	assert.Len(t, endpointOptions("http://localhost:9000"), 1)
}

func TestS3Client_UploadAndDeleteAgainstCompatibleEndpoint(t *testing.T) {
	var gotPut, gotDelete string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			gotPut = r.URL.Path
			w.Header().Set("ETag", `"abc123"`)
			w.WriteHeader(http.StatusOK)
		case http.MethodDelete:
			gotDelete = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer server.Close()

	store, err := NewS3Client(context.Background(), &config.S3Config{
		Region:    "us-east-1",
		Endpoint:  server.URL,
		AccessKey: "test",
		SecretKey: "test",
	})
	require.NoError(t, err)

	out, err := store.Upload(context.Background(), port.UploadInput{
		Bucket:      "bills",
		Key:         "sessions/s1/uploads/a.png",
		Body:        strings.NewReader("png-bytes"),
		ContentType: "image/png",
		Size:        9,
	})
	require.NoError(t, err)
	assert.Equal(t, "/bills/sessions/s1/uploads/a.png", gotPut)
	assert.Equal(t, `"abc123"`, out.ETag)

	require.NoError(t, store.Delete(context.Background(), "bills", "sessions/s1/uploads/a.png"))
	assert.Equal(t, "/bills/sessions/s1/uploads/a.png", gotDelete)
}

const listBody = `<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
  <Name>bills</Name>
  <Prefix>sessions/s1/uploads/</Prefix>
  <KeyCount>2</KeyCount>
  <MaxKeys>1000</MaxKeys>
  <IsTruncated>false</IsTruncated>
  <Contents><Key>sessions/s1/uploads/a.png</Key><Size>9</Size></Contents>
  <Contents><Key>sessions/s1/uploads/b.jpg</Key><Size>12</Size></Contents>
</ListBucketResult>`

func TestS3Client_ListByPrefix(t *testing.T) {
	var gotPrefix string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/bills" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		gotPrefix = r.URL.Query().Get("prefix")
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(listBody))
	}))
	defer server.Close()

	store, err := NewS3Client(context.Background(), &config.S3Config{
		Region:    "us-east-1",
		Endpoint:  server.URL,
		AccessKey: "test",
		SecretKey: "test",
	})
	require.NoError(t, err)

	keys, err := store.List(context.Background(), "bills", "sessions/s1/uploads/")
	require.NoError(t, err)
	assert.Equal(t, "sessions/s1/uploads/", gotPrefix)
	assert.Equal(t, []string{"sessions/s1/uploads/a.png", "sessions/s1/uploads/b.jpg"}, keys)
}
