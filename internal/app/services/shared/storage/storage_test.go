package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Document", func(t *testing.T) {
		store := NewFileStorage(filepath.Join(t.TempDir(), "patients.json"))

		data, found, err := store.Read(ctx)
		require.NoError(t, err)
		assert.False(t, found, "a missing file is not an error")
		assert.Nil(t, data)
	})

	t.Run("Write Then Read", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "patients.json")
		store := NewFileStorage(path)

		require.NoError(t, store.Write(ctx, []byte(`{"P001":{}}`)))

		data, found, err := store.Read(ctx)
		require.NoError(t, err)
		assert.True(t, found)
		assert.JSONEq(t, `{"P001":{}}`, string(data))
	})

	t.Run("Write Replaces Whole Document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "patients.json")
		store := NewFileStorage(path)

		require.NoError(t, store.Write(ctx, []byte(`{"P001":{"name":"a very long document body"}}`)))
		require.NoError(t, store.Write(ctx, []byte(`{}`)))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(raw))

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temp files should not be left behind")
	})

	t.Run("Creates Missing Directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "patients.json")
		store := NewFileStorage(path)

		require.NoError(t, store.Write(ctx, []byte(`{}`)))
		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("Driver And Location", func(t *testing.T) {
		store := NewFileStorage("data/patients.json")
		assert.Equal(t, "file", store.Driver())
		assert.Equal(t, "data/patients.json", store.Location())
	})
}

func TestRedisStorage(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	store := NewRedisStorage(client, "medirisk:patients")

	t.Run("Missing Key", func(t *testing.T) {
		data, found, err := store.Read(ctx)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, data)
	})

	t.Run("Write Then Read", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, []byte(`{"P001":{"name":"Ananya"}}`)))

		data, found, err := store.Read(ctx)
		require.NoError(t, err)
		assert.True(t, found)
		assert.JSONEq(t, `{"P001":{"name":"Ananya"}}`, string(data))

		stored, err := server.Get("medirisk:patients")
		require.NoError(t, err)
		assert.JSONEq(t, `{"P001":{"name":"Ananya"}}`, stored)
	})

	t.Run("Connection Failure", func(t *testing.T) {
		broken := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
		defer broken.Close()

		_, _, err := NewRedisStorage(broken, "k").Read(ctx)
		assert.Error(t, err)
	})
}

const noSuchKeyBody = `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message><Key>patients.json</Key><BucketName>medirisk</BucketName><Resource>/medirisk/patients.json</Resource><RequestId>1</RequestId><HostId>1</HostId></Error>`

const accessDeniedBody = `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>AccessDenied</Code><Message>Access Denied.</Message><Key>patients.json</Key><BucketName>medirisk</BucketName><Resource>/medirisk/patients.json</Resource><RequestId>1</RequestId><HostId>1</HostId></Error>`

// fakeObjectServer answers the GetObject and PutObject calls of one object.
type fakeObjectServer struct {
	mu          sync.Mutex
	document    []byte
	denied      bool
	putPaths    []string
	contentType string
}

func (f *fakeObjectServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "application/xml")
		if f.denied {
			w.WriteHeader(http.StatusForbidden)
			io.WriteString(w, accessDeniedBody)
			return
		}
		if f.document == nil {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, noSuchKeyBody)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Length", strconv.Itoa(len(f.document)))
		w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
		w.Write(f.document)
	case http.MethodPut:
		io.Copy(io.Discard, r.Body)
		f.putPaths = append(f.putPaths, r.URL.Path)
		f.contentType = r.Header.Get("Content-Type")
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestMinioClient(t *testing.T, handler http.Handler) *minio.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	serverURL, err := url.Parse(server.URL)
	require.NoError(t, err)

	client, err := minio.New(serverURL.Host, &minio.Options{
		Creds:  credentials.NewStaticV4("minio", "minio-secret", ""),
		Secure: false,
		Region: "us-east-1",
	})
	require.NoError(t, err)
	return client
}

func TestMinioStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Object", func(t *testing.T) {
		store := NewMinioStorage(newTestMinioClient(t, &fakeObjectServer{}), "medirisk", "patients.json")

		data, found, err := store.Read(ctx)
		require.NoError(t, err)
		assert.False(t, found, "NoSuchKey means no document yet")
		assert.Nil(t, data)
	})

	t.Run("Existing Object", func(t *testing.T) {
		fake := &fakeObjectServer{document: []byte(`{"P001":{"name":"Ananya"}}`)}
		store := NewMinioStorage(newTestMinioClient(t, fake), "medirisk", "patients.json")

		data, found, err := store.Read(ctx)
		require.NoError(t, err)
		assert.True(t, found)
		assert.JSONEq(t, `{"P001":{"name":"Ananya"}}`, string(data))
	})

	t.Run("Access Denied", func(t *testing.T) {
		store := NewMinioStorage(newTestMinioClient(t, &fakeObjectServer{denied: true}), "medirisk", "patients.json")

		_, found, err := store.Read(ctx)
		assert.Error(t, err)
		assert.False(t, found)
	})

	t.Run("Write Puts Whole Object", func(t *testing.T) {
		fake := &fakeObjectServer{}
		store := NewMinioStorage(newTestMinioClient(t, fake), "medirisk", "patients.json")

		require.NoError(t, store.Write(ctx, []byte(`{"P001":{"name":"Ananya"}}`)))

		fake.mu.Lock()
		defer fake.mu.Unlock()
		assert.Equal(t, []string{"/medirisk/patients.json"}, fake.putPaths)
		assert.Equal(t, "application/json", fake.contentType)
	})

	t.Run("Driver And Location", func(t *testing.T) {
		store := NewMinioStorage(nil, "medirisk", "patients.json")
		assert.Equal(t, "minio", store.Driver())
		assert.Equal(t, "medirisk/patients.json", store.Location())
	})
}
