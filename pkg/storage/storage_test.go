package storage

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectClient struct {
	objects   map[string][]byte
	types     map[string]string
	removed   []string
	putErr    error
	removeErr error
}

func newFakeObjectClient() *fakeObjectClient {
	return &fakeObjectClient{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeObjectClient) PutObject(_ context.Context, _, key string, r io.Reader, _ int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.objects[key] = data
	f.types[key] = opts.ContentType
	return minio.UploadInfo{Key: key, Size: int64(len(data))}, nil
}

func (f *fakeObjectClient) RemoveObject(_ context.Context, _, key string, _ minio.RemoveObjectOptions) error {
	f.removed = append(f.removed, key)
	if f.removeErr != nil {
		return f.removeErr
	}
	delete(f.objects, key)
	return nil
}

func newTestObjectStore(client *fakeObjectClient) *ObjectStore {
	s := NewObjectStore(client, Config{Bucket: "images", PublicURL: "https://cdn.example.com/"})
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return s
}

func TestDataURIRoundTrip(t *testing.T) {
	ref := EncodeDataURI("image/png", []byte{0x89, 'P', 'N', 'G'})
	assert.True(t, IsDataURI(ref))

	contentType, data, err := ParseDataURI(ref)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
}

func TestParseDataURI_Invalid(t *testing.T) {
	for _, ref := range []string{"", "https://cdn.example.com/a.png", "data:image/png,abc", "data:image/png;base64,!!!"} {
		_, _, err := ParseDataURI(ref)
		assert.ErrorIs(t, err, ErrInvalidDataURI, ref)
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		filename    string
		contentType string
		want        string
	}{
		{"logo.PNG", "image/png", "png"},
		{"photo.jpeg", "", "jpeg"},
		{"", "image/png", "png"},
		{"", "image/gif", "gif"},
		{"blob", "image/webp", "webp"},
		{"", "image/jpeg", "jpg"},
		{"", "", "jpg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Extension(tt.filename, tt.contentType), tt)
	}
}

func TestInlineStore(t *testing.T) {
	s := NewInlineStore()
	ref, err := s.Save(context.Background(), BrandPrefix(1), "logo.png", "image/png", []byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,YWJj", ref)
	assert.False(t, s.Remote())
	s.Delete(context.Background(), ref)
}

func TestObjectStore_Save(t *testing.T) {
	client := newFakeObjectClient()
	s := newTestObjectStore(client)

	ref, err := s.Save(context.Background(), ProductGalleryPrefix(7), "", "image/webp", []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/productos/7/gallery/1700000000000.webp", ref)
	assert.Equal(t, []byte("img"), client.objects["productos/7/gallery/1700000000000.webp"])
	assert.Equal(t, "image/webp", client.types["productos/7/gallery/1700000000000.webp"])
	assert.True(t, s.Remote())
}

func TestObjectStore_SaveFailure(t *testing.T) {
	client := newFakeObjectClient()
	client.putErr = errors.New("bucket unavailable")
	s := newTestObjectStore(client)

	_, err := s.Save(context.Background(), CategoryPrefix(3), "a.png", "image/png", []byte("x"))
	assert.Error(t, err)
}

func TestObjectStore_Delete(t *testing.T) {
	client := newFakeObjectClient()
	s := newTestObjectStore(client)

	s.Delete(context.Background(), "https://cdn.example.com/brands/1/1.png")
	s.Delete(context.Background(), "https://elsewhere.example.com/brands/1/1.png")
	s.Delete(context.Background(), "data:image/png;base64,YWJj")
	s.Delete(context.Background(), "")
	assert.Equal(t, []string{"brands/1/1.png"}, client.removed)

	client.removeErr = errors.New("boom")
	assert.NotPanics(t, func() {
		s.Delete(context.Background(), "https://cdn.example.com/brands/1/2.png")
	})
}
