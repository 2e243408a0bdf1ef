package storage_test

import (
	"io"
	"net/url"
	"strings"
	"testing"

	"katalog/internal/storage"

	"github.com/stretchr/testify/assert"
)

func newStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.NewStore(t.TempDir(), "http://localhost:8080/media", "test-secret")
	assert.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_ResolveURL(t *testing.T) {
	store := newStore(t)

	assert.Nil(t, store.ResolveURL(nil))
	empty := ""
	assert.Nil(t, store.ResolveURL(&empty))

	fileRef := "product-image"
	resolved := store.ResolveURL(&fileRef)
	assert.NotNil(t, resolved)
	assert.True(t, strings.HasPrefix(*resolved, "http://localhost:8080/media"))

	u, err := url.Parse(*resolved)
	assert.NoError(t, err)
	key, err := store.VerifyURL(u)
	assert.NoError(t, err)
	assert.Equal(t, fileRef, key)
}

func TestStore_IssueTicket(t *testing.T) {
	store := newStore(t)

	ticket, err := store.IssueTicket()
	assert.NoError(t, err)
	assert.NotEmpty(t, ticket.FileRef)
	assert.True(t, strings.HasPrefix(ticket.UploadURL, "http://localhost:8080/media"))

	// The signed upload URL grants access to the ticket's file reference
	u, err := url.Parse(ticket.UploadURL)
	assert.NoError(t, err)
	key, err := store.VerifyURL(u)
	assert.NoError(t, err)
	assert.Equal(t, ticket.FileRef, key)

	// Two tickets never collide
	other, err := store.IssueTicket()
	assert.NoError(t, err)
	assert.NotEqual(t, ticket.FileRef, other.FileRef)
}

func TestStore_VerifyURLRejectsTampering(t *testing.T) {
	store := newStore(t)

	fileRef := "banner"
	resolved := store.ResolveURL(&fileRef)
	assert.NotNil(t, resolved)

	tampered := strings.Replace(*resolved, "banner", "other", 1)
	u, err := url.Parse(tampered)
	assert.NoError(t, err)
	_, err = store.VerifyURL(u)
	assert.Error(t, err)
}

func TestStore_SaveAndOpen(t *testing.T) {
	store := newStore(t)

	err := store.Save("logo", strings.NewReader("fake image bytes"))
	assert.NoError(t, err)

	r, err := store.Open("logo")
	assert.NoError(t, err)
	defer r.Close()
	body, err := io.ReadAll(r)
	assert.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(body))

	_, err = store.Open("missing")
	assert.Error(t, err)
}
