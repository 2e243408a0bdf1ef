// Package storage implements the media store: admin uploads go through
// short-lived signed PUT URLs (upload tickets) and stored file references are
// resolved to signed GET URLs at read time.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/google/uuid"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

const (
	ticketTTL   = 15 * time.Minute
	downloadTTL = time.Hour
)

// UploadTicket grants one direct binary upload. The caller PUTs the file to
// UploadURL and then stores FileRef on the record referencing it.
type UploadTicket struct {
	UploadURL string `json:"uploadUrl"`
	FileRef   string `json:"fileRef"`
}

// Store is a media store backed by a local blob bucket with HMAC-signed URLs.
type Store struct {
	bucket *blob.Bucket
	signer *fileblob.URLSignerHMAC
}

// NewStore opens the bucket rooted at dir. Signed URLs are issued under
// baseURL and authenticated with secret.
func NewStore(dir, baseURL, secret string) (*Store, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid media base URL %q: %w", baseURL, err)
	}
	signer := fileblob.NewURLSignerHMAC(base, []byte(secret))
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{URLSigner: signer})
	if err != nil {
		return nil, fmt.Errorf("failed to open media bucket at %s: %w", dir, err)
	}
	return &Store{
		bucket: bucket,
		signer: signer,
	}, nil
}

// Close releases the underlying bucket.
func (s *Store) Close() error {
	return s.bucket.Close()
}

// ResolveURL maps a stored file reference to a retrievable signed URL. A nil
// reference, or a reference that fails to sign, resolves to nil rather than
// an error: a missing optional image must never fail the read that carries it.
func (s *Store) ResolveURL(fileRef *string) *string {
	if fileRef == nil || *fileRef == "" {
		return nil
	}
	signed, err := s.bucket.SignedURL(context.Background(), *fileRef, &blob.SignedURLOptions{
		Expiry: downloadTTL,
		Method: "GET",
	})
	if err != nil {
		return nil
	}
	return &signed
}

// IssueTicket creates a fresh file reference and a signed PUT URL valid for
// a single upload window.
func (s *Store) IssueTicket() (*UploadTicket, error) {
	fileRef := uuid.New().String()
	signed, err := s.bucket.SignedURL(context.Background(), fileRef, &blob.SignedURLOptions{
		Expiry: ticketTTL,
		Method: "PUT",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign upload URL: %w", err)
	}
	return &UploadTicket{
		UploadURL: signed,
		FileRef:   fileRef,
	}, nil
}

// VerifyURL checks the signature on a signed media URL and returns the blob
// key it grants access to.
func (s *Store) VerifyURL(u *url.URL) (string, error) {
	key, err := s.signer.KeyFromURL(context.Background(), u)
	if err != nil {
		return "", fmt.Errorf("invalid media URL signature: %w", err)
	}
	return key, nil
}

// Save streams an uploaded file into the bucket under the given key.
func (s *Store) Save(key string, body io.Reader) error {
	w, err := s.bucket.NewWriter(context.Background(), key, nil)
	if err != nil {
		return fmt.Errorf("failed to open media writer for %s: %w", key, err)
	}
	if _, err := io.Copy(w, body); err != nil {
		w.Close()
		return fmt.Errorf("failed to store media %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish media upload %s: %w", key, err)
	}
	return nil
}

// Open returns a reader over a stored file.
func (s *Store) Open(key string) (io.ReadCloser, error) {
	r, err := s.bucket.NewReader(context.Background(), key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open media %s: %w", key, err)
	}
	return r, nil
}
