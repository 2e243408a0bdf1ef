package services

import "katalog/internal/storage"

// MediaResolver is the boundary to the media store consumed by the catalog
// and advertisement services.
type MediaResolver interface {
	// ResolveURL maps a stored file reference to a retrievable URL, or nil
	// when the reference is absent or resolution fails.
	ResolveURL(fileRef *string) *string
	// IssueTicket issues a short-lived upload URL and the file reference it
	// will be stored under.
	IssueTicket() (*storage.UploadTicket, error)
}
