package dto

import "io"

// UploadRequest a document received from a multipart form.
type UploadRequest struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
	Kind        string // document | report
	TenderID    string // optional
}

// UploadResponse where the stored object lives.
type UploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// PresignResponse direct-upload URL for a client.
type PresignResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
	URL       string `json:"url"`
}
