package dto

// NoteRequest is the JSON create payload. Image carries std-base64 upload
// bytes; multipart uploads bypass it and attach the file directly.
type NoteRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Color    string `json:"color"`
	Content  string `json:"content"`
	Image    string `json:"image,omitempty"`
}

type PinRequest struct {
	ID       uint `json:"id"`
	Favorite bool `json:"favorite"`
}
