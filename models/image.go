package models

// Image holds a base64-encoded PNG payload. Decoding happens per request in
// the store; the encoded form is what stays in memory.
type Image struct {
	ID   string `json:"id"`
	Data string `json:"image"`
}
