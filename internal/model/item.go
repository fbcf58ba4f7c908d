package model

// Item is one piece of media in the manifest
type Item struct {
	ID    ID        `json:"id"`
	Title string    `json:"title"`
	Type  MediaType `json:"type"`

	// Src is a public path of the copied file
	Src string `json:"src"`

	// Alt is an accessibility text
	Alt string `json:"alt"`

	Context *Context `json:"context,omitempty"`
}
