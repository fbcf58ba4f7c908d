package model

// MediaType is a kind of media the presentation layer renders
type MediaType string

const (
	// MediaTypeImage for photos and other still images
	MediaTypeImage MediaType = "image"

	// MediaTypeVideo for video clips
	MediaTypeVideo MediaType = "video"
)

func (t MediaType) String() string {
	return string(t)
}
