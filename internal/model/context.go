package model

// Context is optional metadata derived for one media item. Absent values are never serialized.
type Context struct {
	// CapturedAt is ISO-8601 UTC timestamp with milliseconds
	CapturedAt string `json:"capturedAt,omitempty"`

	// Location is a human-readable place label
	Location string `json:"location,omitempty"`

	// Latitude and Longitude are decimal degrees rounded to 6 places
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	// Device is camera make and model
	Device string `json:"device,omitempty"`
}

// IsEmpty reports whether no field is set
func (c *Context) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.CapturedAt == "" && c.Location == "" && c.Latitude == nil && c.Longitude == nil && c.Device == ""
}

// Compact returns nil for an empty context
func (c *Context) Compact() *Context {
	if c.IsEmpty() {
		return nil
	}
	return c
}
