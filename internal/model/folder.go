package model

// Folder represents one source subdirectory with at least one supported media file
type Folder struct {
	ID ID `json:"id"`

	// Title is the source folder name, trimmed
	Title string `json:"title"`

	// Slug is always equal to ID
	Slug ID `json:"slug"`

	// Count is the number of Items
	Count int `json:"count"`

	Items []Item `json:"items"`
}

// NewFolder creates an empty folder record
func NewFolder(id ID, title string) *Folder {
	return &Folder{
		ID:    id,
		Title: title,
		Slug:  id,
		Items: []Item{},
	}
}

// Add appends item and keeps Count consistent
func (f *Folder) Add(item Item) {
	f.Items = append(f.Items, item)
	f.Count = len(f.Items)
}

// Manifest is an ordered sequence of folders
type Manifest []Folder

// ItemsCount returns total number of items in the manifest
func (m Manifest) ItemsCount() int {
	total := 0
	for i := range m {
		total += m[i].Count
	}
	return total
}
