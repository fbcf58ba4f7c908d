package model

// ID is a URL-safe identifier of folder or item
type ID string

// MakeItemID composes item identifier from folder and file identifiers
func MakeItemID(folder, file ID) ID {
	return folder + "-" + file
}

func (id ID) String() string {
	return string(id)
}
