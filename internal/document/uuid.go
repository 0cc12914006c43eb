package document

import "strings"

// UUIDFormat controls optional UUID rendering tweaks.
type UUIDFormat struct {
	Upper   bool `json:"upper"`
	Compact bool `json:"compact"` // drop hyphens
}

// FormatUUID applies f to a canonical UUID string.
func FormatUUID(id string, f UUIDFormat) string {
	if f.Compact {
		id = strings.ReplaceAll(id, "-", "")
	}
	if f.Upper {
		id = strings.ToUpper(id)
	}
	return id
}
