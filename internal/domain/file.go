package domain

import "time"

// FileReference is a validated path with the metadata read for it.
type FileReference struct {
	Path     string
	Name     string
	Size     int64
	Created  time.Time
	Modified time.Time
}
