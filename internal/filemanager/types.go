package filemanager

import "time"

// Entry type labels used in listings and stat results.
const (
	TypeDirectory = "Directory"
	TypeFile      = "File"
)

// Entry is one directory-listing row as exposed to MCP clients. Size holds
// an int64 for files and the literal string "-" for directories; the json
// key "full path" is part of the wire format.
type Entry struct {
	Name     string `json:"name"`
	FullPath string `json:"full path"`
	Type     string `json:"type"`
	Size     any    `json:"size"`
}

// FileInfo is the metadata returned by Stat.
type FileInfo struct {
	Name        string    `json:"name"`
	FullPath    string    `json:"full path"`
	Type        string    `json:"type"`
	Size        int64     `json:"size"`
	Permissions string    `json:"permissions"`
	Modified    time.Time `json:"modified"`
}
