package models

type File struct {
	FileName    string
	ContentType string
	Body        []byte
}
