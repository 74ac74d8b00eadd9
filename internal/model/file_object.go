package model

// MaxUploadSize caps poster, avatar and banner uploads before any bytes are
// sent to object storage.
const MaxUploadSize = 1 << 20

type FileObject interface {
	GetFilename() string
	GetParent() string
	GetContent() []byte
}

type FileObjectBuilder interface {
	NewFromData(content []byte, filename string) FileObject
}
