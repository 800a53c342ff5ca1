package ports

// ImageInspector reads image dimensions without decoding pixel data
type ImageInspector interface {
	Dimensions(path string) (width, height int, err error)
}
