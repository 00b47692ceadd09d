package service_test

import "mime/multipart"

// newTestFileHeader builds a bare upload header. The storage layer is mocked
// in these tests, so the header is never opened.
func newTestFileHeader(filename string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: filename}
}
