package yatgapi

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/YaCodeDev/GoYaTgNotify/yaerrors"
)

// InputFile is content uploaded with the request.
type InputFile struct {
	Name   string
	Reader io.Reader
}

// NewInputFileFromBytes wraps an in-memory payload for upload.
//
// Example usage:
//
//	file := yatgapi.NewInputFileFromBytes("report.csv", data)
func NewInputFileFromBytes(name string, data []byte) InputFile {
	return InputFile{Name: name, Reader: bytes.NewReader(data)}
}

// NewInputFileFromReader wraps a stream for upload.
func NewInputFileFromReader(name string, reader io.Reader) InputFile {
	return InputFile{Name: name, Reader: reader}
}

func (f InputFile) validate() yaerrors.Error {
	if strings.TrimSpace(f.Name) == "" {
		return yaerrors.FromString(http.StatusBadRequest, "input file name cannot be empty")
	}

	if f.Reader == nil {
		return yaerrors.FromString(http.StatusBadRequest, "input file reader cannot be nil")
	}

	return nil
}

// PhotoSource is where a photo comes from: a file ID already known to
// Telegram, a URL Telegram fetches itself, or an upload.
type PhotoSource interface {
	isPhotoSource()
	validate() yaerrors.Error
}

// PhotoByFileID references a photo Telegram already stores.
type PhotoByFileID struct {
	FileID string
}

// PhotoByURL references a photo by a URL Telegram downloads.
type PhotoByURL struct {
	URL string
}

// PhotoByUpload uploads photo bytes with the request.
type PhotoByUpload struct {
	File InputFile
}

func (PhotoByFileID) isPhotoSource() {}
func (PhotoByURL) isPhotoSource()    {}
func (PhotoByUpload) isPhotoSource() {}

func (s PhotoByFileID) validate() yaerrors.Error {
	if strings.TrimSpace(s.FileID) == "" {
		return yaerrors.FromString(http.StatusBadRequest, "photo file id cannot be empty")
	}

	return nil
}

func (s PhotoByURL) validate() yaerrors.Error {
	if strings.TrimSpace(s.URL) == "" {
		return yaerrors.FromString(http.StatusBadRequest, "photo url cannot be empty")
	}

	return nil
}

func (s PhotoByUpload) validate() yaerrors.Error {
	if err := s.File.validate(); err != nil {
		return err.Wrap("invalid photo upload")
	}

	return nil
}

// DocumentSource is where a document comes from, mirroring PhotoSource.
type DocumentSource interface {
	isDocumentSource()
	validate() yaerrors.Error
}

// DocumentByFileID references a document Telegram already stores.
type DocumentByFileID struct {
	FileID string
}

// DocumentByURL references a document by a URL Telegram downloads.
type DocumentByURL struct {
	URL string
}

// DocumentByUpload uploads document bytes with the request.
type DocumentByUpload struct {
	File InputFile
}

func (DocumentByFileID) isDocumentSource() {}
func (DocumentByURL) isDocumentSource()    {}
func (DocumentByUpload) isDocumentSource() {}

func (s DocumentByFileID) validate() yaerrors.Error {
	if strings.TrimSpace(s.FileID) == "" {
		return yaerrors.FromString(http.StatusBadRequest, "document file id cannot be empty")
	}

	return nil
}

func (s DocumentByURL) validate() yaerrors.Error {
	if strings.TrimSpace(s.URL) == "" {
		return yaerrors.FromString(http.StatusBadRequest, "document url cannot be empty")
	}

	return nil
}

func (s DocumentByUpload) validate() yaerrors.Error {
	if err := s.File.validate(); err != nil {
		return err.Wrap("invalid document upload")
	}

	return nil
}
