package validation

import (
	"fmt"
	"io"
	"math"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
)

const MaxImageSizeMB = 4

var AcceptedImageTypes = []string{"image/png", "image/jpg", "image/jpeg"}

// File is an uploaded file as seen by the schema. MIMEType is detected from
// the content, not taken from the client.
type File struct {
	Name     string
	Size     int64
	MIMEType string
	Data     []byte
}

// NewFile wraps in-memory content, sniffing its MIME type.
func NewFile(name string, data []byte) File {
	return File{
		Name:     name,
		Size:     int64(len(data)),
		MIMEType: mimetype.Detect(data).String(),
		Data:     data,
	}
}

// FileFromMultipart sniffs an uploaded part. The content is only read into
// memory when it is within the image size limit; larger files keep just
// their size so the schema can reject them.
func FileFromMultipart(fh *multipart.FileHeader) (File, error) {
	f, err := fh.Open()
	if err != nil {
		return File{}, fmt.Errorf("opening %s: %w", fh.Filename, err)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return File{}, fmt.Errorf("detecting type of %s: %w", fh.Filename, err)
	}

	file := File{Name: fh.Filename, Size: fh.Size, MIMEType: mtype.String()}
	if !withinSizeLimit(fh.Size) {
		return file, nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return File{}, fmt.Errorf("rewinding %s: %w", fh.Filename, err)
	}
	file.Data, err = io.ReadAll(f)
	if err != nil {
		return File{}, fmt.Errorf("reading %s: %w", fh.Filename, err)
	}
	return file, nil
}

// sizeInMB converts to MiB rounded to two decimals.
func sizeInMB(sizeInBytes int64) float64 {
	return math.Round(float64(sizeInBytes)/(1024*1024)*100) / 100
}

func withinSizeLimit(size int64) bool {
	return sizeInMB(size) <= MaxImageSizeMB
}

func acceptedImageType(mimeType string) bool {
	for _, t := range AcceptedImageTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}

// validateImages checks every file in the collection. The three rules are
// independent: an empty collection only fails the first one.
func validateImages(field string, files []File, errs *ValidationErrors) {
	if len(files) == 0 {
		errs.add(field, "Image is required", KindField)
	}

	for _, f := range files {
		if !withinSizeLimit(f.Size) {
			errs.add(field, fmt.Sprintf("The maximum image size is %dMB", MaxImageSizeMB), KindField)
			break
		}
	}

	for _, f := range files {
		if !acceptedImageType(f.MIMEType) {
			errs.add(field, "File type is not supported", KindField)
			break
		}
	}
}
