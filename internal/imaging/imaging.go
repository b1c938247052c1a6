// Package imaging is the image transcoding collaborator: it turns an
// arbitrary uploaded image into a small fixed-size JPEG data URI suitable for
// embedding in a roster entry and in game keys.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"github.com/nfnt/resize"
)

// Thumbnails are resized to a fixed square so game keys stay small.
const (
	ThumbWidth  = 150
	ThumbHeight = 150
)

const jpegQuality = 70

// Result is an asynchronous transcode completion. Generation records the
// roster epoch the load was started against, so the session can drop
// completions that arrive after the roster moved on.
type Result struct {
	EntryID    string
	Generation uint64
	DataURI    string
	Err        error
}

// Transcode decodes an image stream, resizes it to ThumbWidth x ThumbHeight
// and returns it as a JPEG data URI.
func Transcode(r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	thumb := resize.Resize(ThumbWidth, ThumbHeight, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("encode thumbnail: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// TranscodeFile transcodes the image file at path.
func TranscodeFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	return Transcode(f)
}

// TranscodeFileAsync runs TranscodeFile off the control goroutine and
// delivers exactly one Result on the returned channel. There is no
// cancellation; a completion that is no longer wanted is dropped by the
// session's staleness check instead.
func TranscodeFileAsync(path, entryID string, generation uint64) <-chan Result {
	done := make(chan Result, 1)
	go func() {
		uri, err := TranscodeFile(path)
		done <- Result{EntryID: entryID, Generation: generation, DataURI: uri, Err: err}
	}()
	return done
}

// DecodeDataURI decodes a base64 image data URI back into pixels.
func DecodeDataURI(uri string) (image.Image, error) {
	idx := strings.Index(uri, "base64,")
	if !strings.HasPrefix(uri, "data:image/") || idx < 0 {
		return nil, fmt.Errorf("not an image data URI")
	}
	raw, err := base64.StdEncoding.DecodeString(uri[idx+len("base64,"):])
	if err != nil {
		return nil, fmt.Errorf("decode data URI: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode data URI image: %w", err)
	}
	return img, nil
}
