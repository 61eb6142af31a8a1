package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
)

// BasicOps handles basic file operations
type BasicOps struct {
	*FilesystemOps
}

// Create writes data to path, truncating any existing file
func (b *BasicOps) Create(ctx context.Context, path, data string) (err error) {
	done := b.track("create_file")
	defer func() { done(err) }()

	return write(KindCreate, path, data)
}

// Update overwrites the full content of path. Behaves exactly like Create
// apart from the error kind.
func (b *BasicOps) Update(ctx context.Context, path, data string) (err error) {
	done := b.track("update_file")
	defer func() { done(err) }()

	return write(KindUpdate, path, data)
}

// Read returns the file content as UTF-8 text
func (b *BasicOps) Read(ctx context.Context, path string) (content string, err error) {
	done := b.track("read_file")
	defer func() { done(err) }()

	data, err := os.ReadFile(path)
	if err != nil {
		return "", newError(KindRead, path, err)
	}
	if !utf8.Valid(data) {
		return "", newError(KindRead, path, invalidText(data))
	}
	return string(data), nil
}

// Delete removes a file, or a directory together with everything below it
func (b *BasicOps) Delete(ctx context.Context, path string) (err error) {
	done := b.track("delete")
	defer func() { done(err) }()

	info, err := os.Stat(path)
	if err != nil {
		return newError(KindDelete, path, err)
	}

	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return newError(KindDelete, path, err)
	}
	return nil
}

func write(kind Kind, path, data string) error {
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return newError(kind, path, err)
	}
	return nil
}

// invalidText builds the error for content that is not UTF-8, naming the
// detected charset when the detector recognises one.
func invalidText(data []byte) error {
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || result == nil || result.Charset == "" || strings.EqualFold(result.Charset, "UTF-8") {
		return errors.New("content is not valid UTF-8 text")
	}
	return fmt.Errorf("content is not valid UTF-8 text (detected %s)", strings.ToLower(result.Charset))
}
