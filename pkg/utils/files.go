package utils

import (
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// LoadFile loads the given file and performs decompression if
// necessary. Plain ROM images (.gb, .gbc, .bin) are returned as-is;
// .gz, .zip and .7z archives are unpacked and the first file inside
// is returned.
func LoadFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var decoder io.Reader
	switch ext := filepath.Ext(filename); ext {
	case ".gz":
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		decoder, err = gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
	case ".zip":
		zipReader, err := zip.NewReader(f, int64(len(data)))
		if err != nil {
			return nil, err
		}
		decoder, err = zipReader.File[0].Open()
		if err != nil {
			return nil, err
		}
	case ".7z":
		r, err := sevenzip.NewReader(f, int64(len(data)))
		if err != nil {
			return nil, err
		}
		decoder, err = r.File[0].Open()
		if err != nil {
			return nil, err
		}
	default:
		// .gb, .gbc, .bin and anything unrecognized pass through
		return data, nil
	}

	return io.ReadAll(decoder)
}
