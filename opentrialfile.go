package eegprep

import (
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"
	"os"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type Compression byte

const (
	CompressionInvalid Compression = iota
	CompressionNone
	CompressionGzip
	CompressionZip
	CompressionXZ
	CompressionZ
	CompressionBZip2
)

var compressionSigs = map[Compression][]byte{
	CompressionGzip:  {0x1f, 0x8b, 0x08},
	CompressionZip:   {0x50, 0x4b, 0x03, 0x04},
	CompressionXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	CompressionZ:     {0x1f, 0x9d},
	CompressionBZip2: {0x42, 0x5a, 0x68},
}

// DetectCompression sniffs the compression scheme of a stream from its first
// bytes. Byte code signatures from https://stackoverflow.com/a/19127748/199475
func DetectCompression(r io.Reader) (Compression, error) {
	buff := make([]byte, 6)
	if _, err := io.ReadFull(r, buff); err == io.ErrUnexpectedEOF || err == io.EOF {
		// Too short to carry any known signature.
		return CompressionNone, nil
	} else if err != nil {
		return CompressionInvalid, err
	}

Outer:
	for dt, sig := range compressionSigs {
		for position := range sig {
			if buff[position] != sig[position] {
				continue Outer
			}
		}
		return dt, nil
	}

	return CompressionNone, nil
}

// OpenTrialFile opens a raw trial file, transparently decompressing it if the
// dataset distributor shipped it compressed. The scheme is chosen by content
// signature rather than by file extension. Closing the returned ReadCloser
// closes the underlying file.
func OpenTrialFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	dt, err := DetectCompression(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}

	switch dt {
	case CompressionGzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &trialFile{gz, f}, nil
	case CompressionZip:
		zr := zipstream.NewReader(f)
		if _, err := zr.Next(); err != nil {
			f.Close()
			return nil, err
		}
		return &trialFile{zr, f}, nil
	case CompressionXZ:
		xr, err := xz.NewReader(f, 0)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &trialFile{xr, f}, nil
	case CompressionZ:
		zr, err := zlib.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &trialFile{zr, f}, nil
	case CompressionBZip2:
		return &trialFile{bzip2.NewReader(f), f}, nil
	}

	return f, nil
}

// trialFile pairs a decompressing reader with the file beneath it so a single
// Close tears down both.
type trialFile struct {
	io.Reader
	file *os.File
}

func (t *trialFile) Close() error {
	if c, ok := t.Reader.(io.Closer); ok {
		c.Close()
	}

	return t.file.Close()
}
