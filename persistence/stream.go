// Package persistence stores packed bit streams as files: a checksummed
// binary header followed by the raw payload.
package persistence

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nullstyle/go-xdr/xdr3"
	"github.com/ricochet2200/go-disk-usage/du"
	"github.com/spacemeshos/sha256-simd"

	bitpacker "github.com/sck451/BitPacker"
	"github.com/sck451/BitPacker/shared"
)

// OwnerReadWriteExec is a standard owner read / write / exec file permission.
const OwnerReadWriteExec = 0700

// OwnerReadWrite is a standard owner read / write file permission.
const OwnerReadWrite = 0600

// Suffix is the filename extension of persisted packed streams.
const Suffix = ".bps"

const streamMagic = 0x42505331 // "BPS1"

var ErrStreamNotExist = errors.New("stream doesn't exist")

// streamHeader precedes the payload on disk, XDR-encoded. NumBits records
// the logical stream length before final-byte padding; Checksum is the
// SHA-256 digest of the payload.
type streamHeader struct {
	Magic    uint32
	NumBits  uint64
	Checksum [sha256.Size]byte
}

type ChecksumMismatchError struct {
	Expected string
	Found    string
	Filename string
}

func (err ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch; expected: %v, found: %v, filename: %v",
		err.Expected, err.Found, err.Filename)
}

// StreamPath returns the file path of the named stream within datadir.
func StreamPath(datadir, name string) string {
	return filepath.Join(datadir, name+Suffix)
}

// Writer persists packed streams into a data directory.
type Writer struct {
	datadir string
	logger  shared.Logger
}

func NewWriter(datadir string) (*Writer, error) {
	if err := os.MkdirAll(datadir, OwnerReadWriteExec); err != nil {
		return nil, fmt.Errorf("dir creation failure: %v", err)
	}

	return &Writer{
		datadir: datadir,
		logger:  shared.NoopLogger{},
	}, nil
}

func (w *Writer) SetLogger(logger shared.Logger) {
	w.logger = logger
}

// Persist finalizes p and writes it as the named stream. Finalizing pads
// the trailing partial bit group, so p should not be written to afterwards.
func (w *Writer) Persist(name string, p *bitpacker.Packer) error {
	numBits := uint64(p.Size())
	data := p.Bytes()

	if available := du.NewDiskUsage(w.datadir).Available(); available < uint64(len(data)) {
		return fmt.Errorf("insufficient disk space; available: %d bytes, required: %d bytes",
			available, len(data))
	}

	header := streamHeader{
		Magic:    streamMagic,
		NumBits:  numBits,
		Checksum: sha256.Sum256(data),
	}

	var buf bytes.Buffer
	if _, err := xdr.Marshal(&buf, &header); err != nil {
		return fmt.Errorf("serialization failure: %v", err)
	}
	buf.Write(data)

	filename := StreamPath(w.datadir, name)
	if err := os.WriteFile(filename, buf.Bytes(), OwnerReadWrite); err != nil {
		return fmt.Errorf("write to disk failure: %v", err)
	}

	w.logger.Info("persisted stream %v (%d bits, %d bytes)", filename, numBits, len(data))
	return nil
}

// Fetch reads the named stream back, verifying its header. It returns the
// payload and the logical number of bits it holds.
func Fetch(datadir, name string) ([]byte, uint64, error) {
	filename := StreamPath(datadir, name)
	raw, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, ErrStreamNotExist
		}
		return nil, 0, fmt.Errorf("read file failure: %v", err)
	}

	header := &streamHeader{}
	n, err := xdr.Unmarshal(bytes.NewReader(raw), header)
	if err != nil {
		return nil, 0, fmt.Errorf("deserialization failure: %v", err)
	}

	if header.Magic != streamMagic {
		return nil, 0, fmt.Errorf("magic mismatch; expected: %#x, found: %#x, filename: %v",
			streamMagic, header.Magic, filename)
	}

	payload := raw[n:]
	if checksum := sha256.Sum256(payload); checksum != header.Checksum {
		return nil, 0, ChecksumMismatchError{
			Expected: fmt.Sprintf("%x", header.Checksum),
			Found:    fmt.Sprintf("%x", checksum),
			Filename: filename,
		}
	}

	if header.NumBits > uint64(len(payload))*8 {
		return nil, 0, fmt.Errorf("truncated stream; header claims %d bits, payload holds %d",
			header.NumBits, len(payload)*8)
	}

	return payload, header.NumBits, nil
}

// FetchUnpacker reads the named stream back into a fresh Unpacker.
func FetchUnpacker(datadir, name string) (*bitpacker.Unpacker, uint64, error) {
	payload, numBits, err := Fetch(datadir, name)
	if err != nil {
		return nil, 0, err
	}
	return bitpacker.NewUnpacker(payload), numBits, nil
}
