package dump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	req := require.New(t)

	var buf bytes.Buffer
	err := Hex(&buf, []byte("abcdefghijklmnopqr"))
	req.NoError(err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	req.Len(lines, 2)
	req.Equal("00000000  61 62 63 64 65 66 67 68  69 6a 6b 6c 6d 6e 6f 70  |abcdefghijklmnop|", lines[0])
	req.Equal("00000010  71 72                                             |qr|", lines[1])
}

func TestHexNonPrintable(t *testing.T) {
	req := require.New(t)

	var buf bytes.Buffer
	err := Hex(&buf, []byte{0x00, 0x41, 0xff})
	req.NoError(err)
	req.Contains(buf.String(), "|.A.|")
}

func TestHexEmpty(t *testing.T) {
	req := require.New(t)

	var buf bytes.Buffer
	req.NoError(Hex(&buf, nil))
	req.Empty(buf.String())
}

func TestBinary(t *testing.T) {
	req := require.New(t)

	var buf bytes.Buffer
	err := Binary(&buf, []byte{0b1011_0010, 0xFF, 0x00})
	req.NoError(err)
	req.Equal("00000000  10110010 11111111 00000000\n", buf.String())
}

func TestBinaryMultiLine(t *testing.T) {
	req := require.New(t)

	var buf bytes.Buffer
	err := Binary(&buf, make([]byte, 9))
	req.NoError(err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	req.Len(lines, 2)
	req.True(strings.HasPrefix(lines[1], "00000008 "))
}
