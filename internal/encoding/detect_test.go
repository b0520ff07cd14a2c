package encoding

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestNewUTF8Reader_StripsUTF8BOM(t *testing.T) {
	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("name,role")...)

	r, err := NewUTF8Reader(bytes.NewReader(src))
	assert.NoError(t, err)

	out, err := io.ReadAll(r)
	assert.NoError(t, err)
	assert.Equal(t, "name,role", string(out))
}

func TestNewUTF8Reader_DecodesUTF16LE(t *testing.T) {
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	src, err := encoder.Bytes([]byte("name,role\nAhmed,Electrician"))
	assert.NoError(t, err)

	r, err := NewUTF8Reader(bytes.NewReader(src))
	assert.NoError(t, err)

	out, err := io.ReadAll(r)
	assert.NoError(t, err)
	assert.Equal(t, "name,role\nAhmed,Electrician", string(out))
}

func TestNewUTF8Reader_PassesThroughValidUTF8(t *testing.T) {
	src := "name,note\nAhmed,سلفة وقود"

	r, err := NewUTF8Reader(strings.NewReader(src))
	assert.NoError(t, err)

	out, err := io.ReadAll(r)
	assert.NoError(t, err)
	assert.Equal(t, src, string(out))
}

func TestNewUTF8Reader_DecodesWindows1256(t *testing.T) {
	encoder := charmap.Windows1256.NewEncoder()
	src, err := encoder.Bytes([]byte("سلفة وقود للموظف أحمد حسن في الموقع"))
	assert.NoError(t, err)

	r, err := NewUTF8Reader(bytes.NewReader(src))
	assert.NoError(t, err)

	out, err := io.ReadAll(r)
	assert.NoError(t, err)
	assert.Equal(t, "سلفة وقود للموظف أحمد حسن في الموقع", string(out))
}
