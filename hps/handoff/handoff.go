// Package handoff reads and writes clock manager configurations as generated
// for a board: as text, as a binary image or as an Intel HEX file holding
// that image.
//
// The binary image contains the configuration words in the order listed by
// Names, little endian, followed by a word with a CRC-8 of the preceding
// bytes in its lowest byte.
package handoff

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/clktmr/socfpga/hps/clkmgr"
	"github.com/marcinbor85/gohex"
	"github.com/sigurn/crc8"
)

var (
	ErrSize     = errors.New("handoff: invalid image size")
	ErrChecksum = errors.New("handoff: checksum mismatch")
	ErrNoImage  = errors.New("handoff: no image found")
)

type entry struct {
	name string
	ptr  func(c *clkmgr.Config) *uint32
}

var entries = [...]entry{
	{"main.mpuclk", func(c *clkmgr.Config) *uint32 { return &c.Main.MPUClk }},
	{"main.nocclk", func(c *clkmgr.Config) *uint32 { return &c.Main.NoCClk }},
	{"main.nocdiv", func(c *clkmgr.Config) *uint32 { return &c.Main.NoCDiv }},
	{"main.pllglob", func(c *clkmgr.Config) *uint32 { return &c.Main.PLLGlob }},
	{"main.fdbck", func(c *clkmgr.Config) *uint32 { return &c.Main.Fdbck }},
	{"main.pllc0", func(c *clkmgr.Config) *uint32 { return &c.Main.PLLC[0] }},
	{"main.pllc1", func(c *clkmgr.Config) *uint32 { return &c.Main.PLLC[1] }},
	{"main.pllc2", func(c *clkmgr.Config) *uint32 { return &c.Main.PLLC[2] }},
	{"main.pllc3", func(c *clkmgr.Config) *uint32 { return &c.Main.PLLC[3] }},
	{"main.pllm", func(c *clkmgr.Config) *uint32 { return &c.Main.PLLM }},

	{"per.emacctl", func(c *clkmgr.Config) *uint32 { return &c.Per.EMACCtl }},
	{"per.gpiodiv", func(c *clkmgr.Config) *uint32 { return &c.Per.GPIODiv }},
	{"per.pllglob", func(c *clkmgr.Config) *uint32 { return &c.Per.PLLGlob }},
	{"per.fdbck", func(c *clkmgr.Config) *uint32 { return &c.Per.Fdbck }},
	{"per.pllc0", func(c *clkmgr.Config) *uint32 { return &c.Per.PLLC[0] }},
	{"per.pllc1", func(c *clkmgr.Config) *uint32 { return &c.Per.PLLC[1] }},
	{"per.pllc2", func(c *clkmgr.Config) *uint32 { return &c.Per.PLLC[2] }},
	{"per.pllc3", func(c *clkmgr.Config) *uint32 { return &c.Per.PLLC[3] }},
	{"per.pllm", func(c *clkmgr.Config) *uint32 { return &c.Per.PLLM }},

	{"alt.emacactr", func(c *clkmgr.Config) *uint32 { return &c.Alt.EMACACtr }},
	{"alt.emacbctr", func(c *clkmgr.Config) *uint32 { return &c.Alt.EMACBCtr }},
	{"alt.emacptpctr", func(c *clkmgr.Config) *uint32 { return &c.Alt.EMACPTPCtr }},
	{"alt.gpiodbctr", func(c *clkmgr.Config) *uint32 { return &c.Alt.GPIODBCtr }},
	{"alt.sdmmcctr", func(c *clkmgr.Config) *uint32 { return &c.Alt.SDMMCCtr }},
	{"alt.s2fuser0ctr", func(c *clkmgr.Config) *uint32 { return &c.Alt.S2FUser0Ctr }},
	{"alt.s2fuser1ctr", func(c *clkmgr.Config) *uint32 { return &c.Alt.S2FUser1Ctr }},
	{"alt.psirefctr", func(c *clkmgr.Config) *uint32 { return &c.Alt.PSIRefCtr }},

	{"osc", func(c *clkmgr.Config) *uint32 { return &c.HPSOscHz }},
	{"fpga", func(c *clkmgr.Config) *uint32 { return &c.FPGAHz }},
}

// ImageSize is the size of a binary configuration image in bytes.
const ImageSize = (len(entries) + 1) * 4

// Names returns the names of all configuration words in image order.
func Names() []string {
	names := make([]string, len(entries))
	for i := range entries {
		names[i] = entries[i].name
	}
	return names
}

var imageCRC8 = crc8.MakeTable(crc8.CRC8)

// Marshal returns the binary image of c.
func Marshal(c *clkmgr.Config) []byte {
	b := make([]byte, 0, ImageSize)
	for i := range entries {
		b = binary.LittleEndian.AppendUint32(b, *entries[i].ptr(c))
	}
	return binary.LittleEndian.AppendUint32(b, uint32(crc8.Checksum(b, imageCRC8)))
}

// Unmarshal decodes a binary image.
func Unmarshal(b []byte) (*clkmgr.Config, error) {
	if len(b) != ImageSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrSize, len(b))
	}
	data, trailer := b[:ImageSize-4], binary.LittleEndian.Uint32(b[ImageSize-4:])
	if sum := crc8.Checksum(data, imageCRC8); trailer != uint32(sum) {
		return nil, fmt.Errorf("%w: got %#02x, expected %#02x", ErrChecksum, trailer, sum)
	}

	c := new(clkmgr.Config)
	for i := range entries {
		*entries[i].ptr(c) = binary.LittleEndian.Uint32(data[i*4:])
	}
	return c, nil
}

// ReadHex decodes the first image found in an Intel HEX file.
func ReadHex(r io.Reader) (*clkmgr.Config, error) {
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(r); err != nil {
		return nil, err
	}
	for _, seg := range mem.GetDataSegments() {
		if len(seg.Data) >= ImageSize {
			return Unmarshal(seg.Data[:ImageSize])
		}
	}
	return nil, ErrNoImage
}

// WriteHex writes the image of c as Intel HEX file, placed at addr.
func WriteHex(w io.Writer, c *clkmgr.Config, addr uint32) error {
	mem := gohex.NewMemory()
	if err := mem.AddBinary(addr, Marshal(c)); err != nil {
		return err
	}
	return mem.DumpIntelHex(w, 16)
}

// Load reads the configuration from file name. The format is chosen by
// extension: .hex for Intel HEX, .bin for a raw image and text otherwise.
func Load(name string) (*clkmgr.Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch filepath.Ext(name) {
	case ".hex":
		return ReadHex(f)
	case ".bin":
		b, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		return Unmarshal(b)
	}
	return ParseText(f)
}
