package codec

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/vovakirdan/tui-sketch/internal/core"
)

// Binary layout, little endian:
//
//	magic   [4]byte "SKB1"
//	rows    uint32
//	per row:
//	  cells uint32
//	  per cell: rune int32, fg uint32, bg uint32, flags uint8
const binaryMagic = "SKB1"

// maxDimension bounds row and cell counts read from untrusted input.
const maxDimension = 1 << 16

const (
	flagBold uint8 = 1 << iota
	flagItalic
	flagReverse

	flagMask = flagBold | flagItalic | flagReverse
)

// Binary is the lossless native format used for storage.
type Binary struct{}

func init() {
	Register(Binary{})
}

func (Binary) Name() string {
	return "bin"
}

func (Binary) Description() string {
	return "lossless binary sketch"
}

func (Binary) Extensions() []string {
	return []string{".skb"}
}

type binaryCell struct {
	Char  int32
	Fg    uint32
	Bg    uint32
	Flags uint8
}

func (Binary) Encode(w io.Writer, rows [][]core.Cell) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(binaryMagic); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(rows))); err != nil {
		return err
	}

	for y, row := range rows {
		if err := binary.Write(bw, binary.LittleEndian, uint32(len(row))); err != nil {
			return err
		}
		for x, cell := range row {
			if !utf8.ValidRune(cell.Char) {
				return fmt.Errorf("%w: cell %d,%d: %#x", ErrInvalidGlyph, x, y, cell.Char)
			}
			if err := binary.Write(bw, binary.LittleEndian, packCell(cell)); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

func (Binary) Decode(r io.Reader) ([][]core.Cell, error) {
	br := bufio.NewReader(r)

	magic := make([]byte, len(binaryMagic))
	if _, err := io.ReadFull(br, magic); err != nil {
		return nil, malformed("reading header", err)
	}
	if string(magic) != binaryMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrMalformedData, magic)
	}

	height, err := readCount(br)
	if err != nil {
		return nil, malformed("reading row count", err)
	}

	rows := make([][]core.Cell, height)
	for y := range rows {
		width, err := readCount(br)
		if err != nil {
			return nil, malformed(fmt.Sprintf("reading row %d length", y), err)
		}

		rows[y] = make([]core.Cell, width)
		for x := range rows[y] {
			var bc binaryCell
			if err := binary.Read(br, binary.LittleEndian, &bc); err != nil {
				return nil, malformed(fmt.Sprintf("reading cell %d,%d", x, y), err)
			}
			cell, err := unpackCell(bc)
			if err != nil {
				return nil, fmt.Errorf("%w: cell %d,%d: %v", ErrMalformedData, x, y, err)
			}
			rows[y][x] = cell
		}
	}

	if _, err := br.ReadByte(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrMalformedData)
	}

	return rows, nil
}

func readCount(r io.Reader) (int, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return 0, err
	}
	if n > maxDimension {
		return 0, fmt.Errorf("count %d exceeds %d", n, maxDimension)
	}
	return int(n), nil
}

func malformed(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s: truncated", ErrMalformedData, what)
	}
	return fmt.Errorf("%w: %s: %v", ErrMalformedData, what, err)
}

func packCell(c core.Cell) binaryCell {
	var flags uint8
	if c.Style.Modifiers.Bold {
		flags |= flagBold
	}
	if c.Style.Modifiers.Italic {
		flags |= flagItalic
	}
	if c.Style.Modifiers.Reverse {
		flags |= flagReverse
	}
	return binaryCell{
		Char:  c.Char,
		Fg:    uint32(c.Style.Fg),
		Bg:    uint32(c.Style.Bg),
		Flags: flags,
	}
}

func unpackCell(bc binaryCell) (core.Cell, error) {
	if !utf8.ValidRune(bc.Char) {
		return core.Cell{}, fmt.Errorf("invalid rune %#x", bc.Char)
	}
	fg, bg := core.Color(bc.Fg), core.Color(bc.Bg)
	if !fg.Valid() {
		return core.Cell{}, fmt.Errorf("invalid foreground %#x", bc.Fg)
	}
	if !bg.Valid() {
		return core.Cell{}, fmt.Errorf("invalid background %#x", bc.Bg)
	}
	if bc.Flags&^flagMask != 0 {
		return core.Cell{}, fmt.Errorf("invalid modifier flags %#x", bc.Flags)
	}

	return core.NewCell(bc.Char, core.NewStyle(fg, bg, core.Modifiers{
		Bold:    bc.Flags&flagBold != 0,
		Italic:  bc.Flags&flagItalic != 0,
		Reverse: bc.Flags&flagReverse != 0,
	})), nil
}
