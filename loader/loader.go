// Package loader reads LS-8 program images into byte sequences ready to be
// placed in memory at address 0, and writes assembled programs back out.
//
// Three formats are understood, selected by file extension:
//   - .ls8: text, one 8-digit binary number per line, '#' comments.
//   - .bin: raw bytes.
//   - .asm, .s: assembly source, see cpu.Assembler.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/ls8/cpu"
)

const (
	EXT_LS8 = ".ls8" // Binary text image.
	EXT_BIN = ".bin" // Raw image.
	EXT_ASM = ".asm" // Assembly source.
	EXT_S   = ".s"   // Assembly source.

	COMMENT = "#" // Comment introducer in .ls8 text.
)

// parseBinary converts a word of eight binary digits to a byte.
func parseBinary(word string) (value uint8, err error) {
	for _, c := range word {
		if c != '0' && c != '1' {
			err = ErrBinaryDigits
			return
		}
	}

	if len(word) != 8 {
		err = ErrBinaryWidth
		return
	}

	v64, err := strconv.ParseUint(word, 2, 8)
	if err != nil {
		return
	}

	value = uint8(v64)
	return
}

// Load parses a .ls8 text image.
//
// Text after '#' is a comment. Blank lines are skipped, and every other
// line must hold exactly one 8-digit binary number.
func Load(input io.Reader) (image []uint8, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			image = nil
			err = &ErrLoad{LineNo: lineno, Line: line, Err: err}
		}
	}()

	for scanner.Scan() {
		lineno++
		line = strings.TrimSpace(scanner.Text())

		text, _, _ := strings.Cut(line, COMMENT)
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) > 1 {
			err = ErrExtraFields
			return
		}

		var value uint8
		value, err = parseBinary(fields[0])
		if err != nil {
			return
		}

		if len(image) == cpu.MEMORY_SIZE {
			err = ErrImageSize
			return
		}
		image = append(image, value)
	}

	err = scanner.Err()
	if err != nil {
		lineno = 0
		line = ""
	}

	return
}

// LoadBinary reads a raw image.
func LoadBinary(input io.Reader) (image []uint8, err error) {
	image, err = io.ReadAll(io.LimitReader(input, cpu.MEMORY_SIZE+1))
	if err != nil {
		err = &ErrLoad{Err: err}
		return
	}

	if len(image) > cpu.MEMORY_SIZE {
		image = nil
		err = &ErrLoad{Err: ErrImageSize}
		return
	}

	return
}

// LoadFile loads a program image, choosing the format from the file
// extension. Assembly sources also return their listing; asm may be nil,
// in which case a default Assembler is used.
func LoadFile(name string, asm *cpu.Assembler) (image []uint8, prog *cpu.Program, err error) {
	defer func() {
		if err == nil {
			return
		}
		var el *ErrLoad
		if errors.As(err, &el) {
			el.Name = name
		} else {
			err = &ErrLoad{Name: name, Err: err}
		}
	}()

	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case EXT_LS8, EXT_BIN, EXT_ASM, EXT_S:
	default:
		err = ErrFormat
		return
	}

	inf, err := os.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	log.Debugf("loader: %v (%v)", name, ext)

	switch ext {
	case EXT_LS8:
		image, err = Load(inf)
	case EXT_BIN:
		image, err = LoadBinary(inf)
	case EXT_ASM, EXT_S:
		if asm == nil {
			asm = &cpu.Assembler{}
		}
		prog, err = asm.Parse(inf)
		if err != nil {
			return
		}
		image = prog.Binary()
	}

	return
}

// Write renders an assembled program as .ls8 text, annotating the first
// byte of each line with its source.
func Write(output io.Writer, prog *cpu.Program) (err error) {
	w := bufio.NewWriter(output)

	for _, line := range prog.Lines {
		for n, value := range line.Bytes {
			if n == 0 {
				_, err = fmt.Fprintf(w, "%08b %v %v\n", value, COMMENT, strings.Join(line.Words, " "))
			} else {
				_, err = fmt.Fprintf(w, "%08b\n", value)
			}
			if err != nil {
				return
			}
		}
	}

	err = w.Flush()
	return
}
