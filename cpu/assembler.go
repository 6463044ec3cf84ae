// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass assembler for the LS-8 system.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Lines   []Line // List of generated lines.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// argKind is the kind of an instruction operand.
type argKind int

const (
	argRegister  = argKind(0) // Register index.
	argImmediate = argKind(1) // Immediate value or label.
)

// mnemonic is the encoding of an assembler instruction.
type mnemonic struct {
	Op   Opcode
	Args []argKind
}

var regReg = []argKind{argRegister, argRegister}

// mnemonicMap maps instruction names to their encoding.
var mnemonicMap = map[string]mnemonic{
	"HLT":  {OP_HLT, nil},
	"LDI":  {OP_LDI, []argKind{argRegister, argImmediate}},
	"PRN":  {OP_PRN, []argKind{argRegister}},
	"PUSH": {OP_PUSH, []argKind{argRegister}},
	"POP":  {OP_POP, []argKind{argRegister}},
	"ADD":  {OP_ADD, regReg},
	"SUB":  {OP_SUB, regReg},
	"MUL":  {OP_MUL, regReg},
	"DIV":  {OP_DIV, regReg},
}

var (
	reRegister = regexp.MustCompile(`^[rR][0-7]$`)
	reLabel    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reChar     = regexp.MustCompile(`'\\?[^']'`)
	reParen    = regexp.MustCompile(`\$\([^\$]*\)`)
)

// valueOf returns the byte value of a simple word.
// Negative values are stored in two's complement.
func (asm *Assembler) valueOf(word string) (value uint8, err error) {
	v64, err := strconv.ParseInt(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 > 0xff || v64 < -0x80 {
		err = ErrValueRange
		return
	}

	value = uint8(v64)
	return
}

// registerOf returns the register index of a register name.
func (asm *Assembler) registerOf(word string) (index uint8, err error) {
	if !reRegister.MatchString(word) {
		err = ErrRegisterInvalid
		return
	}

	index = word[1] - '0'
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint8, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var v8 uint8
		v8, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(int(v8))
	}
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeInt(addr)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 > 0xff || st_int64 < -0x80 {
		err = ErrValueRange
		return
	}
	value = uint8(st_int64)
	return
}

// parseLine parses a single line into words, handling equates and labels.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	line = reChar.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if strings.EqualFold(words[0], ".equ") {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		asm.Label[label] = asm.currentAddr()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	return
}

// currentAddr gets the address of the next generated byte.
func (asm *Assembler) currentAddr() int {
	if len(asm.Lines) == 0 {
		return 0
	}

	last := asm.Lines[len(asm.Lines)-1]

	return last.Addr + len(last.Bytes)
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Lines = asm.Lines[:0]
	asm.Label = make(map[string]int, 16)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Debugf("%v: %v", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}

		if asm.currentAddr() > MEMORY_SIZE {
			err = ErrProgramSize
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of labels.
	for n := range asm.Lines {
		op := &asm.Lines[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		lineno = op.LineNo
		line = strings.Join(op.Words, " ")

		addr, ok := asm.Label[op.LinkLabel]
		if !ok {
			err = ErrLabelMissing(op.LinkLabel)
			return
		}
		if addr > 0xff {
			err = ErrValueRange
			return
		}
		op.Bytes[len(op.Bytes)-1] = uint8(addr)
	}

	prog = &Program{
		Lines: slices.Clone(asm.Lines),
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var code []uint8
	var label string

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	defer func() {
		if len(code) == 0 {
			return
		}
		line := Line{LineNo: lineno, Addr: asm.currentAddr(), Words: initial_words, Bytes: code, LinkLabel: label}
		asm.Lines = append(asm.Lines, line)
	}()

	name := strings.ToUpper(words[0])
	args := words[1:]

	// .db VALUE...
	if name == ".DB" {
		if len(args) == 0 {
			err = ErrOpcodeValueMissing
			return
		}
		for _, arg := range args {
			var value uint8
			value, err = asm.valueOf(arg)
			if err != nil {
				return
			}
			code = append(code, value)
		}
		return
	}

	mn, ok := mnemonicMap[name]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	if len(args) < len(mn.Args) {
		err = ErrOpcodeValueMissing
		return
	}
	if len(args) > len(mn.Args) {
		err = ErrOpcodeExtraArgs
		return
	}

	operands := make([]uint8, len(args))
	for n, kind := range mn.Args {
		switch kind {
		case argRegister:
			operands[n], err = asm.registerOf(args[n])
		case argImmediate:
			operands[n], err = asm.valueOf(args[n])
			if err != nil && reLabel.MatchString(args[n]) {
				// Resolved once all labels are known.
				label = args[n]
				err = nil
			}
		}
		if err != nil {
			return
		}
	}

	code = Encode(mn.Op, operands...)

	return
}
