// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":     "0",
	"MEM_LAST":   fmt.Sprintf("%#v", uint16(MEMORY_SIZE-1)),
	"PROG_START": fmt.Sprintf("%#v", PROGRAM_START_ADDRESS),
}

// Assembler is a two pass assembler for the 1802 instruction set.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]string // Predefines
	Label     map[string]uint16 // Map of labels to addresses.
	Equate    map[string]string // Map of equates.
	Macro     map[string]*Macro // Map of macro definitions.
}

// Macro is an assembler macro definition, collected between a
// ".macro NAME arg..." directive and its matching ".endm".
type Macro struct {
	LineNo int      // Line number of the first body line.
	Args   []string // Argument names, replaced at each invocation.
	Lines  []string // Body lines, expanded at each invocation.
}

// sourceLine is a comment-stripped input line tagged with the line
// number it came from, after macro expansion.
type sourceLine struct {
	LineNo int
	Text   string
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// stripComment removes any trailing comment from a line.
func stripComment(line string) string {
	if n := strings.IndexAny(line, ";#"); n >= 0 {
		line = line[:n]
	}

	return strings.TrimSpace(line)
}

// isHex reports whether a word consists only of hexadecimal digits.
func isHex(word string) bool {
	if len(word) == 0 {
		return false
	}
	for _, c := range word {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}

	return true
}

// parseNumber parses a numeric word. A leading '$' or "0x" forces
// hexadecimal. A bare run of hex digits is read as hexadecimal first,
// falling back to decimal when the hex reading does not fit in 16 bits.
func (asm *Assembler) parseNumber(word string) (value uint16, err error) {
	text := word

	var v64 uint64
	var nerr error
	switch {
	case strings.HasPrefix(text, "$"):
		v64, nerr = strconv.ParseUint(text[1:], 16, 16)
	case strings.HasPrefix(text, "0x"), strings.HasPrefix(text, "0X"):
		v64, nerr = strconv.ParseUint(text[2:], 16, 16)
	case isHex(text):
		v64, nerr = strconv.ParseUint(text, 16, 16)
		if nerr != nil {
			v64, nerr = strconv.ParseUint(text, 10, 16)
		}
	default:
		v64, nerr = strconv.ParseUint(text, 10, 16)
	}
	if nerr != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint16(v64)
	return
}

// parseRegister parses a register name of the form R0 through RF.
func (asm *Assembler) parseRegister(word string) (n byte, err error) {
	text := word
	if len(text) > 1 && (text[0] == 'R' || text[0] == 'r') {
		text = text[1:]
	}

	value, nerr := asm.parseNumber(text)
	if nerr != nil || value > 15 {
		err = ErrBadRegister(word)
		return
	}

	n = byte(value)
	return
}

// target resolves a branch target: a label, or a numeric address.
func (asm *Assembler) target(word string) (addr uint16, err error) {
	addr, ok := asm.Label[strings.ToUpper(word)]
	if ok {
		return
	}

	return asm.parseNumber(word)
}

// instructionLength returns the encoded length of a mnemonic's instruction.
func (asm *Assembler) instructionLength(mnemonic string) (length int, err error) {
	op, ok := mnemonicOp[strings.ToUpper(mnemonic)]
	if !ok {
		err = ErrBadMnemonic(mnemonic)
		return
	}

	length = op.Length()
	return
}

// equate processes a ".equ NAME VALUE" directive.
func (asm *Assembler) equate(words []string) (err error) {
	if len(words) != 3 {
		return ErrEquateSyntax
	}

	_, ok := asm.Equate[words[1]]
	if ok {
		return ErrEquateDuplicate
	}

	asm.Equate[words[1]] = words[2]
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint16, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		value16, nerr := asm.parseNumber(str)
		if nerr == nil {
			pred[key] = starlark.MakeInt(int(value16))
			continue
		}
		// Machine constants wider than an address still participate.
		wide, werr := strconv.ParseUint(str, 0, 64)
		if werr != nil {
			// Ignore non-numeric equates.
			continue
		}
		pred[key] = starlark.MakeInt(int(wide))
	}
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeInt(int(addr))
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
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint16(st_int64)
	return
}

var exprRe = regexp.MustCompile(`\$\([^\$]*\)`)

// expandExpressions replaces $(...) expressions with their values.
func (asm *Assembler) expandExpressions(line string) (out string, err error) {
	out = exprRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})

	return
}

// splitLabel records any labels on the line, case-folded to uppercase,
// returning the instruction text that follows the last colon. The colon
// need not be followed by whitespace. A repeated label takes the later
// address.
func (asm *Assembler) splitLabel(line string, addr uint16) string {
	for {
		n := strings.Index(line, ":")
		if n < 0 {
			return strings.TrimSpace(line)
		}

		label := strings.ToUpper(strings.TrimSpace(line[:n]))
		if label != "" {
			asm.Label[label] = addr
		}
		line = line[n+1:]
	}
}

// dropLabel discards any labels on the line, returning the instruction
// text that follows.
func dropLabel(line string) string {
	if n := strings.LastIndex(line, ":"); n >= 0 {
		line = line[n+1:]
	}

	return strings.TrimSpace(line)
}

// expandMacros collects .macro definitions and expands their
// invocations, producing the line stream both assembler passes run on.
func (asm *Assembler) expandMacros(lines []string) (src []sourceLine, err error) {
	var macro *Macro
	var name string

	for n, text := range lines {
		lineno := n + 1
		line := stripComment(text)
		words := strings.Fields(line)

		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: ErrMacroNesting}
				return
			}
			if len(words) < 2 {
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: ErrMacroSyntax}
				return
			}
			name = strings.ToUpper(words[1])
			if _, ok := asm.Macro[name]; ok {
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: ErrMacroDuplicate}
				return
			}
			macro = &Macro{LineNo: lineno + 1, Args: words[2:]}
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: ErrMacroLonelyEndm}
				return
			}
			asm.Macro[name] = macro
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		var expanded []sourceLine
		expanded, err = asm.expandLine(lineno, line)
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}
		src = append(src, expanded...)
	}

	if macro != nil {
		err = &ErrSyntax{LineNo: len(lines), Line: ".macro " + name, Err: ErrMacroLonely}
		return
	}

	return
}

// expandLine expands one line, substituting a macro invocation with the
// macro's body. Argument names in the body are replaced with the
// invocation's operands, and labels written as @name get a prefix
// unique to the invocation line so each expansion gets its own labels.
func (asm *Assembler) expandLine(lineno int, line string) (src []sourceLine, err error) {
	body := line
	labels := ""
	if n := strings.LastIndex(line, ":"); n >= 0 {
		labels = strings.TrimSpace(line[:n+1])
		body = strings.TrimSpace(line[n+1:])
	}

	words := strings.Fields(body)
	var macro *Macro
	if len(words) > 0 {
		macro = asm.Macro[strings.ToUpper(words[0])]
	}
	if macro == nil {
		src = append(src, sourceLine{LineNo: lineno, Text: line})
		return
	}

	if labels != "" {
		src = append(src, sourceLine{LineNo: lineno, Text: labels})
	}

	args := words[1:]
	if len(args) != len(macro.Args) {
		err = ErrMacroSyntax
		return
	}

	prefix := fmt.Sprintf("%v_%v_", strings.ToUpper(words[0]), lineno)
	for n, text := range macro.Lines {
		expansion := strings.ReplaceAll(text, "@", prefix)
		for i, arg := range macro.Args {
			re := regexp.MustCompile(`\b` + regexp.QuoteMeta(arg) + `\b`)
			expansion = re.ReplaceAllString(expansion, args[i])
		}

		var expanded []sourceLine
		expanded, err = asm.expandLine(macro.LineNo+n, expansion)
		if err != nil {
			return
		}
		src = append(src, expanded...)
	}

	return
}

// substitute replaces any word that names an equate with its value.
func (asm *Assembler) substitute(words []string) {
	for n, word := range words {
		equ, ok := asm.Equate[word]
		if ok {
			words[n] = equ
		}
	}
}

// encode assembles a single instruction's words into machine code.
// Operand words past those the instruction needs are ignored.
func (asm *Assembler) encode(words []string) (code []byte, err error) {
	op, ok := mnemonicOp[strings.ToUpper(words[0])]
	if !ok {
		err = ErrBadMnemonic(words[0])
		return
	}

	info := opTable[op]
	operands := words[1:]

	switch info.kind {
	case KIND_IMPLIED:
		code = []byte{info.base}
	case KIND_REGISTER:
		if len(operands) < 1 {
			err = ErrRegisterMissing
			return
		}
		var n byte
		n, err = asm.parseRegister(operands[0])
		if err != nil {
			return
		}
		code = []byte{info.base | n}
	case KIND_IMMEDIATE:
		if len(operands) < 1 {
			err = ErrValueMissing
			return
		}
		var value uint16
		value, err = asm.parseNumber(operands[0])
		if err != nil {
			return
		}
		code = []byte{info.base, byte(value)}
	case KIND_BRANCH:
		if len(operands) < 1 {
			err = ErrTargetMissing
			return
		}
		var addr uint16
		addr, err = asm.target(operands[0])
		if err != nil {
			return
		}
		code = []byte{info.base, byte(addr)}
	case KIND_ADDRESS:
		if len(operands) < 1 {
			err = ErrTargetMissing
			return
		}
		var addr uint16
		addr, err = asm.target(operands[0])
		if err != nil {
			return
		}
		code = []byte{info.base, byte(addr >> 8), byte(addr)}
	}

	return
}

// Assemble assembles an input stream into a program image and listing.
func (asm *Assembler) Assemble(input io.Reader) (prog *Assembly, err error) {
	scanner := bufio.NewScanner(input)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	var line string
	var lineno int

	defer func() {
		if err != nil {
			prog = nil
			var serr *ErrSyntax
			if !errors.As(err, &serr) {
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			}
		}
	}()

	if asm.Label == nil {
		asm.Label = make(map[string]uint16, 16)
	}
	clear(asm.Label)
	if asm.Macro == nil {
		asm.Macro = make(map[string]*Macro, 4)
	}
	clear(asm.Macro)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	var src []sourceLine
	src, err = asm.expandMacros(lines)
	if err != nil {
		return
	}

	// First pass: collect labels and equates, and lay out addresses.
	addr := PROGRAM_START_ADDRESS
	for _, sl := range src {
		lineno = sl.LineNo
		line = sl.Text

		words := strings.Fields(asm.splitLabel(line, addr))
		if len(words) == 0 {
			continue
		}

		if words[0] == ".equ" {
			err = asm.equate(words)
			if err != nil {
				return
			}
			continue
		}

		asm.substitute(words)

		var length int
		length, err = asm.instructionLength(words[0])
		if err != nil {
			return
		}
		addr += uint16(length)
	}

	// Second pass: encode.
	prog = &Assembly{}
	addr = PROGRAM_START_ADDRESS
	for _, sl := range src {
		lineno = sl.LineNo
		line = sl.Text

		asm.Equate["LINENO"] = fmt.Sprintf("%#v", uint16(lineno))

		// The listing keeps the instruction as written.
		source := dropLabel(line)

		var expanded string
		expanded, err = asm.expandExpressions(source)
		if err != nil {
			return
		}

		words := strings.Fields(expanded)
		if len(words) == 0 {
			continue
		}

		if words[0] == ".equ" {
			continue
		}

		asm.substitute(words)

		if asm.Verbose {
			log.Printf("%v: %v", lineno, source)
		}

		var code []byte
		code, err = asm.encode(words)
		if err != nil {
			return
		}

		prog.Listing = append(prog.Listing, Listing{
			LineNo: lineno,
			Addr:   addr,
			Bytes:  code,
			Source: source,
		})
		prog.Code = append(prog.Code, code...)
		addr += uint16(len(code))
	}

	return
}
