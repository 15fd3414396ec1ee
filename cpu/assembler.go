// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"maps"
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/codefight/core"
)

// LIST_WORDS is the number of list words per instruction.
const LIST_WORDS = 3

// SplitList splits the compact program form into its words. Trailing empty
// words are dropped, so "STOP,0,0," is a single instruction.
func SplitList(text string) (words []string, err error) {
	words = strings.Split(strings.TrimSpace(text), ",")
	for len(words) > 1 && len(words[len(words)-1]) == 0 {
		words = words[:len(words)-1]
	}

	if len(words)%LIST_WORDS != 0 {
		words = nil
		err = ErrProgramFormat
	}

	return
}

// ParseList parses the compact program form: a comma separated list of
// OPCODE,A,B triples, e.g. "MOV_R,0,1,JMP,-1,0".
func ParseList(name string, text string) (prog *Program, err error) {
	words, err := SplitList(text)
	if err != nil {
		return
	}

	code := make([]core.Cell, len(words)/LIST_WORDS)

	// Operands are checked before opcode names.
	for n := range code {
		var a, b int64
		a, err = strconv.ParseInt(words[n*3+1], 10, 32)
		if err != nil {
			err = ErrParseNumber(words[n*3+1])
			return
		}
		b, err = strconv.ParseInt(words[n*3+2], 10, 32)
		if err != nil {
			err = ErrParseNumber(words[n*3+2])
			return
		}
		code[n].A = int32(a)
		code[n].B = int32(b)
	}

	for n := range code {
		op, ok := core.ParseOpcode(words[n*3])
		if !ok {
			err = ErrOpcodeInvalid(words[n*3])
			return
		}
		code[n].Opcode = op
	}

	prog = NewProgram(name, code)

	return
}

// Source line grammar. Comments are stripped before lexing.
//
//	[label:]... [OPCODE [operand [,] operand]]
//	.equ NAME VALUE
type asmLine struct {
	Directive   *asmDirective   `  @@`
	Instruction *asmInstruction `| @@`
}

type asmDirective struct {
	Name string   `@Directive`
	Args []string `@(Number | Expr | Ident)*`
}

type asmInstruction struct {
	Labels   []string `@Label*`
	Opcode   string   `( @Ident`
	Operands []string `  ( @(Number | Expr | Ident) ( ","? @(Number | Expr | Ident) )* )? )?`
}

var asmLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "Expr", Pattern: `\$\([^\$]*\)`},
	{Name: "Directive", Pattern: `\.[a-zA-Z]+`},
	{Name: "Number", Pattern: `[-+]?(0[xX][0-9a-fA-F]+|[0-9]+)`},
	{Name: "Label", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*:`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `,`},
})

var asmParser = participle.MustBuild[asmLine](
	participle.Lexer(asmLexer),
	participle.Elide("Whitespace"),
)

// Assembler is a two pass assembler for codefight programs.
//
// Operands may be integers, equates, labels, or $(...) Starlark
// expressions. Labels always assemble to the offset from the instruction
// that uses them, since every operand is relative to the instruction
// pointer.
type Assembler struct {
	Verbose bool              // If set, verbosely logs the assembler actions.
	Label   map[string]int    // Map of labels to instruction indexes.
	Equate  map[string]string // Map of equates.

	predefine map[string]string
}

// pending is an instruction waiting for its operands to be resolved.
type pending struct {
	lineNo   int
	line     string
	opcode   core.Opcode
	operands []string
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// Parse parses an input stream into a named Program.
func (asm *Assembler) Parse(name string, input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Label = map[string]int{}
	asm.Equate = maps.Clone(asm.predefine)
	if asm.Equate == nil {
		asm.Equate = map[string]string{}
	}

	var todo []pending

	for scanner.Scan() {
		lineno += 1
		text, _, _ := strings.Cut(scanner.Text(), ";")
		line = strings.TrimSpace(text)

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		if len(line) == 0 {
			continue
		}

		var ast *asmLine
		ast, err = asmParser.ParseString("", line)
		if err != nil {
			return
		}

		if dir := ast.Directive; dir != nil {
			if dir.Name != ".equ" || len(dir.Args) != 2 {
				err = ErrEquateSyntax
				return
			}
			_, ok := asm.Equate[dir.Args[0]]
			if ok {
				err = ErrEquateDuplicate
				return
			}
			asm.Equate[dir.Args[0]] = dir.Args[1]
			continue
		}

		ins := ast.Instruction
		for _, label := range ins.Labels {
			label = strings.TrimSuffix(label, ":")
			_, ok := asm.Label[label]
			if ok {
				err = ErrLabelDuplicate
				return
			}
			asm.Label[label] = len(todo)
		}

		if len(ins.Opcode) == 0 {
			continue
		}

		op, ok := core.ParseOpcode(ins.Opcode)
		if !ok {
			err = ErrOpcodeInvalid(ins.Opcode)
			return
		}
		if len(ins.Operands) > 2 {
			err = ErrOpcodeExtraArgs
			return
		}

		todo = append(todo, pending{
			lineNo:   lineno,
			line:     line,
			opcode:   op,
			operands: ins.Operands,
		})
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if len(todo) == 0 {
		err = ErrProgramEmpty
		return
	}

	// Second pass: labels are all known now.
	code := make([]core.Cell, len(todo))
	for here, ins := range todo {
		lineno = ins.lineNo
		line = ins.line

		code[here].Opcode = ins.opcode
		args := [2]*int32{&code[here].A, &code[here].B}
		for n, word := range ins.operands {
			*args[n], err = asm.valueOf(word, here, 0)
			if err != nil {
				return
			}
		}
	}

	prog = NewProgram(name, code)

	return
}

// maxEquateDepth bounds equates defined in terms of other equates.
const maxEquateDepth = 16

// valueOf resolves an operand word for the instruction at index here.
func (asm *Assembler) valueOf(word string, here int, depth int) (value int32, err error) {
	if depth > maxEquateDepth {
		err = ErrEquateSyntax
		return
	}

	if strings.HasPrefix(word, "$(") {
		return asm.parenEval(word[2:len(word)-1], here)
	}

	equate, ok := asm.Equate[word]
	if ok {
		return asm.valueOf(equate, here, depth+1)
	}

	label, ok := asm.Label[word]
	if ok {
		value = int32(label - here)
		return
	}

	if len(word) > 0 && (word[0] == '_' || (word[0]|0x20 >= 'a' && word[0]|0x20 <= 'z')) {
		err = ErrLabelMissing(word)
		return
	}

	v64, err := strconv.ParseInt(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int32(v64)
	return
}

// parenEval does compile-time $(...) evaluations. Numeric equates and
// labels (as offsets from the instruction at index here) are predeclared.
func (asm *Assembler) parenEval(expr string, here int) (value int32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	for key, index := range asm.Label {
		pred[key] = starlark.MakeInt(index - here)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < math.MinInt32 || st_int64 > math.MaxInt32 {
		err = ErrParseExpression(expr)
		return
	}

	value = int32(st_int64)
	return
}
