package asm

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type file struct {
	Instructions []*instruction `@@*`
}

type instruction struct {
	Pos lexer.Position

	Write   *writeArg `  "write" @@`
	Copy    *word     `| "copy" @@`
	Trim    *word     `| "trim" @@`
	Add     *pair     `| "add" @@`
	Sub     *pair     `| "sub" @@`
	Mod     *pair     `| "mod" @@`
	JumpIf  *jumpIf   `| "jumpif" @@`
	JumpCmp *jumpCmp  `| "jumpcmp" @@`
	JumpStr *jumpStr  `| "jumpstr" @@`
	Jump    *int      `| "jump" @Number`
	Move    *move     `| "move" @@`
	Call    *call     `| "call" @@`
	Circle  *word     `| "circle" @@`
	Break   bool      `| @"break"`
	Stop    bool      `| @"stop"`
}

type writeArg struct {
	Text   *string  `  @String`
	Int    *int64   `| "int" @Number`
	Number *float64 `| @Number`
}

type word struct {
	X   int64 `"(" @Number ","`
	Y   int64 `@Number ","`
	Len int   `@Number ")"`
}

type pair struct {
	A *word `@@`
	B *word `@@`
}

type jumpIf struct {
	Word     *word   `@@`
	Ordering string  `@("lt" | "eq" | "gt")`
	Value    float64 `@Number`
	Offset   int     `@Number`
}

type jumpCmp struct {
	A        *word  `@@`
	B        *word  `@@`
	Ordering string `@("lt" | "eq" | "gt")`
	Offset   int    `@Number`
}

type jumpStr struct {
	Word   *word  `@@`
	Text   string `@String`
	Offset int    `@Number`
}

type move struct {
	DX int64 `@Number`
	DY int64 `@Number`
}

type call struct {
	Args []*word        `"[" @@* "]"`
	Body []*instruction `"{" @@* "}"`
}

var asmLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?([eE][-+]?[0-9]+)?`},
	{Name: "Ident", Pattern: `[a-z][a-z0-9_]*`},
	{Name: "Punct", Pattern: `[(),\[\]{}]`},
})

var parser = participle.MustBuild[file](
	participle.Lexer(asmLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)
