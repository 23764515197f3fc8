package quickenum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// TagDeclaration is the parsed form of an `enum` struct tag, for example
// `enum:"2, name=TWO, description='The second one'"`.
type TagDeclaration struct {
	Entries []TagEntry `parser:"( @@ ( ',' @@ )* )?"`
}

// TagEntry is a single entry of a tag. Key is nil for the positional value.
type TagEntry struct {
	Key   *string    `parser:"( @Ident '=' )?"`
	Value TagLiteral `parser:"@@"`
	Pos   lexer.Position
}

// TagLiteral is a literal inside a tag. The raw token text is kept so it can
// be converted to the value type of the enum later.
//
// A bare word must start with a letter or underscore. String values starting
// with a digit are lexed as numbers and have to be quoted: `enum:"'3rd'"`.
type TagLiteral struct {
	Float  *string `parser:"  @Float"`
	Int    *string `parser:"| @Int"`
	String *string `parser:"| @String"`
	Ident  *string `parser:"| @Ident"`
}

var (
	tagLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Float", Pattern: `[-+]?(\d+\.\d*([eE][-+]?\d+)?|\d+[eE][-+]?\d+)`},
		{Name: "Int", Pattern: `[-+]?(0[xX][0-9a-fA-F_]+|0[oO][0-7_]+|0[bB][01_]+|\d[\d_]*)`},
		{Name: "String", Pattern: `'(\\.|[^'\\])*'`},
		{Name: "Ident", Pattern: `[a-zA-Z_][\w\-]*`},
		{Name: "Punct", Pattern: `[,=]`},
		{Name: "Whitespace", Pattern: `[ \t]+`},
	})
	tagParser = participle.MustBuild[TagDeclaration](
		participle.Lexer(tagLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
)

// ParseTag parses the contents of an `enum` struct tag.
func ParseTag(input string) (TagDeclaration, error) {
	if strings.TrimSpace(input) == "" {
		return TagDeclaration{}, nil
	}
	t, err := tagParser.ParseString("", input)
	if err != nil {
		return TagDeclaration{}, err
	}
	return *t, nil
}

// tagErrorPosition returns the position a tag parse error points at, or the
// zero position.
func tagErrorPosition(err error) lexer.Position {
	var perr participle.Error
	if errors.As(err, &perr) {
		return perr.Position()
	}
	return lexer.Position{}
}

// Text returns the literal as written, with quoted strings unquoted.
func (l TagLiteral) Text() string {
	switch {
	case l.Float != nil:
		return *l.Float
	case l.Int != nil:
		return *l.Int
	case l.String != nil:
		return unquoteTagString(*l.String)
	case l.Ident != nil:
		return *l.Ident
	}
	return ""
}

// unquoteTagString strips the single quotes around s and resolves escapes.
// Only \' and \\ have a meaning; any other escaped character is kept as is.
func unquoteTagString(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		s = s[1 : len(s)-1]
	}
	if !strings.Contains(s, `\`) {
		return s
	}
	sb := strings.Builder{}
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// tagOptions is the interpreted form of a TagDeclaration.
type tagOptions struct {
	value       *TagLiteral
	valuePos    lexer.Position
	name        string
	description string
	deprecated  *string
}

// interpretTag validates the entries of a parsed tag and collects them into
// tagOptions. The returned position points at the offending entry on error.
func interpretTag(decl TagDeclaration) (tagOptions, lexer.Position, error) {
	var opts tagOptions
	seen := map[string]bool{}

	for i, entry := range decl.Entries {
		pos := entry.Pos
		if entry.Key == nil {
			if i > 0 {
				return opts, pos, fmt.Errorf("unexpected positional entry %q, only the first entry may omit its key", entry.Value.Text())
			}
			entry.Key = new(string)
			*entry.Key = "value"
		}
		key := *entry.Key
		if seen[key] {
			return opts, pos, fmt.Errorf("repeated key %q", key)
		}
		seen[key] = true

		switch key {
		case "value":
			value := entry.Value
			opts.value = &value
			opts.valuePos = pos
		case "name":
			opts.name = entry.Value.Text()
		case "description":
			opts.description = entry.Value.Text()
		case "deprecated":
			reason := entry.Value.Text()
			opts.deprecated = &reason
		default:
			return opts, pos, fmt.Errorf("unknown key %q", key)
		}
	}
	return opts, lexer.Position{}, nil
}
