package quickenum

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Schema renders the enum as a GraphQL SDL enum definition, using the
// declaration type's name without its package:
//
//	enum paletteDecl {
//		"Pure red"
//		RED
//		GREEN @deprecated(reason: "Use LIME")
//	}
//
// Only names are rendered; values stay on the Go side.
func (t Type[D, V]) Schema() (string, error) {
	md, err := resolve[D, V]()
	if err != nil {
		return "", err
	}
	return md.schema()
}

func (md *metadata[V]) schema() (string, error) {
	enumName := schemaTypeName(md.decl)
	if !isValidSchemaName(enumName) {
		return "", newDeclarationError(md.typeName, "", lexer.Position{},
			fmt.Sprintf("type name %q is not a valid schema name", enumName), nil)
	}

	sb := strings.Builder{}
	sb.WriteString("enum ")
	sb.WriteString(enumName)
	sb.WriteString(" {\n")

	for _, c := range md.constants {
		if !isValidSchemaName(c.Name) {
			return "", newDeclarationError(md.typeName, "", lexer.Position{},
				fmt.Sprintf("name %q is not a valid schema name", c.Name), nil)
		}
		if c.Description != "" {
			sb.WriteString("\t")
			sb.WriteString(strconv.Quote(c.Description))
			sb.WriteString("\n")
		}
		sb.WriteString("\t")
		sb.WriteString(c.Name)
		if c.Deprecated {
			sb.WriteString(" @deprecated")
			if c.DeprecationReason != "" {
				sb.WriteString("(reason: ")
				sb.WriteString(strconv.Quote(c.DeprecationReason))
				sb.WriteString(")")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")
	return sb.String(), nil
}
