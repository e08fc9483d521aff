package completion

import (
	"strings"

	"github.com/oakwood-commons/cxcomplete/internal/chunk"
)

// Category is the coarse kind of entity a completion refers to.
type Category int

//revive:disable:exported
const (
	CategoryStruct Category = iota
	CategoryClass
	CategoryEnum
	CategoryType
	CategoryMember
	CategoryFunction
	CategoryVariable
	CategoryMacro
	CategoryParameter
	CategoryNamespace
	CategoryUnknown
)

//revive:enable:exported

var categoryNames = [...]string{
	CategoryStruct:    "struct",
	CategoryClass:     "class",
	CategoryEnum:      "enum",
	CategoryType:      "type",
	CategoryMember:    "member",
	CategoryFunction:  "function",
	CategoryVariable:  "variable",
	CategoryMacro:     "macro",
	CategoryParameter: "parameter",
	CategoryNamespace: "namespace",
	CategoryUnknown:   "unknown",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return categoryNames[CategoryUnknown]
	}
	return categoryNames[c]
}

// ParseCategory is the inverse of String; unknown names yield CategoryUnknown.
func ParseCategory(name string) Category {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range categoryNames {
		if n == name {
			return Category(c)
		}
	}
	return CategoryUnknown
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	*c = ParseCategory(string(text))
	return nil
}

// CategoryFor maps a declaration kind onto its completion category.
func CategoryFor(kind chunk.CursorKind) Category {
	switch kind {
	case chunk.StructDecl:
		return CategoryStruct
	case chunk.ClassDecl, chunk.ClassTemplate:
		return CategoryClass
	case chunk.EnumDecl:
		return CategoryEnum
	case chunk.UnexposedDecl, chunk.UnionDecl, chunk.TypedefDecl:
		return CategoryType
	case chunk.FieldDecl:
		return CategoryMember
	case chunk.FunctionDecl, chunk.CXXMethod, chunk.FunctionTemplate,
		chunk.ConversionFunction, chunk.Constructor, chunk.Destructor:
		return CategoryFunction
	case chunk.VarDecl:
		return CategoryVariable
	case chunk.MacroDefinition:
		return CategoryMacro
	case chunk.ParmDecl:
		return CategoryParameter
	case chunk.Namespace, chunk.NamespaceAlias:
		return CategoryNamespace
	default:
		return CategoryUnknown
	}
}
