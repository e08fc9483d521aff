package chunk

import "strings"

// CursorKind is the declaration kind the analyzer attaches to a candidate.
// Only the category mapping reads it.
type CursorKind int

//revive:disable:exported
const (
	CursorUnknown CursorKind = iota
	StructDecl
	UnionDecl
	ClassDecl
	EnumDecl
	FieldDecl
	EnumConstantDecl
	FunctionDecl
	VarDecl
	ParmDecl
	TypedefDecl
	CXXMethod
	Namespace
	Constructor
	Destructor
	ConversionFunction
	FunctionTemplate
	ClassTemplate
	NamespaceAlias
	UnexposedDecl
	MacroDefinition
	NotImplemented
)

//revive:enable:exported

var cursorNames = [...]string{
	CursorUnknown:      "Unknown",
	StructDecl:         "StructDecl",
	UnionDecl:          "UnionDecl",
	ClassDecl:          "ClassDecl",
	EnumDecl:           "EnumDecl",
	FieldDecl:          "FieldDecl",
	EnumConstantDecl:   "EnumConstantDecl",
	FunctionDecl:       "FunctionDecl",
	VarDecl:            "VarDecl",
	ParmDecl:           "ParmDecl",
	TypedefDecl:        "TypedefDecl",
	CXXMethod:          "CXXMethod",
	Namespace:          "Namespace",
	Constructor:        "Constructor",
	Destructor:         "Destructor",
	ConversionFunction: "ConversionFunction",
	FunctionTemplate:   "FunctionTemplate",
	ClassTemplate:      "ClassTemplate",
	NamespaceAlias:     "NamespaceAlias",
	UnexposedDecl:      "UnexposedDecl",
	MacroDefinition:    "MacroDefinition",
	NotImplemented:     "NotImplemented",
}

var cursorsByName = func() map[string]CursorKind {
	m := make(map[string]CursorKind, len(cursorNames))
	for k, name := range cursorNames {
		m[strings.ToLower(name)] = CursorKind(k)
	}
	return m
}()

func (c CursorKind) String() string {
	if c < 0 || int(c) >= len(cursorNames) {
		return cursorNames[CursorUnknown]
	}
	return cursorNames[c]
}

// ParseCursorKind resolves a declaration kind name case-insensitively,
// returning CursorUnknown for anything it does not know.
func ParseCursorKind(name string) CursorKind {
	if c, ok := cursorsByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return CursorUnknown
}

// MarshalText implements encoding.TextMarshaler.
func (c CursorKind) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails.
func (c *CursorKind) UnmarshalText(text []byte) error {
	*c = ParseCursorKind(string(text))
	return nil
}
