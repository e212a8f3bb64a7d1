package syntax

// Kind identifies the construct category of a syntax node.
// The set is closed: the parser collaborator produces only these kinds,
// and checks dispatch on them exhaustively.
type Kind int

const (
	KindInvalid Kind = iota

	// Compilation unit level
	KindCompilationUnit
	KindPackageDef
	KindImportDef

	// Type declarations
	KindClassDef
	KindInterfaceDef
	KindAnnotationDef
	KindEnumDef
	KindEnumConstantDef

	// Members
	KindCtorDef
	KindMethodDef
	KindFieldDef

	// Modifiers and annotations
	KindModifiers
	KindModifier
	KindAnnotation

	// Block structure
	KindObjBlock
	KindSlist
	KindLCurly
	KindRCurly
	KindCaseGroup

	// Control flow
	KindIf
	KindElse
	KindFor
	KindWhile
	KindDo
	KindTry
	KindCatch
	KindFinally
	KindSwitch
	KindSynchronized

	// Statements and leaf tokens
	KindVariableDef
	KindExprStmt
	KindReturn
	KindBreak
	KindContinue
	KindIdent
	KindType
	KindLiteral
	KindExpr
)

var kindNames = map[Kind]string{
	KindInvalid:         "Invalid",
	KindCompilationUnit: "CompilationUnit",
	KindPackageDef:      "PackageDef",
	KindImportDef:       "ImportDef",
	KindClassDef:        "ClassDef",
	KindInterfaceDef:    "InterfaceDef",
	KindAnnotationDef:   "AnnotationDef",
	KindEnumDef:         "EnumDef",
	KindEnumConstantDef: "EnumConstantDef",
	KindCtorDef:         "CtorDef",
	KindMethodDef:       "MethodDef",
	KindFieldDef:        "FieldDef",
	KindModifiers:       "Modifiers",
	KindModifier:        "Modifier",
	KindAnnotation:      "Annotation",
	KindObjBlock:        "ObjBlock",
	KindSlist:           "Slist",
	KindLCurly:          "LCurly",
	KindRCurly:          "RCurly",
	KindCaseGroup:       "CaseGroup",
	KindIf:              "If",
	KindElse:            "Else",
	KindFor:             "For",
	KindWhile:           "While",
	KindDo:              "Do",
	KindTry:             "Try",
	KindCatch:           "Catch",
	KindFinally:         "Finally",
	KindSwitch:          "Switch",
	KindSynchronized:    "Synchronized",
	KindVariableDef:     "VariableDef",
	KindExprStmt:        "ExprStmt",
	KindReturn:          "Return",
	KindBreak:           "Break",
	KindContinue:        "Continue",
	KindIdent:           "Ident",
	KindType:            "Type",
	KindLiteral:         "Literal",
	KindExpr:            "Expr",
}

// kindsByName is the reverse lookup used by the tree JSON codec.
var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// String returns the name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// KindFromName returns the kind with the given name.
// Returns KindInvalid and false for unknown names.
func KindFromName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}
