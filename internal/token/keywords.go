package token

// keywords maps every reserved lowercase lexeme to its Kind. Every entry
// here is also accepted as a plain identifier by the parser wherever an
// identifier is expected — see the keyword/identifier arbitration contract.
var keywords = map[string]Kind{
	"public":             KwPublic,
	"private":            KwPrivate,
	"protected":          KwProtected,
	"package":            KwPackage,
	"library":            KwLibrary,
	"standard":           KwStandard,
	"import":             KwImport,
	"alias":              KwAlias,
	"for":                KwFor,
	"namespace":          KwNamespace,
	"part":               KwPart,
	"item":               KwItem,
	"attribute":          KwAttribute,
	"action":             KwAction,
	"state":              KwState,
	"constraint":         KwConstraint,
	"requirement":        KwRequirement,
	"port":               KwPort,
	"connection":         KwConnection,
	"interface":          KwInterface,
	"flow":               KwFlow,
	"allocation":         KwAllocation,
	"calc":               KwCalc,
	"case":               KwCase,
	"analysis":           KwAnalysis,
	"verification":       KwVerification,
	"use":                KwUse,
	"view":               KwView,
	"viewpoint":          KwViewpoint,
	"rendering":          KwRendering,
	"metadata":           KwMetadata,
	"occurrence":         KwOccurrence,
	"concern":            KwConcern,
	"enum":               KwEnum,
	"def":                KwDef,
	"abstract":           KwAbstract,
	"readonly":           KwReadonly,
	"derived":            KwDerived,
	"ref":                KwRef,
	"end":                KwEnd,
	"composite":          KwComposite,
	"portion":            KwPortion,
	"parallel":           KwParallel,
	"variant":            KwVariant,
	"in":                 KwIn,
	"out":                KwOut,
	"inout":              KwInout,
	"subtype":            KwSubtype,
	"subclassifier":      KwSubclassifier,
	"specialization":     KwSpecialization,
	"specializes":        KwSpecializes,
	"subclassification":  KwSubclassification,
	"subset":             KwSubset,
	"subsets":            KwSubsets,
	"redefinition":       KwRedefinition,
	"redefines":          KwRedefines,
	"references":         KwReferences,
	"dependency":         KwDependency,
	"conjugate":          KwConjugate,
	"disjoint":           KwDisjoint,
	"from":               KwFrom,
	"to":                 KwTo,
	"typed":              KwTyped,
	"by":                 KwBy,
	"feature":            KwFeature,
	"entry":              KwEntry,
	"exit":               KwExit,
	"do":                 KwDo,
	"transition":         KwTransition,
	"succession":         KwSuccession,
	"first":              KwFirst,
	"then":               KwThen,
	"accept":             KwAccept,
	"send":               KwSend,
	"via":                KwVia,
	"perform":            KwPerform,
	"assert":             KwAssert,
	"if":                 KwIf,
	"else":               KwElse,
	"while":              KwWhile,
	"until":              KwUntil,
	"of":                 KwOf,
	"assign":             KwAssign,
	"and":                KwAnd,
	"or":                 KwOr,
	"xor":                KwXor,
	"not":                KwNot,
	"implies":            KwImplies,
	"hastype":            KwHastype,
	"istype":             KwIstype,
	"as":                 KwAs,
	"meta":               KwMeta,
	"all":                KwAll,
	"true":               KwTrue,
	"false":              KwFalse,
	"null":               KwNull,
	"subject":            KwSubject,
	"actor":              KwActor,
	"require":            KwRequire,
	"return":             KwReturn,
	"comment":            KwComment,
	"doc":                KwDoc,
	"about":              KwAbout,
	"language":           KwLanguage,
	"rep":                KwRep,
}

// LookupKeyword returns the Kind for a reserved lowercase lexeme and whether
// it was found. Keywords are case-sensitive — only the exact lowercase
// spelling is recognized; anything else lexes as a plain Ident.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// String returns a human-readable name for a token kind, used in diagnostic
// messages ("expected one of ...").
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "<unknown>"
}

var kindNames = buildKindNames()

func buildKindNames() map[Kind]string {
	names := map[Kind]string{
		Invalid:          "<invalid>",
		EOF:              "end of file",
		Ident:            "identifier",
		UnrestrictedName: "unrestricted name",
		IntLit:           "integer literal",
		HexLit:           "hex literal",
		BinLit:           "binary literal",
		OctLit:           "octal literal",
		RealLit:          "real literal",
		StringLit:        "string literal",
		DocComment:       "doc comment",
		LBrace:           "'{'",
		RBrace:           "'}'",
		LBracket:         "'['",
		RBracket:         "']'",
		LParen:           "'('",
		RParen:           "')'",
		Comma:            "','",
		Semicolon:        "';'",
		Colon:            "':'",
		ColonColon:       "'::'",
		SubsetOp:         "':>'",
		RedefineOp:       "':>>'",
		Assign:           "'='",
		CoalesceAssign:   "':='",
		ComputedAssign:   "'::='",
		Hash:             "'#'",
		At:               "'@'",
		Dot:              "'.'",
		DotDot:           "'..'",
		Star:             "'*'",
		Slash:            "'/'",
		Percent:          "'%'",
		Plus:             "'+'",
		Minus:            "'-'",
		Bang:             "'!'",
		Tilde:            "'~'",
		StarStar:         "'**'",
		Lt:               "'<'",
		LtEq:             "'<='",
		Gt:               "'>'",
		GtEq:             "'>='",
		EqEq:             "'=='",
		BangEq:           "'!='",
		EqEqEq:           "'==='",
		BangEqEq:         "'!=='",
		Question:         "'?'",
		QuestionQuestion: "'??'",
	}
	for lexeme, k := range keywords {
		names[k] = "'" + lexeme + "'"
	}
	return names
}
