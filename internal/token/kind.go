package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents a plain ASCII identifier token.
	Ident
	// UnrestrictedName represents a quoted '...' name token.
	UnrestrictedName

	// IntLit represents a decimal integer literal.
	IntLit
	// HexLit represents a 0x... integer literal.
	HexLit
	// BinLit represents a 0b... integer literal.
	BinLit
	// OctLit represents a 0o... integer literal.
	OctLit
	// RealLit represents a real (floating point) literal.
	RealLit
	// StringLit represents a double-quoted string literal.
	StringLit

	// keywords — every one of these also carries KeywordUsableAsIdentifier.
	KwPublic
	KwPrivate
	KwProtected
	KwPackage
	KwLibrary
	KwStandard
	KwImport
	KwAlias
	KwFor
	KwNamespace
	KwPart
	KwItem
	KwAttribute
	KwAction
	KwState
	KwConstraint
	KwRequirement
	KwPort
	KwConnection
	KwInterface
	KwFlow
	KwAllocation
	KwCalc
	KwCase
	KwAnalysis
	KwVerification
	KwUse
	KwView
	KwViewpoint
	KwRendering
	KwMetadata
	KwOccurrence
	KwConcern
	KwEnum
	KwDef
	KwAbstract
	KwReadonly
	KwDerived
	KwRef
	KwEnd
	KwComposite
	KwPortion
	KwParallel
	KwVariant
	KwIn
	KwOut
	KwInout
	KwSubtype
	KwSubclassifier
	KwSpecialization
	KwSpecializes
	KwSubclassification
	KwSubset
	KwSubsets
	KwRedefinition
	KwRedefines
	KwReferences
	KwDependency
	KwConjugate
	KwDisjoint
	KwFrom
	KwTo
	KwTyped
	KwBy
	KwFeature
	KwEntry
	KwExit
	KwDo
	KwTransition
	KwSuccession
	KwFirst
	KwThen
	KwAccept
	KwSend
	KwVia
	KwPerform
	KwAssert
	KwIf
	KwElse
	KwWhile
	KwUntil
	KwOf
	KwAssign
	KwAnd
	KwOr
	KwXor
	KwNot
	KwImplies
	KwHastype
	KwIstype
	KwAs
	KwMeta
	KwAll
	KwTrue
	KwFalse
	KwNull
	KwSubject
	KwActor
	KwRequire
	KwReturn
	KwComment
	KwDoc
	KwAbout
	KwLanguage
	KwRep

	// DocComment is a lexer-level /** ... */ token consumed by doc/comment/rep productions.
	DocComment

	// punctuation and operators
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	LParen    // (
	RParen    // )
	Comma     // ,
	Semicolon // ;
	Colon     // :
	ColonColon     // ::
	SubsetOp       // :>
	RedefineOp     // :>>
	Assign         // =
	CoalesceAssign // :=
	ComputedAssign // ::=
	Hash // #
	At   // @
	Dot  // .
	DotDot
	Star
	Slash
	Percent
	Plus
	Minus
	Bang
	Tilde
	StarStar
	Lt
	LtEq
	Gt
	GtEq
	EqEq
	BangEq
	EqEqEq
	BangEqEq
	Question
	QuestionQuestion
)

// IsLiteral reports whether the token is a numeric, boolean, null, or string literal.
func (k Kind) IsLiteral() bool {
	switch k {
	case IntLit, HexLit, BinLit, OctLit, RealLit, StringLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsEOF reports whether the token marks the end of input.
func (k Kind) IsEOF() bool { return k == EOF }
