package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (1000-1999)
	LexInfo                   Code = 1000
	LexUnknownChar            Code = 1001
	LexUnterminatedString     Code = 1002
	LexUnterminatedComment    Code = 1003
	LexBadNumber              Code = 1004
	LexTokenTooLong           Code = 1005
	LexUnterminatedName       Code = 1006
	LexBadEscape              Code = 1007

	// Syntax (2000-2999)
	SynInfo                  Code = 2000
	SynUnexpectedToken       Code = 2001
	SynUnclosedBrace         Code = 2002
	SynUnclosedParen         Code = 2003
	SynUnclosedBracket       Code = 2004
	SynExpectSemicolon       Code = 2005
	SynExpectIdentifier      Code = 2006
	SynExpectQualifiedName   Code = 2007
	SynExpectColon           Code = 2008
	SynExpectKeyword         Code = 2009
	SynEmptyImportSegment    Code = 2010
	SynDuplicateAlias        Code = 2011
	SynBadMultiplicity       Code = 2012
	SynBadRelationshipTarget Code = 2013
	SynUnexpectedEOF         Code = 2014
	SynBadMetadataBody       Code = 2015

	// Validation (3000-3999)
	ValInfo                      Code = 3000
	ValDuplicateNameAtRoot       Code = 3001
	ValDuplicateNameInBody       Code = 3002
	ValSelfSpecialization        Code = 3003
	ValSpecializationCycle       Code = 3004
	ValEmptyAbstractDefinition   Code = 3005
	ValUntypedPartUsage          Code = 3006
	ValMultiplicityBoundsInvalid Code = 3007
	ValQualifiedNameMalformed    Code = 3008
	ValComputedAttributeConflict Code = 3009
	ValUnresolvedReference       Code = 3010
	ValVisibilityViolation       Code = 3011

	// I/O (4000-4999)
	IOLoadFileError Code = 4000
	IOCacheError     Code = 4001

	// Project/workspace (5000-5999)
	ProjInfo               Code = 5000
	ProjDuplicateDocument  Code = 5001
	ProjMissingManifest    Code = 5002
	ProjInvalidManifest    Code = 5003
	ProjLibraryNotFound    Code = 5004

	// Observability (6000-6999)
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	LexInfo:                "Lexical information",
	LexUnknownChar:         "Unknown character",
	LexUnterminatedString:  "Unterminated string literal",
	LexUnterminatedComment: "Unterminated block comment",
	LexBadNumber:           "Malformed numeric literal",
	LexTokenTooLong:        "Token exceeds the maximum length",
	LexUnterminatedName:    "Unterminated unrestricted name",
	LexBadEscape:           "Invalid escape sequence",

	SynInfo:                  "Syntax information",
	SynUnexpectedToken:       "Unexpected token",
	SynUnclosedBrace:         "Unclosed '{'",
	SynUnclosedParen:         "Unclosed '('",
	SynUnclosedBracket:       "Unclosed '['",
	SynExpectSemicolon:       "Expected ';'",
	SynExpectIdentifier:      "Expected an identifier",
	SynExpectQualifiedName:   "Expected a qualified name",
	SynExpectColon:           "Expected ':'",
	SynExpectKeyword:         "Expected a specific keyword",
	SynEmptyImportSegment:    "Empty import path segment",
	SynDuplicateAlias:        "Duplicate alias in the same import",
	SynBadMultiplicity:       "Malformed multiplicity bounds",
	SynBadRelationshipTarget: "Malformed relationship target",
	SynUnexpectedEOF:         "Unexpected end of file",
	SynBadMetadataBody:       "Malformed metadata body",

	ValInfo:                      "Validation information",
	ValDuplicateNameAtRoot:       "Duplicate name at the root namespace",
	ValDuplicateNameInBody:       "Duplicate name in package body",
	ValSelfSpecialization:        "Definition specializes itself",
	ValSpecializationCycle:       "Specialization cycle detected",
	ValEmptyAbstractDefinition:   "Abstract definition has no members",
	ValUntypedPartUsage:          "Part usage has no explicit type",
	ValMultiplicityBoundsInvalid: "Multiplicity lower bound exceeds upper bound",
	ValQualifiedNameMalformed:    "Malformed qualified name",
	ValComputedAttributeConflict: "Computed attribute has no value expression",
	ValUnresolvedReference:       "Unresolved reference",
	ValVisibilityViolation:       "Reference to a non-visible member",

	IOLoadFileError: "I/O error loading file",
	IOCacheError:    "Error reading or writing the document cache",

	ProjInfo:              "Workspace information",
	ProjDuplicateDocument: "Duplicate document in workspace",
	ProjMissingManifest:   "Missing workspace manifest",
	ProjInvalidManifest:   "Invalid workspace manifest",
	ProjLibraryNotFound:   "Referenced library not found",

	ObsInfo:    "Observability information",
	ObsTimings: "Pipeline timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("VAL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// RuleID returns the SARIF-facing rule identifier for a diagnostic code's
// category, grouping the fine-grained codes into the four families callers
// filter and tool integrations key on.
func (c Code) RuleID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000, ic >= 2000 && ic < 3000:
		return "syntax-error"
	case ic >= 3000 && ic < 4000:
		switch c {
		case ValEmptyAbstractDefinition, ValUntypedPartUsage:
			return "validation-hint"
		default:
			return "semantic-error"
		}
	default:
		return "validation-warning"
	}
}
