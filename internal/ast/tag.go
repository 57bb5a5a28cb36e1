package ast

// Tag discriminates the shape of a Node's payload. Discrimination is a
// single byte, never a string compare — see Node.
type Tag uint8

const (
	TagInvalid Tag = iota

	// root & namespaces
	TagRootNamespace
	TagPackageBody
	TagOwningMembership
	TagImportMembership
	TagAliasMember

	// the definition/usage family: every element kind below shares this
	// pair of tags, discriminated further by DefUse.ElementKind.
	TagDefinition
	TagUsage

	// references
	TagQualifiedName
	TagImportRef
	TagMultiplicityBounds

	// behavioral
	TagTransition
	TagSuccession
	TagConnector
	TagBinding
	TagFlow
	TagEntryAction
	TagExitAction
	TagDoAction
	TagIfAction
	TagWhileAction
	TagForAction
	TagAssignAction
	TagSendAction
	TagAcceptAction
	TagPerformAction
	TagAssertAction

	// expressions
	TagExprLiteral
	TagExprName
	TagExprUnary
	TagExprBinary
	TagExprConditional
	TagExprNullCoalesce
	TagExprRange
	TagExprFeatureChain
	TagExprInvocation
	TagExprExtent
	TagExprParen
	TagExprClassification

	// metadata
	TagDocumentation
	TagComment
	TagTextualRepresentation
	TagPrefixedMetadata
	TagInlineMetadata
)

func (t Tag) String() string {
	switch t {
	case TagRootNamespace:
		return "RootNamespace"
	case TagPackageBody:
		return "PackageBody"
	case TagOwningMembership:
		return "OwningMembership"
	case TagImportMembership:
		return "ImportMembership"
	case TagAliasMember:
		return "AliasMember"
	case TagDefinition:
		return "Definition"
	case TagUsage:
		return "Usage"
	case TagQualifiedName:
		return "QualifiedName"
	case TagImportRef:
		return "ImportRef"
	case TagMultiplicityBounds:
		return "MultiplicityBounds"
	case TagTransition:
		return "Transition"
	case TagSuccession:
		return "Succession"
	case TagConnector:
		return "Connector"
	case TagBinding:
		return "Binding"
	case TagFlow:
		return "Flow"
	case TagEntryAction:
		return "EntryAction"
	case TagExitAction:
		return "ExitAction"
	case TagDoAction:
		return "DoAction"
	case TagIfAction:
		return "IfAction"
	case TagWhileAction:
		return "WhileAction"
	case TagForAction:
		return "ForAction"
	case TagAssignAction:
		return "AssignAction"
	case TagSendAction:
		return "SendAction"
	case TagAcceptAction:
		return "AcceptAction"
	case TagPerformAction:
		return "PerformAction"
	case TagAssertAction:
		return "AssertAction"
	case TagExprLiteral:
		return "ExprLiteral"
	case TagExprName:
		return "ExprName"
	case TagExprUnary:
		return "ExprUnary"
	case TagExprBinary:
		return "ExprBinary"
	case TagExprConditional:
		return "ExprConditional"
	case TagExprNullCoalesce:
		return "ExprNullCoalesce"
	case TagExprRange:
		return "ExprRange"
	case TagExprFeatureChain:
		return "ExprFeatureChain"
	case TagExprInvocation:
		return "ExprInvocation"
	case TagExprExtent:
		return "ExprExtent"
	case TagExprParen:
		return "ExprParen"
	case TagExprClassification:
		return "ExprClassification"
	case TagDocumentation:
		return "Documentation"
	case TagComment:
		return "Comment"
	case TagTextualRepresentation:
		return "TextualRepresentation"
	case TagPrefixedMetadata:
		return "PrefixedMetadata"
	case TagInlineMetadata:
		return "InlineMetadata"
	default:
		return "Invalid"
	}
}

// ElementKind names the 23 definition/usage kinds in §3's "essential node
// kinds" grouping. A Definition or Usage node always carries one of these.
type ElementKind uint8

const (
	EKInvalid ElementKind = iota
	EKPart
	EKItem
	EKAttribute
	EKAction
	EKState
	EKConstraint
	EKRequirement
	EKPort
	EKConnection
	EKInterface
	EKFlow
	EKAllocation
	EKCalc
	EKCase
	EKAnalysisCase
	EKVerificationCase
	EKUseCase
	EKView
	EKViewpoint
	EKRendering
	EKMetadata
	EKOccurrence
	EKConcern
)

func (k ElementKind) String() string {
	switch k {
	case EKPart:
		return "part"
	case EKItem:
		return "item"
	case EKAttribute:
		return "attribute"
	case EKAction:
		return "action"
	case EKState:
		return "state"
	case EKConstraint:
		return "constraint"
	case EKRequirement:
		return "requirement"
	case EKPort:
		return "port"
	case EKConnection:
		return "connection"
	case EKInterface:
		return "interface"
	case EKFlow:
		return "flow"
	case EKAllocation:
		return "allocation"
	case EKCalc:
		return "calc"
	case EKCase:
		return "case"
	case EKAnalysisCase:
		return "analysis case"
	case EKVerificationCase:
		return "verification case"
	case EKUseCase:
		return "use case"
	case EKView:
		return "view"
	case EKViewpoint:
		return "viewpoint"
	case EKRendering:
		return "rendering"
	case EKMetadata:
		return "metadata"
	case EKOccurrence:
		return "occurrence"
	case EKConcern:
		return "concern"
	default:
		return "invalid"
	}
}

// Direction is a usage's feature direction: in, out, inout, or unspecified.
type Direction uint8

const (
	DirNone Direction = iota
	DirIn
	DirOut
	DirInout
)

// ValueKind discriminates a usage's value-binding operator.
type ValueKind uint8

const (
	ValueNone ValueKind = iota
	ValueAssign          // =
	ValueDefault         // :=
	ValueComputed        // ::=
)

// RelKind discriminates a usage's single optional feature relationship.
type RelKind uint8

const (
	RelNone RelKind = iota
	RelSubsets    // :> or 'subsets'
	RelRedefines  // :>> or 'redefines'
	RelReferences // 'references'
)
