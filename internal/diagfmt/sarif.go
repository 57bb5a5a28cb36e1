package diagfmt

import (
	"encoding/json"
	"io"

	"sysmlc/internal/diag"
	"sysmlc/internal/source"
)

// sarifSchemaURI и sarifVersion идентифицируют формат для потребителей вроде
// GitHub code scanning и sarif-multitool.
const (
	sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
	sarifVersion   = "2.1.0"
)

type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version,omitempty"`
	InformationURI string      `json:"informationUri,omitempty"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string                 `json:"id"`
	ShortDescription sarifMultiformatString `json:"shortDescription"`
}

type sarifMultiformatString struct {
	Text string `json:"text"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   uint32 `json:"startLine"`
	StartColumn uint32 `json:"startColumn"`
	EndLine     uint32 `json:"endLine"`
	EndColumn   uint32 `json:"endColumn"`
}

// sarifLevel maps a diagnostic severity onto SARIF's three-value level
// enumeration. SARIF has no hint level, so hints report as "note".
func sarifLevel(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "note"
	}
}

// sarifRuleOrder fixes the order rules appear in the driver's rules array so
// output is deterministic across runs regardless of which codes fired first.
var sarifRuleOrder = []string{
	"syntax-error",
	"semantic-error",
	"validation-warning",
	"validation-hint",
}

var sarifRuleDescriptions = map[string]string{
	"syntax-error":        "Lexical or syntactic error in a SysML v2 or KerML document.",
	"semantic-error":      "Semantic validation error, such as an unresolved name or a specialization cycle.",
	"validation-warning":  "Non-fatal issue surfaced during semantic validation.",
	"validation-hint":     "Low-priority suggestion about a construct that is legal but likely unintended.",
}

// Sarif форматирует диагностики в SARIF формат (v2.1.0), пригодный для
// GitHub code scanning и других SARIF-потребителей. Правила соответствуют
// diag.Code.RuleID(): syntax-error, semantic-error, validation-warning,
// validation-hint.
func Sarif(w io.Writer, bag *diag.Bag, fs *source.FileSet, meta SarifRunMeta) error {
	rules := make([]sarifRule, 0, len(sarifRuleOrder))
	for _, id := range sarifRuleOrder {
		rules = append(rules, sarifRule{
			ID:               id,
			ShortDescription: sarifMultiformatString{Text: sarifRuleDescriptions[id]},
		})
	}

	items := bag.Items()
	results := make([]sarifResult, 0, len(items))
	for _, d := range items {
		startPos, endPos := fs.Resolve(d.Primary)
		f := fs.Get(d.Primary.File)
		results = append(results, sarifResult{
			RuleID:  d.Code.RuleID(),
			Level:   sarifLevel(d.Severity),
			Message: sarifMessage{Text: d.Message},
			Locations: []sarifLocation{{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{URI: f.FormatPath("auto", "")},
					Region: sarifRegion{
						StartLine:   startPos.Line,
						StartColumn: startPos.Col,
						EndLine:     endPos.Line,
						EndColumn:   endPos.Col,
					},
				},
			}},
		})
	}

	log := sarifLog{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs: []sarifRun{{
			Tool: sarifTool{Driver: sarifDriver{
				Name:    meta.ToolName,
				Version: meta.ToolVersion,
				Rules:   rules,
			}},
			Results: results,
		}},
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(log)
}
