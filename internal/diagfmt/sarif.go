package diagfmt

import (
	"encoding/json"
	"io"
	"slices"

	"rtlil/internal/diag"
	"rtlil/internal/source"
)

const (
	sarifVersion = "2.1.0"
	sarifSchema  = "https://json.schemastore.org/sarif-2.1.0.json"
)

// SarifRunMeta describes the tool in the SARIF run.
type SarifRunMeta struct {
	ToolName    string
	ToolVersion string
	PathMode    PathMode
}

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
	Name    string      `json:"name"`
	Version string      `json:"version,omitempty"`
	Rules   []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifResult struct {
	RuleID           string          `json:"ruleId"`
	Level            string          `json:"level"`
	Message          sarifMessage    `json:"message"`
	Locations        []sarifLocation `json:"locations,omitempty"`
	RelatedLocations []sarifLocation `json:"relatedLocations,omitempty"`
}

type sarifLocation struct {
	PhysicalLocation *sarifPhysical `json:"physicalLocation,omitempty"`
	Message          *sarifMessage  `json:"message,omitempty"`
}

type sarifPhysical struct {
	ArtifactLocation sarifArtifact `json:"artifactLocation"`
	Region           sarifRegion   `json:"region"`
}

type sarifArtifact struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   uint32 `json:"startLine"`
	StartColumn uint32 `json:"startColumn"`
	EndLine     uint32 `json:"endLine"`
	EndColumn   uint32 `json:"endColumn"`
}

// Sarif форматирует диагностики в SARIF (v2.1.0): один run, правила по
// кодам диагностик в порядке первого появления.
func Sarif(w io.Writer, bag *diag.Bag, fs *source.FileSet, meta SarifRunMeta) error {
	run := sarifRun{
		Tool: sarifTool{Driver: sarifDriver{
			Name:    meta.ToolName,
			Version: meta.ToolVersion,
			Rules:   []sarifRule{},
		}},
		Results: []sarifResult{},
	}
	var seen []diag.Code
	for _, d := range bag.Items() {
		if !slices.Contains(seen, d.Code) {
			seen = append(seen, d.Code)
			run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, sarifRule{
				ID:               d.Code.ID(),
				ShortDescription: sarifMessage{Text: d.Code.Title()},
			})
		}
		res := sarifResult{
			RuleID:  d.Code.ID(),
			Level:   sarifLevel(d.Severity),
			Message: sarifMessage{Text: d.Message},
		}
		if loc, ok := sarifLocate(d.Primary, fs, meta.PathMode); ok {
			res.Locations = []sarifLocation{{PhysicalLocation: loc}}
		}
		for _, n := range d.Notes {
			rel := sarifLocation{Message: &sarifMessage{Text: n.Msg}}
			if loc, ok := sarifLocate(n.Span, fs, meta.PathMode); ok {
				rel.PhysicalLocation = loc
			}
			res.RelatedLocations = append(res.RelatedLocations, rel)
		}
		run.Results = append(run.Results, res)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sarifLog{Schema: sarifSchema, Version: sarifVersion, Runs: []sarifRun{run}})
}

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

// sarifLocate needs a real file; SARIF columns are 1-based like LineCol.
func sarifLocate(span source.Span, fs *source.FileSet, mode PathMode) (*sarifPhysical, bool) {
	if fs == nil || int(span.File) >= fs.Len() {
		return nil, false
	}
	start, end := fs.Resolve(span)
	return &sarifPhysical{
		ArtifactLocation: sarifArtifact{URI: formatPath(fs.Get(span.File), fs, mode)},
		Region: sarifRegion{
			StartLine:   start.Line,
			StartColumn: start.Col,
			EndLine:     end.Line,
			EndColumn:   end.Col,
		},
	}, true
}
