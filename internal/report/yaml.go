package report

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/sutthirak/rollcall/pkg/errors"
)

// auditDocument is the machine-readable run audit: every merge decision
// and roster match, for diffing between runs and for downstream scripts
// that do not want to scrape the workbook.
type auditDocument struct {
	Employees int             `yaml:"employees"`
	Records   int             `yaml:"records"`
	Merges    []identityMerge `yaml:"merges,omitempty"`
	Roster    []rosterMatch   `yaml:"roster,omitempty"`
	Review    []reviewPair    `yaml:"review,omitempty"`
}

type identityMerge struct {
	ID      string   `yaml:"id,omitempty"`
	Name    string   `yaml:"name"`
	Names   []string `yaml:"original_names,omitempty"`
	Reasons []string `yaml:"reasons"`
}

type rosterMatch struct {
	MasterID     string  `yaml:"master_id,omitempty"`
	MasterName   string  `yaml:"master_name,omitempty"`
	OriginalID   string  `yaml:"original_id,omitempty"`
	OriginalName string  `yaml:"original_name"`
	Type         string  `yaml:"type"`
	Confidence   float64 `yaml:"confidence"`
}

type reviewPair struct {
	NameA      string  `yaml:"name_a"`
	NameB      string  `yaml:"name_b"`
	Similarity float64 `yaml:"similarity"`
}

// WriteYAML writes the run audit document to path.
func WriteYAML(path string, data *Data) error {
	doc := auditDocument{Employees: len(data.Identities)}
	for _, month := range data.Months {
		doc.Records += len(month)
	}

	for _, ident := range data.Identities {
		if ident.MergeReasons.Len() == 0 {
			continue
		}
		doc.Merges = append(doc.Merges, identityMerge{
			ID:      ident.IDString(),
			Name:    ident.Name,
			Names:   ident.OriginalNames.Values(),
			Reasons: ident.MergeReasons.Values(),
		})
	}

	for _, a := range data.Audit {
		doc.Roster = append(doc.Roster, rosterMatch{
			MasterID:     a.MasterID,
			MasterName:   a.MasterName,
			OriginalID:   a.OriginalID,
			OriginalName: a.OriginalName,
			Type:         string(a.Type),
			Confidence:   a.Confidence,
		})
	}

	for _, pair := range data.Review {
		doc.Review = append(doc.Review, reviewPair{
			NameA:      pair.A.Name,
			NameB:      pair.B.Name,
			Similarity: pair.Similarity,
		})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return errors.WrapParse("yaml", path, err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return errors.WrapIO("write audit", path, err)
	}
	return nil
}
