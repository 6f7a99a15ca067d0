package extract

import (
	"strings"

	"github.com/docfold/tablegen/internal/infer"
	"github.com/docfold/tablegen/internal/textnorm"
	"github.com/docfold/tablegen/pkg/doctable"
	"github.com/docfold/tablegen/pkg/schema"
)

// DefaultSkipTitles lists the reference page sections that describe prose or
// request/response envelopes rather than component schemas.
func DefaultSkipTitles() map[string]struct{} {
	return map[string]struct{}{
		"Contents":        {},
		"Overview":        {},
		"Request fields":  {},
		"Response fields": {},
	}
}

// Extractor walks table regions and registers one named component schema per
// usable region.
type Extractor struct {
	engine     *infer.Engine
	skipTitles map[string]struct{}
}

// NewExtractor constructs an Extractor. A nil skipTitles falls back to the
// default section filter.
func NewExtractor(engine *infer.Engine, skipTitles map[string]struct{}) *Extractor {
	if skipTitles == nil {
		skipTitles = DefaultSkipTitles()
	}
	return &Extractor{engine: engine, skipTitles: skipTitles}
}

// columnRoles records which cell index plays which role in a table. The
// required column is optional; -1 marks it absent.
type columnRoles struct {
	name     int
	typeIdx  int
	desc     int
	required int
}

// Extract builds the schema set for the given regions. Regions without an
// identifiable column layout, a usable title, or any usable rows are skipped;
// later regions with the same derived name overwrite earlier ones.
func (e *Extractor) Extract(regions []doctable.Region) *schema.Set {
	set := schema.NewSet()

	for _, region := range regions {
		title := textnorm.Collapse(region.Title)
		if _, ok := e.skipTitles[title]; ok {
			continue
		}
		name := textnorm.PascalCase(title)
		if name == "" {
			continue
		}

		roles, ok := detectColumns(region.Header)
		if !ok {
			continue
		}

		root := e.buildRegion(region, roles)
		if root == nil {
			continue
		}
		set.Register(name, root)
	}

	return set
}

func (e *Extractor) buildRegion(region doctable.Region, roles columnRoles) *schema.Node {
	b := newBuilder(e.engine)

	minCells := roles.name
	if roles.typeIdx > minCells {
		minCells = roles.typeIdx
	}
	if roles.desc > minCells {
		minCells = roles.desc
	}

	for _, cells := range region.Rows {
		if len(cells) <= minCells {
			continue
		}
		requiredFlag := ""
		if roles.required >= 0 && len(cells) > roles.required {
			requiredFlag = cells[roles.required]
		}
		b.consume(cells[roles.name], cells[roles.typeIdx], cells[roles.desc], requiredFlag)
	}

	return b.finish()
}

// detectColumns scans the header row for the name/field, type, description
// and optional required columns. Tables missing any of the first three are
// not schema tables.
func detectColumns(header []string) (columnRoles, bool) {
	roles := columnRoles{name: -1, typeIdx: -1, desc: -1, required: -1}

	for i, cell := range header {
		label := strings.ToLower(textnorm.Collapse(cell))
		if roles.name < 0 && (strings.Contains(label, "name") || strings.Contains(label, "field")) {
			roles.name = i
		}
		if roles.typeIdx < 0 && strings.Contains(label, "type") {
			roles.typeIdx = i
		}
		if roles.desc < 0 && strings.Contains(label, "description") {
			roles.desc = i
		}
		if roles.required < 0 && strings.Contains(label, "required") {
			roles.required = i
		}
	}

	if roles.name < 0 || roles.typeIdx < 0 || roles.desc < 0 {
		return columnRoles{}, false
	}
	return roles, true
}
