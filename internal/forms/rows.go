package forms

import "nexus/admin/internal/util"

// Collection names for the editable row arenas.
const (
	ColServices = "services"
	ColFeatures = "features"
	ColTeam     = "team"
	ColBlog     = "blog"
	ColChannels = "channels"
	ColProjects = "projects"
)

// Row is one editable collection element. The key is generated when the row
// is created and never changes; slice position is display order only.
// Addressing rows by key instead of index is what keeps a remove from
// clobbering in-flight edits on sibling rows.
type Row struct {
	Key    string `json:"key"`
	Fields Fields `json:"fields"`
}

type RowList []Row

func newRow() Row {
	return Row{Key: "row_" + util.NewToken(), Fields: Fields{}}
}

func (l RowList) index(key string) int {
	for i, row := range l {
		if row.Key == key {
			return i
		}
	}
	return -1
}

// merge overlays posted rows onto the current list. Rows keep their existing
// fields where the posted row omits them, so hidden per-row state (project
// ids, star counts) survives a round trip through the UI. Posted order wins.
func (l RowList) merge(posted RowList) RowList {
	out := make(RowList, 0, len(posted))
	for _, p := range posted {
		row := Row{Key: p.Key, Fields: Fields{}}
		if i := l.index(p.Key); i >= 0 {
			for id, value := range l[i].Fields {
				row.Fields[id] = value
			}
		}
		if row.Key == "" {
			row.Key = "row_" + util.NewToken()
		}
		for id, value := range p.Fields {
			row.Fields[id] = value
		}
		out = append(out, row)
	}
	return out
}
