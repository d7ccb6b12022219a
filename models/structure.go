package models

// Org structure rows and trees.
//
// The information database stores the organizational hierarchy as flat rows;
// this file defines the row shapes consumed by the aggregation service and
// the typed tree produced by the head-extraction variants. The generic level
// tree is emitted as []map[string]any because its keys depend on the
// requested depth.

// StructureRow is a flat hierarchy row selected for the generic level tree.
// Only the prefix of fields up to the requested level's depth is populated;
// Location is always the last selected column.
type StructureRow struct {
	DirCode    string
	DirName    string
	DivCode    string
	DivName    string
	DeptCode   string
	DeptName   string
	Section    string
	Subsection string
	Location   string
}

// HeadRow is a flat hierarchy row with the person attached, selected for the
// head-extraction trees. Directorate fields are empty for division-scoped
// queries.
type HeadRow struct {
	DirCode  string
	DirName  string
	DivCode  string
	DivName  string
	DeptCode string
	DeptName string
	NPK      int64
	Name     string
	Email    string
	Role     string
}

// Person is the public shape of a head-of-unit entry.
type Person struct {
	NPK   int64  `json:"NPK"`
	Name  string `json:"NAME"`
	Email string `json:"EMAIL"`
	Role  string `json:"ROLE"`
}

// Department is a department node of a head-extraction tree.
type Department struct {
	Dpt     string   `json:"DPT"`
	DptName string   `json:"DPTNAME"`
	DptHead []Person `json:"DPTHEAD"`
}

// Division is a division node of a head-extraction tree.
type Division struct {
	Div         string       `json:"DIV"`
	DivName     string       `json:"DIVNAME"`
	DivHead     []Person     `json:"DIVHEAD"`
	Departments []Department `json:"DEPARTMENTS"`
}

// Directorate is the root node of a directorate-scoped head-extraction tree.
type Directorate struct {
	Dir       string     `json:"DIR"`
	DirName   string     `json:"DIRNAME"`
	DirHead   []Person   `json:"DIRHEAD"`
	Divisions []Division `json:"DIVISIONS"`
}

// StructureFilter narrows the generic level tree query. Empty fields are
// not applied.
type StructureFilter struct {
	DirName  string
	DivName  string
	DeptName string
}

// StructureLevel describes one level of the fixed dir→div→dpt→sct→subsect
// hierarchy: the query parameter that selects it, how deep it nests, the SQL
// columns it consumes, and the field names it contributes to the serialized
// tree. ChildKey is empty for the deepest level.
type StructureLevel struct {
	Param    string
	Depth    int
	Columns  []string
	CodeKey  string
	NameKey  string
	ChildKey string
}

// StructureLevels is the ordered level table shared by the repository (column
// selection) and the aggregation service (tree construction). Order is
// significant: index i holds the level nested at depth i+1.
//
// Node field names use the short unit codes (DIR, DIV, DPT, SEC, SUBSEC) at
// every level, matching the head-extraction tree models; they are not derived
// from the child container keys (DIVISIONS, DEPARTMENTS, SECTION, SUBSECTION).
var StructureLevels = []StructureLevel{
	{
		Param:    "dir",
		Depth:    1,
		Columns:  []string{"dir", "dir_name", "id_lokasi"},
		CodeKey:  "DIR",
		NameKey:  "DIRNAME",
		ChildKey: "DIVISIONS",
	},
	{
		Param:    "div",
		Depth:    2,
		Columns:  []string{"dir", "dir_name", "div", "div_name", "id_lokasi"},
		CodeKey:  "DIV",
		NameKey:  "DIVNAME",
		ChildKey: "DEPARTMENTS",
	},
	{
		Param:    "dpt",
		Depth:    3,
		Columns:  []string{"dir", "dir_name", "div", "div_name", "dept", "dept_name", "id_lokasi"},
		CodeKey:  "DPT",
		NameKey:  "DPTNAME",
		ChildKey: "SECTION",
	},
	{
		Param:    "sct",
		Depth:    4,
		Columns:  []string{"dir", "dir_name", "div", "div_name", "dept", "dept_name", "sec", "id_lokasi"},
		CodeKey:  "SEC",
		NameKey:  "SECNAME",
		ChildKey: "SUBSECTION",
	},
	{
		Param:    "subsect",
		Depth:    5,
		Columns:  []string{"dir", "dir_name", "div", "div_name", "dept", "dept_name", "sec", "subsec", "id_lokasi"},
		CodeKey:  "SUBSEC",
		NameKey:  "SUBSECNAME",
		ChildKey: "",
	},
}

// StructureLevelByParam resolves a level query parameter against the level
// table. The second return value reports whether the parameter is known.
func StructureLevelByParam(param string) (StructureLevel, bool) {
	for _, lvl := range StructureLevels {
		if lvl.Param == param {
			return lvl, true
		}
	}
	return StructureLevel{}, false
}

// Code returns the unit code of the level at depth (1-based) for this row.
func (r StructureRow) Code(depth int) string {
	switch depth {
	case 1:
		return r.DirCode
	case 2:
		return r.DivCode
	case 3:
		return r.DeptCode
	case 4:
		return r.Section
	case 5:
		return r.Subsection
	}
	return ""
}

// Name returns the unit name of the level at depth (1-based) for this row.
// Section and subsection levels have no separate name column; their code
// doubles as the name, mirroring the source schema.
func (r StructureRow) Name(depth int) string {
	switch depth {
	case 1:
		return r.DirName
	case 2:
		return r.DivName
	case 3:
		return r.DeptName
	case 4:
		return r.Section
	case 5:
		return r.Subsection
	}
	return ""
}
