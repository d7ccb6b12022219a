package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dpramesti/hris-directory/internal/logger"
	"github.com/dpramesti/hris-directory/internal/store"
	"github.com/dpramesti/hris-directory/models"
)

// Role markers for head extraction. Matching is a case-insensitive substring
// test against the free-text "jabatan" field. The markers are mutually
// exclusive by role-naming convention, but nothing enforces that: a role
// matching several markers would be appended to several head lists.
const (
	roleMarkerDirector       = "director"
	roleMarkerDivisionHead   = "division head"
	roleMarkerDepartmentHead = "department head"
)

// structureService is the concrete implementation of StructureService.
// The repository delivers flat rows; everything tree-shaped happens here,
// in two phases: a keyed ownership tree built by a single pass over the
// rows, then a pure serialization pass producing the list-shaped output.
type structureService struct {
	employeeRepository store.EmployeeRepository
	logger             *logger.Logger
}

// NewStructureService constructs a StructureService over the given
// employee repository.
func NewStructureService(employeeRepository store.EmployeeRepository, logger *logger.Logger) StructureService {
	return &structureService{
		employeeRepository: employeeRepository,
		logger:             logger,
	}
}

// LevelTree builds the generic level tree for the given level parameter.
//
// The parameter is resolved against the level table before anything else:
// an unknown value fails with ErrUnknownLevel and no database query is
// issued.
func (s *structureService) LevelTree(ctx context.Context, levelParam string, filter models.StructureFilter) ([]map[string]any, error) {
	log := logger.FromContext(ctx)

	level, ok := models.StructureLevelByParam(levelParam)
	if !ok {
		log.Error().Str("level", levelParam).Msg("unknown structure level requested")
		return nil, ErrUnknownLevel
	}

	rows, err := s.employeeRepository.StructureRows(ctx, level, filter)
	if err != nil {
		log.Err(err).Str("level", levelParam).Msg("structure rows query failed")
		return nil, fmt.Errorf("structure rows query failed: %w", err)
	}

	return BuildLevelTree(rows, level), nil
}

// DirectorateTree builds the directorate-scoped head-extraction tree.
func (s *structureService) DirectorateTree(ctx context.Context, dirCode string) ([]models.Directorate, error) {
	log := logger.FromContext(ctx)

	rows, err := s.employeeRepository.HeadRowsByDirectorate(ctx, dirCode)
	if err != nil {
		log.Err(err).Str("dir", dirCode).Msg("head rows query failed")
		return nil, fmt.Errorf("head rows query failed: %w", err)
	}

	return BuildDirectorateHeadTree(rows), nil
}

// DivisionTree builds the division-scoped head-extraction tree.
func (s *structureService) DivisionTree(ctx context.Context, divCode string) ([]models.Division, error) {
	log := logger.FromContext(ctx)

	rows, err := s.employeeRepository.HeadRowsByDivision(ctx, divCode)
	if err != nil {
		log.Err(err).Str("div", divCode).Msg("head rows query failed")
		return nil, fmt.Errorf("head rows query failed: %w", err)
	}

	return BuildDivisionHeadTree(rows), nil
}

// ─────────────────────────────────────────────
// Phase 1: keyed ownership tree
// ─────────────────────────────────────────────

// treeNode is one unit in the ownership tree built from flat rows. Each node
// exclusively owns its children, keyed by unit code; order preserves first
// appearance so output follows row order.
type treeNode struct {
	meta     map[string]any
	children map[string]*treeNode
	order    []string
}

func newTreeNode() *treeNode {
	return &treeNode{
		meta:     make(map[string]any),
		children: make(map[string]*treeNode),
	}
}

// child returns the child node for code, creating it on first use.
func (n *treeNode) child(code string) *treeNode {
	if c, ok := n.children[code]; ok {
		return c
	}
	c := newTreeNode()
	n.children[code] = c
	n.order = append(n.order, code)
	return c
}

// buildLevelNodes walks every row once, creating nodes along the level chain
// keyed by unit code. Metadata (unit name, location) is merged into the
// deepest node touched by the row: later rows with the same code update the
// fields rather than duplicating the node.
func buildLevelNodes(rows []models.StructureRow, level models.StructureLevel) *treeNode {
	root := newTreeNode()

	for _, row := range rows {
		cur := root
		for depth := 1; depth <= level.Depth; depth++ {
			cur = cur.child(row.Code(depth))
		}
		cur.meta[level.NameKey] = row.Name(level.Depth)
		cur.meta["LOKASI"] = row.Location
	}

	return root
}

// ─────────────────────────────────────────────
// Phase 2: list serialization
// ─────────────────────────────────────────────

// serializeLevelNodes converts the keyed ownership tree into the ordered-list
// output form, one level at a time. Every node carries its level's code field
// and metadata; nodes above the deepest level, and the deepest level itself
// when it is not subsection, additionally carry their child container, empty
// if nothing nests beneath them yet.
func serializeLevelNodes(n *treeNode, levelIdx int) []map[string]any {
	out := make([]map[string]any, 0, len(n.order))

	for _, code := range n.order {
		child := n.children[code]

		item := map[string]any{models.StructureLevels[levelIdx].CodeKey: code}
		for k, v := range child.meta {
			item[k] = v
		}
		if childKey := models.StructureLevels[levelIdx].ChildKey; childKey != "" {
			item[childKey] = serializeLevelNodes(child, levelIdx+1)
		}

		out = append(out, item)
	}

	return out
}

// BuildLevelTree reshapes flat structure rows into the nested tree for the
// given level. An empty row set yields an empty top-level list.
func BuildLevelTree(rows []models.StructureRow, level models.StructureLevel) []map[string]any {
	return serializeLevelNodes(buildLevelNodes(rows, level), 0)
}

// ─────────────────────────────────────────────
// Head extraction
// ─────────────────────────────────────────────

// roleMatches reports whether the free-text role contains the marker,
// ignoring case. An empty role never matches; such rows still contribute to
// structural grouping.
func roleMatches(role, marker string) bool {
	return role != "" && strings.Contains(strings.ToLower(role), marker)
}

type deptAgg struct {
	name  string
	heads []models.Person
}

type divAgg struct {
	name      string
	heads     []models.Person
	depts     map[string]*deptAgg
	deptOrder []string
}

type dirAgg struct {
	name     string
	heads    []models.Person
	divs     map[string]*divAgg
	divOrder []string
}

// mergeName implements the unit-metadata merge policy shared by both tree
// builders: a later row's name wins when it is non-empty.
func mergeName(current, next string) string {
	if next != "" {
		return next
	}
	return current
}

// BuildDirectorateHeadTree reshapes directorate-scoped head rows into the
// nested tree with head lists at every unit level. Each person row is
// classified against the role markers and appended to every matching head
// list; grouping itself never depends on the role field.
func BuildDirectorateHeadTree(rows []models.HeadRow) []models.Directorate {
	dirs := make(map[string]*dirAgg)
	dirOrder := make([]string, 0)

	for _, row := range rows {
		dir, ok := dirs[row.DirCode]
		if !ok {
			dir = &dirAgg{heads: make([]models.Person, 0), divs: make(map[string]*divAgg)}
			dirs[row.DirCode] = dir
			dirOrder = append(dirOrder, row.DirCode)
		}
		dir.name = mergeName(dir.name, row.DirName)

		div, ok := dir.divs[row.DivCode]
		if !ok {
			div = &divAgg{heads: make([]models.Person, 0), depts: make(map[string]*deptAgg)}
			dir.divs[row.DivCode] = div
			dir.divOrder = append(dir.divOrder, row.DivCode)
		}
		div.name = mergeName(div.name, row.DivName)

		dept, ok := div.depts[row.DeptCode]
		if !ok {
			dept = &deptAgg{heads: make([]models.Person, 0)}
			div.depts[row.DeptCode] = dept
			div.deptOrder = append(div.deptOrder, row.DeptCode)
		}
		dept.name = mergeName(dept.name, row.DeptName)

		person := models.Person{NPK: row.NPK, Name: row.Name, Email: row.Email, Role: row.Role}

		if roleMatches(row.Role, roleMarkerDirector) {
			dir.heads = append(dir.heads, person)
		}
		if roleMatches(row.Role, roleMarkerDivisionHead) {
			div.heads = append(div.heads, person)
		}
		if roleMatches(row.Role, roleMarkerDepartmentHead) {
			dept.heads = append(dept.heads, person)
		}
	}

	out := make([]models.Directorate, 0, len(dirOrder))
	for _, dirCode := range dirOrder {
		dir := dirs[dirCode]

		divisions := make([]models.Division, 0, len(dir.divOrder))
		for _, divCode := range dir.divOrder {
			div := dir.divs[divCode]

			departments := make([]models.Department, 0, len(div.deptOrder))
			for _, deptCode := range div.deptOrder {
				dept := div.depts[deptCode]
				departments = append(departments, models.Department{
					Dpt:     deptCode,
					DptName: dept.name,
					DptHead: dept.heads,
				})
			}

			divisions = append(divisions, models.Division{
				Div:         divCode,
				DivName:     div.name,
				DivHead:     div.heads,
				Departments: departments,
			})
		}

		out = append(out, models.Directorate{
			Dir:       dirCode,
			DirName:   dir.name,
			DirHead:   dir.heads,
			Divisions: divisions,
		})
	}

	return out
}

// BuildDivisionHeadTree reshapes division-scoped head rows into the nested
// tree with head lists at the division and department levels. The director
// marker is not consulted: directorates are out of scope for this variant.
func BuildDivisionHeadTree(rows []models.HeadRow) []models.Division {
	divs := make(map[string]*divAgg)
	divOrder := make([]string, 0)

	for _, row := range rows {
		div, ok := divs[row.DivCode]
		if !ok {
			div = &divAgg{heads: make([]models.Person, 0), depts: make(map[string]*deptAgg)}
			divs[row.DivCode] = div
			divOrder = append(divOrder, row.DivCode)
		}
		div.name = mergeName(div.name, row.DivName)

		dept, ok := div.depts[row.DeptCode]
		if !ok {
			dept = &deptAgg{heads: make([]models.Person, 0)}
			div.depts[row.DeptCode] = dept
			div.deptOrder = append(div.deptOrder, row.DeptCode)
		}
		dept.name = mergeName(dept.name, row.DeptName)

		person := models.Person{NPK: row.NPK, Name: row.Name, Email: row.Email, Role: row.Role}

		if roleMatches(row.Role, roleMarkerDivisionHead) {
			div.heads = append(div.heads, person)
		}
		if roleMatches(row.Role, roleMarkerDepartmentHead) {
			dept.heads = append(dept.heads, person)
		}
	}

	out := make([]models.Division, 0, len(divOrder))
	for _, divCode := range divOrder {
		div := divs[divCode]

		departments := make([]models.Department, 0, len(div.deptOrder))
		for _, deptCode := range div.deptOrder {
			dept := div.depts[deptCode]
			departments = append(departments, models.Department{
				Dpt:     deptCode,
				DptName: dept.name,
				DptHead: dept.heads,
			})
		}

		out = append(out, models.Division{
			Div:         divCode,
			DivName:     div.name,
			DivHead:     div.heads,
			Departments: departments,
		})
	}

	return out
}
