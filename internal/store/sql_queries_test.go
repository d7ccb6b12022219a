package store

import (
	"testing"

	"github.com/dpramesti/hris-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func level(t *testing.T, param string) models.StructureLevel {
	t.Helper()
	lvl, ok := models.StructureLevelByParam(param)
	require.True(t, ok)
	return lvl
}

func TestBuildStructureQuery_NoFilter(t *testing.T) {
	query, args, err := buildStructureQuery(level(t, "dir"), models.StructureFilter{})

	require.NoError(t, err)
	assert.Equal(t, "SELECT DISTINCT dir, dir_name, id_lokasi FROM hris_trad", query)
	assert.Empty(t, args)
}

func TestBuildStructureQuery_AllFilters(t *testing.T) {
	filter := models.StructureFilter{
		DirName:  "D1",
		DivName:  "Div One",
		DeptName: "Dept One",
	}

	query, args, err := buildStructureQuery(level(t, "subsect"), filter)

	require.NoError(t, err)
	assert.Contains(t, query, "SELECT DISTINCT dir, dir_name, div, div_name, dept, dept_name, sec, subsec, id_lokasi FROM hris_trad")
	assert.Contains(t, query, "dir = $1")
	assert.Contains(t, query, "div_name = $2")
	assert.Contains(t, query, "dept_name = $3")
	assert.Equal(t, []any{"D1", "Div One", "Dept One"}, args)
}

func TestBuildStructureQuery_SingleFilter(t *testing.T) {
	query, args, err := buildStructureQuery(level(t, "div"), models.StructureFilter{DivName: "Div One"})

	require.NoError(t, err)
	assert.Contains(t, query, "div_name = $1")
	assert.NotContains(t, query, "dept_name")
	assert.Equal(t, []any{"Div One"}, args)
}

func TestBuildStructureQuery_ColumnsFollowLevelDepth(t *testing.T) {
	tests := []struct {
		param string
		want  string
	}{
		{param: "dir", want: "dir, dir_name, id_lokasi"},
		{param: "div", want: "dir, dir_name, div, div_name, id_lokasi"},
		{param: "dpt", want: "dir, dir_name, div, div_name, dept, dept_name, id_lokasi"},
		{param: "sct", want: "dir, dir_name, div, div_name, dept, dept_name, sec, id_lokasi"},
		{param: "subsect", want: "dir, dir_name, div, div_name, dept, dept_name, sec, subsec, id_lokasi"},
	}
	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			query, _, err := buildStructureQuery(level(t, tt.param), models.StructureFilter{})
			require.NoError(t, err)
			assert.Contains(t, query, tt.want)
		})
	}
}
