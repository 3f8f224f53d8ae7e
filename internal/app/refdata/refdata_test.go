package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegions(t *testing.T) {
	assert.Len(t, Regions, 10)
	assert.True(t, IsRegion("Centre"))
	assert.True(t, IsRegion("Extrême-Nord"))
	assert.False(t, IsRegion("Paris"))
	assert.False(t, IsRegion(""))
}

func TestDepartmentsOf(t *testing.T) {
	centre := DepartmentsOf("Centre")
	assert.Contains(t, centre, "Mfoundi")
	assert.Contains(t, centre, "Nyong-et-Kéllé")

	littoral := DepartmentsOf("Littoral")
	assert.Contains(t, littoral, "Wouri")

	assert.Empty(t, DepartmentsOf("Inconnu"))
}

func TestIsDepartmentOf(t *testing.T) {
	assert.True(t, IsDepartmentOf("Centre", "Mfoundi"))
	assert.True(t, IsDepartmentOf("Littoral", "Wouri"))

	// Real department, wrong region
	assert.False(t, IsDepartmentOf("Centre", "Wouri"))
	assert.False(t, IsDepartmentOf("Ouest", "Mfoundi"))

	assert.False(t, IsDepartmentOf("Inconnu", "Mfoundi"))
	assert.False(t, IsDepartmentOf("Centre", ""))
}

func TestSeriesOf(t *testing.T) {
	general := SeriesOf("Général")
	assert.Contains(t, general, "A")
	assert.Contains(t, general, "C")
	assert.Contains(t, general, "D")
	assert.NotContains(t, general, "F2")

	technique := SeriesOf("Technique")
	assert.Contains(t, technique, "F2")
	assert.Contains(t, technique, "MISE")
	assert.NotContains(t, technique, "C")
}

func TestIsSeriesOf(t *testing.T) {
	assert.True(t, IsSeriesOf("Général", "C"))
	assert.True(t, IsSeriesOf("Technique", "F4"))

	// Series/type mismatch both ways
	assert.False(t, IsSeriesOf("Général", "F2"))
	assert.False(t, IsSeriesOf("Technique", "A"))

	assert.False(t, IsSeriesOf("Autre", "C"))
}

func TestIsMention(t *testing.T) {
	for _, m := range []string{"Passable", "Assez Bien", "Bien", "Très Bien"} {
		assert.True(t, IsMention(m), m)
	}
	assert.False(t, IsMention("Excellent"))
	assert.False(t, IsMention("passable"))
}

func TestIsAcademicType(t *testing.T) {
	assert.True(t, IsAcademicType("Général"))
	assert.True(t, IsAcademicType("Technique"))
	assert.False(t, IsAcademicType("Professionnel"))
}
