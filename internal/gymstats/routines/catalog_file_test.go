package routines_test

import (
	"strings"
	"testing"

	"github.com/tutostrucoscode/GymMetrics/internal/gymstats"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/routines"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCatalogFile(t *testing.T) {
	file := `
exercises:
  - id: bench
    name: Press banca
    sets: 4
    reps: 8
    type: pecho
  - name: Sentadilla
    sets: 5
    reps: 5
    imageUrl: https://example.com/squat.png
`
	exercises, err := routines.ReadCatalogFile(strings.NewReader(file))
	require.NoError(t, err)
	require.Len(t, exercises, 2)

	assert.Equal(t, routines.CatalogExercise{ID: "bench", Name: "Press banca", Sets: 4, Reps: 8, Type: "pecho"}, exercises[0])
	assert.Empty(t, exercises[1].ID)
	assert.Equal(t, "https://example.com/squat.png", exercises[1].ImageURL)
}

func TestReadCatalogFile_Empty(t *testing.T) {
	exercises, err := routines.ReadCatalogFile(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, exercises)
}

func TestReadCatalogFile_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing name":  "exercises:\n  - sets: 3\n",
		"negative sets": "exercises:\n  - name: Remo\n    sets: -1\n",
		"duplicate id":  "exercises:\n  - id: a\n    name: A\n  - id: a\n    name: B\n",
		"unknown field": "exercises:\n  - name: A\n    weight: 10\n",
		"not yaml list": "exercises: nope\n",
	}
	for name, file := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := routines.ReadCatalogFile(strings.NewReader(file))
			assert.Error(t, err)
		})
	}

	_, err := routines.ReadCatalogFile(strings.NewReader("exercises:\n  - sets: 3\n"))
	assert.ErrorIs(t, err, gymstats.ErrInvalidInput)
}
