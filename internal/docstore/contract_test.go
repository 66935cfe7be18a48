package docstore_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/tutostrucoscode/GymMetrics/internal/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRoutine struct {
	UserID    string   `json:"userId"`
	StartDate string   `json:"startDate"`
	EndDate   *string  `json:"endDate"`
	IsHidden  bool     `json:"isHidden"`
	Days      []string `json:"trainingDays"`
}

func docKeys(docs []docstore.Document) []string {
	keys := make([]string, 0, len(docs))
	for _, d := range docs {
		keys = append(keys, d.Key)
	}
	return keys
}

// runStoreContract exercises the behaviour every Store driver must share.
func runStoreContract(t *testing.T, store docstore.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("get missing", func(t *testing.T) {
		_, err := store.GetDocument(ctx, "exerciseData", "nobody_r1_e1")
		assert.ErrorIs(t, err, docstore.ErrNotFound)
	})

	t.Run("set get overwrite", func(t *testing.T) {
		first := map[string]any{
			"2024-03-15": []map[string]any{{"timestamp": "2024-03-15T10:00:00.000Z", "sets": []any{}}},
		}
		require.NoError(t, store.SetDocument(ctx, "exerciseData", "u1_r1_e1", first))

		doc, err := store.GetDocument(ctx, "exerciseData", "u1_r1_e1")
		require.NoError(t, err)
		assert.Equal(t, "u1_r1_e1", doc.Key)
		assert.JSONEq(t, `{"2024-03-15":[{"timestamp":"2024-03-15T10:00:00.000Z","sets":[]}]}`, string(doc.Data))

		second := map[string]any{"2024-03-16": []any{}}
		require.NoError(t, store.SetDocument(ctx, "exerciseData", "u1_r1_e1", second))
		doc, err = store.GetDocument(ctx, "exerciseData", "u1_r1_e1")
		require.NoError(t, err)
		// whole document replaced, not merged
		assert.JSONEq(t, `{"2024-03-16":[]}`, string(doc.Data))

		// same key in another collection is a different document
		_, err = store.GetDocument(ctx, "routines", "u1_r1_e1")
		assert.ErrorIs(t, err, docstore.ErrNotFound)
	})

	t.Run("update", func(t *testing.T) {
		require.NoError(t, store.SetDocument(ctx, "routines", "upd", testRoutine{
			UserID:    "u1",
			StartDate: "2024-01-01T00:00:00Z",
			Days:      []string{"Lunes"},
		}))

		require.NoError(t, store.UpdateDocument(ctx, "routines", "upd", map[string]any{
			"endDate":   "2024-02-01T00:00:00Z",
			"endWeight": 80.5,
		}))

		doc, err := store.GetDocument(ctx, "routines", "upd")
		require.NoError(t, err)
		var got map[string]any
		require.NoError(t, json.Unmarshal(doc.Data, &got))
		assert.Equal(t, "u1", got["userId"])
		assert.Equal(t, "2024-02-01T00:00:00Z", got["endDate"])
		assert.Equal(t, 80.5, got["endWeight"])
		assert.Equal(t, []any{"Lunes"}, got["trainingDays"])

		require.NoError(t, store.UpdateDocument(ctx, "routines", "upd", map[string]any{"endDate": nil}))
		doc, err = store.GetDocument(ctx, "routines", "upd")
		require.NoError(t, err)
		got = nil
		require.NoError(t, json.Unmarshal(doc.Data, &got))
		endDate, present := got["endDate"]
		assert.True(t, present)
		assert.Nil(t, endDate)

		err = store.UpdateDocument(ctx, "routines", "missing", map[string]any{"isHidden": true})
		assert.ErrorIs(t, err, docstore.ErrNotFound)

		err = store.UpdateDocument(ctx, "routines", "upd", map[string]any{"bad field'": true})
		assert.ErrorIs(t, err, docstore.ErrInvalidField)
	})

	t.Run("query", func(t *testing.T) {
		routines := map[string]testRoutine{
			"q-a": {UserID: "q-user", StartDate: "2024-01-01T00:00:00Z"},
			"q-b": {UserID: "q-user", StartDate: "2024-03-01T00:00:00Z"},
			"q-c": {UserID: "q-user", StartDate: "2024-02-01T00:00:00Z"},
			"q-d": {UserID: "q-user", StartDate: "2024-04-01T00:00:00Z", IsHidden: true},
			"q-e": {UserID: "q-other", StartDate: "2024-05-01T00:00:00Z"},
		}
		for key, r := range routines {
			require.NoError(t, store.SetDocument(ctx, "q-routines", key, r))
		}

		docs, err := store.QueryCollection(ctx, "q-routines", []docstore.Filter{
			docstore.Where("userId", "q-user"),
			docstore.Where("isHidden", false),
		}, &docstore.OrderBy{Field: "startDate", Desc: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"q-b", "q-c", "q-a"}, docKeys(docs))

		docs, err = store.QueryCollection(ctx, "q-routines", []docstore.Filter{
			docstore.Where("userId", "q-user"),
		}, &docstore.OrderBy{Field: "startDate"})
		require.NoError(t, err)
		assert.Equal(t, []string{"q-a", "q-c", "q-b", "q-d"}, docKeys(docs))

		var r testRoutine
		require.NoError(t, docs[0].DataTo(&r))
		assert.Equal(t, "2024-01-01T00:00:00Z", r.StartDate)

		docs, err = store.QueryCollection(ctx, "q-routines", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"q-a", "q-b", "q-c", "q-d", "q-e"}, docKeys(docs))

		docs, err = store.QueryCollection(ctx, "q-routines", []docstore.Filter{
			docstore.Where("userId", "nobody"),
		}, nil)
		require.NoError(t, err)
		assert.Empty(t, docs)

		_, err = store.QueryCollection(ctx, "q-routines", []docstore.Filter{
			docstore.Where("userId; DROP TABLE documents", "x"),
		}, nil)
		assert.ErrorIs(t, err, docstore.ErrInvalidField)
	})
}
