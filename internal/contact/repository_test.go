package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rendered snapshots the repository as rendered lines.
func rendered(r *Repository) []string {
	lines := make([]string, 0, r.Len())
	for _, c := range r.All() {
		lines = append(lines, c.String())
	}
	return lines
}

func TestRepository_NewIsEmpty(t *testing.T) {
	r := NewRepository()
	assert.Empty(t, r.All())
	assert.Equal(t, 0, r.Len())
}

func TestRepository_AddPreservesInsertionOrder(t *testing.T) {
	// Given an empty repository
	r := NewRepository()

	// When contacts are added, including a duplicate name
	r.Add(New("Carol", "3", "c@x.com"))
	r.Add(New("Alice", "1", "a@x.com"))
	r.Add(New("Bob", "2", "b@x.com"))
	r.Add(New("Alice", "4", "a2@x.com"))

	// Then All returns them in the order added, duplicates included
	assert.Equal(t, []string{
		"Carol (3, c@x.com)",
		"Alice (1, a@x.com)",
		"Bob (2, b@x.com)",
		"Alice (4, a2@x.com)",
	}, rendered(r))
}

func TestRepository_UpdateFirstMatchOnly(t *testing.T) {
	// Given two contacts sharing a name
	r := NewRepository()
	r.Add(New("Alice", "1", "a@x.com"))
	r.Add(New("Bob", "2", "b@x.com"))
	r.Add(New("Alice", "3", "a3@x.com"))

	// When Update targets that name
	require.NoError(t, r.Update("Alice", "9", "new@x.com"))

	// Then only the first match changes
	assert.Equal(t, []string{
		"Alice (9, new@x.com)",
		"Bob (2, b@x.com)",
		"Alice (3, a3@x.com)",
	}, rendered(r))
}

func TestRepository_UpdateMutatesInPlace(t *testing.T) {
	r := NewRepository()
	c := New("Alice", "1", "a@x.com")
	r.Add(c)

	require.NoError(t, r.Update("Alice", "2", "b@x.com"))

	assert.Same(t, c, r.All()[0])
	assert.Equal(t, "2", c.Phone)
	assert.Equal(t, "b@x.com", c.Email)
}

func TestRepository_UpsertMutatesInPlace(t *testing.T) {
	r := NewRepository()
	c := New("Alice", "1", "a@x.com")
	r.Add(c)

	created := r.Upsert("Alice", "2", "b@x.com")

	assert.False(t, created)
	require.Equal(t, 1, r.Len())
	assert.Same(t, c, r.All()[0])
	assert.Equal(t, "2", c.Phone)
	assert.Equal(t, "b@x.com", c.Email)
}

func TestRepository_UpdateIsCaseSensitive(t *testing.T) {
	r := NewRepository()
	r.Add(New("Alice", "1", "a@x.com"))

	err := r.Update("alice", "2", "b@x.com")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []string{"Alice (1, a@x.com)"}, rendered(r))
}

func TestRepository_UpdateAbsentLeavesSequenceUnchanged(t *testing.T) {
	// Given a populated repository
	r := NewRepository()
	r.Add(New("Alice", "1", "a@x.com"))
	r.Add(New("Bob", "2", "b@x.com"))
	before := rendered(r)

	// When Update targets a missing name
	err := r.Update("Zed", "0", "z@x.com")

	// Then ErrNotFound is returned and nothing changed
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `"Zed"`)
	assert.Equal(t, before, rendered(r))
}

func TestRepository_UpsertInsertsOnceThenUpdates(t *testing.T) {
	// Given an empty repository
	r := NewRepository()

	// When Upsert is called twice with the same name
	created := r.Upsert("Alice", "1", "a@x.com")
	assert.True(t, created)
	created = r.Upsert("Alice", "2", "a2@x.com")
	assert.False(t, created)

	// Then one entry exists carrying the last write
	require.Equal(t, 1, r.Len())
	assert.Equal(t, "Alice (2, a2@x.com)", r.All()[0].String())
}

func TestRepository_UpsertAppendsAtEnd(t *testing.T) {
	r := NewRepository()
	r.Add(New("Alice", "1", "a@x.com"))

	r.Upsert("Bob", "2", "b@x.com")

	assert.Equal(t, []string{"Alice (1, a@x.com)", "Bob (2, b@x.com)"}, rendered(r))
}

func TestRepository_UpsertTouchesFirstDuplicateOnly(t *testing.T) {
	r := NewRepository()
	r.Add(New("Alice", "1", "a@x.com"))
	r.Add(New("Alice", "2", "b@x.com"))

	created := r.Upsert("Alice", "3", "c@x.com")

	assert.False(t, created)
	assert.Equal(t, []string{"Alice (3, c@x.com)", "Alice (2, b@x.com)"}, rendered(r))
}

func TestRepository_DeleteRemovesAllMatches(t *testing.T) {
	// Given duplicates interleaved with other names
	r := NewRepository()
	r.Add(New("Alice", "1", "a@x.com"))
	r.Add(New("Bob", "2", "b@x.com"))
	r.Add(New("Alice", "3", "a3@x.com"))
	r.Add(New("Carol", "4", "c@x.com"))

	// When Delete targets the duplicated name
	require.NoError(t, r.Delete("Alice"))

	// Then every match is gone and the rest keep their order
	assert.Equal(t, []string{"Bob (2, b@x.com)", "Carol (4, c@x.com)"}, rendered(r))
}

func TestRepository_DeleteAbsentLeavesSequenceUnchanged(t *testing.T) {
	r := NewRepository()
	r.Add(New("Alice", "1", "a@x.com"))
	before := rendered(r)

	err := r.Delete("Bob")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, before, rendered(r))
}

func TestRepository_DeleteOnEmpty(t *testing.T) {
	r := NewRepository()
	assert.ErrorIs(t, r.Delete("Alice"), ErrNotFound)
	assert.Empty(t, r.All())
}

func TestRepository_AllReflectsCurrentState(t *testing.T) {
	r := NewRepository()
	r.Add(New("Alice", "1", "a@x.com"))
	all := r.All()

	require.NoError(t, r.Update("Alice", "2", "a@y.com"))

	assert.Equal(t, "Alice (2, a@y.com)", all[0].String())
}

func TestRepository_Example(t *testing.T) {
	r := NewRepository()
	r.Add(New("Alice", "111", "a@x.com"))
	r.Add(New("Bob", "222", "b@x.com"))

	require.NoError(t, r.Update("Alice", "333", "a2@x.com"))
	assert.Equal(t, []string{"Alice (333, a2@x.com)", "Bob (222, b@x.com)"}, rendered(r))

	require.NoError(t, r.Delete("Bob"))
	assert.Equal(t, []string{"Alice (333, a2@x.com)"}, rendered(r))
}
