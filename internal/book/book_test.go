package book_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contactbook/internal/book"
)

func TestBook_AddRecord_RejectsNil(t *testing.T) {
	b := book.NewBook()
	assert.Error(t, b.AddRecord(nil))
	assert.Equal(t, 0, b.Len())
}

func TestBook_FindAndDelete(t *testing.T) {
	b := book.NewBook()
	require.NoError(t, b.AddRecord(book.NewRecord("Anna")))

	require.NotNil(t, b.Find("Anna"))
	assert.Nil(t, b.Find("anna"), "lookup is exact-string, not case-insensitive")

	assert.True(t, b.Delete("Anna"))
	assert.Nil(t, b.Find("Anna"))
	assert.False(t, b.Delete("Anna"), "second delete must report no removal")
}

func TestBook_DeleteOnEmpty(t *testing.T) {
	// Scenario: delete and find against an empty book.
	b := book.NewBook()
	assert.False(t, b.Delete("Ghost"))
	assert.Nil(t, b.Find("Ghost"))
}

func TestBook_AddRecord_OverwritesWholesale(t *testing.T) {
	b := book.NewBook()

	first := book.NewRecord("Anna")
	first.AddPhone(mustPhone(t, "0991234567"))
	first.SetBirthday(mustBirthday(t, "15.06.1990"))
	require.NoError(t, b.AddRecord(first))

	// A record with the same name silently replaces the prior one; old
	// phones and birthday are discarded, not merged.
	replacement := book.NewRecord("Anna")
	replacement.AddPhone(mustPhone(t, "0507654321"))
	require.NoError(t, b.AddRecord(replacement))

	assert.Equal(t, 1, b.Len())
	got := b.Find("Anna")
	require.NotNil(t, got)
	require.Len(t, got.Phones, 1)
	assert.Equal(t, "0507654321", got.Phones[0].Value())
	assert.Nil(t, got.Birthday)
}

func TestBook_Records_InsertionOrder(t *testing.T) {
	b := book.NewBook()
	for _, name := range []string{"Clara", "Anna", "Borys"} {
		require.NoError(t, b.AddRecord(book.NewRecord(name)))
	}

	var names []string
	for _, rec := range b.Records() {
		names = append(names, rec.Name)
	}
	assert.Equal(t, []string{"Clara", "Anna", "Borys"}, names)

	// Overwriting keeps the original position.
	require.NoError(t, b.AddRecord(book.NewRecord("Anna")))
	names = names[:0]
	for _, rec := range b.Records() {
		names = append(names, rec.Name)
	}
	assert.Equal(t, []string{"Clara", "Anna", "Borys"}, names)

	// Deleting removes from the iteration order too.
	assert.True(t, b.Delete("Anna"))
	names = names[:0]
	for _, rec := range b.Records() {
		names = append(names, rec.Name)
	}
	assert.Equal(t, []string{"Clara", "Borys"}, names)
}
