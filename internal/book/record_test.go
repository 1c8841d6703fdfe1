package book_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contactbook/internal/book"
)

func mustPhone(t *testing.T, raw string) book.Phone {
	t.Helper()
	p, err := book.NewPhone(raw)
	require.NoError(t, err)
	return p
}

func mustBirthday(t *testing.T, raw string) book.Birthday {
	t.Helper()
	b, err := book.NewBirthday(raw)
	require.NoError(t, err)
	return b
}

func TestRecord_AddPhone_PreservesOrderAndDuplicates(t *testing.T) {
	rec := book.NewRecord("Olena")

	first := rec.AddPhone(mustPhone(t, "0991234567"))
	rec.AddPhone(mustPhone(t, "0507654321"))
	rec.AddPhone(mustPhone(t, "0991234567")) // duplicate allowed

	assert.Equal(t, "0991234567", first.Value())
	require.Len(t, rec.Phones, 3)
	assert.Equal(t, "0991234567", rec.Phones[0].Value())
	assert.Equal(t, "0507654321", rec.Phones[1].Value())
	assert.Equal(t, "0991234567", rec.Phones[2].Value())
}

func TestRecord_FindPhone_ExactStringOnly(t *testing.T) {
	// Scenario: a stored phone is found by its exact string, never by its
	// normalized digits.
	rec := book.NewRecord("Olena")
	rec.AddPhone(mustPhone(t, "0991234567"))

	found, ok := rec.FindPhone(mustPhone(t, "0991234567"))
	require.True(t, ok)
	assert.Equal(t, "0991234567", found.Value())

	_, ok = rec.FindPhone(mustPhone(t, "099-123-4567"))
	assert.False(t, ok, "digit-identical but differently formatted phone must not be found")
}

func TestRecord_RemovePhone_FirstMatchOnly(t *testing.T) {
	rec := book.NewRecord("Olena")
	rec.AddPhone(mustPhone(t, "0991234567"))
	rec.AddPhone(mustPhone(t, "0507654321"))
	rec.AddPhone(mustPhone(t, "0991234567"))

	assert.True(t, rec.RemovePhone(mustPhone(t, "0991234567")))
	require.Len(t, rec.Phones, 2)
	assert.Equal(t, "0507654321", rec.Phones[0].Value())
	assert.Equal(t, "0991234567", rec.Phones[1].Value(), "second duplicate must survive")

	assert.False(t, rec.RemovePhone(mustPhone(t, "0000000000")))
	assert.Len(t, rec.Phones, 2)
}

func TestRecord_EditPhone(t *testing.T) {
	rec := book.NewRecord("Olena")
	rec.AddPhone(mustPhone(t, "0991234567"))
	rec.AddPhone(mustPhone(t, "0507654321"))

	ok := rec.EditPhone(mustPhone(t, "0991234567"), mustPhone(t, "0112223344"))
	require.True(t, ok)
	assert.Equal(t, "0112223344", rec.Phones[0].Value())
	assert.Equal(t, "0507654321", rec.Phones[1].Value())
}

func TestRecord_EditPhone_NoMatchIsNoOp(t *testing.T) {
	rec := book.NewRecord("Olena")
	rec.AddPhone(mustPhone(t, "0991234567"))

	ok := rec.EditPhone(mustPhone(t, "0000000000"), mustPhone(t, "0112223344"))
	assert.False(t, ok)
	// The new value is never inserted as a fresh entry.
	require.Len(t, rec.Phones, 1)
	assert.Equal(t, "0991234567", rec.Phones[0].Value())
}

func TestRecord_SetBirthday_Overwrites(t *testing.T) {
	rec := book.NewRecord("Olena")
	assert.Nil(t, rec.Birthday)

	rec.SetBirthday(mustBirthday(t, "15.06.1990"))
	require.NotNil(t, rec.Birthday)
	assert.Equal(t, "15.06.1990", rec.Birthday.Format())

	// At most one birthday: a re-set replaces the previous value wholesale.
	rec.SetBirthday(mustBirthday(t, "01.01.2000"))
	assert.Equal(t, "01.01.2000", rec.Birthday.Format())
}

func TestRecord_String(t *testing.T) {
	rec := book.NewRecord("Olena")
	assert.Equal(t, "Contact name: Olena, phones: , birthday: -", rec.String())

	rec.AddPhone(mustPhone(t, "0991234567"))
	rec.AddPhone(mustPhone(t, "0507654321"))
	rec.SetBirthday(mustBirthday(t, "15.06.1990"))

	assert.Equal(t,
		"Contact name: Olena, phones: 0991234567; 0507654321, birthday: 15.06.1990",
		rec.String(),
	)
}
