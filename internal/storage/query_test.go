package storage

import (
	"testing"

	"github.com/iudanet/carddavsync/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contact(localID int64, collectionID, name, email, words string) *models.Contact {
	return &models.Contact{
		LocalID:      localID,
		CollectionID: collectionID,
		Index:        models.IndexFields{Name: name, Email: email, Words: words},
	}
}

func TestParseField(t *testing.T) {
	for in, want := range map[string]Field{"name": FieldName, " Email ": FieldEmail, "*": FieldWords, "words": FieldWords, "surname": FieldSurname} {
		got, err := ParseField(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseField("phone; DROP TABLE contacts")
	require.ErrorIs(t, err, ErrInvalidQuery)
}

func TestQuery_Validate(t *testing.T) {
	assert.NoError(t, Query{Fields: []Field{FieldName, FieldWords}}.Validate())
	assert.ErrorIs(t, Query{Fields: []Field{"phone"}}.Validate(), ErrInvalidQuery)
	assert.ErrorIs(t, Query{Limit: -1}.Validate(), ErrInvalidQuery)
}

func TestQuery_Matches(t *testing.T) {
	c := contact(1, "col-1", "José Núñez", "jose@example.com", "jose nunez example com")

	tests := []struct {
		name string
		q    Query
		want bool
	}{
		{"empty value matches", Query{}, true},
		{"other collection", Query{CollectionIDs: []string{"col-2"}}, false},
		{"own collection", Query{CollectionIDs: []string{"col-2", "col-1"}}, true},
		{"words default, accents folded", Query{Value: "NÚÑ"}, true},
		{"name case insensitive", Query{Value: "josé", Fields: []Field{FieldName}}, true},
		{"email", Query{Value: "example.com", Fields: []Field{FieldEmail}}, true},
		{"no match", Query{Value: "smith", Fields: []Field{FieldName, FieldEmail}}, false},
		{"surname empty", Query{Value: "nunez", Fields: []Field{FieldSurname}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.Matches(c))
		})
	}
}

func TestQuery_PageAndSort(t *testing.T) {
	contacts := []*models.Contact{
		contact(3, "c", "bob", "", ""),
		contact(1, "c", "Alice", "", ""),
		contact(2, "c", "alice", "", ""),
		contact(4, "c", "Carol", "", ""),
	}
	SortContacts(contacts)

	var ids []int64
	for _, c := range contacts {
		ids = append(ids, c.LocalID)
	}
	assert.Equal(t, []int64{1, 2, 3, 4}, ids)

	page := Query{Limit: 2, Offset: 1}.Page(contacts)
	require.Len(t, page, 2)
	assert.Equal(t, int64(2), page[0].LocalID)
	assert.Equal(t, int64(3), page[1].LocalID)

	assert.Empty(t, Query{Offset: 10}.Page(contacts))
	assert.Len(t, Query{}.Page(contacts), 4)
}
