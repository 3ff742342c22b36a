package gang

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordIDDecodesLegacyNumericID(t *testing.T) {
	var m Member
	require.NoError(t, json.Unmarshal([]byte(`{"id":1712345678901,"name":"Tony","role":"Lieutenant"}`), &m))
	assert.Equal(t, RecordID("1712345678901"), m.ID)
}

func TestRecordIDDecodesStringID(t *testing.T) {
	var m Member
	require.NoError(t, json.Unmarshal([]byte(`{"id":"abc-123","name":"Tony","role":"Lieutenant"}`), &m))
	assert.Equal(t, RecordID("abc-123"), m.ID)
}

func TestRecordIDRejectsGarbage(t *testing.T) {
	var id RecordID
	assert.Error(t, id.UnmarshalJSON([]byte(`{}`)))
}

func TestRecordIDShort(t *testing.T) {
	assert.Equal(t, "0198a2b3", RecordID("0198a2b3-4c5d-6e7f-8090-a1b2c3d4e5f6").Short())
	assert.Equal(t, "42", RecordID("42").Short())
}

func TestNewRecordIDUnique(t *testing.T) {
	seen := map[RecordID]bool{}
	for i := 0; i < 100; i++ {
		id := NewRecordID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	in := Transaction{ID: NewRecordID(), Date: "2024-01-01", Desc: "Vente d'armes", Amount: -1200.5}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	var out Transaction
	require.NoError(t, json.Unmarshal(data, &out))

	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
