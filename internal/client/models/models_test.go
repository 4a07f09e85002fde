package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats_MissingKeysStayNil(t *testing.T) {
	var s DashboardStats
	require.NoError(t, json.Unmarshal([]byte(`{"total": 4, "valid": 2}`), &s))

	require.NotNil(t, s.Total)
	assert.Equal(t, 4, *s.Total)
	assert.Nil(t, s.Soon)
	assert.Nil(t, s.Expired)
}

func TestSearchResult_Found(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{name: "hit", body: `{"status":"success","data":{"id":"A1"}}`, want: true},
		{name: "success without data", body: `{"status":"success"}`, want: false},
		{name: "error", body: `{"status":"error","message":"Not found"}`, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r SearchResult
			require.NoError(t, json.Unmarshal([]byte(tt.body), &r))
			assert.Equal(t, tt.want, r.Found())
		})
	}
}

func TestNotification_Urgent(t *testing.T) {
	var list []Notification
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id":"A1","type":"urgent","msg":"Expires Tomorrow"},
		{"id":"A2","type":"warning","msg":"Expires in 3 days"}
	]`), &list))

	require.Len(t, list, 2)
	assert.True(t, list[0].Urgent())
	assert.Equal(t, "Expires Tomorrow", list[0].Message)
	assert.False(t, list[1].Urgent())
}

func TestRenewal_Expired(t *testing.T) {
	assert.True(t, Renewal{DaysLeft: -1}.Expired())
	assert.False(t, Renewal{DaysLeft: 0}.Expired())
	assert.False(t, Renewal{DaysLeft: 5}.Expired())
}
