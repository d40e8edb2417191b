package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"mixed spacing", "Scouting, Analytics,  Development", []string{"Scouting", "Analytics", "Development"}},
		{"empty", "", []string{}},
		{"only separators", " , ,, ", []string{}},
		{"trailing comma", "Coaching,", []string{"Coaching"}},
		{"inner spaces kept", " Youth Development , Data ", []string{"Youth Development", "Data"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.raw))
		})
	}
}

func TestProject_TagList(t *testing.T) {
	p := Project{Tags: "Scouting, Analytics,  Development"}
	assert.Equal(t, []string{"Scouting", "Analytics", "Development"}, p.TagList())
}

func TestProject_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(Project{Title: "Scouting Network", Slug: "scouting-network", Tags: "Scouting, Analytics,  Development"})
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "Scouting, Analytics,  Development", got["tags"])
	assert.Equal(t, []interface{}{"Scouting", "Analytics", "Development"}, got["tag_list"])
	assert.Equal(t, "scouting-network", got["slug"])

	raw, err = json.Marshal(Project{})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"tag_list":[]`)

	var back Project
	require.NoError(t, json.Unmarshal(raw, &back))
}

func TestInterestType(t *testing.T) {
	assert.True(t, InterestGeneral.Valid())
	assert.True(t, InterestBoth.Valid())
	assert.False(t, InterestType("newsletter").Valid())

	assert.False(t, InterestGeneral.NeedsAgeGroup())
	assert.True(t, InterestAcademy.NeedsAgeGroup())
	assert.True(t, InterestBoth.NeedsAgeGroup())
}

func TestAgeGroup_Valid(t *testing.T) {
	for _, c := range AgeGroupChoices {
		assert.True(t, AgeGroup(c.Value).Valid(), c.Value)
	}
	assert.False(t, AgeGroupNone.Valid())
	assert.False(t, AgeGroup("U18").Valid())
}

func TestPhotoCategory_Valid(t *testing.T) {
	assert.True(t, CategoryScouting.Valid())
	assert.False(t, PhotoCategory("wedding").Valid())
}

func TestAssets(t *testing.T) {
	p := Profile{ProfilePhoto: "profile/me.jpg"}
	assert.Equal(t, []string{"profile/me.jpg"}, p.Assets())
	assert.Empty(t, CompanyLogo{}.Assets())
}

func TestStringers(t *testing.T) {
	e := Experience{Company: "Mumbai City FC", Role: "Player Welfare Executive"}
	assert.Equal(t, "Player Welfare Executive at Mumbai City FC", e.String())

	s := ContactSubmission{Name: "Jane", Subject: "Hi", SubmittedAt: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)}
	assert.Equal(t, "Jane - Hi (2025-05-01)", s.String())
}
