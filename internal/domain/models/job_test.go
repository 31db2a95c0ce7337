package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StringList_UnmarshalsJsonArray(t *testing.T) {
	var list StringList

	err := json.Unmarshal([]byte(`["Go experience", "SQL"]`), &list)

	assert.NoError(t, err)
	assert.Equal(t, StringList{"Go experience", "SQL"}, list)
}

func Test_StringList_SplitsSingleStringOnCommas(t *testing.T) {
	var list StringList

	err := json.Unmarshal([]byte(`"Go experience, SQL, Docker"`), &list)

	assert.NoError(t, err)
	assert.Equal(t, StringList{"Go experience", "SQL", "Docker"}, list)
}

func Test_StringList_SplitsSingleStringOnNewlines(t *testing.T) {
	var list StringList

	err := json.Unmarshal([]byte(`"Health insurance\r\nRemote work\nGym membership"`), &list)

	assert.NoError(t, err)
	assert.Equal(t, StringList{"Health insurance", "Remote work", "Gym membership"}, list)
}

func Test_StringList_DropsEmptyParts(t *testing.T) {
	var list StringList

	err := json.Unmarshal([]byte(`"Go, , SQL,"`), &list)

	assert.NoError(t, err)
	assert.Equal(t, StringList{"Go", "SQL"}, list)
}

func Test_StringList_RejectsOtherJsonTypes(t *testing.T) {
	var list StringList

	err := json.Unmarshal([]byte(`42`), &list)

	assert.Error(t, err)
}
