package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPostFilterQuery(t *testing.T) {
	assert.Equal(t, bson.M{}, PostFilter{}.query(),
		"absent parameters add no constraint")

	assert.Equal(t, bson.M{"tags": "go"}, PostFilter{Tag: "go"}.query())

	assert.Equal(t, bson.M{"user.username": "velopert"},
		PostFilter{Username: "velopert"}.query())

	assert.Equal(t,
		bson.M{"user.username": "velopert", "tags": "go"},
		PostFilter{Username: "velopert", Tag: "go"}.query())
}
