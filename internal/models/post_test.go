package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryTruncation(t *testing.T) {
	long := Post{Body: strings.Repeat("a", 201)}
	assert.Equal(t, strings.Repeat("a", 200)+"...", long.Summary().Body)

	exact := Post{Body: strings.Repeat("a", 200)}
	assert.Equal(t, exact.Body, exact.Summary().Body)

	short := Post{Body: "hello"}
	assert.Equal(t, "hello", short.Summary().Body)
}

func TestSummaryCountsRunes(t *testing.T) {
	body := strings.Repeat("가", 250)
	got := Post{Body: body}.Summary().Body
	assert.Equal(t, strings.Repeat("가", 200)+"...", got)
}

func TestSummaryDoesNotMutate(t *testing.T) {
	p := Post{Body: strings.Repeat("a", 300)}
	p.Summary()
	assert.Len(t, p.Body, 300)
}

func TestWritePostRequestValidate(t *testing.T) {
	ok := WritePostRequest{Title: "t", Body: "b", Tags: []string{}}
	assert.Nil(t, ok.Validate())

	missingTags := WritePostRequest{Title: "t", Body: "b"}
	errs := missingTags.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "tags", errs[0].Field)

	empty := WritePostRequest{}
	assert.Len(t, empty.Validate(), 3)
}

func TestUpdatePostRequestValidate(t *testing.T) {
	title := "t"
	assert.Nil(t, (&UpdatePostRequest{Title: &title}).Validate())
	assert.Nil(t, (&UpdatePostRequest{}).Validate())
	assert.True(t, (&UpdatePostRequest{}).Empty())

	blank := ""
	errs := (&UpdatePostRequest{Title: &blank, Body: &blank}).Validate()
	assert.Len(t, errs, 2)
}
