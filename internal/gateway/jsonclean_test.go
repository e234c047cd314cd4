package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONResponse_StripsMarkdownFences(t *testing.T) {
	raw := "```json\n{\"days\":[]}\n```"
	assert.Equal(t, `{"days":[]}`, cleanJSONResponse(raw))
}

func TestCleanJSONResponse_StripsChattyPrefix(t *testing.T) {
	raw := "Here is the JSON:\n{\"total\":100}"
	assert.Equal(t, `{"total":100}`, cleanJSONResponse(raw))
}

func TestCleanJSONResponse_TrimsSurroundingProse(t *testing.T) {
	raw := "Sure thing! {\"reply\":\"ok\"} Hope that helps."
	assert.Equal(t, `{"reply":"ok"}`, cleanJSONResponse(raw))
}

func TestCleanJSONResponse_KeepsNestedBraces(t *testing.T) {
	raw := `{"a":{"b":{"c":1}},"d":[2,3]}`
	assert.Equal(t, raw, cleanJSONResponse(raw))
}

func TestCleanJSONResponse_BracesInsideStrings(t *testing.T) {
	raw := `{"details":"visit the market} and {the fort","n":1}`
	assert.Equal(t, raw, cleanJSONResponse(raw))
}

func TestCleanJSONResponse_TopLevelArray(t *testing.T) {
	raw := "Here's the result: [{\"day\":1},{\"day\":2}]"
	assert.Equal(t, `[{"day":1},{"day":2}]`, cleanJSONResponse(raw))
}

func TestFindMatching(t *testing.T) {
	assert.Equal(t, 1, findMatching("{}", 0, '{', '}'))
	assert.Equal(t, -1, findMatching("{", 0, '{', '}'))
	assert.Equal(t, -1, findMatching("abc", 0, '{', '}'))
	assert.Equal(t, 8, findMatching(`{"a":"}"}`, 0, '{', '}'))
	assert.Equal(t, 9, findMatching(`{"a":"\""}x`, 0, '{', '}'), "escaped quote must not end the string")
}
