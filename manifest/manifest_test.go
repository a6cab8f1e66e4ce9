package manifest_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/chatcard"
	"github.com/reoring/chatcard/manifest"
)

func render(t *testing.T, m chatcard.Message) string {
	t.Helper()
	b, err := chatcard.Marshal(m)
	require.NoError(t, err)
	return string(b)
}

func issuesOf(t *testing.T, err error) chatcard.Issues {
	t.Helper()
	require.Error(t, err)
	iss, ok := chatcard.AsIssues(err)
	require.True(t, ok, "expected chatcard.Issues, got %T: %v", err, err)
	return iss
}

func TestDecode_Text(t *testing.T) {
	m, err := manifest.Decode([]byte("text: some text\n"))
	require.NoError(t, err)
	assert.Equal(t, `{"text":"some text"}`, render(t, m))
}

func TestDecode_DeployCard(t *testing.T) {
	data, err := os.ReadFile("testdata/deploy.yaml")
	require.NoError(t, err)

	m, err := manifest.Decode(data)
	require.NoError(t, err)

	want := `{"cards":[{"header":{"title":"Deploy finished","subtitle":"production","imageUrl":"https://example.com/logo.png","imageStyle":"AVATAR"},` +
		`"sections":[{"header":"Summary","widgets":[` +
		`{"textParagraph":{"text":"build 42 is live"}},` +
		`{"keyValue":{"topLabel":"Commit","content":"1a2b3c","icon":"DESCRIPTION","contentMultiline":"false"}},` +
		`{"image":{"imageUrl":"https://example.com/graph.png","onClick":{"openLink":{"url":"https://example.com/graph"}}}},` +
		`{"buttons":[{"textButton":{"text":"OPEN","onClick":{"openLink":{"url":"https://example.com/builds/42?tab=log&raw=1"}}}},{"imageButton":{"icon":"STAR"}}]}` +
		`]}]}]}`
	assert.Equal(t, want, render(t, m))
}

func TestDecode_EmptyCards(t *testing.T) {
	m, err := manifest.Decode([]byte("cards: []\n"))
	require.NoError(t, err)
	assert.Equal(t, `{"cards":[]}`, render(t, m))
}

func TestDecode_NumericScalarsAreStrings(t *testing.T) {
	m, err := manifest.Decode([]byte("cards:\n  - header:\n      title: 2024\n"))
	require.NoError(t, err)
	assert.Equal(t, `{"cards":[{"header":{"title":"2024"}}]}`, render(t, m))
}

func TestDecode_NullIsAbsent(t *testing.T) {
	m, err := manifest.Decode([]byte("cards:\n  - header:\n      title: t\n      subtitle: ~\n    sections:\n"))
	require.NoError(t, err)
	assert.Equal(t, `{"cards":[{"header":{"title":"t"}}]}`, render(t, m))
}

func TestDecode_MissingRequiredDeep(t *testing.T) {
	doc := `
cards:
  - sections:
      - widgets:
          - image:
              onClick:
                openLink: {}
          - textParagraph: {}
`
	_, err := manifest.Decode([]byte(doc))
	iss := issuesOf(t, err)
	require.Len(t, iss, 2)
	assert.Equal(t, "/cards/0/sections/0/widgets/0/image/onClick/openLink/url", iss[0].Path)
	assert.Equal(t, chatcard.CodeRequired, iss[0].Code)
	assert.Equal(t, "/cards/0/sections/0/widgets/1/textParagraph/text", iss[1].Path)
	be, ok := chatcard.AsBuildError(iss[0].Cause)
	require.True(t, ok)
	assert.Equal(t, "OpenLink", be.Entity)
}

func TestDecode_MissingOpenLink(t *testing.T) {
	_, err := manifest.Decode([]byte("cards:\n  - sections:\n      - widgets:\n          - image:\n              onClick: {}\n"))
	iss := issuesOf(t, err)
	require.Len(t, iss, 1)
	assert.Equal(t, "/cards/0/sections/0/widgets/0/image/onClick/openLink", iss[0].Path)
}

func TestDecode_NullCardsIsMissing(t *testing.T) {
	_, err := manifest.Decode([]byte("cards:\n"))
	iss := issuesOf(t, err)
	require.Len(t, iss, 1)
	assert.Equal(t, "/cards", iss[0].Path)
	assert.Equal(t, chatcard.CodeRequired, iss[0].Code)
}

func TestDecode_UnknownAndDuplicateKeys(t *testing.T) {
	doc := `
cards:
  - header:
      title: a
      colour: red
    sections: []
    sections: []
`
	_, err := manifest.Decode([]byte(doc))
	iss := issuesOf(t, err)
	require.Len(t, iss, 2)
	// the card mapping is read before its header
	assert.Equal(t, chatcard.CodeDuplicateKey, iss[0].Code)
	assert.Equal(t, "/cards/0/sections", iss[0].Path)
	assert.Equal(t, chatcard.CodeUnknownKey, iss[1].Code)
	assert.Equal(t, "/cards/0/header/colour", iss[1].Path)
	assert.Equal(t, 5, iss[1].Params["line"])
}

func TestDecode_WrongShapes(t *testing.T) {
	cases := map[string]struct {
		doc  string
		path string
	}{
		"cards not a list":   {"cards: nope\n", "/cards"},
		"card not a mapping": {"cards:\n  - nope\n", "/cards/0"},
		"title not a string": {"cards:\n  - header:\n      title: [a]\n", "/cards/0/header/title"},
		"root not a mapping": {"- a\n", "/"},
		"neither variant":    {"{}\n", "/"},
		"both variants":      {"text: a\ncards: []\n", "/"},
		"buttons not a list": {"cards:\n  - sections:\n      - widgets:\n          - buttons: {}\n", "/cards/0/sections/0/widgets/0/buttons"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := manifest.Decode([]byte(tc.doc))
			iss := issuesOf(t, err)
			require.NotEmpty(t, iss)
			assert.Equal(t, chatcard.CodeInvalidType, iss[0].Code)
			assert.Equal(t, tc.path, iss[0].Path)
		})
	}
}

func TestDecode_CollectsAcrossSiblings(t *testing.T) {
	doc := `
cards:
  - sections:
      - widgets:
          - textParagraph: {}
  - sections:
      - widgets:
          - keyValue:
              onClick:
                openLink: {}
`
	_, err := manifest.Decode([]byte(doc))
	iss := issuesOf(t, err)
	require.Len(t, iss, 2)
	assert.Equal(t, "/cards/0/sections/0/widgets/0/textParagraph/text", iss[0].Path)
	assert.Equal(t, "/cards/1/sections/0/widgets/0/keyValue/onClick/openLink/url", iss[1].Path)
}

func TestDecode_Aliases(t *testing.T) {
	doc := `
cards:
  - sections:
      - widgets:
          - buttons:
              - textButton:
                  text: A
                  onClick: &open
                    openLink:
                      url: https://example.com
              - textButton:
                  text: B
                  onClick: *open
`
	m, err := manifest.Decode([]byte(doc))
	require.NoError(t, err)
	assert.Contains(t, render(t, m), `{"textButton":{"text":"B","onClick":{"openLink":{"url":"https://example.com"}}}}`)
}

func TestDecode_ParseErrors(t *testing.T) {
	_, err := manifest.Decode(nil)
	iss := issuesOf(t, err)
	assert.Equal(t, chatcard.CodeParseError, iss[0].Code)

	_, err = manifest.Decode([]byte("cards: [\n"))
	iss = issuesOf(t, err)
	assert.Equal(t, chatcard.CodeParseError, iss[0].Code)
	assert.Error(t, iss[0].Cause)
}
