// Package chatcard builds chat webhook messages and renders them as JSON.
//
// Two message shapes exist:
//
//   - Text: {"text":"..."}
//   - Cards: {"cards":[...]} with Card -> Section -> Widget -> content.
//
// Every entity is an immutable value produced by its builder. Builders take
// field values one at a time and validate required fields on Build:
//
//	link, err := chatcard.NewOpenLinkBuilder().URL("https://example.com").Build()
//	img := chatcard.NewImageBuilder().OnClick(link.ToOnClick()).MustBuild()
//	msg := chatcard.NewCards(chatcard.NewCardBuilder().
//	    Sections([]chatcard.Section{chatcard.NewSectionBuilder().
//	        Widgets([]chatcard.Widget{img.ToWidget()}).MustBuild()}).
//	    MustBuild())
//	body, err := chatcard.Marshal(msg)
//
// Optional fields left unset are omitted from the output. An optional list
// set to an empty slice renders as [].
//
// Layout:
//   - the root package holds the value model, builders, errors and encoder;
//   - manifest/ decodes YAML message descriptions through the builders;
//   - cmd/chatcard is the CLI.
package chatcard
