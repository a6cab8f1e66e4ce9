package chatcard_test

import (
	"errors"
	"testing"

	"github.com/reoring/chatcard"
)

func marshal(t *testing.T, m chatcard.Message) string {
	t.Helper()
	b, err := chatcard.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func marshalEntity(t *testing.T, v interface{ MarshalJSON() ([]byte, error) }) string {
	t.Helper()
	b, err := v.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func TestBuild_TextMessage(t *testing.T) {
	text, err := chatcard.NewTextBuilder().Text("some text").Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got, want := marshal(t, text), `{"text":"some text"}`; got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestBuild_SingleFieldCard(t *testing.T) {
	tp, err := chatcard.NewTextParagraphBuilder().Text("some text").Build()
	if err != nil {
		t.Fatal(err)
	}
	widget, err := chatcard.NewWidgetBuilder().TextParagraph(tp).Build()
	if err != nil {
		t.Fatal(err)
	}
	section, err := chatcard.NewSectionBuilder().Widgets([]chatcard.Widget{widget}).Build()
	if err != nil {
		t.Fatal(err)
	}
	header, err := chatcard.NewHeaderBuilder().Title("some tile").Build()
	if err != nil {
		t.Fatal(err)
	}
	card, err := chatcard.NewCardBuilder().Sections([]chatcard.Section{section}).Header(header).Build()
	if err != nil {
		t.Fatal(err)
	}
	cards, err := chatcard.NewCardsBuilder().Cards([]chatcard.Card{card}).Build()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"cards":[{"header":{"title":"some tile"},"sections":[{"widgets":[{"textParagraph":{"text":"some text"}}]}]}]}`
	if got := marshal(t, cards); got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestBuild_EmptyCards(t *testing.T) {
	cards, err := chatcard.NewCardsBuilder().Cards(nil).Build()
	if err != nil {
		t.Fatal(err)
	}
	if got := marshal(t, cards); got != `{"cards":[]}` {
		t.Fatalf("got %s", got)
	}
	if got := marshal(t, chatcard.NewCards()); got != `{"cards":[]}` {
		t.Fatalf("NewCards(): got %s", got)
	}
}

func TestBuild_OnClickChain(t *testing.T) {
	link := chatcard.NewOpenLinkBuilder().URL("https://example.com").MustBuild()
	onClick, err := chatcard.NewOnClickBuilder().OpenLink(link).Build()
	if err != nil {
		t.Fatal(err)
	}
	img, err := chatcard.NewImageBuilder().OnClick(onClick).Build()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"onClick":{"openLink":{"url":"https://example.com"}}}`
	if got := marshalEntity(t, img); got != want {
		t.Fatalf("got %s want %s", got, want)
	}
	if _, ok := img.ImageURL(); ok {
		t.Fatalf("imageUrl should be absent")
	}
}

func TestBuild_MissingRequired(t *testing.T) {
	cases := []struct {
		name   string
		build  func() error
		entity string
		field  string
	}{
		{"Text", func() error { _, err := chatcard.NewTextBuilder().Build(); return err }, "Text", "text"},
		{"Cards", func() error { _, err := chatcard.NewCardsBuilder().Build(); return err }, "Cards", "cards"},
		{"TextParagraph", func() error { _, err := chatcard.NewTextParagraphBuilder().Build(); return err }, "TextParagraph", "text"},
		{"OnClick", func() error { _, err := chatcard.NewOnClickBuilder().Build(); return err }, "OnClick", "openLink"},
		{"OpenLink", func() error { _, err := chatcard.NewOpenLinkBuilder().Build(); return err }, "OpenLink", "url"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.build()
			if err == nil {
				t.Fatalf("expected build error")
			}
			be, ok := chatcard.AsBuildError(err)
			if !ok {
				t.Fatalf("expected *BuildError, got %T: %v", err, err)
			}
			if be.Entity != tc.entity || be.Field != tc.field || be.Code != chatcard.CodeRequired {
				t.Fatalf("unexpected error %+v", be)
			}
		})
	}
}

func TestBuild_OpenLinkMissingURLMessage(t *testing.T) {
	_, err := chatcard.NewOpenLinkBuilder().Build()
	var be *chatcard.BuildError
	if !errors.As(err, &be) {
		t.Fatalf("expected *BuildError, got %v", err)
	}
	if got, want := err.Error(), `chatcard: build OpenLink: "url" required property missing`; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestBuild_EmptyStringSatisfiesRequired(t *testing.T) {
	link, err := chatcard.NewOpenLinkBuilder().URL("").Build()
	if err != nil {
		t.Fatalf("explicit empty url should be accepted: %v", err)
	}
	if got := marshalEntity(t, link); got != `{"url":""}` {
		t.Fatalf("got %s", got)
	}
}

func TestBuild_NoRequiredFieldsYieldsEmptyObject(t *testing.T) {
	cases := map[string]func() (interface{ MarshalJSON() ([]byte, error) }, error){
		"Card":        func() (interface{ MarshalJSON() ([]byte, error) }, error) { return chatcard.NewCardBuilder().Build() },
		"Header":      func() (interface{ MarshalJSON() ([]byte, error) }, error) { return chatcard.NewHeaderBuilder().Build() },
		"Section":     func() (interface{ MarshalJSON() ([]byte, error) }, error) { return chatcard.NewSectionBuilder().Build() },
		"Widget":      func() (interface{ MarshalJSON() ([]byte, error) }, error) { return chatcard.NewWidgetBuilder().Build() },
		"KeyValue":    func() (interface{ MarshalJSON() ([]byte, error) }, error) { return chatcard.NewKeyValueBuilder().Build() },
		"Image":       func() (interface{ MarshalJSON() ([]byte, error) }, error) { return chatcard.NewImageBuilder().Build() },
		"Button":      func() (interface{ MarshalJSON() ([]byte, error) }, error) { return chatcard.NewButtonBuilder().Build() },
		"TextButton":  func() (interface{ MarshalJSON() ([]byte, error) }, error) { return chatcard.NewTextButtonBuilder().Build() },
		"ImageButton": func() (interface{ MarshalJSON() ([]byte, error) }, error) { return chatcard.NewImageButtonBuilder().Build() },
	}
	for name, build := range cases {
		t.Run(name, func(t *testing.T) {
			v, err := build()
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if got := marshalEntity(t, v); got != "{}" {
				t.Fatalf("got %s want {}", got)
			}
		})
	}
}

func TestBuild_ZeroValuesAreEmpty(t *testing.T) {
	if got := marshalEntity(t, chatcard.Header{}); got != "{}" {
		t.Fatalf("Header{}: %s", got)
	}
	if got := marshalEntity(t, chatcard.Card{}); got != "{}" {
		t.Fatalf("Card{}: %s", got)
	}
	if got := marshalEntity(t, chatcard.Widget{}); got != "{}" {
		t.Fatalf("Widget{}: %s", got)
	}
}

func TestBuild_LastWriteWins(t *testing.T) {
	h := chatcard.NewHeaderBuilder().Title("a").Title("b").MustBuild()
	if got := marshalEntity(t, h); got != `{"title":"b"}` {
		t.Fatalf("got %s", got)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	b := chatcard.NewKeyValueBuilder().
		TopLabel("top").
		Content("content").
		OnClick(chatcard.NewOpenLinkBuilder().URL("https://example.com").MustBuild().ToOnClick())
	first, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	second, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if a, c := marshalEntity(t, first), marshalEntity(t, second); a != c {
		t.Fatalf("builds differ: %s vs %s", a, c)
	}
}

func TestBuild_EntityIsolatedFromBuilderAndInputs(t *testing.T) {
	sections := []chatcard.Section{chatcard.NewSectionBuilder().Header("one").MustBuild()}
	b := chatcard.NewCardBuilder().Sections(sections)
	card := b.MustBuild()

	// mutate the caller's slice and keep using the builder
	sections[0] = chatcard.NewSectionBuilder().Header("mutated").MustBuild()
	b.Header(chatcard.NewHeaderBuilder().Title("later").MustBuild())

	if got := marshalEntity(t, card); got != `{"sections":[{"header":"one"}]}` {
		t.Fatalf("entity changed after build: %s", got)
	}

	got := card.Sections()
	got[0] = chatcard.Section{}
	if again := marshalEntity(t, card); again != `{"sections":[{"header":"one"}]}` {
		t.Fatalf("accessor leaked internal slice: %s", again)
	}
}

func TestBuild_MustBuildPanicsWithBuildError(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic, got %v", r)
		}
		if _, ok := chatcard.AsBuildError(err); !ok {
			t.Fatalf("expected *BuildError, got %v", err)
		}
	}()
	chatcard.NewTextParagraphBuilder().MustBuild()
}

func TestBuild_Accessors(t *testing.T) {
	link := chatcard.NewOpenLinkBuilder().URL("https://example.com/x").MustBuild()
	tb := chatcard.NewTextButtonBuilder().Text("OPEN").OnClick(link.ToOnClick()).MustBuild()
	btn := chatcard.NewButtonBuilder().TextButton(tb).MustBuild()

	gotTB, ok := btn.TextButton()
	if !ok {
		t.Fatalf("textButton should be present")
	}
	if text, _ := gotTB.Text(); text != "OPEN" {
		t.Fatalf("text: %q", text)
	}
	oc, ok := gotTB.OnClick()
	if !ok || oc.OpenLink().URL() != "https://example.com/x" {
		t.Fatalf("onClick: %+v %v", oc, ok)
	}
	if _, ok := btn.ImageButton(); ok {
		t.Fatalf("imageButton should be absent")
	}
	if (chatcard.Card{}).Sections() != nil {
		t.Fatalf("absent sections should read as nil")
	}
}
