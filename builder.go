package chatcard

// Builders stage field values and produce immutable entities on Build.
// Setters overwrite earlier values and return the builder for chaining.
// Nested fields take already-built entities, so trees are assembled bottom-up.
// A builder may be reused: every Build copies the staged values.

// Builder is the contract shared by every entity builder.
type Builder[E any] interface {
	Build() (E, error)
	MustBuild() E
}

var (
	_ Builder[Text]          = (*TextBuilder)(nil)
	_ Builder[Cards]         = (*CardsBuilder)(nil)
	_ Builder[Card]          = (*CardBuilder)(nil)
	_ Builder[Header]        = (*HeaderBuilder)(nil)
	_ Builder[Section]       = (*SectionBuilder)(nil)
	_ Builder[Widget]        = (*WidgetBuilder)(nil)
	_ Builder[TextParagraph] = (*TextParagraphBuilder)(nil)
	_ Builder[KeyValue]      = (*KeyValueBuilder)(nil)
	_ Builder[Image]         = (*ImageBuilder)(nil)
	_ Builder[Button]        = (*ButtonBuilder)(nil)
	_ Builder[TextButton]    = (*TextButtonBuilder)(nil)
	_ Builder[ImageButton]   = (*ImageButtonBuilder)(nil)
	_ Builder[OnClick]       = (*OnClickBuilder)(nil)
	_ Builder[OpenLink]      = (*OpenLinkBuilder)(nil)
)

// ---- Text ----

type textFields struct {
	Text *string `json:"text" validate:"required"`
}

type TextBuilder struct{ f textFields }

func NewTextBuilder() *TextBuilder { return &TextBuilder{} }

func (b *TextBuilder) Text(text string) *TextBuilder {
	b.f.Text = &text
	return b
}

// Build returns a *BuildError when text is unset.
func (b *TextBuilder) Build() (Text, error) {
	return finalize("Text", &b.f, func(f *textFields) Text {
		return Text{text: *f.Text}
	})
}

func (b *TextBuilder) MustBuild() Text { return mustBuild(b.Build()) }

// ---- Cards ----

type cardsFields struct {
	Cards []Card `json:"cards" validate:"required"`
}

type CardsBuilder struct{ f cardsFields }

func NewCardsBuilder() *CardsBuilder { return &CardsBuilder{} }

// Cards sets the card list. An empty (or nil) list still counts as set and
// renders as [].
func (b *CardsBuilder) Cards(cards []Card) *CardsBuilder {
	b.f.Cards = cloneSlice(cards)
	return b
}

// Build returns a *BuildError when the card list was never set.
func (b *CardsBuilder) Build() (Cards, error) {
	return finalize("Cards", &b.f, func(f *cardsFields) Cards {
		return Cards{cards: cloneSlice(f.Cards)}
	})
}

func (b *CardsBuilder) MustBuild() Cards { return mustBuild(b.Build()) }

// ---- Card ----

type cardFields struct {
	Header   *Header   `json:"header"`
	Sections []Section `json:"sections"`
}

type CardBuilder struct{ f cardFields }

func NewCardBuilder() *CardBuilder { return &CardBuilder{} }

func (b *CardBuilder) Header(h Header) *CardBuilder {
	b.f.Header = &h
	return b
}

func (b *CardBuilder) Sections(sections []Section) *CardBuilder {
	b.f.Sections = cloneSlice(sections)
	return b
}

func (b *CardBuilder) Build() (Card, error) {
	return finalize("Card", &b.f, func(f *cardFields) Card {
		return Card{header: clonePtr(f.Header), sections: cloneOpt(f.Sections)}
	})
}

func (b *CardBuilder) MustBuild() Card { return mustBuild(b.Build()) }

// ---- Header ----

type headerFields struct {
	Title      *string `json:"title"`
	Subtitle   *string `json:"subtitle"`
	ImageURL   *string `json:"imageUrl"`
	ImageStyle *string `json:"imageStyle"`
}

type HeaderBuilder struct{ f headerFields }

func NewHeaderBuilder() *HeaderBuilder { return &HeaderBuilder{} }

func (b *HeaderBuilder) Title(v string) *HeaderBuilder {
	b.f.Title = &v
	return b
}

func (b *HeaderBuilder) Subtitle(v string) *HeaderBuilder {
	b.f.Subtitle = &v
	return b
}

func (b *HeaderBuilder) ImageURL(v string) *HeaderBuilder {
	b.f.ImageURL = &v
	return b
}

func (b *HeaderBuilder) ImageStyle(v string) *HeaderBuilder {
	b.f.ImageStyle = &v
	return b
}

func (b *HeaderBuilder) Build() (Header, error) {
	return finalize("Header", &b.f, func(f *headerFields) Header {
		return Header{
			title:      clonePtr(f.Title),
			subtitle:   clonePtr(f.Subtitle),
			imageURL:   clonePtr(f.ImageURL),
			imageStyle: clonePtr(f.ImageStyle),
		}
	})
}

func (b *HeaderBuilder) MustBuild() Header { return mustBuild(b.Build()) }

// ---- Section ----

type sectionFields struct {
	Header  *string  `json:"header"`
	Widgets []Widget `json:"widgets"`
}

type SectionBuilder struct{ f sectionFields }

func NewSectionBuilder() *SectionBuilder { return &SectionBuilder{} }

func (b *SectionBuilder) Header(v string) *SectionBuilder {
	b.f.Header = &v
	return b
}

func (b *SectionBuilder) Widgets(widgets []Widget) *SectionBuilder {
	b.f.Widgets = cloneSlice(widgets)
	return b
}

func (b *SectionBuilder) Build() (Section, error) {
	return finalize("Section", &b.f, func(f *sectionFields) Section {
		return Section{header: clonePtr(f.Header), widgets: cloneOpt(f.Widgets)}
	})
}

func (b *SectionBuilder) MustBuild() Section { return mustBuild(b.Build()) }

// ---- Widget ----

type widgetFields struct {
	TextParagraph *TextParagraph `json:"textParagraph"`
	KeyValue      *KeyValue      `json:"keyValue"`
	Image         *Image         `json:"image"`
	Buttons       []Button       `json:"buttons"`
}

type WidgetBuilder struct{ f widgetFields }

func NewWidgetBuilder() *WidgetBuilder { return &WidgetBuilder{} }

func (b *WidgetBuilder) TextParagraph(v TextParagraph) *WidgetBuilder {
	b.f.TextParagraph = &v
	return b
}

func (b *WidgetBuilder) KeyValue(v KeyValue) *WidgetBuilder {
	b.f.KeyValue = &v
	return b
}

func (b *WidgetBuilder) Image(v Image) *WidgetBuilder {
	b.f.Image = &v
	return b
}

func (b *WidgetBuilder) Buttons(buttons []Button) *WidgetBuilder {
	b.f.Buttons = cloneSlice(buttons)
	return b
}

func (b *WidgetBuilder) Build() (Widget, error) {
	return finalize("Widget", &b.f, func(f *widgetFields) Widget {
		return Widget{
			textParagraph: clonePtr(f.TextParagraph),
			keyValue:      clonePtr(f.KeyValue),
			image:         clonePtr(f.Image),
			buttons:       cloneOpt(f.Buttons),
		}
	})
}

func (b *WidgetBuilder) MustBuild() Widget { return mustBuild(b.Build()) }

// ---- TextParagraph ----

type textParagraphFields struct {
	Text *string `json:"text" validate:"required"`
}

type TextParagraphBuilder struct{ f textParagraphFields }

func NewTextParagraphBuilder() *TextParagraphBuilder { return &TextParagraphBuilder{} }

func (b *TextParagraphBuilder) Text(text string) *TextParagraphBuilder {
	b.f.Text = &text
	return b
}

func (b *TextParagraphBuilder) Build() (TextParagraph, error) {
	return finalize("TextParagraph", &b.f, func(f *textParagraphFields) TextParagraph {
		return TextParagraph{text: *f.Text}
	})
}

func (b *TextParagraphBuilder) MustBuild() TextParagraph { return mustBuild(b.Build()) }

// ---- KeyValue ----

type keyValueFields struct {
	TopLabel         *string  `json:"topLabel"`
	Content          *string  `json:"content"`
	Icon             *string  `json:"icon"`
	ContentMultiline *string  `json:"contentMultiline"`
	BottomLabel      *string  `json:"bottomLabel"`
	OnClick          *OnClick `json:"onClick"`
	Button           *Button  `json:"button"`
}

type KeyValueBuilder struct{ f keyValueFields }

func NewKeyValueBuilder() *KeyValueBuilder { return &KeyValueBuilder{} }

func (b *KeyValueBuilder) TopLabel(v string) *KeyValueBuilder {
	b.f.TopLabel = &v
	return b
}

func (b *KeyValueBuilder) Content(v string) *KeyValueBuilder {
	b.f.Content = &v
	return b
}

func (b *KeyValueBuilder) Icon(v string) *KeyValueBuilder {
	b.f.Icon = &v
	return b
}

func (b *KeyValueBuilder) BottomLabel(v string) *KeyValueBuilder {
	b.f.BottomLabel = &v
	return b
}

// ContentMultiline is a string on the wire ("true"/"false").
func (b *KeyValueBuilder) ContentMultiline(v string) *KeyValueBuilder {
	b.f.ContentMultiline = &v
	return b
}

func (b *KeyValueBuilder) OnClick(v OnClick) *KeyValueBuilder {
	b.f.OnClick = &v
	return b
}

func (b *KeyValueBuilder) Button(v Button) *KeyValueBuilder {
	b.f.Button = &v
	return b
}

func (b *KeyValueBuilder) Build() (KeyValue, error) {
	return finalize("KeyValue", &b.f, func(f *keyValueFields) KeyValue {
		return KeyValue{
			topLabel:         clonePtr(f.TopLabel),
			content:          clonePtr(f.Content),
			icon:             clonePtr(f.Icon),
			contentMultiline: clonePtr(f.ContentMultiline),
			bottomLabel:      clonePtr(f.BottomLabel),
			onClick:          clonePtr(f.OnClick),
			button:           clonePtr(f.Button),
		}
	})
}

func (b *KeyValueBuilder) MustBuild() KeyValue { return mustBuild(b.Build()) }

// ---- Image ----

type imageFields struct {
	ImageURL *string  `json:"imageUrl"`
	OnClick  *OnClick `json:"onClick"`
}

type ImageBuilder struct{ f imageFields }

func NewImageBuilder() *ImageBuilder { return &ImageBuilder{} }

func (b *ImageBuilder) ImageURL(v string) *ImageBuilder {
	b.f.ImageURL = &v
	return b
}

func (b *ImageBuilder) OnClick(v OnClick) *ImageBuilder {
	b.f.OnClick = &v
	return b
}

func (b *ImageBuilder) Build() (Image, error) {
	return finalize("Image", &b.f, func(f *imageFields) Image {
		return Image{imageURL: clonePtr(f.ImageURL), onClick: clonePtr(f.OnClick)}
	})
}

func (b *ImageBuilder) MustBuild() Image { return mustBuild(b.Build()) }

// ---- Button ----

type buttonFields struct {
	TextButton  *TextButton  `json:"textButton"`
	ImageButton *ImageButton `json:"imageButton"`
}

type ButtonBuilder struct{ f buttonFields }

func NewButtonBuilder() *ButtonBuilder { return &ButtonBuilder{} }

func (b *ButtonBuilder) TextButton(v TextButton) *ButtonBuilder {
	b.f.TextButton = &v
	return b
}

func (b *ButtonBuilder) ImageButton(v ImageButton) *ButtonBuilder {
	b.f.ImageButton = &v
	return b
}

func (b *ButtonBuilder) Build() (Button, error) {
	return finalize("Button", &b.f, func(f *buttonFields) Button {
		return Button{textButton: clonePtr(f.TextButton), imageButton: clonePtr(f.ImageButton)}
	})
}

func (b *ButtonBuilder) MustBuild() Button { return mustBuild(b.Build()) }

// ---- TextButton ----

type textButtonFields struct {
	Text    *string  `json:"text"`
	OnClick *OnClick `json:"onClick"`
}

type TextButtonBuilder struct{ f textButtonFields }

func NewTextButtonBuilder() *TextButtonBuilder { return &TextButtonBuilder{} }

func (b *TextButtonBuilder) Text(v string) *TextButtonBuilder {
	b.f.Text = &v
	return b
}

func (b *TextButtonBuilder) OnClick(v OnClick) *TextButtonBuilder {
	b.f.OnClick = &v
	return b
}

func (b *TextButtonBuilder) Build() (TextButton, error) {
	return finalize("TextButton", &b.f, func(f *textButtonFields) TextButton {
		return TextButton{text: clonePtr(f.Text), onClick: clonePtr(f.OnClick)}
	})
}

func (b *TextButtonBuilder) MustBuild() TextButton { return mustBuild(b.Build()) }

// ---- ImageButton ----

type imageButtonFields struct {
	IconURL *string  `json:"iconUrl"`
	Icon    *string  `json:"icon"`
	OnClick *OnClick `json:"onClick"`
}

type ImageButtonBuilder struct{ f imageButtonFields }

func NewImageButtonBuilder() *ImageButtonBuilder { return &ImageButtonBuilder{} }

func (b *ImageButtonBuilder) IconURL(v string) *ImageButtonBuilder {
	b.f.IconURL = &v
	return b
}

func (b *ImageButtonBuilder) Icon(v string) *ImageButtonBuilder {
	b.f.Icon = &v
	return b
}

func (b *ImageButtonBuilder) OnClick(v OnClick) *ImageButtonBuilder {
	b.f.OnClick = &v
	return b
}

func (b *ImageButtonBuilder) Build() (ImageButton, error) {
	return finalize("ImageButton", &b.f, func(f *imageButtonFields) ImageButton {
		return ImageButton{iconURL: clonePtr(f.IconURL), icon: clonePtr(f.Icon), onClick: clonePtr(f.OnClick)}
	})
}

func (b *ImageButtonBuilder) MustBuild() ImageButton { return mustBuild(b.Build()) }

// ---- OnClick ----

type onClickFields struct {
	OpenLink *OpenLink `json:"openLink" validate:"required"`
}

type OnClickBuilder struct{ f onClickFields }

func NewOnClickBuilder() *OnClickBuilder { return &OnClickBuilder{} }

func (b *OnClickBuilder) OpenLink(v OpenLink) *OnClickBuilder {
	b.f.OpenLink = &v
	return b
}

// Build returns a *BuildError when openLink is unset.
func (b *OnClickBuilder) Build() (OnClick, error) {
	return finalize("OnClick", &b.f, func(f *onClickFields) OnClick {
		return OnClick{openLink: *f.OpenLink}
	})
}

func (b *OnClickBuilder) MustBuild() OnClick { return mustBuild(b.Build()) }

// ---- OpenLink ----

type openLinkFields struct {
	URL *string `json:"url" validate:"required"`
}

type OpenLinkBuilder struct{ f openLinkFields }

func NewOpenLinkBuilder() *OpenLinkBuilder { return &OpenLinkBuilder{} }

func (b *OpenLinkBuilder) URL(url string) *OpenLinkBuilder {
	b.f.URL = &url
	return b
}

// Build returns a *BuildError when url is unset.
func (b *OpenLinkBuilder) Build() (OpenLink, error) {
	return finalize("OpenLink", &b.f, func(f *openLinkFields) OpenLink {
		return OpenLink{url: *f.URL}
	})
}

func (b *OpenLinkBuilder) MustBuild() OpenLink { return mustBuild(b.Build()) }
