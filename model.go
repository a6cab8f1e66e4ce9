package chatcard

// Message is a top-level webhook body: either a Text or a Cards message.
type Message interface {
	appender
	MarshalJSON() ([]byte, error)
	isMessage()
}

// Text is the minimal message: a single required text field.
type Text struct {
	text string
}

func (t Text) Text() string { return t.text }

func (Text) isMessage() {}

func (t Text) MarshalJSON() ([]byte, error) { return t.appendJSON(nil) }

func (t Text) appendJSON(dst []byte) ([]byte, error) {
	w := newObjectWriter(dst)
	w.str("text", t.text)
	return w.close()
}

// Cards is the card message. Its card list is required but may be empty.
type Cards struct {
	cards []Card
}

// Cards returns a copy of the card list.
func (c Cards) Cards() []Card { return cloneSlice(c.cards) }

func (Cards) isMessage() {}

func (c Cards) MarshalJSON() ([]byte, error) { return c.appendJSON(nil) }

func (c Cards) appendJSON(dst []byte) ([]byte, error) {
	w := newObjectWriter(dst)
	writeArray(w, "cards", c.cards, true)
	return w.close()
}

// Card is one card of a card message. The zero value is the empty card.
type Card struct {
	header   *Header
	sections []Section
}

func (c Card) Header() (Header, bool) { return deref(c.header) }

// Sections returns a copy of the section list, or nil when absent.
func (c Card) Sections() []Section { return cloneOpt(c.sections) }

func (c Card) MarshalJSON() ([]byte, error) { return c.appendJSON(nil) }

func (c Card) appendJSON(dst []byte) ([]byte, error) {
	w := newObjectWriter(dst)
	if c.header != nil {
		w.obj("header", c.header)
	}
	writeArray(w, "sections", c.sections, false)
	return w.close()
}

// Header is the card header. Every field is optional; the zero value
// renders as {}.
type Header struct {
	title      *string
	subtitle   *string
	imageURL   *string
	imageStyle *string
}

func (h Header) Title() (string, bool)      { return deref(h.title) }
func (h Header) Subtitle() (string, bool)   { return deref(h.subtitle) }
func (h Header) ImageURL() (string, bool)   { return deref(h.imageURL) }
func (h Header) ImageStyle() (string, bool) { return deref(h.imageStyle) }

func (h Header) MarshalJSON() ([]byte, error) { return h.appendJSON(nil) }

func (h Header) appendJSON(dst []byte) ([]byte, error) {
	w := newObjectWriter(dst)
	w.optStr("title", h.title)
	w.optStr("subtitle", h.subtitle)
	w.optStr("imageUrl", h.imageURL)
	w.optStr("imageStyle", h.imageStyle)
	return w.close()
}

type Section struct {
	header  *string
	widgets []Widget
}

func (s Section) Header() (string, bool) { return deref(s.header) }

// Widgets returns a copy of the widget list, or nil when absent.
func (s Section) Widgets() []Widget { return cloneOpt(s.widgets) }

func (s Section) MarshalJSON() ([]byte, error) { return s.appendJSON(nil) }

func (s Section) appendJSON(dst []byte) ([]byte, error) {
	w := newObjectWriter(dst)
	w.optStr("header", s.header)
	writeArray(w, "widgets", s.widgets, false)
	return w.close()
}

// Widget holds one piece of section content. Exactly one field is expected to
// be set, but this is not enforced.
type Widget struct {
	textParagraph *TextParagraph
	keyValue      *KeyValue
	image         *Image
	buttons       []Button
}

func (w Widget) TextParagraph() (TextParagraph, bool) { return deref(w.textParagraph) }
func (w Widget) KeyValue() (KeyValue, bool)           { return deref(w.keyValue) }
func (w Widget) Image() (Image, bool)                 { return deref(w.image) }

// Buttons returns a copy of the button list, or nil when absent.
func (w Widget) Buttons() []Button { return cloneOpt(w.buttons) }

func (w Widget) MarshalJSON() ([]byte, error) { return w.appendJSON(nil) }

func (w Widget) appendJSON(dst []byte) ([]byte, error) {
	ow := newObjectWriter(dst)
	if w.textParagraph != nil {
		ow.obj("textParagraph", w.textParagraph)
	}
	if w.keyValue != nil {
		ow.obj("keyValue", w.keyValue)
	}
	if w.image != nil {
		ow.obj("image", w.image)
	}
	writeArray(ow, "buttons", w.buttons, false)
	return ow.close()
}

type TextParagraph struct {
	text string
}

func (t TextParagraph) Text() string { return t.text }

func (t TextParagraph) MarshalJSON() ([]byte, error) { return t.appendJSON(nil) }

func (t TextParagraph) appendJSON(dst []byte) ([]byte, error) {
	w := newObjectWriter(dst)
	w.str("text", t.text)
	return w.close()
}

type KeyValue struct {
	topLabel         *string
	content          *string
	icon             *string
	contentMultiline *string
	bottomLabel      *string
	onClick          *OnClick
	button           *Button
}

func (k KeyValue) TopLabel() (string, bool)         { return deref(k.topLabel) }
func (k KeyValue) Content() (string, bool)          { return deref(k.content) }
func (k KeyValue) Icon() (string, bool)             { return deref(k.icon) }
func (k KeyValue) ContentMultiline() (string, bool) { return deref(k.contentMultiline) }
func (k KeyValue) BottomLabel() (string, bool)      { return deref(k.bottomLabel) }
func (k KeyValue) OnClick() (OnClick, bool)         { return deref(k.onClick) }
func (k KeyValue) Button() (Button, bool)           { return deref(k.button) }

func (k KeyValue) MarshalJSON() ([]byte, error) { return k.appendJSON(nil) }

func (k KeyValue) appendJSON(dst []byte) ([]byte, error) {
	w := newObjectWriter(dst)
	w.optStr("topLabel", k.topLabel)
	w.optStr("content", k.content)
	w.optStr("icon", k.icon)
	w.optStr("contentMultiline", k.contentMultiline)
	w.optStr("bottomLabel", k.bottomLabel)
	if k.onClick != nil {
		w.obj("onClick", k.onClick)
	}
	if k.button != nil {
		w.obj("button", k.button)
	}
	return w.close()
}

type Image struct {
	imageURL *string
	onClick  *OnClick
}

func (i Image) ImageURL() (string, bool) { return deref(i.imageURL) }
func (i Image) OnClick() (OnClick, bool) { return deref(i.onClick) }

func (i Image) MarshalJSON() ([]byte, error) { return i.appendJSON(nil) }

func (i Image) appendJSON(dst []byte) ([]byte, error) {
	w := newObjectWriter(dst)
	w.optStr("imageUrl", i.imageURL)
	if i.onClick != nil {
		w.obj("onClick", i.onClick)
	}
	return w.close()
}

type Button struct {
	textButton  *TextButton
	imageButton *ImageButton
}

func (b Button) TextButton() (TextButton, bool)   { return deref(b.textButton) }
func (b Button) ImageButton() (ImageButton, bool) { return deref(b.imageButton) }

func (b Button) MarshalJSON() ([]byte, error) { return b.appendJSON(nil) }

func (b Button) appendJSON(dst []byte) ([]byte, error) {
	w := newObjectWriter(dst)
	if b.textButton != nil {
		w.obj("textButton", b.textButton)
	}
	if b.imageButton != nil {
		w.obj("imageButton", b.imageButton)
	}
	return w.close()
}

type TextButton struct {
	text    *string
	onClick *OnClick
}

func (t TextButton) Text() (string, bool)     { return deref(t.text) }
func (t TextButton) OnClick() (OnClick, bool) { return deref(t.onClick) }

func (t TextButton) MarshalJSON() ([]byte, error) { return t.appendJSON(nil) }

func (t TextButton) appendJSON(dst []byte) ([]byte, error) {
	w := newObjectWriter(dst)
	w.optStr("text", t.text)
	if t.onClick != nil {
		w.obj("onClick", t.onClick)
	}
	return w.close()
}

type ImageButton struct {
	iconURL *string
	icon    *string
	onClick *OnClick
}

func (i ImageButton) IconURL() (string, bool)  { return deref(i.iconURL) }
func (i ImageButton) Icon() (string, bool)     { return deref(i.icon) }
func (i ImageButton) OnClick() (OnClick, bool) { return deref(i.onClick) }

func (i ImageButton) MarshalJSON() ([]byte, error) { return i.appendJSON(nil) }

func (i ImageButton) appendJSON(dst []byte) ([]byte, error) {
	w := newObjectWriter(dst)
	w.optStr("iconUrl", i.iconURL)
	w.optStr("icon", i.icon)
	if i.onClick != nil {
		w.obj("onClick", i.onClick)
	}
	return w.close()
}

// OnClick is the click action; it always carries an OpenLink.
type OnClick struct {
	openLink OpenLink
}

func (o OnClick) OpenLink() OpenLink { return o.openLink }

func (o OnClick) MarshalJSON() ([]byte, error) { return o.appendJSON(nil) }

func (o OnClick) appendJSON(dst []byte) ([]byte, error) {
	w := newObjectWriter(dst)
	w.obj("openLink", o.openLink)
	return w.close()
}

type OpenLink struct {
	url string
}

func (o OpenLink) URL() string { return o.url }

func (o OpenLink) MarshalJSON() ([]byte, error) { return o.appendJSON(nil) }

func (o OpenLink) appendJSON(dst []byte) ([]byte, error) {
	w := newObjectWriter(dst)
	w.str("url", o.url)
	return w.close()
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// cloneOpt copies s, keeping nil (absent) as nil.
func cloneOpt[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return cloneSlice(s)
}
