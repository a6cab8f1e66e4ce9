package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/list"

	"github.com/reoring/chatcard"
)

// renderTree draws the message as an indented outline, one line per entity,
// with its scalar fields inline.
func renderTree(m chatcard.Message) string {
	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedRounded)
	switch v := m.(type) {
	case chatcard.Text:
		l.AppendItem(label("Text", kv("text", v.Text(), true)))
	case chatcard.Cards:
		cards := v.Cards()
		l.AppendItem(fmt.Sprintf("Cards (%d)", len(cards)))
		l.Indent()
		for i, c := range cards {
			treeCard(l, i, c)
		}
		l.UnIndent()
	}
	return l.Render()
}

func treeCard(l list.Writer, i int, c chatcard.Card) {
	l.AppendItem(fmt.Sprintf("Card %d", i))
	l.Indent()
	if h, ok := c.Header(); ok {
		l.AppendItem(label("Header",
			opt("title", h.Title), opt("subtitle", h.Subtitle),
			opt("imageUrl", h.ImageURL), opt("imageStyle", h.ImageStyle)))
	}
	for j, s := range c.Sections() {
		l.AppendItem(label(fmt.Sprintf("Section %d", j), opt("header", s.Header)))
		l.Indent()
		for k, w := range s.Widgets() {
			treeWidget(l, k, w)
		}
		l.UnIndent()
	}
	l.UnIndent()
}

func treeWidget(l list.Writer, i int, w chatcard.Widget) {
	l.AppendItem(fmt.Sprintf("Widget %d", i))
	l.Indent()
	if tp, ok := w.TextParagraph(); ok {
		l.AppendItem(label("TextParagraph", kv("text", tp.Text(), true)))
	}
	if k, ok := w.KeyValue(); ok {
		l.AppendItem(label("KeyValue",
			opt("topLabel", k.TopLabel), opt("content", k.Content), opt("icon", k.Icon),
			opt("contentMultiline", k.ContentMultiline), opt("bottomLabel", k.BottomLabel)))
		l.Indent()
		if oc, ok := k.OnClick(); ok {
			treeOnClick(l, oc)
		}
		if b, ok := k.Button(); ok {
			treeButton(l, b)
		}
		l.UnIndent()
	}
	if img, ok := w.Image(); ok {
		l.AppendItem(label("Image", opt("imageUrl", img.ImageURL)))
		if oc, ok := img.OnClick(); ok {
			l.Indent()
			treeOnClick(l, oc)
			l.UnIndent()
		}
	}
	for _, b := range w.Buttons() {
		treeButton(l, b)
	}
	l.UnIndent()
}

func treeButton(l list.Writer, b chatcard.Button) {
	if tb, ok := b.TextButton(); ok {
		l.AppendItem(label("TextButton", opt("text", tb.Text)))
		if oc, ok := tb.OnClick(); ok {
			l.Indent()
			treeOnClick(l, oc)
			l.UnIndent()
		}
	}
	if ib, ok := b.ImageButton(); ok {
		l.AppendItem(label("ImageButton", opt("iconUrl", ib.IconURL), opt("icon", ib.Icon)))
		if oc, ok := ib.OnClick(); ok {
			l.Indent()
			treeOnClick(l, oc)
			l.UnIndent()
		}
	}
	if _, ok := b.TextButton(); !ok {
		if _, ok := b.ImageButton(); !ok {
			l.AppendItem("Button")
		}
	}
}

func treeOnClick(l list.Writer, oc chatcard.OnClick) {
	l.AppendItem(label("OpenLink", kv("url", oc.OpenLink().URL(), true)))
}

func label(name string, fields ...string) string {
	var parts []string
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	if len(parts) == 0 {
		return name
	}
	return name + " " + strings.Join(parts, " ")
}

func opt(key string, get func() (string, bool)) string {
	v, ok := get()
	return kv(key, v, ok)
}

func kv(key, v string, ok bool) string {
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s=%q", key, v)
}
