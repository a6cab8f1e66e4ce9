// Package manifest decodes YAML message descriptions into chatcard messages.
//
// Keys mirror the wire names of the JSON body, so a manifest reads like the
// message it produces:
//
//	cards:
//	  - header:
//	      title: Deploy finished
//	    sections:
//	      - widgets:
//	          - textParagraph:
//	              text: build 42 is live
//	          - buttons:
//	              - textButton:
//	                  text: OPEN
//	                  onClick:
//	                    openLink:
//	                      url: https://example.com/builds/42
//
// Every entity goes through its chatcard builder. Problems are collected and
// returned together as chatcard.Issues with JSON Pointer paths.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/reoring/chatcard"
	"github.com/reoring/chatcard/i18n"
)

// Decode parses a single YAML document into a Text or Cards message.
func Decode(data []byte) (chatcard.Message, error) {
	return DecodeReader(bytes.NewReader(data))
}

// DecodeReader is like Decode but reads the document from r.
func DecodeReader(r io.Reader) (chatcard.Message, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
		it := chatcard.Root().Issue(chatcard.CodeParseError, i18n.T(chatcard.CodeParseError, nil))
		it.Cause = err
		it.Hint = err.Error()
		return nil, chatcard.Issues{it}
	}
	d := &decoder{}
	msg, ok := d.message(&doc, chatcard.Root())
	if len(d.iss) > 0 {
		return nil, d.iss
	}
	if !ok {
		return nil, fmt.Errorf("manifest: message not built")
	}
	return msg, nil
}

type decoder struct {
	iss chatcard.Issues
}

func (d *decoder) add(p chatcard.PathRef, n *yaml.Node, code, hint string) {
	var it chatcard.Issue
	if n != nil {
		it = p.Issue(code, i18n.T(code, nil), "line", n.Line, "column", n.Column)
	} else {
		it = p.Issue(code, i18n.T(code, nil))
	}
	it.Hint = hint
	d.iss = chatcard.AppendIssues(d.iss, it)
}

// built records a builder failure at p and reports whether the build
// succeeded.
func (d *decoder) built(p chatcard.PathRef, n *yaml.Node, err error) bool {
	if err == nil {
		return true
	}
	var it chatcard.Issue
	if be, ok := chatcard.AsBuildError(err); ok {
		it = chatcard.IssueFromBuild(p, be)
	} else {
		it = p.Issue(chatcard.CodeParseError, err.Error())
		it.Cause = err
	}
	if n = resolve(n); n != nil {
		it.Params = map[string]any{"line": n.Line, "column": n.Column}
	}
	d.iss = chatcard.AppendIssues(d.iss, it)
	return false
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && (n.Kind == yaml.AliasNode || n.Kind == yaml.DocumentNode) {
		if n.Kind == yaml.AliasNode {
			n = n.Alias
			continue
		}
		if len(n.Content) == 0 {
			return nil
		}
		n = n.Content[0]
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

// mapping returns the values of a mapping node keyed by name, reporting
// unknown and duplicate keys. allowed lists the accepted keys.
func (d *decoder) mapping(n *yaml.Node, p chatcard.PathRef, allowed ...string) (map[string]*yaml.Node, bool) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		d.add(p, n, chatcard.CodeInvalidType, "expected a mapping")
		return nil, false
	}
	known := make(map[string]struct{}, len(allowed))
	for _, k := range allowed {
		known[k] = struct{}{}
	}
	out := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		kn, vn := n.Content[i], n.Content[i+1]
		key := kn.Value
		if _, ok := known[key]; !ok {
			d.add(p.Field(key), kn, chatcard.CodeUnknownKey, "")
			continue
		}
		if _, dup := out[key]; dup {
			d.add(p.Field(key), kn, chatcard.CodeDuplicateKey, "")
			continue
		}
		out[key] = vn
	}
	return out, true
}

// scalar reads a string value. A null value reads as absent.
func (d *decoder) scalar(n *yaml.Node, p chatcard.PathRef) (string, bool) {
	n = resolve(n)
	if isNull(n) {
		return "", false
	}
	if n.Kind != yaml.ScalarNode {
		d.add(p, n, chatcard.CodeInvalidType, "expected a string")
		return "", false
	}
	return n.Value, true
}

// sequence reads a list. A null value reads as absent; ok is false only when
// the node has the wrong shape.
func (d *decoder) sequence(n *yaml.Node, p chatcard.PathRef) (items []*yaml.Node, present, ok bool) {
	n = resolve(n)
	if isNull(n) {
		return nil, false, true
	}
	if n.Kind != yaml.SequenceNode {
		d.add(p, n, chatcard.CodeInvalidType, "expected a list")
		return nil, false, false
	}
	return n.Content, true, true
}

// setString calls set when the key holds a non-null string.
func (d *decoder) setString(m map[string]*yaml.Node, key string, p chatcard.PathRef, set func(string)) {
	n, ok := m[key]
	if !ok {
		return
	}
	if v, ok := d.scalar(n, p.Field(key)); ok {
		set(v)
	}
}

// each decodes every element of the list under key with fn. present reports
// whether the list was given; ok is false if any element failed.
func each[E any](d *decoder, m map[string]*yaml.Node, key string, p chatcard.PathRef,
	fn func(*yaml.Node, chatcard.PathRef) (E, bool),
) (out []E, present, ok bool) {
	n, has := m[key]
	if !has {
		return nil, false, true
	}
	lp := p.Field(key)
	items, present, ok := d.sequence(n, lp)
	if !ok || !present {
		return nil, present, ok
	}
	out = make([]E, 0, len(items))
	for i, item := range items {
		e, eok := fn(item, lp.Index(i))
		if !eok {
			ok = false
			continue
		}
		out = append(out, e)
	}
	return out, true, ok
}

// nested decodes the mapping under key with fn when it is present and not
// null.
func nested[E any](d *decoder, m map[string]*yaml.Node, key string, p chatcard.PathRef,
	fn func(*yaml.Node, chatcard.PathRef) (E, bool),
) (e E, present, ok bool) {
	n, has := m[key]
	if !has || isNull(resolve(n)) {
		return e, false, true
	}
	e, ok = fn(n, p.Field(key))
	return e, true, ok
}

func (d *decoder) message(n *yaml.Node, p chatcard.PathRef) (chatcard.Message, bool) {
	m, ok := d.mapping(n, p, "text", "cards")
	if !ok {
		return nil, false
	}
	_, hasText := m["text"]
	_, hasCards := m["cards"]
	switch {
	case hasText && hasCards:
		d.add(p, resolve(n), chatcard.CodeInvalidType, "text and cards are mutually exclusive")
		return nil, false
	case hasText:
		b := chatcard.NewTextBuilder()
		d.setString(m, "text", p, func(v string) { b.Text(v) })
		t, err := b.Build()
		if !d.built(p, n, err) {
			return nil, false
		}
		return t, true
	case hasCards:
		return d.cards(n, m, p)
	default:
		d.add(p, resolve(n), chatcard.CodeInvalidType, "expected text or cards")
		return nil, false
	}
}

func (d *decoder) cards(n *yaml.Node, m map[string]*yaml.Node, p chatcard.PathRef) (chatcard.Message, bool) {
	cards, present, ok := each(d, m, "cards", p, d.card)
	if !ok {
		return nil, false
	}
	b := chatcard.NewCardsBuilder()
	if present {
		b.Cards(cards)
	}
	c, err := b.Build()
	if !d.built(p, n, err) {
		return nil, false
	}
	return c, true
}

func (d *decoder) card(n *yaml.Node, p chatcard.PathRef) (chatcard.Card, bool) {
	m, ok := d.mapping(n, p, "header", "sections")
	if !ok {
		return chatcard.Card{}, false
	}
	b := chatcard.NewCardBuilder()
	h, hp, hok := nested(d, m, "header", p, d.header)
	if hp && hok {
		b.Header(h)
	}
	sections, sp, sok := each(d, m, "sections", p, d.section)
	if sp && sok {
		b.Sections(sections)
	}
	if !hok || !sok {
		return chatcard.Card{}, false
	}
	c, err := b.Build()
	return c, d.built(p, n, err)
}

func (d *decoder) header(n *yaml.Node, p chatcard.PathRef) (chatcard.Header, bool) {
	m, ok := d.mapping(n, p, "title", "subtitle", "imageUrl", "imageStyle")
	if !ok {
		return chatcard.Header{}, false
	}
	b := chatcard.NewHeaderBuilder()
	d.setString(m, "title", p, func(v string) { b.Title(v) })
	d.setString(m, "subtitle", p, func(v string) { b.Subtitle(v) })
	d.setString(m, "imageUrl", p, func(v string) { b.ImageURL(v) })
	d.setString(m, "imageStyle", p, func(v string) { b.ImageStyle(v) })
	h, err := b.Build()
	return h, d.built(p, n, err)
}

func (d *decoder) section(n *yaml.Node, p chatcard.PathRef) (chatcard.Section, bool) {
	m, ok := d.mapping(n, p, "header", "widgets")
	if !ok {
		return chatcard.Section{}, false
	}
	b := chatcard.NewSectionBuilder()
	d.setString(m, "header", p, func(v string) { b.Header(v) })
	widgets, wp, wok := each(d, m, "widgets", p, d.widget)
	if !wok {
		return chatcard.Section{}, false
	}
	if wp {
		b.Widgets(widgets)
	}
	s, err := b.Build()
	return s, d.built(p, n, err)
}

func (d *decoder) widget(n *yaml.Node, p chatcard.PathRef) (chatcard.Widget, bool) {
	m, ok := d.mapping(n, p, "textParagraph", "keyValue", "image", "buttons")
	if !ok {
		return chatcard.Widget{}, false
	}
	b := chatcard.NewWidgetBuilder()
	all := true
	if tp, present, ok := nested(d, m, "textParagraph", p, d.textParagraph); present && ok {
		b.TextParagraph(tp)
	} else {
		all = all && ok
	}
	if kv, present, ok := nested(d, m, "keyValue", p, d.keyValue); present && ok {
		b.KeyValue(kv)
	} else {
		all = all && ok
	}
	if img, present, ok := nested(d, m, "image", p, d.image); present && ok {
		b.Image(img)
	} else {
		all = all && ok
	}
	if buttons, present, ok := each(d, m, "buttons", p, d.button); present && ok {
		b.Buttons(buttons)
	} else {
		all = all && ok
	}
	if !all {
		return chatcard.Widget{}, false
	}
	w, err := b.Build()
	return w, d.built(p, n, err)
}

func (d *decoder) textParagraph(n *yaml.Node, p chatcard.PathRef) (chatcard.TextParagraph, bool) {
	m, ok := d.mapping(n, p, "text")
	if !ok {
		return chatcard.TextParagraph{}, false
	}
	b := chatcard.NewTextParagraphBuilder()
	d.setString(m, "text", p, func(v string) { b.Text(v) })
	tp, err := b.Build()
	return tp, d.built(p, n, err)
}

func (d *decoder) keyValue(n *yaml.Node, p chatcard.PathRef) (chatcard.KeyValue, bool) {
	m, ok := d.mapping(n, p, "topLabel", "content", "icon", "contentMultiline", "bottomLabel", "onClick", "button")
	if !ok {
		return chatcard.KeyValue{}, false
	}
	b := chatcard.NewKeyValueBuilder()
	d.setString(m, "topLabel", p, func(v string) { b.TopLabel(v) })
	d.setString(m, "content", p, func(v string) { b.Content(v) })
	d.setString(m, "icon", p, func(v string) { b.Icon(v) })
	d.setString(m, "contentMultiline", p, func(v string) { b.ContentMultiline(v) })
	d.setString(m, "bottomLabel", p, func(v string) { b.BottomLabel(v) })
	oc, ocp, ocok := nested(d, m, "onClick", p, d.onClick)
	if ocp && ocok {
		b.OnClick(oc)
	}
	btn, bp, bok := nested(d, m, "button", p, d.button)
	if bp && bok {
		b.Button(btn)
	}
	if !ocok || !bok {
		return chatcard.KeyValue{}, false
	}
	kv, err := b.Build()
	return kv, d.built(p, n, err)
}

func (d *decoder) image(n *yaml.Node, p chatcard.PathRef) (chatcard.Image, bool) {
	m, ok := d.mapping(n, p, "imageUrl", "onClick")
	if !ok {
		return chatcard.Image{}, false
	}
	b := chatcard.NewImageBuilder()
	d.setString(m, "imageUrl", p, func(v string) { b.ImageURL(v) })
	oc, present, ok := nested(d, m, "onClick", p, d.onClick)
	if !ok {
		return chatcard.Image{}, false
	}
	if present {
		b.OnClick(oc)
	}
	img, err := b.Build()
	return img, d.built(p, n, err)
}

func (d *decoder) button(n *yaml.Node, p chatcard.PathRef) (chatcard.Button, bool) {
	m, ok := d.mapping(n, p, "textButton", "imageButton")
	if !ok {
		return chatcard.Button{}, false
	}
	b := chatcard.NewButtonBuilder()
	tb, tp, tok := nested(d, m, "textButton", p, d.textButton)
	if tp && tok {
		b.TextButton(tb)
	}
	ib, ip, iok := nested(d, m, "imageButton", p, d.imageButton)
	if ip && iok {
		b.ImageButton(ib)
	}
	if !tok || !iok {
		return chatcard.Button{}, false
	}
	btn, err := b.Build()
	return btn, d.built(p, n, err)
}

func (d *decoder) textButton(n *yaml.Node, p chatcard.PathRef) (chatcard.TextButton, bool) {
	m, ok := d.mapping(n, p, "text", "onClick")
	if !ok {
		return chatcard.TextButton{}, false
	}
	b := chatcard.NewTextButtonBuilder()
	d.setString(m, "text", p, func(v string) { b.Text(v) })
	oc, present, ok := nested(d, m, "onClick", p, d.onClick)
	if !ok {
		return chatcard.TextButton{}, false
	}
	if present {
		b.OnClick(oc)
	}
	tb, err := b.Build()
	return tb, d.built(p, n, err)
}

func (d *decoder) imageButton(n *yaml.Node, p chatcard.PathRef) (chatcard.ImageButton, bool) {
	m, ok := d.mapping(n, p, "iconUrl", "icon", "onClick")
	if !ok {
		return chatcard.ImageButton{}, false
	}
	b := chatcard.NewImageButtonBuilder()
	d.setString(m, "iconUrl", p, func(v string) { b.IconURL(v) })
	d.setString(m, "icon", p, func(v string) { b.Icon(v) })
	oc, present, ok := nested(d, m, "onClick", p, d.onClick)
	if !ok {
		return chatcard.ImageButton{}, false
	}
	if present {
		b.OnClick(oc)
	}
	ib, err := b.Build()
	return ib, d.built(p, n, err)
}

func (d *decoder) onClick(n *yaml.Node, p chatcard.PathRef) (chatcard.OnClick, bool) {
	m, ok := d.mapping(n, p, "openLink")
	if !ok {
		return chatcard.OnClick{}, false
	}
	b := chatcard.NewOnClickBuilder()
	link, present, ok := nested(d, m, "openLink", p, d.openLink)
	if !ok {
		return chatcard.OnClick{}, false
	}
	if present {
		b.OpenLink(link)
	}
	oc, err := b.Build()
	return oc, d.built(p, n, err)
}

func (d *decoder) openLink(n *yaml.Node, p chatcard.PathRef) (chatcard.OpenLink, bool) {
	m, ok := d.mapping(n, p, "url")
	if !ok {
		return chatcard.OpenLink{}, false
	}
	b := chatcard.NewOpenLinkBuilder()
	d.setString(m, "url", p, func(v string) { b.URL(v) })
	link, err := b.Build()
	return link, d.built(p, n, err)
}
