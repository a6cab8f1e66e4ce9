package chatcard

// ToWidget wraps the key-value into a Widget with only keyValue set.
func (k KeyValue) ToWidget() Widget { return Widget{keyValue: &k} }

// ToWidget wraps the image into a Widget with only image set.
func (i Image) ToWidget() Widget { return Widget{image: &i} }

// ToWidget wraps the paragraph into a Widget with only textParagraph set.
func (t TextParagraph) ToWidget() Widget { return Widget{textParagraph: &t} }

// ButtonsWidget returns a Widget holding only the given buttons.
func ButtonsWidget(buttons ...Button) Widget { return Widget{buttons: cloneSlice(buttons)} }

func (t TextButton) ToButton() Button  { return Button{textButton: &t} }
func (i ImageButton) ToButton() Button { return Button{imageButton: &i} }

// ToOnClick wraps the link into its click action.
func (o OpenLink) ToOnClick() OnClick { return OnClick{openLink: o} }

// ToCards returns a card message holding only this card.
func (c Card) ToCards() Cards { return NewCards(c) }

// NewCards returns a card message with the given cards, in order. With no
// arguments it renders as {"cards":[]}.
func NewCards(cards ...Card) Cards { return Cards{cards: cloneSlice(cards)} }
