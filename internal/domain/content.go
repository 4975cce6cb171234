package domain

// ItemType tags one classified unit of source content. The four values are
// mutually exclusive and exhaustive.
type ItemType string

const (
	ItemHeading     ItemType = "heading"
	ItemQuestion    ItemType = "question"
	ItemAnswerBlock ItemType = "answer_block"
	ItemParagraph   ItemType = "paragraph"
)

// LayoutType names one of the three recognized visual arrangements of answer
// options within an answer block.
type LayoutType string

const (
	// LayoutInline puts all options sequentially on one logical line.
	LayoutInline LayoutType = "inline"
	// LayoutTwoLine pairs the first two options on one line and the
	// remaining two on a second line.
	LayoutTwoLine LayoutType = "two_line"
	// LayoutFourLine gives each option its own line.
	LayoutFourLine LayoutType = "four_line"
)

// AnswerOption is a single labeled option within an answer block. Order
// within the block is meaningful and must be preserved.
type AnswerOption struct {
	Option string `json:"option"`
	Text   string `json:"text"`
}

// ItemMetadata carries optional numbering extracted during classification.
type ItemMetadata struct {
	QuestionNumber int `json:"questionNumber,omitempty"`
	HeadingLevel   int `json:"headingLevel,omitempty"`
}

// ContentItem is one classified unit of source content. Items are created
// once per classification pass, never mutated afterwards, and consumed
// exactly once by the formatter.
//
// LayoutType and Answers are only meaningful when Type is ItemAnswerBlock;
// Content carries the payload for the other three types.
type ContentItem struct {
	Type       ItemType       `json:"type"`
	LayoutType LayoutType     `json:"layoutType,omitempty"`
	Content    string         `json:"content"`
	Metadata   ItemMetadata   `json:"metadata,omitzero"`
	Answers    []AnswerOption `json:"answers,omitempty"`
}
