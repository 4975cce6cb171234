// Package compose is the deterministic formatter: classified content items
// plus template rules in, ordered paragraph descriptors out. It is pure and
// stateless; identical input always yields identical output.
package compose

import (
	"fmt"

	"github.com/teachkit/teachkit/internal/docx"
	"github.com/teachkit/teachkit/internal/domain"
)

// Lead-in spacing for headings and questions, in twips.
const leadInSpacing = 100

// Format processes items strictly in order, dispatching on item type.
// Item order maps 1:1 into paragraph emission order, except answer blocks
// which expand to one or two paragraphs; blocks with no answers emit
// nothing.
func Format(items []domain.ContentItem, rules domain.TemplateRules) []docx.Paragraph {
	var paragraphs []docx.Paragraph
	for _, item := range items {
		switch item.Type {
		case domain.ItemHeading:
			paragraphs = append(paragraphs, formatHeading(item, rules.HeadingFormats))
		case domain.ItemQuestion:
			paragraphs = append(paragraphs, formatQuestion(item.Content, rules.ParagraphFormats))
		case domain.ItemAnswerBlock:
			if len(item.Answers) > 0 {
				paragraphs = append(paragraphs, formatAnswerBlock(item, rules)...)
			}
		case domain.ItemParagraph:
			paragraphs = append(paragraphs, formatParagraph(item.Content, rules.ParagraphFormats))
		}
	}
	return paragraphs
}

// formatAnswerBlock expands an answer block per its layout type:
//
//	inline        any count  one paragraph, options separated by tabs
//	two_line      >= 4       two paragraphs of paired options
//	two_line      < 4        one paragraph per option (four_line fallback)
//	four_line     any count  one paragraph per option
//	unrecognized  any count  treated as four_line
func formatAnswerBlock(item domain.ContentItem, rules domain.TemplateRules) []docx.Paragraph {
	style := rules.Style(item.LayoutType)

	switch item.LayoutType {
	case domain.LayoutInline:
		return []docx.Paragraph{inlineAnswers(item.Answers, style)}
	case domain.LayoutTwoLine:
		if len(item.Answers) >= 4 {
			return []docx.Paragraph{
				pairedAnswers(item.Answers[0], item.Answers[1], style),
				pairedAnswers(item.Answers[2], item.Answers[3], style),
			}
		}
		return singleAnswers(item.Answers, style)
	default:
		return singleAnswers(item.Answers, style)
	}
}

func singleAnswers(answers []domain.AnswerOption, style domain.LayoutStyle) []docx.Paragraph {
	paragraphs := make([]docx.Paragraph, len(answers))
	for i, a := range answers {
		paragraphs[i] = docx.Paragraph{
			Runs:          []docx.Run{answerRun(a, style)},
			Alignment:     alignment(style.Alignment, docx.AlignLeft),
			SpacingBefore: style.SpacingBefore,
			SpacingAfter:  style.SpacingAfter,
		}
	}
	return paragraphs
}

func pairedAnswers(first, second domain.AnswerOption, style domain.LayoutStyle) docx.Paragraph {
	return docx.Paragraph{
		Runs: []docx.Run{
			answerRun(first, style),
			tabRun(style),
			answerRun(second, style),
		},
		Alignment:     alignment(style.Alignment, docx.AlignLeft),
		SpacingBefore: style.SpacingBefore,
		SpacingAfter:  style.SpacingAfter,
		TabStops:      style.TabStops,
	}
}

func inlineAnswers(answers []domain.AnswerOption, style domain.LayoutStyle) docx.Paragraph {
	var runs []docx.Run
	for i, a := range answers {
		runs = append(runs, answerRun(a, style))
		if i < len(answers)-1 {
			runs = append(runs, tabRun(style))
		}
	}
	return docx.Paragraph{
		Runs:          runs,
		Alignment:     alignment(style.Alignment, docx.AlignLeft),
		SpacingBefore: style.SpacingBefore,
		SpacingAfter:  style.SpacingAfter,
		TabStops:      style.TabStops,
	}
}

func formatHeading(item domain.ContentItem, style domain.ReducedStyle) docx.Paragraph {
	p := docx.Paragraph{
		Runs: []docx.Run{{
			Text:           item.Content,
			Font:           style.FontName,
			SizeHalfPoints: halfPoints(style.FontSize),
			Bold:           true,
		}},
		Alignment:     alignment(style.Alignment, docx.AlignCenter),
		SpacingBefore: leadInSpacing,
		SpacingAfter:  style.SpacingAfter,
	}
	if level := item.Metadata.HeadingLevel; level >= 1 && level <= 6 {
		p.HeadingLevel = level
	}
	return p
}

// Question text is rendered bold by convention.
func formatQuestion(content string, style domain.ReducedStyle) docx.Paragraph {
	return docx.Paragraph{
		Runs: []docx.Run{{
			Text:           content,
			Font:           style.FontName,
			SizeHalfPoints: halfPoints(style.FontSize),
			Bold:           true,
		}},
		Alignment:     docx.AlignLeft,
		SpacingBefore: leadInSpacing,
		SpacingAfter:  style.SpacingAfter,
	}
}

func formatParagraph(content string, style domain.ReducedStyle) docx.Paragraph {
	return docx.Paragraph{
		Runs: []docx.Run{{
			Text:           content,
			Font:           style.FontName,
			SizeHalfPoints: halfPoints(style.FontSize),
		}},
		Alignment:    docx.AlignLeft,
		SpacingAfter: style.SpacingAfter,
	}
}

func answerRun(a domain.AnswerOption, style domain.LayoutStyle) docx.Run {
	return docx.Run{
		Text:           fmt.Sprintf("%s. %s", a.Option, a.Text),
		Font:           style.FontName,
		SizeHalfPoints: halfPoints(style.FontSize),
	}
}

func tabRun(style domain.LayoutStyle) docx.Run {
	return docx.Run{
		Tab:            true,
		Font:           style.FontName,
		SizeHalfPoints: halfPoints(style.FontSize),
	}
}

// halfPoints converts a point size into the renderer's half-point unit.
// The conversion happens here, at the paragraph-construction boundary, and
// is never stored back into the style model.
func halfPoints(points float64) int {
	return int(points * 2)
}

func alignment(a domain.Alignment, fallback docx.Alignment) docx.Alignment {
	switch a {
	case domain.AlignLeft, domain.AlignCenter, domain.AlignRight, domain.AlignJustified:
		return docx.Alignment(a)
	default:
		return fallback
	}
}
