package gemini

import (
	"fmt"

	"google.golang.org/genai"
)

// classificationSchema is the structured-output contract for chunk
// classification: an "items" array of typed content items.
func classificationSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"items": {
				Type:        genai.TypeArray,
				Description: "Array of classified content items",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"type": {
							Type:        genai.TypeString,
							Enum:        []string{"heading", "question", "answer_block", "paragraph"},
							Description: "Type of content",
						},
						"layoutType": {
							Type:        genai.TypeString,
							Enum:        []string{"inline", "two_line", "four_line"},
							Description: "Layout type for questions/answers",
						},
						"content": {
							Type:        genai.TypeString,
							Description: "The text content",
						},
						"questionNumber": {
							Type:        genai.TypeInteger,
							Description: "Question number if applicable",
						},
						"headingLevel": {
							Type:        genai.TypeInteger,
							Description: "Heading level 1-6 if applicable",
						},
						"answers": {
							Type:        genai.TypeArray,
							Description: "Answer options if this is an answer_block",
							Items: &genai.Schema{
								Type: genai.TypeObject,
								Properties: map[string]*genai.Schema{
									"option": {Type: genai.TypeString},
									"text":   {Type: genai.TypeString},
								},
								Required: []string{"option", "text"},
							},
						},
					},
					Required: []string{"type", "content"},
				},
			},
		},
		Required: []string{"items"},
	}
}

func layoutStyleSchema(withTabStops bool) *genai.Schema {
	props := map[string]*genai.Schema{
		"fontName":      {Type: genai.TypeString},
		"fontSize":      {Type: genai.TypeNumber},
		"spacingBefore": {Type: genai.TypeNumber},
		"spacingAfter":  {Type: genai.TypeNumber},
		"alignment": {
			Type: genai.TypeString,
			Enum: []string{"left", "center", "right", "justified"},
		},
	}
	if withTabStops {
		props["tabStops"] = &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeNumber},
		}
	}
	return &genai.Schema{Type: genai.TypeObject, Properties: props}
}

// templateSchema is the structured-output contract for template analysis:
// per-layout-type styles plus heading and paragraph formats.
func templateSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"questionLayouts": {
				Type:        genai.TypeObject,
				Description: "Formatting rules for different question layout types",
				Properties: map[string]*genai.Schema{
					"inline":    layoutStyleSchema(true),
					"two_line":  layoutStyleSchema(true),
					"four_line": layoutStyleSchema(false),
				},
			},
			"headingFormats": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"fontName": {Type: genai.TypeString},
					"fontSize": {Type: genai.TypeNumber},
					"alignment": {
						Type: genai.TypeString,
						Enum: []string{"left", "center", "right", "justified"},
					},
					"spacingAfter": {Type: genai.TypeNumber},
				},
			},
			"paragraphFormats": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"fontName":     {Type: genai.TypeString},
					"fontSize":     {Type: genai.TypeNumber},
					"spacingAfter": {Type: genai.TypeNumber},
				},
			},
		},
		Required: []string{"questionLayouts", "headingFormats", "paragraphFormats"},
	}
}

// tableSchema is the structured-output contract for vision table
// extraction. Data rows use generic Column_1..Column_N keys that are
// remapped onto the extracted headers afterwards; every column is required
// so the model returns a value even when a cell is empty.
func tableSchema(maxColumns int) *genai.Schema {
	columns := map[string]*genai.Schema{}
	required := make([]string, 0, maxColumns)
	for i := 1; i <= maxColumns; i++ {
		name := fmt.Sprintf("Column_%d", i)
		columns[name] = &genai.Schema{
			Type: genai.TypeString,
			Description: fmt.Sprintf("The value from column %d of the table. If the cell is fragmented"+
				" across adjacent unlabeled columns, logically combine the pieces into one complete string.", i),
		}
		required = append(required, name)
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"headers": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "All column headers found in the table image, from the first row only, in column order.",
			},
			"data": {
				Type: genai.TypeArray,
				Description: fmt.Sprintf("One object per table row, keyed Column_1 to Column_%d,"+
					" mapped sequentially from the table columns.", maxColumns),
				Items: &genai.Schema{
					Type:       genai.TypeObject,
					Properties: columns,
					Required:   required,
				},
			},
		},
		Required: []string{"headers", "data"},
	}
}
