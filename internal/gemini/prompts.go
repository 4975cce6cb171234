package gemini

import "fmt"

func classifyPrompt(chunk string) string {
	return fmt.Sprintf(`You are a document content classifier. Classify each piece of content in this document chunk.

CONTENT TO CLASSIFY:
%s

CLASSIFICATION RULES:

1. **heading**: Section headers, titles (e.g., "PART I: READING", "Section A")

2. **question**: A question line with a number (e.g., "Question 32. What should teens learn?")
   - Extract the question number
   - The question text goes in "content"

3. **answer_block**: A group of answer options (A, B, C, D)
   - CRITICAL: Detect the layout by looking at how answers are arranged in the original text:
     * **inline**: A. ... B. ... C. ... D. ... (all on one line)
     * **two_line**: A. ... B. ... on first line, then C. ... D. ... on second line
     * **four_line**: Each answer A, B, C, D on its own separate line
   - Extract each answer option and text into the "answers" array

4. **paragraph**: Regular text content that doesn't fit other categories

IMPORTANT:
- Preserve the EXACT layout as it appears in the source
- For answer_block, always include the layoutType
- Extract ALL content, don't skip anything

Return a JSON object with an "items" array containing all classified content.`, chunk)
}

func analyzePrompt(markup string) string {
	return fmt.Sprintf(`You are a document formatting analyzer. Analyze this reference document and extract EXACT formatting rules.

DOCUMENT (HTML format):
%s

TASK: Extract formatting rules for each type of content found. For questions with answer options (A, B, C, D), identify the layout type:

1. **inline**: All answers on one line (A. ... B. ... C. ... D. ...)
2. **two_line**: Answers split - A and B on first line, C and D on second line
3. **four_line**: Each answer on its own separate line

For EACH layout type you find, extract:
- fontName: The font family used (e.g., "Times New Roman", "Arial")
- fontSize: Font size in points (e.g., 12)
- spacingBefore: Space before paragraph in twips (1 point = 20 twips, so 12pt spacing = 240 twips)
- spacingAfter: Space after paragraph in twips
- alignment: "left", "center", "right", or "justified"
- tabStops: Array of tab stop positions in twips for answer spacing (1 inch = 1440 twips)

Also extract formatting for:
- headingFormats: How section headings are formatted
- paragraphFormats: How regular text paragraphs are formatted

Return a complete JSON object with rules for ALL layout types, using sensible defaults if a layout type is not found in the document.`, markup)
}

const extractTablePrompt = `You are a data extraction tool. Extract all data from the table in the image. ` +
	`The column headers must be used as keys for each object in the resulting JSON array.`
