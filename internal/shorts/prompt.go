package shorts

import (
	"fmt"

	"github.com/pdfshorts/backend/internal/pdffile"
)

const promptTemplate = `Based on this PDF content, create 3 educational shorts. Each short should have:
1. A topic name
2. A brief summary
3. 3 multiple choice questions with 4 options each (one correct)

Format the response as JSON like this, with no text outside the JSON:
{
  "shorts": [
    {
      "topic_name": "string",
      "topic_summary": "string",
      "questions": [
        {
          "question_text": "string",
          "options": [
            {
              "option_text": "string",
              "is_correct": boolean
            }
          ]
        }
      ]
    }
  ]
}

PDF Content:
%s`

// BuildPrompt embeds at most the first pdffile.TextBudget characters of the
// document body into the generation prompt. Shorter bodies are used whole.
func BuildPrompt(body string) string {
	return fmt.Sprintf(promptTemplate, pdffile.Truncate(body, pdffile.TextBudget))
}
