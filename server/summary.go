package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mentraflow/mcp/export"
)

const pending = "Processing..."

func formatSummary(count int, result *export.Result) string {
	builder := &strings.Builder{}
	fmt.Fprintf(builder, "✅ Successfully exported %d conversation(s) to MentraFlow!\n\n", count)
	builder.WriteString("📊 Processing Summary:\n")
	fmt.Fprintf(builder, "- Concepts extracted: %s\n", displayValue(result.ConceptsExtracted, pending))
	fmt.Fprintf(builder, "- Quizzes generated: %s\n", displayValue(result.QuizzesGenerated, pending))
	fmt.Fprintf(builder, "- Import ID: %s\n", displayValue(result.ImportID, "N/A"))
	if result.Message != "" {
		fmt.Fprintf(builder, "- Status: %s\n", result.Message)
	}
	builder.WriteString("\nYour knowledge graph is being updated. Check MentraFlow dashboard for new concepts and quizzes!")
	return builder.String()
}

// countConversations returns the number of elements when raw is a JSON array.
func countConversations(raw json.RawMessage) int {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return 0
	}
	return len(items)
}

// displayValue renders a backend value, substituting fallback for empty,
// null, zero, false or blank string values.
func displayValue(raw json.RawMessage, fallback string) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return fallback
	}
	switch raw[0] {
	case 'n', 'f':
		return fallback
	case '"':
		var text string
		if err := json.Unmarshal(raw, &text); err != nil || text == "" {
			return fallback
		}
		return text
	case '{', '[', 't':
		return string(raw)
	}
	if number, err := strconv.ParseFloat(string(raw), 64); err == nil && number == 0 {
		return fallback
	}
	return string(raw)
}
