package quiz

import (
	"regexp"
	"strings"
)

var (
	questionStartRegex = regexp.MustCompile(`^\d+\.\s*Question:\s*(.*)$`)
	optionLabelRegex   = regexp.MustCompile(`[A-C]\)\s*`)
)

// maxOptions is the number of labelled choices a generated question carries.
const maxOptions = 3

// Parse extracts questions from generated quiz text. Questions open with a
// numbered "Question:" line; "Type:", "Options:", "Answer:" and
// "Explanation:" lines fill in the open question. Text that yields no
// questions returns an empty result, not an error, so callers can decide
// how to treat an unusable generation.
func Parse(text string) []Question {
	var questions []Question
	var current *Question

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if match := questionStartRegex.FindStringSubmatch(line); match != nil {
			if current != nil {
				questions = append(questions, *current)
			}
			current = &Question{Text: strings.TrimSpace(match[1]), Kind: KindOpenEnded}
			continue
		}

		if current == nil {
			continue
		}

		switch {
		case strings.HasPrefix(line, "Type:"):
			current.Kind = normalizeKind(strings.TrimSpace(strings.TrimPrefix(line, "Type:")))
		case strings.HasPrefix(line, "Options:"):
			current.Options = parseOptions(strings.TrimSpace(strings.TrimPrefix(line, "Options:")))
		case strings.HasPrefix(line, "Answer:"):
			current.Answer = strings.TrimSpace(strings.TrimPrefix(line, "Answer:"))
		case strings.HasPrefix(line, "Explanation:"):
			current.Explanation = strings.TrimSpace(strings.TrimPrefix(line, "Explanation:"))
		}
	}

	if current != nil {
		questions = append(questions, *current)
	}

	return questions
}

// normalizeKind maps the generated type label onto a known kind. Labels the
// generator invents are kept verbatim and score as open-ended.
func normalizeKind(label string) string {
	lowered := strings.ToLower(label)
	switch {
	case strings.Contains(lowered, "multiple"):
		return KindMultipleChoice
	case strings.Contains(lowered, "open"):
		return KindOpenEnded
	default:
		return label
	}
}

// parseOptions splits an options line on A), B), C) label boundaries. The
// option text itself may contain commas, so labels are the only reliable
// delimiter. At most three options are kept.
func parseOptions(text string) []string {
	labels := optionLabelRegex.FindAllStringIndex(text, -1)
	if len(labels) == 0 {
		return nil
	}

	var options []string
	for i, label := range labels {
		if len(options) == maxOptions {
			break
		}
		start := label[1]
		end := len(text)
		if i+1 < len(labels) {
			end = labels[i+1][0]
		}
		option := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(text[start:end]), ","))
		if option != "" {
			options = append(options, option)
		}
	}

	return options
}
