package grading

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Submission maps a question ID (as a decimal string, since JSON object keys
// are strings) to the respondent's chosen answer. Unanswered questions are
// simply absent.
type Submission map[string]interface{}

// ErrBadSubmission is returned when a stored submission cannot be parsed.
var ErrBadSubmission = errors.New("submission is not a valid answer mapping")

// Key renders a question ID the way submission keys are stored
func Key(questionID uint) string {
	return strconv.FormatUint(uint64(questionID), 10)
}

// Answer returns the submitted answer for a question, if any
func (s Submission) Answer(questionID uint) (interface{}, bool) {
	v, ok := s[Key(questionID)]
	return v, ok
}

// ParseSubmission normalizes a persisted submission into a Submission.
// It accepts a structured map directly, or a JSON-encoded form as []byte or
// string. Malformed input yields an empty Submission and ErrBadSubmission,
// never a panic: callers surface the discrepancy instead of crashing.
func ParseSubmission(raw interface{}) (Submission, error) {
	switch v := raw.(type) {
	case nil:
		return Submission{}, ErrBadSubmission
	case Submission:
		return v, nil
	case map[string]interface{}:
		return Submission(v), nil
	case []byte:
		return parseJSON(v)
	case string:
		return parseJSON([]byte(v))
	default:
		// datatypes.JSON and friends are defined on []byte
		if m, ok := raw.(interface{ MarshalJSON() ([]byte, error) }); ok {
			b, err := m.MarshalJSON()
			if err != nil {
				return Submission{}, ErrBadSubmission
			}
			return parseJSON(b)
		}
		return Submission{}, ErrBadSubmission
	}
}

func parseJSON(b []byte) (Submission, error) {
	if len(b) == 0 {
		return Submission{}, ErrBadSubmission
	}
	var sub Submission
	if err := json.Unmarshal(b, &sub); err != nil || sub == nil {
		return Submission{}, ErrBadSubmission
	}
	return sub, nil
}

// CoerceAnswer normalizes an answer designator to an integer for comparison.
// Letters map to their ordinal position ("A" -> 0, "b" -> 1), numeric values
// and numeric strings pass through, and anything else (including a missing
// answer) coerces to -1, which can never equal a valid designator.
func CoerceAnswer(v interface{}) int {
	const sentinel = -1

	switch a := v.(type) {
	case nil:
		return sentinel
	case int:
		return nonNegative(a)
	case int64:
		return nonNegative(int(a))
	case uint:
		return int(a)
	case float64:
		// JSON numbers decode as float64
		return nonNegative(int(a))
	case json.Number:
		n, err := a.Int64()
		if err != nil {
			return sentinel
		}
		return nonNegative(int(n))
	case string:
		s := strings.TrimSpace(a)
		if len(s) == 1 && unicode.IsLetter(rune(s[0])) {
			return int(unicode.ToUpper(rune(s[0])) - 'A')
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return sentinel
		}
		return nonNegative(n)
	default:
		return sentinel
	}
}

func nonNegative(n int) int {
	if n < 0 {
		return -1
	}
	return n
}
