package planner

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/fernvaleriano/coachpilot/pkg/entity"
)

// ExtractPlan pulls a 7-day plan out of raw completion text. It tolerates
// markdown code fences and leading/trailing prose, then validates the shape.
// Any failure yields ErrInvalidOutput so callers fall back deterministically.
func ExtractPlan(raw string) ([]entity.DayPlan, error) {
	cleaned := stripCodeFences(raw)
	jsonStr := extractJSONArray(cleaned)
	if jsonStr == "" {
		return nil, fmt.Errorf("%w: no JSON array found in response", ErrInvalidOutput)
	}

	var plan []entity.DayPlan
	if err := sonic.ConfigDefault.Unmarshal([]byte(jsonStr), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if err := ValidatePlan(plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return plan, nil
}

// ValidatePlan checks the structural invariants of a weekly plan: exactly 7
// entries, weekday indices 0-6 each appearing once, known intensities.
func ValidatePlan(plan []entity.DayPlan) error {
	if len(plan) != 7 {
		return fmt.Errorf("expected 7 day entries, got %d", len(plan))
	}
	var seen [7]bool
	for _, dp := range plan {
		if dp.Day < 0 || dp.Day > 6 {
			return fmt.Errorf("day index %d out of range", dp.Day)
		}
		if seen[dp.Day] {
			return fmt.Errorf("duplicate entry for day %d", dp.Day)
		}
		seen[dp.Day] = true
		if !dp.Intensity.Valid() {
			return fmt.Errorf("unknown intensity %q on day %d", dp.Intensity, dp.Day)
		}
	}
	return nil
}

// stripCodeFences removes markdown code fences (```json ... ``` or ``` ... ```).
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	var result []string
	inFence := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}

// extractJSONArray finds the first balanced [ ... ] block in the text.
func extractJSONArray(s string) string {
	start := strings.IndexByte(s, '[')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}

		if c == '\\' && inString {
			escaped = true
			continue
		}

		if c == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch c {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}
