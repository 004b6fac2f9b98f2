package values

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a value list.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("values file validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Normalize trims whitespace and validates a value list.
func Normalize(list List) (List, error) {
	collector := &issueCollector{}
	if list.Version == 0 {
		collector.add("version", "is required")
	} else if list.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", list.Version))
	}
	if len(list.Values) == 0 {
		collector.add("values", "must include at least one entry")
	}

	seen := map[string]int{}
	normalized := make([]string, 0, len(list.Values))
	for i, value := range list.Values {
		field := fmt.Sprintf("values[%d]", i)
		value = strings.Join(strings.Fields(value), " ")
		if value == "" {
			collector.add(field, "is required")
			continue
		}
		key := strings.ToLower(value)
		if first, exists := seen[key]; exists {
			collector.add(field, fmt.Sprintf("duplicate of values[%d] %q", first, value))
			continue
		}
		seen[key] = i
		normalized = append(normalized, value)
	}

	if err := collector.result(); err != nil {
		return List{}, err
	}
	list.Values = normalized
	return list, nil
}
