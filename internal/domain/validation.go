package domain

import "strings"

// Required takes name/value pairs and reports every blank value in one validation error,
// in argument order. Nil when all are present.
func Required(pairs ...string) error {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			missing = append(missing, pairs[i])
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return Invalid("MISSING_FIELDS", "missing required fields: "+strings.Join(missing, ", "))
}
