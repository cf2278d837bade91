package repository

import "fmt"

// sprintfQuery substitutes the same user filter into both arms of a UNION ALL
// query template.
func sprintfQuery(tmpl, cond string) string {
	return fmt.Sprintf(tmpl, cond, cond)
}
