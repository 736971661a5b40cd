package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/casekeeper/internal/client/models"
)

const (
	titleLimit = 40
	fieldLimit = 210
)

// truncate cuts s to n runes and marks the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// longDate formats t like "April 29th, 2022".
func longDate(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return fmt.Sprintf("%s %d%s, %d", t.Month(), t.Day(), ordinalSuffix(t.Day()), t.Year())
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

var separator = strings.Repeat("-", 48)

// renderCard prints the list view of a case.
func renderCard(w io.Writer, c models.Case) {
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, truncate(c.Title, titleLimit))
	fmt.Fprintf(w, "URL: %s\n", c.URL())
	fmt.Fprintf(w, "METHOD: %s\n", truncate(c.Method, fieldLimit))
	fmt.Fprintf(w, "Request Body: %s\n", truncate(c.RequestBody, fieldLimit))
	fmt.Fprintf(w, "EXPECTED RESULT: %s\n", truncate(c.ExpectedResult, fieldLimit))
	fmt.Fprintf(w, "Created: %s\n", longDate(c.CreatedAt))
	fmt.Fprintf(w, "ID: %s\n", c.ID)
}

func renderList(w io.Writer, resp *models.CasesResponse) {
	if len(resp.Cases) == 0 {
		fmt.Fprintln(w, "No cases yet. Type 'create' to add one.")
		return
	}
	for _, c := range resp.Cases {
		renderCard(w, c)
	}
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "%d case(s)\n", resp.Results)
}

// renderCase prints every field of a case without truncation.
func renderCase(w io.Writer, c models.Case) {
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "ID: %s\n", c.ID)
	fmt.Fprintf(w, "Title: %s\n", c.Title)
	fmt.Fprintf(w, "URL: %s\n", c.URL())
	fmt.Fprintf(w, "METHOD: %s\n", c.Method)
	fmt.Fprintf(w, "Request Body:\n%s\n", c.RequestBody)
	fmt.Fprintf(w, "EXPECTED RESULT:\n%s\n", c.ExpectedResult)
	fmt.Fprintf(w, "Created: %s\n", longDate(c.CreatedAt))
	fmt.Fprintf(w, "Updated: %s\n", longDate(c.UpdatedAt))
	fmt.Fprintln(w, separator)
}

// renderResult prints what the backend recorded for the last test run
// next to the expectation.
func renderResult(w io.Writer, c models.Case) {
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "%s (%s)\n", c.Title, c.ID)
	fmt.Fprintf(w, "EXPECTED RESULT:\n%s\n", c.ExpectedResult)
	if c.Category == "" && c.Content == "" {
		fmt.Fprintln(w, "No result recorded yet. Type 'test' to run the case.")
	} else {
		fmt.Fprintf(w, "Category: %s\n", c.Category)
		fmt.Fprintf(w, "Result:\n%s\n", c.Content)
	}
	fmt.Fprintf(w, "Last updated: %s\n", longDate(c.UpdatedAt))
	fmt.Fprintln(w, separator)
}
