package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/redmonkez12/courses-api/internal/course"
	"github.com/redmonkez12/courses-api/internal/user"
)

// PrintUserCreated prints the new account.
func PrintUserCreated(w io.Writer, u *user.User) {
	fmt.Fprintln(w, successStyle.Render("User created successfully!"))
	fmt.Fprintf(w, "  ID:    %d\n", u.ID)
	fmt.Fprintf(w, "  Name:  %s %s\n", u.FirstName, u.LastName)
	fmt.Fprintf(w, "  Email: %s\n", u.EmailAddress)
	fmt.Fprintln(w)
}

// PrintMigrated confirms schema creation.
func PrintMigrated(w io.Writer, driver string) {
	fmt.Fprintln(w, successStyle.Render("Schema is up to date"))
	fmt.Fprintln(w, subtleStyle.Render("  driver: "+driver))
}

// PrintCourses renders courses as a table.
func PrintCourses(w io.Writer, courses []*course.Course) {
	fmt.Fprintln(w, titleStyle.Render("Courses"))

	if len(courses) == 0 {
		fmt.Fprintln(w, subtleStyle.Render("No courses yet"))
		return
	}

	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		owner := ""
		if c.Owner != nil {
			owner = c.Owner.EmailAddress
		}
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10),
			c.Title,
			owner,
			valueOrDash(c.EstimatedTime),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "OWNER", "ESTIMATED TIME").
		Rows(rows...)

	fmt.Fprintln(w, t.String())
}

// PrintErrors prints every message of a failed operation.
func PrintErrors(w io.Writer, messages []string) {
	for _, msg := range messages {
		fmt.Fprintln(w, errorStyle.Render("Error: "+msg))
	}
}

func valueOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
