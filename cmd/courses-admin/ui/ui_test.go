package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/courses-api/internal/course"
	"github.com/redmonkez12/courses-api/internal/user"
)

func TestUserInput(t *testing.T) {
	t.Parallel()

	in := UserInput{FirstName: " Joe ", LastName: "Smith", EmailAddress: "joe@x.com"}
	assert.False(t, in.Complete())

	in.Password = " spaced "
	require.True(t, in.Complete())

	req := in.Request()
	assert.Equal(t, "Joe", *req.FirstName)
	assert.Equal(t, " spaced ", *req.Password, "passwords are taken verbatim")
}

func TestRequired(t *testing.T) {
	t.Parallel()

	check := required("A first name is required")
	require.EqualError(t, check("   "), "A first name is required")
	assert.NoError(t, check("Joe"))
}

func TestPrintCourses(t *testing.T) {
	t.Parallel()

	var empty bytes.Buffer
	PrintCourses(&empty, nil)
	assert.Contains(t, empty.String(), "No courses yet")

	hours := "12 hours"
	var out bytes.Buffer
	PrintCourses(&out, []*course.Course{
		{ID: 1, Title: "Build a Basic Bookcase", EstimatedTime: &hours, Owner: &user.Profile{EmailAddress: "joe@smith.com"}},
		{ID: 2, Title: "Learn How to Program"},
	})

	s := out.String()
	assert.Contains(t, s, "Build a Basic Bookcase")
	assert.Contains(t, s, "joe@smith.com")
	assert.Contains(t, s, "12 hours")
	assert.Contains(t, s, "Learn How to Program")
}

func TestPrintErrors(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	PrintErrors(&out, []string{"A title is required", "Please provide a description"})
	assert.Contains(t, out.String(), "Error: A title is required")
	assert.Contains(t, out.String(), "Error: Please provide a description")
}
