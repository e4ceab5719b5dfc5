package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formsite/pkg/question"
)

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, []question.Question{
		{Label: "Colour", Number: 1, Type: question.TypeRadio, Name: "entry.1", Required: true,
			Choices: []question.Choice{{Label: "Red", Value: "Red"}, {Label: "Blue", Value: "Blue"}}},
		{Label: question.UnknownLabel, Number: 2, Type: question.TypeUnknown, Name: question.UnknownName},
	})

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "╭"), "rounded style")
	for _, want := range []string{"KEY", "q_1", "radio", "entry.1", "true", "Colour", "q_2", "unknown", "none"} {
		require.Contains(t, out, want)
	}
}
