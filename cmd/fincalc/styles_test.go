package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{"loan", "Loan Calculator"},
			{"rule-72", "Rule of 72 Calculator"},
		},
	)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.Contains(t, lines[1], "TITLE")
	assert.Contains(t, lines[3], "Loan Calculator")
	assert.Contains(t, lines[4], "Rule of 72 Calculator")

	width := lipgloss.Width(lines[0])
	for _, line := range lines {
		assert.Equal(t, width, lipgloss.Width(line))
	}
}
