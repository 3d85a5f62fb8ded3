package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
	warningPrefix  = "Warning: "
)

// formatErrorForDisplay formats an error message for TUI display.
// It limits the error to maxErrorLines (2 lines) and wraps text based on terminal width.
// If the error message is too long, it truncates with "..." at the end.
func formatErrorForDisplay(err error, maxWidth int) string {
	return formatForDisplay(errorPrefix, err, maxWidth)
}

// formatWarningForDisplay is formatErrorForDisplay for non-fatal problems,
// such as a session that completed but could not be saved
func formatWarningForDisplay(err error, maxWidth int) string {
	return formatForDisplay(warningPrefix, err, maxWidth)
}

func formatForDisplay(prefix string, err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	// Get the error message
	message := err.Error()
	if message == "" {
		return prefix + "unknown error"
	}

	// Calculate available width per line (accounting for the prefix on first line)
	firstLineWidth := maxWidth - utf8.RuneCountInString(prefix)
	if firstLineWidth < 10 {
		firstLineWidth = 10 // Minimum width to prevent edge cases
	}

	otherLineWidth := maxWidth
	if otherLineWidth < 10 {
		otherLineWidth = 10
	}

	// Split message into words
	words := strings.Fields(message)
	if len(words) == 0 {
		return prefix + message
	}

	// Build lines
	var lines []string
	var currentLine strings.Builder
	currentLineWidth := firstLineWidth

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		currentLen := utf8.RuneCountInString(currentLine.String())

		// Check if adding this word would exceed the current line width
		if currentLen > 0 && currentLen+1+wordLen > currentLineWidth {
			// Save current line and start a new one
			lines = append(lines, currentLine.String())
			currentLine.Reset()

			// Check if we've reached max lines
			if len(lines) >= maxErrorLines {
				break
			}

			// Switch to other line width after first line
			currentLineWidth = otherLineWidth
		}

		// Add word to current line
		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
	}

	// Add the last line if there's content and we haven't exceeded max lines
	if currentLine.Len() > 0 && len(lines) < maxErrorLines {
		lines = append(lines, currentLine.String())
	}

	// If we have exactly maxErrorLines and there are more words, add truncation mark
	if len(lines) == maxErrorLines && len(words) > 0 {
		lastLine := lines[maxErrorLines-1]
		truncLen := utf8.RuneCountInString(truncationMark)

		// If the last line is too long, truncate it to make room for "..."
		if utf8.RuneCountInString(lastLine)+truncLen > otherLineWidth {
			// Calculate how many runes we can keep
			maxRunes := otherLineWidth - truncLen
			if maxRunes > 0 {
				runes := []rune(lastLine)
				if len(runes) > maxRunes {
					lastLine = string(runes[:maxRunes])
				}
			}
		}

		lines[maxErrorLines-1] = lastLine + truncationMark
	}

	// Combine lines with newlines
	if len(lines) == 0 {
		return prefix
	}

	result := prefix + lines[0]
	if len(lines) > 1 {
		result += "\n" + strings.Join(lines[1:], "\n")
	}

	return result
}
