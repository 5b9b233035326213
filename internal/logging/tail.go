package logging

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tail returns at most maxLines from the end of the log file at path. A
// missing file yields no lines.
func Tail(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

var levelStyles = []struct {
	token string
	style lipgloss.Style
}{
	{"level=DEBUG", lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b"))},
	{"level=INFO", lipgloss.NewStyle().Foreground(lipgloss.Color("#38bdf8"))},
	{"level=WARN", lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")).Bold(true)},
	{"level=ERROR", lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true)},
}

// Highlight colors the level field of a text-handler line.
func Highlight(line string) string {
	for _, ls := range levelStyles {
		if i := strings.Index(line, ls.token); i >= 0 {
			return line[:i] + ls.style.Render(ls.token) + line[i+len(ls.token):]
		}
	}
	return line
}
