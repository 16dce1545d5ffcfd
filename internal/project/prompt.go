package project

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Answers holds what the user typed during interactive setup.
type Answers struct {
	Name     string
	Template string
	Title    string
}

// Prompt asks for the project name, a template from names, and an optional
// title, using numbered menus on r/w. Values already set in preset are not
// asked for again.
func Prompt(r io.Reader, w io.Writer, names []string, preset Answers) (*Answers, error) {
	reader := bufio.NewReader(r)
	ans := preset

	if ans.Name == "" {
		name, err := readLine(reader, w, "Project name: ")
		if err != nil {
			return nil, fmt.Errorf("reading project name: %w", err)
		}
		if name == "" {
			return nil, fmt.Errorf("project name must not be empty")
		}
		ans.Name = name
	}

	if ans.Template == "" {
		if len(names) == 0 {
			return nil, fmt.Errorf("no templates available")
		}
		idx, err := selectFromList(reader, w, "Available templates:", names)
		if err != nil {
			return nil, err
		}
		ans.Template = names[idx]
	}

	if ans.Title == "" {
		title, err := readLine(reader, w, "Title (optional): ")
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading title: %w", err)
		}
		ans.Title = title
	}

	return &ans, nil
}

// readLine prints a prompt and returns the trimmed reply. A final line
// without a newline is still returned, together with io.EOF.
func readLine(reader *bufio.Reader, w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	line, err := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && !(err == io.EOF && line != "") {
		return line, err
	}
	return line, nil
}

// selectFromList presents a numbered list and returns the selected index.
func selectFromList(reader *bufio.Reader, w io.Writer, prompt string, items []string) (int, error) {
	fmt.Fprintf(w, "%s\n", prompt)
	for i, item := range items {
		fmt.Fprintf(w, "  [%d] %s\n", i+1, item)
	}

	line, err := readLine(reader, w, fmt.Sprintf("Select template (enter number) [1-%d]: ", len(items)))
	if err != nil {
		return 0, fmt.Errorf("reading selection: %w", err)
	}

	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(items) {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", line, len(items))
	}
	return num - 1, nil
}
