// Package query evaluates JMESPath expressions against the persisted flashcard
// state, optionally piping the result through a shell command.
package query

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/jmespath/go-jmespath"
	"github.com/studiowebux/flashcli/internal/types"
)

const (
	// ShellTimeout is the maximum time allowed for a $(...) query command
	ShellTimeout = 30 * time.Second
)

var (
	// Shell command pattern: $(command)
	shellPattern = regexp.MustCompile(`^\$\((.+)\)$`)
)

// State evaluates filter then query against the state's JSON form.
// Filter narrows (e.g. decks[?name=='Spanish']), query transforms (e.g. [].id).
func State(ctx context.Context, state types.State, filter, query string) (string, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("failed to encode state: %w", err)
	}
	return Apply(ctx, string(data), filter, query)
}

// Apply applies filter and query expressions to a JSON document.
// If query is $(...), it runs as a shell command with the document on stdin.
// With neither expression the document is returned indented.
func Apply(ctx context.Context, body, filter, query string) (string, error) {
	result := body

	if filter != "" {
		filtered, err := applyJMESPath(result, filter)
		if err != nil {
			return "", fmt.Errorf("failed to apply filter: %w", err)
		}
		result = filtered
	}

	switch {
	case query == "" && filter == "":
		indented, err := applyJMESPath(result, "@")
		if err != nil {
			return "", err
		}
		result = indented

	case IsShellCommand(query):
		command := shellPattern.FindStringSubmatch(query)[1]
		queried, err := executeShellCommand(ctx, result, command)
		if err != nil {
			return "", fmt.Errorf("failed to execute query shell command: %w", err)
		}
		result = queried

	case query != "":
		queried, err := applyJMESPath(result, query)
		if err != nil {
			return "", fmt.Errorf("failed to apply query: %w", err)
		}
		result = queried
	}

	return result, nil
}

// applyJMESPath applies a JMESPath expression to a JSON string
func applyJMESPath(jsonStr, expression string) (string, error) {
	var data interface{}
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}

	jp, err := jmespath.Compile(expression)
	if err != nil {
		return "", fmt.Errorf("invalid JMESPath expression '%s': %w", expression, err)
	}

	result, err := jp.Search(data)
	if err != nil {
		return "", fmt.Errorf("JMESPath search failed: %w", err)
	}

	if result == nil {
		return "null", nil
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	return string(output), nil
}

// executeShellCommand runs command with body piped to stdin
func executeShellCommand(ctx context.Context, body, command string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, ShellTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Stdin = strings.NewReader(body)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := err.Error()
		if stderr.Len() > 0 {
			errMsg = strings.TrimSpace(stderr.String())
		}
		return "", fmt.Errorf("command '%s' failed: %s", command, errMsg)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// IsValidJMESPath checks if an expression is valid JMESPath syntax
func IsValidJMESPath(expression string) bool {
	_, err := jmespath.Compile(expression)
	return err == nil
}

// IsShellCommand checks if a query is a shell command (starts with $(...))
func IsShellCommand(query string) bool {
	return shellPattern.MatchString(query)
}

// Write prints a result, syntax-highlighted as JSON when color is set.
// Shell command output is not necessarily JSON and is printed as is.
func Write(w io.Writer, result string, color bool) error {
	if color && json.Valid([]byte(result)) {
		if err := quick.Highlight(w, result, "json", "terminal256", "monokai"); err != nil {
			return fmt.Errorf("failed to highlight output: %w", err)
		}
		_, err := io.WriteString(w, "\n")
		return err
	}

	_, err := fmt.Fprintln(w, result)
	return err
}
