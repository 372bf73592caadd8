package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// question/answer session over a line-oriented reader
type session struct {
	in  *bufio.Reader
	out io.Writer
}

func newSession(in io.Reader, out io.Writer) *session {
	return &session{in: bufio.NewReader(in), out: out}
}

// readLine returns the next line without its line ending. io.EOF is only
// returned when nothing at all was left to read.
func (s *session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// asks a question and returns the trimmed answer, or def when it is empty
func (s *session) ask(question, def string) (string, error) {
	fmt.Fprint(s.out, question)

	answer, err := s.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// readScript collects lines until two consecutive empty lines or end of
// input. Single empty lines are kept since they separate blocks.
func (s *session) readScript() (string, error) {
	var sb strings.Builder
	pendingBlank := false

	for {
		line, err := s.readLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		if strings.TrimSpace(line) == "" {
			if pendingBlank {
				break
			}
			pendingBlank = true
			continue
		}

		if pendingBlank {
			sb.WriteString("\n")
			pendingBlank = false
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
