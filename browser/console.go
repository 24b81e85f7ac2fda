package browser

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-rod/rod/lib/proto"
)

// ConsoleMessage is one entry the page wrote to its console, with the
// arguments flattened to a single line of text.
type ConsoleMessage struct {
	Type string
	Text string
}

// IsError reports whether the message indicates a page error rather than
// informational output.
func (m ConsoleMessage) IsError() bool {
	return m.Type == string(proto.RuntimeConsoleAPICalledTypeError) ||
		m.Type == string(proto.RuntimeConsoleAPICalledTypeAssert)
}

// IsWarning reports whether the message is a console.warn.
func (m ConsoleMessage) IsWarning() bool {
	return m.Type == string(proto.RuntimeConsoleAPICalledTypeWarning)
}

// FilterErrors returns only the error-level messages.
func FilterErrors(messages []ConsoleMessage) []ConsoleMessage {
	var errs []ConsoleMessage
	for _, m := range messages {
		if m.IsError() {
			errs = append(errs, m)
		}
	}
	return errs
}

// consoleText flattens console call arguments the way devtools displays them:
// primitive values verbatim, everything else by its description.
func consoleText(args []*proto.RuntimeRemoteObject) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		if v := arg.Value.Val(); v != nil {
			parts = append(parts, fmt.Sprintf("%v", v))
		} else {
			parts = append(parts, arg.Description)
		}
	}
	return strings.Join(parts, " ")
}

// consoleLog is the mutex-protected message buffer behind a Session. The
// capture goroutine appends while tests read.
type consoleLog struct {
	mu       sync.Mutex
	messages []ConsoleMessage
}

func (l *consoleLog) add(m ConsoleMessage) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, m)
}

func (l *consoleLog) snapshot() []ConsoleMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]ConsoleMessage(nil), l.messages...)
}

func (l *consoleLog) clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = nil
}
