package browser

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/clms-qa/clms-contract-tests/harness"
)

const (
	defaultNavigationTimeout = time.Second * 30
	defaultViewportWidth     = 1280
	defaultViewportHeight    = 800
)

// Options configure the browser session. Zero values get sensible defaults.
type Options struct {
	Headless          bool
	ViewportWidth     int
	ViewportHeight    int
	NavigationTimeout time.Duration
}

// Session is one running browser with at most one open page. The test-facing
// methods are not safe for concurrent use; the UI suite runs every step
// sequentially. The logger and console log are the exception: the console
// capture goroutine uses both, so they carry their own locks.
type Session struct {
	browser *rod.Browser
	control *launcher.Launcher
	page    *rod.Page
	opts    Options
	logger  safeLogger
	console consoleLog
}

// NewSession launches a browser and connects to it. The caller must Close the
// session, including on error paths, or the browser process is leaked.
func NewSession(opts Options, logger harness.Logger) (*Session, error) {
	if opts.NavigationTimeout == 0 {
		opts.NavigationTimeout = defaultNavigationTimeout
	}
	if opts.ViewportWidth == 0 {
		opts.ViewportWidth = defaultViewportWidth
	}
	if opts.ViewportHeight == 0 {
		opts.ViewportHeight = defaultViewportHeight
	}

	control := launcher.New().Headless(opts.Headless)
	controlURL, err := control.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}
	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		control.Cleanup()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}
	s := &Session{
		browser: b,
		control: control,
		opts:    opts,
	}
	s.logger.set(logger)
	return s, nil
}

// SetLogger redirects the session's console trace, normally into the captured
// debug output of whichever test is currently running. Safe to call while the
// console capture goroutine is logging.
func (s *Session) SetLogger(logger harness.Logger) {
	s.logger.set(logger)
}

// Logger returns the current console trace destination, so a caller swapping
// it for a scope can restore it afterwards.
func (s *Session) Logger() harness.Logger {
	return s.logger.get()
}

// Open navigates a fresh page to the given URL and waits for the load event.
// Any previously open page is closed first, so each Open starts clean.
func (s *Session) Open(url string) error {
	if s.page != nil {
		_ = s.page.Close()
		s.page = nil
	}

	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return fmt.Errorf("opening page: %w", err)
	}
	page = page.Timeout(s.opts.NavigationTimeout)
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             s.opts.ViewportWidth,
		Height:            s.opts.ViewportHeight,
		DeviceScaleFactor: 1,
	}); err != nil {
		return fmt.Errorf("setting viewport: %w", err)
	}
	s.page = page
	s.watchConsole(page)

	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("waiting for %s to load: %w", url, err)
	}
	return nil
}

// Page returns the currently open page. It is nil before the first Open.
func (s *Session) Page() *rod.Page {
	return s.page
}

// watchConsole streams the page's console output into the session's message
// log. The goroutine ends when the page closes.
func (s *Session) watchConsole(page *rod.Page) {
	go page.EachEvent(func(e *proto.RuntimeConsoleAPICalled) {
		msg := ConsoleMessage{Type: string(e.Type), Text: consoleText(e.Args)}
		s.logger.printf("console [%s] %s", msg.Type, msg.Text)
		s.console.add(msg)
	})()
}

// ConsoleMessages returns everything the page has written to its console
// since the last ClearConsole.
func (s *Session) ConsoleMessages() []ConsoleMessage {
	return s.console.snapshot()
}

// ClearConsole discards the captured console messages, so a test can scope
// its assertions to activity after a known point.
func (s *Session) ClearConsole() {
	s.console.clear()
}

// Close shuts down the page, the browser, and the browser process.
func (s *Session) Close() {
	if s.page != nil {
		_ = s.page.Close()
		s.page = nil
	}
	_ = s.browser.Close()
	s.control.Cleanup()
}

// safeLogger guards the trace destination, which the console capture
// goroutine reads while tests swap it at subtest boundaries.
type safeLogger struct {
	mu     sync.Mutex
	logger harness.Logger
}

func (l *safeLogger) set(logger harness.Logger) {
	if logger == nil {
		logger = harness.NullLogger()
	}
	l.mu.Lock()
	l.logger = logger
	l.mu.Unlock()
}

func (l *safeLogger) get() harness.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logger == nil {
		return harness.NullLogger()
	}
	return l.logger
}

func (l *safeLogger) printf(format string, args ...interface{}) {
	l.get().Printf(format, args...)
}
