package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/playwright-community/playwright-go"
)

// PlaywrightEngine drives a shared Chromium instance through Playwright.
// It launches one browser at startup and hands out pages from it.
type PlaywrightEngine struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	initial *playwrightPage
	timeout float64
}

// Launch installs the Playwright driver if needed, starts it, launches
// Chromium, and opens the initial page. A failure here is terminal for the
// caller; there is no degraded mode.
func Launch(opts Options) (*PlaywrightEngine, error) {
	// Discard driver output so it does not interleave with our own logs.
	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if err := playwright.Install(runOpts); err != nil {
		return nil, fmt.Errorf("failed to install playwright: %w", err)
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	e := &PlaywrightEngine{
		pw:      pw,
		browser: browser,
		timeout: timeout,
	}

	initial, err := e.newPage()
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to open initial page: %w", err)
	}
	e.initial = initial

	return e, nil
}

// NewPage opens a fresh tab in the shared browser.
func (e *PlaywrightEngine) NewPage() (Page, error) {
	return e.newPage()
}

func (e *PlaywrightEngine) newPage() (*playwrightPage, error) {
	page, err := e.browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	page.SetDefaultTimeout(e.timeout)
	return &playwrightPage{page: page}, nil
}

// InitialPage returns the page opened at launch.
func (e *PlaywrightEngine) InitialPage() Page {
	return e.initial
}

// Close shuts the browser down and stops the Playwright driver.
func (e *PlaywrightEngine) Close() error {
	if err := e.browser.Close(); err != nil {
		e.pw.Stop()
		return fmt.Errorf("failed to close browser: %w", err)
	}
	if err := e.pw.Stop(); err != nil {
		return fmt.Errorf("failed to stop playwright: %w", err)
	}
	return nil
}

// playwrightPage adapts a playwright.Page to the Page interface.
type playwrightPage struct {
	page playwright.Page
}

func (p *playwrightPage) Navigate(url string) error {
	_, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	})
	if err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	return nil
}

func (p *playwrightPage) Content() (string, error) {
	html, err := p.page.Content()
	if err != nil {
		return "", fmt.Errorf("content serialization failed: %w", err)
	}
	return html, nil
}

func (p *playwrightPage) Click(selector string) error {
	if err := p.page.Click(selector, playwright.PageClickOptions{}); err != nil {
		return fmt.Errorf("click failed: %w", err)
	}
	return nil
}

func (p *playwrightPage) TypeInto(selector, text string, delay time.Duration) error {
	err := p.page.Type(selector, text, playwright.PageTypeOptions{
		Delay: playwright.Float(float64(delay.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("type failed: %w", err)
	}
	return nil
}

func (p *playwrightPage) TypeKeys(text string, delay time.Duration) error {
	err := p.page.Keyboard().Type(text, playwright.KeyboardTypeOptions{
		Delay: playwright.Float(float64(delay.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("keyboard type failed: %w", err)
	}
	return nil
}

func (p *playwrightPage) PressEnter() error {
	if err := p.page.Keyboard().Press("Enter"); err != nil {
		return fmt.Errorf("key press failed: %w", err)
	}
	return nil
}

func (p *playwrightPage) MoveMouse(x, y float64) error {
	if err := p.page.Mouse().Move(x, y); err != nil {
		return fmt.Errorf("mouse move failed: %w", err)
	}
	return nil
}

func (p *playwrightPage) ClickAt(x, y float64) error {
	if err := p.page.Mouse().Click(x, y); err != nil {
		return fmt.Errorf("mouse click failed: %w", err)
	}
	return nil
}

func (p *playwrightPage) Screenshot() ([]byte, error) {
	data, err := p.page.Screenshot(playwright.PageScreenshotOptions{})
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}
	return data, nil
}

func (p *playwrightPage) InteractiveElements() ([]ElementInfo, error) {
	result, err := p.page.Evaluate(interactiveElementsScript)
	if err != nil {
		return nil, fmt.Errorf("element query failed: %w", err)
	}
	return elementsFromEvaluate(result)
}

func (p *playwrightPage) AccessibilitySnapshot() ([]*AXNode, error) {
	doc, err := p.page.Locator("body").AriaSnapshot()
	if err != nil {
		return nil, fmt.Errorf("aria snapshot failed: %w", err)
	}
	nodes, err := parseAriaSnapshot(doc)
	if err != nil {
		return nil, fmt.Errorf("aria snapshot parse failed: %w", err)
	}
	return nodes, nil
}
