package dispatch

import (
	"fmt"
	"time"

	"github.com/marionet/marionet/pkg/engine"
)

// fakePage records every engine invocation so tests can assert both call
// counts and call shapes (e.g. move vs click arity for move_mouse).
type fakePage struct {
	failAll bool

	navigated []string
	content   string

	clicked   []string
	typedInto []typeIntoCall
	typedKeys []string
	enters    int

	moved     [][2]float64
	clickedAt [][2]float64

	contentReads    int
	screenshots     int
	elementQueries  int
	snapshotQueries int

	screenshot []byte
	elements   []engine.ElementInfo
	snapshot   []*engine.AXNode
}

type typeIntoCall struct {
	selector string
	text     string
	delay    time.Duration
}

var errFake = fmt.Errorf("engine failure")

func (p *fakePage) err() error {
	if p.failAll {
		return errFake
	}
	return nil
}

func (p *fakePage) Navigate(url string) error {
	p.navigated = append(p.navigated, url)
	return p.err()
}

func (p *fakePage) Content() (string, error) {
	p.contentReads++
	return p.content, p.err()
}

func (p *fakePage) Click(selector string) error {
	p.clicked = append(p.clicked, selector)
	return p.err()
}

func (p *fakePage) TypeInto(selector, text string, delay time.Duration) error {
	p.typedInto = append(p.typedInto, typeIntoCall{selector, text, delay})
	return p.err()
}

func (p *fakePage) TypeKeys(text string, delay time.Duration) error {
	p.typedKeys = append(p.typedKeys, text)
	return p.err()
}

func (p *fakePage) PressEnter() error {
	p.enters++
	return p.err()
}

func (p *fakePage) MoveMouse(x, y float64) error {
	p.moved = append(p.moved, [2]float64{x, y})
	return p.err()
}

func (p *fakePage) ClickAt(x, y float64) error {
	p.clickedAt = append(p.clickedAt, [2]float64{x, y})
	return p.err()
}

func (p *fakePage) Screenshot() ([]byte, error) {
	p.screenshots++
	return p.screenshot, p.err()
}

func (p *fakePage) InteractiveElements() ([]engine.ElementInfo, error) {
	p.elementQueries++
	return p.elements, p.err()
}

func (p *fakePage) AccessibilitySnapshot() ([]*engine.AXNode, error) {
	p.snapshotQueries++
	return p.snapshot, p.err()
}

// callCount totals every engine invocation made against the page, reads
// included.
func (p *fakePage) callCount() int {
	return len(p.navigated) + len(p.clicked) + len(p.typedInto) +
		len(p.typedKeys) + p.enters + len(p.moved) + len(p.clickedAt) +
		p.contentReads + p.screenshots + p.elementQueries + p.snapshotQueries
}

// fakeEngine hands out fakePages and counts NewPage calls.
type fakeEngine struct {
	initial     *fakePage
	newPageErr  error
	createdPage *fakePage
	newPages    int
}

func (e *fakeEngine) NewPage() (engine.Page, error) {
	e.newPages++
	if e.newPageErr != nil {
		return nil, e.newPageErr
	}
	if e.createdPage == nil {
		e.createdPage = &fakePage{}
	}
	return e.createdPage, nil
}

func (e *fakeEngine) InitialPage() engine.Page {
	return e.initial
}

func (e *fakeEngine) Close() error {
	return nil
}
