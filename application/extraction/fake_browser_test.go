package extraction

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// fakeBrowser scripts the page surface for workflow tests. Each test
// describes only the elements it cares about; everything else counts
// zero and waits succeed.
type fakeBrowser struct {
	counts map[string]int
	texts  map[string][]string
	attrs  map[string]string

	// rowPages holds one TableRows result per read; reads past the end
	// repeat the last page.
	rowPages [][][]string
	rowReads int

	navErr   map[string]error
	fillErr  map[string]error
	clickErr map[string]error
	waitErr  map[string]error

	navigated   []string
	filled      map[string]string
	clicked     []string
	waited      []string
	screenshots []string
	released    int

	// onClick runs after a successful click, letting tests mutate the
	// fake page state (e.g. disable the pagination button).
	onClick func(selector string)
}

func newFakeBrowser() *fakeBrowser {
	return &fakeBrowser{
		counts:   map[string]int{},
		texts:    map[string][]string{},
		attrs:    map[string]string{},
		navErr:   map[string]error{},
		fillErr:  map[string]error{},
		clickErr: map[string]error{},
		waitErr:  map[string]error{},
		filled:   map[string]string{},
	}
}

func (f *fakeBrowser) Navigate(ctx context.Context, url string) error {
	f.navigated = append(f.navigated, url)
	return f.navErr[url]
}

func (f *fakeBrowser) Fill(ctx context.Context, selector string, value string) error {
	if err := f.fillErr[selector]; err != nil {
		return err
	}
	f.filled[selector] = value
	return nil
}

func (f *fakeBrowser) Click(ctx context.Context, selector string) error {
	if err := f.clickErr[selector]; err != nil {
		return err
	}
	f.clicked = append(f.clicked, selector)
	if f.onClick != nil {
		f.onClick(selector)
	}
	return nil
}

func (f *fakeBrowser) WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error {
	f.waited = append(f.waited, selector)
	return f.waitErr[selector]
}

func (f *fakeBrowser) WaitForNetworkIdle(ctx context.Context, timeout time.Duration) error {
	return nil
}

func (f *fakeBrowser) Count(ctx context.Context, selector string) (int, error) {
	return f.counts[selector], nil
}

func (f *fakeBrowser) Texts(ctx context.Context, selector string) ([]string, error) {
	return f.texts[selector], nil
}

func (f *fakeBrowser) Attribute(ctx context.Context, selector string, name string) (string, error) {
	return f.attrs[selector], nil
}

func (f *fakeBrowser) TableRows(ctx context.Context, selector string) ([][]string, error) {
	if len(f.rowPages) == 0 {
		return [][]string{}, nil
	}
	idx := f.rowReads
	if idx >= len(f.rowPages) {
		idx = len(f.rowPages) - 1
	}
	f.rowReads++
	return f.rowPages[idx], nil
}

func (f *fakeBrowser) Screenshot(ctx context.Context, path string) error {
	f.screenshots = append(f.screenshots, path)
	return nil
}

func (f *fakeBrowser) Release() error {
	f.released++
	return nil
}
