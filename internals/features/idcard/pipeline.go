package idcard

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"abhm_backend/internals/features/membership/model"
)

// Pipeline produces the two card artifacts: the standalone HTML document and
// the A4 PDF rasterized by headless Chromium. One pipeline is shared by all
// requests; each PDF render gets its own browser context.
type Pipeline struct {
	Renderer *Renderer

	// BaseURL is used for URL fallbacks when local asset files are missing.
	BaseURL string

	// RenderTimeout bounds one headless-browser session.
	RenderTimeout time.Duration
}

func NewPipeline(renderer *Renderer, baseURL string) *Pipeline {
	return &Pipeline{
		Renderer:      renderer,
		BaseURL:       baseURL,
		RenderTimeout: 30 * time.Second,
	}
}

// HTML renders the complete card document with branding and photo embedded
// as data URIs so it is self-contained.
func (p *Pipeline) HTML(member *model.MemberModel) (string, error) {
	assets := ResolveAssets(p.BaseURL)
	photoSrc := p.resolvePhoto(member.PhotoURL)
	return p.Renderer.RenderHTML(member, assets, photoSrc)
}

// PDF renders the card HTML and prints it to an A4 PDF with backgrounds on.
func (p *Pipeline) PDF(ctx context.Context, member *model.MemberModel) ([]byte, error) {
	html, err := p.HTML(member)
	if err != nil {
		return nil, err
	}
	return p.printToPDF(ctx, html)
}

// resolvePhoto embeds the stored photo as a data URI; when the file cannot be
// read (external storage, moved file) the public URL is used instead.
func (p *Pipeline) resolvePhoto(photoURL string) string {
	if photoURL == "" {
		return ""
	}
	uri, err := fileDataURI(filepath.FromSlash(photoURL))
	if err != nil {
		log.Printf("[IDCard] photo not readable locally (%v), using URL", err)
		return p.BaseURL + "/" + photoURL
	}
	return uri
}

func (p *Pipeline) printToPDF(parent context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
	defer cancelAlloc()

	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	ctx, cancelTimeout := context.WithTimeout(ctx, p.RenderTimeout)
	defer cancelTimeout()

	var pdf []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.EmulateViewport(1200, 1600, chromedp.EmulateScale(4)),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).   // A4
				WithPaperHeight(11.69). // A4
				WithMarginTop(0.2).
				WithMarginBottom(0.2).
				WithMarginLeft(0.2).
				WithMarginRight(0.2).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("headless render failed: %w", err)
	}
	return pdf, nil
}
