package web

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/gocolly/colly"
	"github.com/tealeg/xlsx/v3"
	"go.uber.org/zap"

	"github.com/notaneet/roomstats/config"
	"github.com/notaneet/roomstats/model"
	xlsxplugin "github.com/notaneet/roomstats/plugin/xlsx"
	"github.com/notaneet/roomstats/utils"
)

// Name of the plugin in the factory
const Name = "web"

// Workbook links on a published page
var workbookSelector = "a[href]"

// xlsx files are zip archives
var zipMagic = []byte("PK\x03\x04")

type _WebPlugin struct {
	config config.ParserConfig
}

func GetPlugin(cfg config.ParserConfig) *_WebPlugin {
	return &_WebPlugin{config: cfg}
}

func (p _WebPlugin) GetName() string {
	return Name
}

// GetGrid downloads a published workbook. Source is either the workbook
// itself or a page that links to one.
func (p *_WebPlugin) GetGrid(ctx context.Context) (model.Grid, error) {
	if p.config.Source == "" {
		return nil, fmt.Errorf("-source can not be empty")
	}

	body, err := p.scrap(ctx)
	if err != nil {
		return nil, err
	}

	wb, err := xlsx.OpenBinary(body)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	return xlsxplugin.ReadWorkbook(wb, p.config.Sheet)
}

func (p *_WebPlugin) scrap(ctx context.Context) ([]byte, error) {
	c := colly.NewCollector(colly.MaxBodySize(0))

	var (
		body     []byte
		err      error
		followed bool
	)

	c.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
		}
	})

	c.OnResponse(func(r *colly.Response) {
		if isWorkbook(r) {
			body = r.Body
			utils.GetLogger().Info("workbook downloaded", zap.String("url", r.Request.URL.String()), zap.Int("bytes", len(r.Body)))
		}
	})

	c.OnHTML(workbookSelector, func(e *colly.HTMLElement) {
		link := e.Attr("href")
		if followed || body != nil || !isWorkbookLink(link) {
			return
		}
		followed = true
		if _err := e.Request.Visit(e.Request.AbsoluteURL(link)); _err != nil {
			err = _err
		}
	})

	c.OnError(func(r *colly.Response, _err error) {
		err = fmt.Errorf("fetch %s: %w", r.Request.URL, _err)
	})

	if _err := c.Visit(p.config.Source); _err != nil {
		return nil, _err
	}
	c.Wait()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, fmt.Errorf("no workbook found at %s", p.config.Source)
	}
	return body, nil
}

func isWorkbook(r *colly.Response) bool {
	ct := r.Headers.Get("Content-Type")
	return strings.Contains(ct, "spreadsheetml") || bytes.HasPrefix(r.Body, zipMagic)
}

func isWorkbookLink(link string) bool {
	link = strings.ToLower(link)
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		if strings.Contains(link[i:], "format=xlsx") {
			return true
		}
		link = link[:i]
	}
	return strings.HasSuffix(link, ".xlsx")
}
