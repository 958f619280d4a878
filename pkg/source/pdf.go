package source

import (
	"bytes"
	"context"

	"github.com/ledongthuc/pdf"
)

type PDFProcessor struct{}

func NewPDFProcessor() *PDFProcessor {
	return &PDFProcessor{}
}

func (p *PDFProcessor) Process(ctx context.Context, content []byte, metadata map[string]interface{}) (*Document, error) {
	reader := bytes.NewReader(content)

	r, err := pdf.NewReader(reader, int64(len(content)))
	if err != nil {
		return nil, err
	}

	var textContent string
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textContent += text
	}

	nlpProcessor := NewNLPProcessor()
	return nlpProcessor.Process(ctx, []byte(textContent), metadata)
}

func (p *PDFProcessor) SupportedTypes() []string {
	return []string{"application/pdf"}
}
