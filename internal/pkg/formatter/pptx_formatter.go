package formatter

import (
	"bytes"
	"strings"

	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/presentation"
)

const (
	pptxContentType   = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	pptxFileExtension = ".pptx"

	titleFontSize = 32
	bodyFontSize  = 18
)

type PPTXFormatter struct{}

func NewPPTXFormatter() *PPTXFormatter {
	return &PPTXFormatter{}
}

// Format produces a slide deck: a title slide followed by one slide per
// paragraph of the text.
func (pf *PPTXFormatter) Format(title, text string) ([]byte, error) {
	ppt := presentation.New()
	defer ppt.Close()

	titleSlide := ppt.AddSlide()
	titleBox := titleSlide.AddTextBox()
	titlePara := titleBox.AddParagraph()
	titleRun := titlePara.AddRun()
	titleRun.SetText(title)
	titleRun.Properties().SetSize(titleFontSize * measurement.Point)

	for _, block := range splitBlocks(text) {
		slide := ppt.AddSlide()
		box := slide.AddTextBox()
		for _, line := range strings.Split(block, "\n") {
			para := box.AddParagraph()
			run := para.AddRun()
			run.SetText(line)
			run.Properties().SetSize(bodyFontSize * measurement.Point)
		}
	}

	var buf bytes.Buffer
	if err := ppt.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// splitBlocks breaks the text into paragraph blocks separated by blank lines.
func splitBlocks(text string) []string {
	blocks := make([]string, 0)
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

func (pf *PPTXFormatter) ContentType() string {
	return pptxContentType
}

func (pf *PPTXFormatter) FileExtension() string {
	return pptxFileExtension
}
