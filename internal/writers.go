package internal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/go-pdf/fpdf"
)

// FormatWriter serializes a transcript to one output format. Writers are
// independent: a failure in one never prevents the others from running.
type FormatWriter struct {
	Name  string
	Ext   string
	Write func(path string, t *Transcript) error
}

// WriteResult records one writer's outcome.
type WriteResult struct {
	Name string
	Path string
	Err  error
}

// DefaultWriters returns the writers in their fixed output order.
func DefaultWriters() []FormatWriter {
	return []FormatWriter{
		{Name: "json", Ext: ".json", Write: WriteJSON},
		{Name: "text", Ext: ".txt", Write: WriteText},
		{Name: "pdf", Ext: ".pdf", Write: WritePDF},
	}
}

// WriteAll runs every writer against its sibling file and collects the
// outcomes. It always runs all writers, regardless of failures.
func WriteAll(base string, t *Transcript, writers []FormatWriter) []WriteResult {
	results := make([]WriteResult, 0, len(writers))
	for _, w := range writers {
		path := base + w.Ext
		err := w.Write(path, t)
		if err != nil {
			log.Debug("writer failed", "format", w.Name, "path", path, "err", err)
		}
		results = append(results, WriteResult{Name: w.Name, Path: path, Err: err})
	}
	return results
}

// WriteJSON writes the full segment list as a pretty-printed UTF-8 JSON
// array. HTML escaping is disabled so Unicode text survives verbatim.
func WriteJSON(path string, t *Transcript) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	segments := t.Segments
	if segments == nil {
		segments = []Segment{}
	}
	if err := enc.Encode(segments); err != nil {
		return fmt.Errorf("encoding transcript: %w", err)
	}
	return nil
}

// WriteText writes one segment text per line, discarding all timing.
func WriteText(path string, t *Transcript) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, seg := range t.Segments {
		if _, err := w.WriteString(seg.Text + "\n"); err != nil {
			return fmt.Errorf("writing transcript text: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing transcript text: %w", err)
	}
	return nil
}

// WritePDF writes a titled document with one timestamped paragraph per
// segment.
func WritePDF(path string, t *Transcript) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(t.DocumentTitle(), true)
	pdf.AddPage()

	// Core fonts are cp1252 only; translate what we can.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, tr(t.DocumentTitle()), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	for _, seg := range t.Segments {
		paragraph := fmt.Sprintf("%s %s", TimestampLabel(seg.Start), seg.Text)
		pdf.MultiCell(0, 6, tr(paragraph), "", "L", false)
		pdf.Ln(2)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// TimestampLabel formats a start offset as [MM:SS], truncating (not
// rounding) fractional seconds.
func TimestampLabel(start float64) string {
	total := int(start)
	return fmt.Sprintf("[%02d:%02d]", total/60, total%60)
}
