// Package report renders a scheduler.Result as JSON, an aligned plain
// text grid, or a PDF timetable. None of it feeds back into scheduling;
// it only ever reads an already-computed Result.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/jung-kurt/gofpdf"

	"github.com/edusched/timetable/scheduler"
)

// WriteJSON pretty-prints result to w, matching the indent style of a
// decode-friendly API response.
func WriteJSON(w io.Writer, result *scheduler.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// WriteText renders one aligned grid per class: rows are time slots,
// cells hold "subject / teacher / room" or a blank marker, in the
// column-aligned style of the pretty-printer this CLI's JSON writer is
// grounded on.
func WriteText(w io.Writer, problem *scheduler.Problem, result *scheduler.Result) error {
	classes := append([]string(nil), problem.Classes...)
	sort.Strings(classes)

	cellWidth := 0
	for _, slot := range problem.TimeSlots {
		for _, class := range classes {
			entry := result.Schedule[class][slot]
			if entry == nil {
				continue
			}
			text := fmt.Sprintf("%s / %s / %s", entry.Subject, entry.Teacher, entry.Room)
			if len(text) > cellWidth {
				cellWidth = len(text)
			}
		}
	}
	if cellWidth < len("(empty)") {
		cellWidth = len("(empty)")
	}

	for _, class := range classes {
		if _, err := fmt.Fprintf(w, "== %s ==\n", class); err != nil {
			return err
		}
		for _, slot := range problem.TimeSlots {
			entry := result.Schedule[class][slot]
			text := "(empty)"
			if entry != nil {
				text = fmt.Sprintf("%s / %s / %s", entry.Subject, entry.Teacher, entry.Room)
			}
			if _, err := fmt.Fprintf(w, "  %-12s %-*s\n", slot, cellWidth, text); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(w, "\nrun %s: %d/%d sessions placed (%.1f%%)\n",
		result.RunID, result.Statistics.TotalScheduled, result.Statistics.TotalRequired, result.Statistics.SuccessRate); err != nil {
		return err
	}
	for _, line := range result.Constraints {
		if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
			return err
		}
	}
	return nil
}

// WritePDF renders one page per class, a row per time slot, to w.
func WritePDF(w io.Writer, problem *scheduler.Problem, result *scheduler.Result) error {
	classes := append([]string(nil), problem.Classes...)
	sort.Strings(classes)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 11)

	for _, class := range classes {
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, class, "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)

		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(40, 8, "Time slot", "1", 0, "L", true, 0, "")
		pdf.CellFormat(50, 8, "Subject", "1", 0, "L", true, 0, "")
		pdf.CellFormat(50, 8, "Teacher", "1", 0, "L", true, 0, "")
		pdf.CellFormat(50, 8, "Room", "1", 1, "L", true, 0, "")

		for _, slot := range problem.TimeSlots {
			entry := result.Schedule[class][slot]
			subject, teacher, room := "", "", ""
			if entry != nil {
				subject, teacher, room = entry.Subject, entry.Teacher, entry.Room
			}
			pdf.CellFormat(40, 8, slot, "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 8, subject, "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 8, teacher, "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 8, room, "1", 1, "L", false, 0, "")
		}
	}

	return pdf.Output(w)
}
