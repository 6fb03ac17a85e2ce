package printer

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sedu-app/sedu/internal/model"
)

// TablePrinter prints sedu information in a table format.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintSetList prints sets in a table format.
func (t *TablePrinter) PrintSetList(sets []model.SetSummary) error {
	if len(sets) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tSTATUS\tTITLE\tQUESTIONS\tSOURCE")

	for _, s := range sets {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", s.ID, s.Status.Label(), orDash(s.Title), s.QuestionCount, orDash(s.SourceFilename))
	}

	return nil
}

// PrintSetStatus prints detailed set status including the latest job and its
// recent events.
func (t *TablePrinter) PrintSetStatus(view SetStatusView) error {
	s := view.Set
	fmt.Fprintf(t.writer, "Set:        %s\n", s.ID)
	fmt.Fprintf(t.writer, "Status:     %s\n", s.Status.Label())
	if s.Title != "" {
		fmt.Fprintf(t.writer, "Title:      %s\n", s.Title)
	}
	if s.SourceFilename != "" {
		fmt.Fprintf(t.writer, "Source:     %s\n", s.SourceFilename)
	}
	if s.SourceMime != "" {
		fmt.Fprintf(t.writer, "Mime:       %s\n", s.SourceMime)
	}
	if s.SourceSize > 0 {
		fmt.Fprintf(t.writer, "Size:       %s\n", FormatBytes(s.SourceSize))
	}
	fmt.Fprintf(t.writer, "Questions:  %d\n", s.QuestionCount)

	if view.Job != nil {
		j := view.Job
		fmt.Fprintf(t.writer, "Job:        %s\n", j.ID)
		fmt.Fprintf(t.writer, "Job status: %s\n", j.Status.Label())
		if j.Stage != "" {
			fmt.Fprintf(t.writer, "Stage:      %s\n", model.StageLabel(j.Stage))
		}
		fmt.Fprintf(t.writer, "Progress:   %.0f%%\n", j.Percent)
		if j.ErrorMessage != "" {
			fmt.Fprintf(t.writer, "Job error:  %s\n", j.ErrorMessage)
		}
	}

	if len(view.Events) > 0 {
		fmt.Fprintln(t.writer, "Recent events:")
		tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
		defer tw.Flush()
		fmt.Fprintln(tw, "  WHEN\tSTATUS\tSTAGE\tPROGRESS")
		for _, e := range view.Events {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%.0f%%\n", FormatTimestamp(e.CreatedAt), e.Status.Label(), orDash(model.StageLabel(e.Stage)), e.Percent)
		}
	}

	return nil
}

// PrintQuestionList prints question summaries in a table format.
func (t *TablePrinter) PrintQuestionList(questions []model.QuestionSummary) error {
	if len(questions) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tNO\tORDER\tREVIEW\tCONFIDENCE")

	for _, q := range questions {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", q.ID, orDash(q.NumberLabel), q.OrderIndex, q.ReviewStatus, formatConfidence(q.Confidence))
	}

	return nil
}

// PrintQuestion prints question detail.
func (t *TablePrinter) PrintQuestion(q model.Question) error {
	fmt.Fprintf(t.writer, "Question:   %s\n", q.ID)
	fmt.Fprintf(t.writer, "Set:        %s\n", q.SetID)
	if q.NumberLabel != "" {
		fmt.Fprintf(t.writer, "Number:     %s\n", q.NumberLabel)
	}
	fmt.Fprintf(t.writer, "Order:      %d\n", q.OrderIndex)
	fmt.Fprintf(t.writer, "Review:     %s\n", q.ReviewStatus)
	if q.Confidence != nil {
		fmt.Fprintf(t.writer, "Confidence: %s\n", formatConfidence(q.Confidence))
	}
	if q.OCRText != "" {
		fmt.Fprintf(t.writer, "Text:\n%s\n", indent(q.OCRText))
	}
	return nil
}

// PrintVariantList prints variants in a table format.
func (t *TablePrinter) PrintVariantList(variants []model.Variant) error {
	if len(variants) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tTYPE\tMODEL\tCREATED")

	for _, v := range variants {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.ID, v.Type, orDash(v.Model), TimeAgo(v.CreatedAt))
	}

	return nil
}

// PrintVariant prints a single variant in full.
func (t *TablePrinter) PrintVariant(v model.Variant) error {
	fmt.Fprintf(t.writer, "Variant:    %s\n", v.ID)
	fmt.Fprintf(t.writer, "Question:   %s\n", v.QuestionID)
	fmt.Fprintf(t.writer, "Type:       %s\n", v.Type)
	if v.Model != "" {
		fmt.Fprintf(t.writer, "Model:      %s\n", v.Model)
	}
	fmt.Fprintf(t.writer, "Body:\n%s\n", indent(v.Body))
	if v.Answer != "" {
		fmt.Fprintf(t.writer, "Answer:\n%s\n", indent(v.Answer))
	}
	if v.Explanation != "" {
		fmt.Fprintf(t.writer, "Explanation:\n%s\n", indent(v.Explanation))
	}
	return nil
}

// PrintHint prints a tutoring hint.
func (t *TablePrinter) PrintHint(h model.Hint) error {
	fmt.Fprintf(t.writer, "Question:   %s\n", h.QuestionID)
	fmt.Fprintf(t.writer, "Level:      %s\n", h.Level)
	if h.Model != "" {
		fmt.Fprintf(t.writer, "Model:      %s\n", h.Model)
	}
	fmt.Fprintf(t.writer, "Hint:\n%s\n", indent(h.Text))
	return nil
}

// PrintReviewQueue prints the review queue in a table format.
func (t *TablePrinter) PrintReviewQueue(items []model.ReviewQueueItem) error {
	if len(items) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "QUESTION\tSET\tNO\tREVIEW\tCONFIDENCE")

	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", it.QuestionID, it.SetID, orDash(it.NumberLabel), it.ReviewStatus, formatConfidence(it.Confidence))
	}

	return nil
}

// PrintUploadList prints the local upload history in a table format.
func (t *TablePrinter) PrintUploadList(uploads []model.Upload) error {
	if len(uploads) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "FILE\tSET\tJOB\tSIZE\tUPLOADED")

	for _, u := range uploads {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.Filename, u.SetID, u.JobID, FormatBytes(u.SizeBytes), TimeAgo(u.CreatedAt))
	}

	return nil
}

// PrintMessage prints a simple message.
func (t *TablePrinter) PrintMessage(msg string) error {
	_, err := fmt.Fprintln(t.writer, msg)
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatConfidence(c *float64) string {
	if c == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *c)
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
