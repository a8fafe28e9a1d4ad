package output

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dotty/pkg/errors"
	"github.com/arthur-debert/dotty/pkg/reconcile"
	"github.com/arthur-debert/dotty/pkg/types"
)

const (
	successMark = "✓"
	failureMark = "❌"
	linksTo     = "→"
	notLinksTo  = "↛"

	treeEdge   = "├"
	treeVert   = "│"
	treeHorz   = "─"
	treeCorner = "└"
)

// WriteReport writes one block per app.
func WriteReport(w io.Writer, report *reconcile.Report, th Theme) error {
	for _, app := range report.Apps {
		if _, err := io.WriteString(w, AppBlock(app, th)); err != nil {
			return err
		}
	}
	return nil
}

// AppBlock renders one app result. The returned string ends in a newline.
func AppBlock(app reconcile.AppResult, th Theme) string {
	branches := make([][]string, 0, len(app.Outcomes))
	for _, o := range app.Outcomes {
		branches = append(branches, outcomeLines(o, th))
	}
	return block(app.Name, branches, th)
}

// AppSummary renders an app's configuration, as shown by the list command.
func AppSummary(app *types.App, th Theme) string {
	var branches [][]string
	if app.Description != "" {
		branches = append(branches, []string{" " + th.Description.Render(app.Description)})
	}
	branches = append(branches,
		[]string{" dir    " + th.path(app.DstDir)},
		[]string{" srcdir " + th.path(app.SrcDir)},
	)

	links := make([]string, 0, len(app.Links))
	for _, spec := range app.Links {
		links = append(links, fmt.Sprintf("  %s %s %s", spec.Src, linksTo, spec.Dst))
	}
	if len(links) == 0 {
		branches = append(branches, []string{" links  (none)"})
	} else {
		branches = append(branches, append([]string{fmt.Sprintf(" links  %d", len(links))}, links...))
	}

	return block(app.Name, branches, th)
}

// block draws a title box followed by a tree. The first line of each
// branch hangs off the tree; later lines are indented under it.
func block(title string, branches [][]string, th Theme) string {
	var b strings.Builder
	b.WriteString(th.Title.Render(title))

	for i, lines := range branches {
		if len(lines) == 0 {
			continue
		}
		edge, cont := treeEdge, treeVert
		if i == len(branches)-1 {
			edge, cont = treeCorner, " "
		}

		b.WriteString("\n")
		b.WriteString(th.Tree.Render(edge + treeHorz))
		b.WriteString(lines[0])
		for _, line := range lines[1:] {
			b.WriteString("\n")
			b.WriteString(th.Tree.Render(cont))
			b.WriteString("  ")
			b.WriteString(line)
		}
	}

	b.WriteString("\n")
	return b.String()
}

func outcomeLines(o reconcile.Outcome, th Theme) []string {
	src, dst := o.Link.Src, o.Link.Dst

	if o.Failed() {
		if !o.HasPaths {
			return []string{th.Failure.Render(failureMark) + treeHorz + " " + errorLine(ErrorText(o.Err), th)}
		}
		return notLinked(src, dst, ErrorText(o.Err), th)
	}

	status := o.Link.Status
	switch status.Kind {
	case types.Exists:
		return []string{fmt.Sprintf("%s%s %s %s %s",
			th.Success.Render(successMark), treeHorz,
			th.path(src), th.Success.Render(linksTo), th.path(dst))}
	case types.Unexpected:
		return notLinked(src, dst, "found "+th.path(status.Found), th)
	default:
		return notLinked(src, dst, status.String(), th)
	}
}

func notLinked(src, dst, message string, th Theme) []string {
	return []string{
		fmt.Sprintf("%s%s %s %s %s",
			th.Failure.Render(failureMark), treeHorz,
			th.path(src), th.Failure.Render(notLinksTo), th.path(dst)),
		"  " + errorLine(message, th),
	}
}

func errorLine(message string, th Theme) string {
	return th.ErrorLabel.Render("Error:") + " " + message
}

// ErrorText is the user facing text of an error: the message of a coded
// error followed by its cause, without the code.
func ErrorText(err error) string {
	var dotErr *errors.DotError
	if !stderrors.As(err, &dotErr) {
		return err.Error()
	}
	if dotErr.Wrapped != nil {
		return dotErr.Message + ": " + ErrorText(dotErr.Wrapped)
	}
	return dotErr.Message
}

// Tone classifies a summary count for styling.
type Tone int

const (
	ToneGood Tone = iota
	ToneWarn
	ToneBad
)

// Count is one entry of a run summary.
type Count struct {
	Label string
	N     int
	Tone  Tone
}

// Summary lists the non-zero counts of a report in a fixed order. Links made
// by this pass count as created, not linked.
func Summary(report *reconcile.Report) []Count {
	sum := report.Summary()
	all := []Count{
		{"linked", sum.Kinds[types.Exists] - sum.Created, ToneGood},
		{"created", sum.Created, ToneGood},
		{"missing", sum.Kinds[types.SrcUnexists], ToneWarn},
		{"without target", sum.Kinds[types.DstUnexists], ToneWarn},
		{"conflicting", sum.Kinds[types.Unexpected], ToneBad},
		{"failed", sum.Failed, ToneBad},
	}

	counts := make([]Count, 0, len(all))
	for _, c := range all {
		if c.N > 0 {
			counts = append(counts, c)
		}
	}
	return counts
}

// SummaryLine renders counts as "2 linked, 1 failed".
func SummaryLine(counts []Count) string {
	if len(counts) == 0 {
		return "no links"
	}
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("%d %s", c.N, c.Label)
	}
	return strings.Join(parts, ", ")
}
