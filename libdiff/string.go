package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// StringDiff describes the difference between from and to inline, with
// deleted text as [-text-] and inserted text as {+text+}.  It returns ""
// when they are equal.
func StringDiff(from, to string) string {
	if from == to {
		return ""
	}
	diffs := stringDiffs(from, to)
	buf := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			buf.WriteString("{+" + diff.Text + "+}")
		case diffpatch.DiffDelete:
			buf.WriteString("[-" + diff.Text + "-]")
		case diffpatch.DiffEqual:
			buf.WriteString(diff.Text)
		}
	}
	return buf.String()
}

// PrettyStringDiff is like StringDiff but marks insertions and deletions
// with terminal colors.
func PrettyStringDiff(from, to string) string {
	if from == to {
		return ""
	}
	return diffpatch.New().DiffPrettyText(stringDiffs(from, to))
}

func stringDiffs(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	return diffCfg.DiffCleanupSemantic(diffs)
}
