package tags

import "strings"

// Action is the tag outcome recorded in the audit row.
type Action string

const (
	ActionUpdated     Action = "updated"
	ActionUnchanged   Action = "unchanged"
	ActionUnsupported Action = "unsupported_format"
	ActionWriteFailed Action = "write_failed"
)

// Current holds the tag values a file carries before reconciliation.
type Current struct {
	Artist string
	Title  string
	Year   string
	Label  string
}

// Plan is the reconciliation decision for one file: what to write, if anything.
type Plan struct {
	Year  string // exactly 4 digits, or "" to leave the year alone
	Label string // "" leaves the label alone
}

// BuildPlan decides the normalized year/label to write given the file's
// current values and the catalog record's raw values.
// This is a pure function; Apply performs the write.
func BuildPlan(current Current, rawYear string, labels []string) Plan {
	plan := Plan{
		Year:  CleanYear(rawYear),
		Label: ChooseLabel(labels),
	}

	// Values already stored are not rewritten.
	if plan.Year != "" && plan.Year == CleanYear(current.Year) {
		plan.Year = ""
	}
	if plan.Label != "" && plan.Label == strings.TrimSpace(current.Label) {
		plan.Label = ""
	}
	return plan
}

// Empty reports whether the plan leaves the file untouched.
func (p Plan) Empty() bool {
	return p.Year == "" && p.Label == ""
}

// Apply writes the plan into the file's tags. The returned note carries the
// failure reason when the action is write_failed.
func Apply(path string, p Plan) (Action, string) {
	info, ok := Lookup(path)
	if !ok {
		return ActionUnsupported, ""
	}
	if p.Empty() {
		return ActionUnchanged, ""
	}

	var err error
	switch info.Family {
	case FamilyID3:
		err = writeID3(path, p)
	case FamilyTagLib:
		err = writeTagLib(path, p)
	case FamilyMP4:
		err = writeMP4(path, p)
	}
	if err != nil {
		return ActionWriteFailed, err.Error()
	}
	return ActionUpdated, ""
}
