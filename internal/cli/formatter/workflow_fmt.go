package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dojo/internal/domain"
	"github.com/alexanderramin/dojo/internal/workflow"
)

// WorkflowPlanData bundles everything needed to render a resolved workflow.
type WorkflowPlanData struct {
	Phases      []domain.PhaseInfo
	Stages      []domain.Stage
	RequestType domain.RequestType
	Risk        domain.RiskProfile
	Constraints []domain.Constraint
	Resolved    workflow.Resolved
}

// FormatWorkflowPlan renders the resolved workflow as a phase-grouped
// timeline with per-stage decisions and reasons.
func FormatWorkflowPlan(d WorkflowPlanData) string {
	var b strings.Builder

	b.WriteString(Header("Workflow Plan") + "\n\n")

	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Request    "), Bold(d.RequestType.Name)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Risk       "), RiskIndicator(d.Risk.ID)))
	if len(d.Constraints) > 0 {
		names := make([]string, len(d.Constraints))
		for i, c := range d.Constraints {
			names[i] = c.Name
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Constraints"), strings.Join(names, ", ")))
	} else {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Constraints"), Dim("none")))
	}

	active := d.Resolved.ActiveCount()
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Stages     "),
		fmt.Sprintf("%s of %d execute", StyleGreen.Render(fmt.Sprintf("%d", active)), len(d.Stages))))

	for _, phase := range d.Phases {
		b.WriteString("\n  " + StyleBlue.Render(strings.ToUpper(string(phase.ID))) +
			" " + Dim("· "+phase.Ritual) + "\n")
		for _, stage := range d.Stages {
			if stage.Phase != phase.ID {
				continue
			}
			dec, ok := d.Resolved.Decision(stage.ID)
			if !ok {
				continue
			}
			marker := "  "
			if stage.Mandatory {
				marker = Dim("▪ ")
			}
			b.WriteString(fmt.Sprintf("    %s%-24s %-32s %s\n",
				marker,
				StatusColor(dec.Status).Render(stage.Name),
				StatusIndicator(dec.Status),
				Dim(dec.Reason),
			))
		}
	}

	return b.String()
}

// FormatStageDetail renders one stage's full card: description, artifacts,
// questions, and gate.
func FormatStageDetail(stage domain.Stage, dec workflow.StageDecision) string {
	var b strings.Builder

	b.WriteString(Header(stage.Name) + "\n\n")
	b.WriteString("  " + StatusIndicator(dec.Status) + "  " + Dim(dec.Reason) + "\n\n")
	b.WriteString("  " + stage.Description + "\n")

	if len(stage.Artifacts) > 0 {
		b.WriteString("\n  " + Bold("Artifacts") + "\n")
		for _, a := range stage.Artifacts {
			b.WriteString("    " + Dim("·") + " " + a + "\n")
		}
	}

	if len(stage.Questions) > 0 {
		b.WriteString("\n  " + Bold("Questions asked here") + "\n")
		for _, q := range stage.Questions {
			b.WriteString("    " + Dim("·") + " " + q.Text + "\n")
		}
	}

	if stage.Gate != nil {
		b.WriteString("\n  " + StyleHeader.Render("⛩ "+stage.Gate.Name) + "\n")
		for _, c := range stage.Gate.Criteria {
			b.WriteString("    " + StyleGreen.Render("✓") + " " + c + "\n")
		}
		if len(stage.Gate.EvidenceRequired) > 0 {
			b.WriteString("    " + Dim("Evidence:") + "\n")
			for _, e := range stage.Gate.EvidenceRequired {
				b.WriteString("      " + Dim("·") + " " + e + "\n")
			}
		}
	}

	return b.String()
}
