package workflow

import "testing"

func steppedWorkflow() *Workflow {
	return &Workflow{
		Steps: []Step{
			{Name: "Intake Routing", Kind: StepAuto},
			{Name: "Manager Review", Kind: StepApproval},
			{Name: "Notify", Kind: StepAuto},
			{Name: "Finance Approval", Kind: StepApproval},
		},
	}
}

func TestApprovalStepAt(t *testing.T) {
	w := steppedWorkflow()

	tests := []struct {
		idx      int
		wantName string
		wantPos  int
		wantOK   bool
	}{
		{idx: 0, wantName: "Manager Review", wantPos: 1, wantOK: true},
		{idx: 1, wantName: "Manager Review", wantPos: 1, wantOK: true},
		{idx: 2, wantName: "Finance Approval", wantPos: 3, wantOK: true},
		{idx: 3, wantName: "Finance Approval", wantPos: 3, wantOK: true},
		{idx: 4, wantOK: false},
		{idx: -1, wantName: "Manager Review", wantPos: 1, wantOK: true},
	}
	for _, tc := range tests {
		step, pos, ok := w.ApprovalStepAt(tc.idx)
		if ok != tc.wantOK {
			t.Fatalf("ApprovalStepAt(%d) ok = %v, want %v", tc.idx, ok, tc.wantOK)
		}
		if !ok {
			continue
		}
		if step.Name != tc.wantName || pos != tc.wantPos {
			t.Fatalf("ApprovalStepAt(%d) = %q@%d, want %q@%d", tc.idx, step.Name, pos, tc.wantName, tc.wantPos)
		}
	}
}

func TestHasApprovalStepAfter(t *testing.T) {
	w := steppedWorkflow()
	if !w.HasApprovalStepAfter(1) {
		t.Fatalf("expected an approval step after pos 1")
	}
	if w.HasApprovalStepAfter(3) {
		t.Fatalf("expected no approval step after pos 3")
	}

	empty := &Workflow{}
	if _, _, ok := empty.ApprovalStepAt(0); ok {
		t.Fatalf("empty workflow must resolve no step")
	}
}
