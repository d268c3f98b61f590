package domain

import "testing"

func TestJobStatusIsTerminal(t *testing.T) {
	tests := []struct {
		status   JobStatus
		terminal bool
	}{
		{JobStatusCreated, false},
		{JobStatusPreProcessing, false},
		{JobStatusRunning, false},
		{JobStatusPostProcessing, false},
		{JobStatusCompleted, true},
		{JobStatusFailed, true},
		{JobStatusCancelled, true},
		{JobStatusUnknown, false},
	}

	for _, tt := range tests {
		if got := tt.status.IsTerminal(); got != tt.terminal {
			t.Errorf("JobStatus(%s).IsTerminal() = %v, want %v", tt.status, got, tt.terminal)
		}
	}
}

func TestRunStatusIsTerminal(t *testing.T) {
	tests := []struct {
		status   RunStatus
		terminal bool
	}{
		{RunStatusScheduled, false},
		{RunStatusRunning, false},
		{RunStatusSucceeded, true},
		{RunStatusFailed, true},
	}

	for _, tt := range tests {
		if got := tt.status.IsTerminal(); got != tt.terminal {
			t.Errorf("RunStatus(%s).IsTerminal() = %v, want %v", tt.status, got, tt.terminal)
		}
	}
}

func TestJobCurrentStatus_NilStatus(t *testing.T) {
	job := &Job{ID: "j-1"}
	if got := job.CurrentStatus(); got != JobStatusUnknown {
		t.Errorf("expected Unknown for missing status block, got %s", got)
	}
	if job.IsFinished() {
		t.Error("job without status must not be finished")
	}
}

func TestProjectFolderArgument(t *testing.T) {
	arg := ProjectFolderArgument("model", "model1.hbjson")

	if arg.Type != "JobPathArgument" {
		t.Errorf("unexpected argument type %q", arg.Type)
	}
	if arg.Source.Type != "ProjectFolder" {
		t.Errorf("unexpected source type %q", arg.Source.Type)
	}
	if arg.Source.Path != "model1.hbjson" {
		t.Errorf("unexpected source path %q", arg.Source.Path)
	}
}

func TestRunOutputNames(t *testing.T) {
	run := &Run{
		ID: "r-1",
		Status: &RunStatusInfo{
			Status: RunStatusSucceeded,
			Outputs: []RunOutput{
				{Name: "results"},
				{Name: "visualization"},
			},
		},
	}

	names := run.OutputNames()
	if len(names) != 2 || names[0] != "results" || names[1] != "visualization" {
		t.Errorf("unexpected output names %v", names)
	}

	empty := &Run{ID: "r-2"}
	if names := empty.OutputNames(); names != nil {
		t.Errorf("expected nil for run without status, got %v", names)
	}
}
