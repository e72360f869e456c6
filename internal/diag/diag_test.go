package diag

import "testing"

func TestCollectingSinkAccumulatesInOrder(t *testing.T) {
	sink := NewCollectingSink()
	sink.Report(Diagnostic{Stage: StageRuleLoader, Severity: SeverityWarning, Message: "first"})
	sink.Report(Diagnostic{Stage: StageScanner, Severity: SeverityError, Message: "second"})

	if len(sink.Diagnostics) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(sink.Diagnostics))
	}
	if sink.Diagnostics[0].Message != "first" || sink.Diagnostics[1].Message != "second" {
		t.Errorf("diagnostics out of order: %v", sink.Diagnostics)
	}
}

func TestCollectingSinkHasErrors(t *testing.T) {
	sink := NewCollectingSink()
	if sink.HasErrors() {
		t.Fatal("empty sink must not report errors")
	}

	sink.Report(Diagnostic{Stage: StageRuleLoader, Severity: SeverityWarning, Message: "w"})
	if sink.HasErrors() {
		t.Fatal("a warning-only sink must not report HasErrors")
	}

	sink.Report(Diagnostic{Stage: StageScanner, Severity: SeverityError, Message: "e"})
	if !sink.HasErrors() {
		t.Fatal("expected HasErrors after an error-severity diagnostic")
	}
}

func TestDiscardSinkDropsEverything(t *testing.T) {
	// Must not panic; nothing to assert on a discard.
	Discard.Report(Diagnostic{Stage: StageMerger, Severity: SeverityError, Message: "ignored"})
}
