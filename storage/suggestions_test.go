package storage

import (
	"testing"
	"time"
)

func openTestLog(t *testing.T) *SuggestionLog {
	t.Helper()
	log, err := OpenSuggestionLog(t.TempDir())
	if err != nil {
		t.Fatalf("OpenSuggestionLog() error = %v", err)
	}
	t.Cleanup(func() { log.Close() })
	return log
}

func TestRecordAndList(t *testing.T) {
	log := openTestLog(t)

	id, err := log.Record(SuggestionRecord{
		SessionID:    "sess-1",
		Command:      "/search --name john",
		Explanation:  "Search for john",
		Decision:     "accept",
		FinalCommand: "/search --name john",
	})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if id == "" {
		t.Fatal("Record() returned empty id")
	}

	records, err := log.List(10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("List() returned %d records, want 1", len(records))
	}

	rec := records[0]
	if rec.Command != "/search --name john" || rec.Decision != "accept" {
		t.Errorf("record = %+v", rec)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestRejectedLeavesNoFinalCommand(t *testing.T) {
	log := openTestLog(t)

	if _, err := log.Record(SuggestionRecord{
		SessionID: "sess-1",
		Command:   "/list",
		Decision:  "reject",
	}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	records, err := log.List(1)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if records[0].FinalCommand != "" {
		t.Errorf("FinalCommand = %q, want empty", records[0].FinalCommand)
	}
}

func TestBySessionOrdering(t *testing.T) {
	log := openTestLog(t)

	base := time.Now().UTC().Add(-time.Hour)
	for i, cmd := range []string{"/list", "/recent", "/browse"} {
		if _, err := log.Record(SuggestionRecord{
			SessionID: "sess-2",
			Command:   cmd,
			Decision:  "accept",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}
	if _, err := log.Record(SuggestionRecord{
		SessionID: "other",
		Command:   "/list",
		Decision:  "reject",
	}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	records, err := log.BySession("sess-2")
	if err != nil {
		t.Fatalf("BySession() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("BySession() returned %d records, want 3", len(records))
	}
	want := []string{"/list", "/recent", "/browse"}
	for i, rec := range records {
		if rec.Command != want[i] {
			t.Errorf("records[%d].Command = %q, want %q", i, rec.Command, want[i])
		}
	}
}
