package models

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestStringList_UnmarshalArray(t *testing.T) {
	var s StringList
	if err := json.Unmarshal([]byte(`["Go","Backend"]`), &s); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual([]string(s), []string{"Go", "Backend"}) {
		t.Errorf("Unexpected list: %v", s)
	}
}

func TestStringList_UnmarshalCommaString(t *testing.T) {
	var s StringList
	if err := json.Unmarshal([]byte(`"Go, Backend, , Web "`), &s); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual([]string(s), []string{"Go", "Backend", "Web"}) {
		t.Errorf("Empty entries must be dropped and whitespace trimmed, got %v", s)
	}
}

func TestCreateBlogRequest_Immediate(t *testing.T) {
	req := &CreateBlogRequest{}
	if !req.Immediate() {
		t.Error("Omitted publishNow must mean immediate")
	}

	yes, no := true, false
	req.PublishNow = &yes
	if !req.Immediate() {
		t.Error("publishNow=true must mean immediate")
	}
	req.PublishNow = &no
	if req.Immediate() {
		t.Error("publishNow=false must mean deferred")
	}
}

func TestFormatDisplayDate(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 3, 7, 21, 5, 0, 0, time.UTC), "2024.3.7 - 9:05 PM"},
		{time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), "2024.12.25 - 12:00 AM"},
		{time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC), "2025.1.1 - 12:30 PM"},
		{time.Date(2025, 6, 15, 9, 9, 0, 0, time.UTC), "2025.6.15 - 9:09 AM"},
	}
	for _, tt := range tests {
		if got := FormatDisplayDate(tt.in); got != tt.want {
			t.Errorf("FormatDisplayDate(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
