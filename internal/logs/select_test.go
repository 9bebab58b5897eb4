package logs_test

import (
	"testing"
	"time"

	"logview/internal/logs"
)

func TestSelectLatest(t *testing.T) {
	t0 := baseTime
	tests := []struct {
		name    string
		entries []logs.Entry
		want    string
		found   bool
	}{
		{name: "empty", entries: nil, found: false},
		{
			name: "only directories",
			entries: []logs.Entry{
				{Name: "dir", ModTime: t0, Regular: false},
			},
			found: false,
		},
		{
			name: "newest wins",
			entries: []logs.Entry{
				{Name: "old.log", ModTime: t0, Regular: true},
				{Name: "new.log", ModTime: t0.Add(time.Second), Regular: true},
				{Name: "mid.log", ModTime: t0.Add(time.Millisecond), Regular: true},
			},
			want:  "new.log",
			found: true,
		},
		{
			name: "tie keeps first",
			entries: []logs.Entry{
				{Name: "first.log", ModTime: t0, Regular: true},
				{Name: "second.log", ModTime: t0, Regular: true},
			},
			want:  "first.log",
			found: true,
		},
		{
			name: "newer directory ignored",
			entries: []logs.Entry{
				{Name: "subdir", ModTime: t0.Add(time.Hour), Regular: false},
				{Name: "only.log", ModTime: t0, Regular: true},
			},
			want:  "only.log",
			found: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := logs.SelectLatest(tt.entries)
			if ok != tt.found {
				t.Fatalf("found: expected %v, got %v", tt.found, ok)
			}
			if ok && got.Name != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got.Name)
			}
		})
	}
}
