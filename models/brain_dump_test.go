package models

import "testing"

func strptr(s string) *string { return &s }

func TestBrainDumpMerge(t *testing.T) {
	tests := []struct {
		name  string
		base  BrainDump
		patch BrainDumpPatch
		want  BrainDump
	}{
		{
			name:  "single field",
			base:  BrainDump{},
			patch: BrainDumpPatch{Hook: strptr("A")},
			want:  BrainDump{Hook: "A"},
		},
		{
			name:  "unspecified fields untouched",
			base:  BrainDump{Hook: "A", Notes: "n"},
			patch: BrainDumpPatch{CTA: strptr("B")},
			want:  BrainDump{Hook: "A", CTA: "B", Notes: "n"},
		},
		{
			name:  "explicit empty string clears",
			base:  BrainDump{Hook: "A"},
			patch: BrainDumpPatch{Hook: strptr("")},
			want:  BrainDump{},
		},
		{
			name:  "empty patch is identity",
			base:  BrainDump{Hook: "A", KeyPoints: "k", CTA: "c", Notes: "n"},
			patch: BrainDumpPatch{},
			want:  BrainDump{Hook: "A", KeyPoints: "k", CTA: "c", Notes: "n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.base.Merge(tt.patch); got != tt.want {
				t.Errorf("Merge() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestModeValidity(t *testing.T) {
	if !RecordingModeSingle.Valid() || !RecordingModeMulti.Valid() {
		t.Error("settable recording modes reported invalid")
	}
	if RecordingModeUnset.Valid() || RecordingMode("dual").Valid() {
		t.Error("non-settable recording mode reported valid")
	}
	if !SourceModeInspiration.Valid() || !SourceModeFreestyle.Valid() {
		t.Error("settable source modes reported invalid")
	}
	if SourceModeUnset.Valid() || SourceMode("insp").Valid() {
		t.Error("non-settable source mode reported valid")
	}
}
