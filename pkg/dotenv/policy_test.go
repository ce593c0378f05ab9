package dotenv

import (
	"errors"
	"strings"
	"testing"
)

func TestPolicy_Apply(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		initial MapStore
		line    Line
		want    MapStore
	}{
		{
			name:    "override sets absent key",
			policy:  Override,
			initial: MapStore{},
			line:    Line{Key: "TESTKEY", Value: "TESTVALUE", HasValue: true},
			want:    MapStore{"TESTKEY": "TESTVALUE"},
		},
		{
			name:    "override replaces existing key",
			policy:  Override,
			initial: MapStore{"TESTKEY": "OLDTESTVALUE"},
			line:    Line{Key: "TESTKEY", Value: "TESTVALUE", HasValue: true},
			want:    MapStore{"TESTKEY": "TESTVALUE"},
		},
		{
			name:    "override removes on empty value",
			policy:  Override,
			initial: MapStore{"TESTKEY": "OLDTESTVALUE"},
			line:    Line{Key: "TESTKEY", Value: "", HasValue: true},
			want:    MapStore{},
		},
		{
			name:    "override removes on missing value",
			policy:  Override,
			initial: MapStore{"TESTKEY": "OLDTESTVALUE", "OTHER": "x"},
			line:    Line{Key: "TESTKEY"},
			want:    MapStore{"OTHER": "x"},
		},
		{
			name:    "skip keeps existing key",
			policy:  Skip,
			initial: MapStore{"TESTKEY": "OLDTESTVALUE"},
			line:    Line{Key: "TESTKEY", Value: "TESTVALUE", HasValue: true},
			want:    MapStore{"TESTKEY": "OLDTESTVALUE"},
		},
		{
			name:    "skip fills absent key",
			policy:  Skip,
			initial: MapStore{},
			line:    Line{Key: "TESTKEY", Value: "TESTVALUE", HasValue: true},
			want:    MapStore{"TESTKEY": "TESTVALUE"},
		},
		{
			name:    "skip fills absent key with empty value",
			policy:  Skip,
			initial: MapStore{},
			line:    Line{Key: "TESTKEY", Value: "", HasValue: true},
			want:    MapStore{"TESTKEY": ""},
		},
		{
			name:    "skip treats empty existing value as present",
			policy:  Skip,
			initial: MapStore{"TESTKEY": ""},
			line:    Line{Key: "TESTKEY", Value: "TESTVALUE", HasValue: true},
			want:    MapStore{"TESTKEY": ""},
		},
		{
			name:    "skip ignores missing value",
			policy:  Skip,
			initial: MapStore{},
			line:    Line{Key: "TESTKEY"},
			want:    MapStore{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.policy.Apply(tt.initial, tt.line); err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			assertStore(t, tt.initial, tt.want)
		})
	}
}

func TestPolicy_ApplyUnknown(t *testing.T) {
	store := MapStore{}
	err := Policy(42).Apply(store, Line{Key: "K", Value: "v", HasValue: true})
	if !errors.Is(err, ErrUnknownPolicy) {
		t.Fatalf("Apply() error = %v, want ErrUnknownPolicy", err)
	}
	if len(store) != 0 {
		t.Errorf("store = %v, want empty", store)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    Policy
		wantErr bool
	}{
		{input: "override", want: Override},
		{input: "Skip", want: Skip},
		{input: " SKIP ", want: Skip},
		{input: "merge", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePolicy(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePolicy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownPolicy) {
					t.Errorf("ParsePolicy(%q) error = %v, want ErrUnknownPolicy", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParsePolicy(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got.String() != strings.ToLower(strings.TrimSpace(tt.input)) {
				t.Errorf("String() = %q, want %q", got.String(), tt.input)
			}
		})
	}
}

func assertStore(t *testing.T, got, want MapStore) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("store = %v, want %v", got, want)
		return
	}
	for k, v := range want {
		if gv, ok := got[k]; !ok || gv != v {
			t.Errorf("store = %v, want %v", got, want)
			return
		}
	}
}
